package morph

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariaschitik/ru-pedantle/model"
)

const sampleLexicon = `# surface	lemma	category
дома	дом	NOUN
дома	дома	ADVB
дома	дом	NOUN
стали	стать	VERB
стали	сталь	NOUN
и	и	CONJ
Кот	кот	NOUN
странное	странный
`

func loadSample(t *testing.T) *Dictionary {
	t.Helper()
	d, err := LoadDictionary(strings.NewReader(sampleLexicon))
	require.NoError(t, err)
	return d
}

func TestLoadDictionary(t *testing.T) {
	d := loadSample(t)

	assert.Equal(t, []model.Analysis{
		{BaseForm: "дом", Category: "NOUN"},
		{BaseForm: "дома", Category: "ADVB"},
	}, d.Analyze("ДОМА"), "duplicates dropped, rank preserved, lookup case-insensitive")

	// Lemmas that never appear as surfaces are analyzable as themselves.
	assert.Equal(t, []model.Analysis{{BaseForm: "дом", Category: "NOUN"}}, d.Analyze("дом"))
	assert.Equal(t, []model.Analysis{{BaseForm: "сталь", Category: "NOUN"}}, d.Analyze("сталь"))
	assert.Nil(t, d.Analyze("неизвестное"))
}

func TestLoadDictionary_LemmaKeepsEveryCategory(t *testing.T) {
	d, err := LoadDictionary(strings.NewReader("пеку\tпечь\tVERB\nпечи\tпечь\tNOUN\nпечёт\tпечь\tVERB\n"))
	require.NoError(t, err)

	assert.Equal(t, []model.Analysis{
		{BaseForm: "печь", Category: "VERB"},
		{BaseForm: "печь", Category: "NOUN"},
	}, d.Analyze("печь"))
}

func TestLoadDictionary_Errors(t *testing.T) {
	_, err := LoadDictionary(strings.NewReader("одно_поле\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestLoadDictionaryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.tsv")
	require.NoError(t, os.WriteFile(path, []byte(sampleLexicon), 0o600))

	d, err := LoadDictionaryFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, d.Analyze("стали"))

	_, err = LoadDictionaryFile(filepath.Join(t.TempDir(), "missing.tsv"))
	assert.Error(t, err)
}

func TestAnalyzeReturnsCopy(t *testing.T) {
	d := loadSample(t)
	got := d.Analyze("стали")
	got[0].BaseForm = "испорчено"
	assert.Equal(t, "стать", d.Analyze("стали")[0].BaseForm)
}

func TestNormalizer_AllKeys(t *testing.T) {
	n := NewNormalizer(loadSample(t))

	assert.Equal(t, []model.NormalizedKey{
		{BaseForm: "стать", Category: "VERB"},
		{BaseForm: "сталь", Category: "NOUN"},
	}, n.AllKeys("стали"))

	assert.Empty(t, n.AllKeys("странное"), "analyses without a category are dropped")
	assert.Empty(t, n.AllKeys("абырвалг"), "unknown words yield no keys")
}

func TestNormalizer_BestKeyFor(t *testing.T) {
	n := NewNormalizer(loadSample(t))

	key, ok := n.BestKeyFor("стали")
	require.True(t, ok)
	assert.Equal(t, model.NormalizedKey{BaseForm: "стать", Category: "VERB"}, key)

	_, ok = n.BestKeyFor("странное")
	assert.False(t, ok, "top analysis lacks a category")

	_, ok = n.BestKeyFor("абырвалг")
	assert.False(t, ok)
}

func TestNormalizer_BaseForms(t *testing.T) {
	n := NewNormalizer(loadSample(t))

	base, ok := n.BestBaseForm("Кот")
	require.True(t, ok)
	assert.Equal(t, "кот", base)

	base, ok = n.BestBaseForm("странное")
	require.True(t, ok, "base form is available even without a category")
	assert.Equal(t, "странный", base)

	_, ok = n.BestBaseForm("абырвалг")
	assert.False(t, ok)

	assert.Equal(t, []string{"дом", "дома"}, n.BaseForms("дома"))
	assert.Empty(t, n.BaseForms("абырвалг"))
}
