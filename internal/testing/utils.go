// Package testing provides fakes and fixtures for testing the game.
package testing

import (
	"fmt"
	"strings"
	"sync"

	"github.com/mariaschitik/ru-pedantle/internal/errors"
	"github.com/mariaschitik/ru-pedantle/internal/morph"
	"github.com/mariaschitik/ru-pedantle/internal/tokenizer"
	"github.com/mariaschitik/ru-pedantle/model"
)

// Key is shorthand for a normalized key.
func Key(base, category string) model.NormalizedKey {
	return model.NormalizedKey{BaseForm: base, Category: category}
}

// Lexicon builds a dictionary analyzer from "surface lemma [CATEGORY]" lines.
// Lines for the same surface are ranked in the order given.
func Lexicon(lines ...string) *morph.Dictionary {
	d := morph.NewDictionary()
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			panic(fmt.Sprintf("lexicon line %q needs at least surface and lemma", line))
		}
		a := model.Analysis{BaseForm: fields[1]}
		if len(fields) > 2 {
			a.Category = fields[2]
		}
		d.Add(fields[0], a)
	}
	return d
}

// SampleLexicon covers every word of the sample records.
func SampleLexicon() *morph.Dictionary {
	return Lexicon(
		"кот кот NOUN",
		"пёс пёс NOUN",
		"пса пёс NOUN",
		"и и CONJ",
		"гонял гонять VERB",
		"гонять гонять VERB",
		"по по PREP",
		"двору двор NOUN",
		"двор двор NOUN",
		"дом дом NOUN",
		"дома дом NOUN",
		"дома дома ADVB",
		"большой большой ADJF",
		"река река NOUN",
		"реки река NOUN",
		"течёт течь VERB",
		"течь течь VERB",
		"собака собака NOUN",
		"кошка кошка NOUN",
		"здание здание NOUN",
	)
}

// FixedOracle is a similarity oracle backed by an explicit score table.
// Pairs without a score are 0. It counts Similarity calls.
type FixedOracle struct {
	mu         sync.Mutex
	vocabulary map[model.NormalizedKey]struct{}
	scores     map[[2]model.NormalizedKey]float64
	calls      int
}

// NewFixedOracle creates an oracle knowing the given keys.
func NewFixedOracle(keys ...model.NormalizedKey) *FixedOracle {
	o := &FixedOracle{
		vocabulary: make(map[model.NormalizedKey]struct{}),
		scores:     make(map[[2]model.NormalizedKey]float64),
	}
	for _, k := range keys {
		o.vocabulary[k] = struct{}{}
	}
	return o
}

// Set records a symmetric score and adds both keys to the vocabulary.
func (o *FixedOracle) Set(a, b model.NormalizedKey, score float64) *FixedOracle {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.vocabulary[a] = struct{}{}
	o.vocabulary[b] = struct{}{}
	o.scores[[2]model.NormalizedKey{a, b}] = score
	o.scores[[2]model.NormalizedKey{b, a}] = score
	return o
}

// Contains implements services.SimilarityOracle.
func (o *FixedOracle) Contains(key model.NormalizedKey) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, ok := o.vocabulary[key]
	return ok
}

// Similarity implements services.SimilarityOracle.
func (o *FixedOracle) Similarity(a, b model.NormalizedKey) (float64, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls++
	if _, ok := o.vocabulary[a]; !ok {
		return 0, errors.NewKeyNotFoundError(a.String())
	}
	if _, ok := o.vocabulary[b]; !ok {
		return 0, errors.NewKeyNotFoundError(b.String())
	}
	return o.scores[[2]model.NormalizedKey{a, b}], nil
}

// Calls returns how many times Similarity has been called.
func (o *FixedOracle) Calls() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.calls
}

// NewArticle tokenizes text and pairs every token with its lemma.
// lemmas maps folded word tokens to their base form; unknown words and
// non-word tokens are their own lemma.
func NewArticle(text string, lemmas map[string]string) model.Article {
	tokens := tokenizer.Tokenize(text)
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		if lemma, ok := lemmas[tokenizer.Fold(tok)]; ok {
			out[i] = lemma
		} else {
			out[i] = tok
		}
	}
	return model.Article{OriginalWords: tokens, Lemmas: out}
}

// CatAndDogRecord is an article titled "Кот и пёс".
func CatAndDogRecord() model.Record {
	return model.Record{
		Article: NewArticle("Кот гонял пса по двору. Река течёт.", map[string]string{
			"кот": "кот", "гонял": "гонять", "пса": "пёс", "по": "по", "двору": "двор", "река": "река", "течёт": "течь",
		}),
		Title: model.Title{Text: "Кот и пёс", Lemmas: []string{"кот", "пёс"}},
		Link:  "https://ru.wikipedia.org/wiki/Кот_и_пёс",
	}
}

// HouseRecord is a tiny article whose body is "Дом,большой.".
func HouseRecord() model.Record {
	return model.Record{
		Article: model.Article{
			OriginalWords: []string{"Дом", ",", "большой", "."},
			Lemmas:        []string{"дом", ",", "большой", "."},
		},
		Title: model.Title{Text: "Большой дом", Lemmas: []string{"большой", "дом"}},
		Link:  "https://ru.wikipedia.org/wiki/Дом",
	}
}

// RiverRecord has "река" in the body but not in the title tokens.
func RiverRecord() model.Record {
	return model.Record{
		Article: NewArticle("Река течёт мимо дома.", map[string]string{
			"река": "река", "течёт": "течь", "мимо": "мимо", "дома": "дом",
		}),
		Title: model.Title{Text: "Течь", Lemmas: []string{"течь", "река"}},
		Link:  "https://ru.wikipedia.org/wiki/Река",
	}
}

// SampleRecords generates n distinct single-word articles for navigation tests.
// Article i (0-based) has title "Статья i+1".
func SampleRecords(n int) []model.Record {
	records := make([]model.Record, n)
	for i := range records {
		word := fmt.Sprintf("слово%d", i+1)
		records[i] = model.Record{
			Article: model.Article{OriginalWords: []string{word, "."}, Lemmas: []string{word, "."}},
			Title:   model.Title{Text: fmt.Sprintf("Статья %d", i+1), Lemmas: []string{"статья"}},
			Link:    model.Link(fmt.Sprintf("https://example.org/%d", i+1)),
		}
	}
	return records
}
