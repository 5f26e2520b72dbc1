package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariaschitik/ru-pedantle/config"
	"github.com/mariaschitik/ru-pedantle/internal/errors"
	"github.com/mariaschitik/ru-pedantle/store"
)

func writeCorpus(t *testing.T) (dir, configPath string) {
	t.Helper()
	dir = t.TempDir()

	files := map[string]string{
		"corpus_lemmas.json": `[{"original_words": ["Кот", " ", "спит", "."], "lemmas": ["кот", "спать"]}]`,
		"titles_lemmas.json": `[{"title": "Кот", "lemmas": ["кот"]}]`,
		"all_links.txt":      "Кот\nhttps://ru.wikipedia.org/wiki/Кот\n",
		"dict.tsv":           "кот\tкот\tNOUN\nспит\tспать\tVERB\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	configPath = filepath.Join(dir, "pedantle.yaml")
	cfg := "corpus:\n" +
		"  corpus_path: " + filepath.Join(dir, "corpus_lemmas.json") + "\n" +
		"  titles_path: " + filepath.Join(dir, "titles_lemmas.json") + "\n" +
		"  links_path: " + filepath.Join(dir, "all_links.txt") + "\n" +
		"analyzer:\n  dictionary_path: " + filepath.Join(dir, "dict.tsv") + "\n" +
		"similarity:\n  mode: lexical\n" +
		"log:\n  level: error\n"
	require.NoError(t, os.WriteFile(configPath, []byte(cfg), 0o600))
	return dir, configPath
}

func TestCompileCommand_SQLite(t *testing.T) {
	dir, configPath := writeCorpus(t)
	out := filepath.Join(dir, "corpus.sqlite")

	root := newRootCommand()
	root.SetArgs([]string{"compile", "--config", configPath, "--format", "sqlite", "--out", out})
	require.NoError(t, root.ExecuteContext(context.Background()))

	cs, err := store.LoadSQLite(context.Background(), out)
	require.NoError(t, err)
	require.Equal(t, 1, cs.Count())

	rec, err := cs.Record(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"кот", " ", "спать", "."}, rec.Article.Lemmas)
}

func TestCompileCommand_Gob(t *testing.T) {
	dir, configPath := writeCorpus(t)
	out := filepath.Join(dir, "corpus.gob")

	root := newRootCommand()
	root.SetArgs([]string{"compile", "--config", configPath, "--out", out})
	require.NoError(t, root.ExecuteContext(context.Background()))

	cs, err := store.LoadSnapshot(out)
	require.NoError(t, err)
	assert.Equal(t, 1, cs.Count())
}

func TestCompileCommand_UnknownFormat(t *testing.T) {
	_, configPath := writeCorpus(t)

	root := newRootCommand()
	root.SetArgs([]string{"compile", "--config", configPath, "--format", "xml"})
	assert.Error(t, root.ExecuteContext(context.Background()))
}

func TestBuildMatcher_Lexical(t *testing.T) {
	_, configPath := writeCorpus(t)
	settings, err := config.Load(configPath)
	require.NoError(t, err)

	matcher, err := buildMatcher(settings)
	require.NoError(t, err)
	assert.Equal(t, []string{"спит", "спать"}, matcher.GuessForms("Спит"))
	assert.Equal(t, settings.Threshold, matcher.Threshold())
}

func TestBuildMatcher_RequiresDictionary(t *testing.T) {
	_, configPath := writeCorpus(t)
	settings, err := config.Load(configPath)
	require.NoError(t, err)

	settings.Analyzer.DictionaryPath = ""
	_, err = buildMatcher(settings)
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestBuildMatcher_MissingDictionaryFile(t *testing.T) {
	dir, configPath := writeCorpus(t)
	settings, err := config.Load(configPath)
	require.NoError(t, err)

	settings.Analyzer.DictionaryPath = filepath.Join(dir, "absent.tsv")
	_, err = buildMatcher(settings)
	assert.Error(t, err)
}
