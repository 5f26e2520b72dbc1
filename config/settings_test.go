package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariaschitik/ru-pedantle/internal/errors"
)

func TestApplyDefaults(t *testing.T) {
	var s Settings
	s.ApplyDefaults()

	assert.Zero(t, s.Threshold, "threshold defaults are applied by Load")
	assert.Equal(t, '_', s.MaskRune())
	assert.Equal(t, FormatJSON, s.Corpus.Format)
	assert.Equal(t, "corpus_lemmas.json", s.Corpus.CorpusPath)
	assert.Equal(t, "titles_lemmas.json", s.Corpus.TitlesPath)
	assert.Equal(t, "all_links.txt", s.Corpus.LinksPath)
	assert.Equal(t, DefaultDictionaryPath, s.Analyzer.DictionaryPath)
	assert.Equal(t, SimilarityVectors, s.Similarity.Mode)
	assert.Equal(t, "info", s.Log.Level)
	assert.Equal(t, DefaultPort, s.Server.Port)
	assert.Equal(t, DefaultGameTTL, s.Server.GameTTL)
	assert.Empty(t, s.Validate())
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	s := Settings{Threshold: 0.5, MaskChar: "*", Server: ServerSettings{Port: "9000"}}
	s.ApplyDefaults()

	assert.Equal(t, 0.5, s.Threshold)
	assert.Equal(t, '*', s.MaskRune())
	assert.Equal(t, "9000", s.Server.Port)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name           string
		mutate         func(*Settings)
		expectedErrors int
	}{
		{"defaults are valid", func(*Settings) {}, 0},
		{"threshold too high", func(s *Settings) { s.Threshold = 1 }, 1},
		{"threshold too low", func(s *Settings) { s.Threshold = -1.5 }, 1},
		{"multi-character mask", func(s *Settings) { s.MaskChar = "##" }, 1},
		{"cyrillic mask is one character", func(s *Settings) { s.MaskChar = "ж" }, 0},
		{"unknown corpus format", func(s *Settings) { s.Corpus.Format = "xml" }, 1},
		{"sqlite needs a path", func(s *Settings) {
			s.Corpus.Format = FormatSQLite
			s.Corpus.SQLitePath = " "
		}, 1},
		{"lexical needs no vectors", func(s *Settings) {
			s.Similarity.Mode = SimilarityLexical
			s.Similarity.VectorsPath = ""
		}, 0},
		{"analyzer needs a dictionary", func(s *Settings) { s.Analyzer.DictionaryPath = " " }, 1},
		{"lexical still needs a dictionary", func(s *Settings) {
			s.Similarity.Mode = SimilarityLexical
			s.Analyzer.DictionaryPath = "\t"
		}, 1},
		{"zero threshold", func(s *Settings) { s.Threshold = 0 }, 0},
		{"unknown similarity mode", func(s *Settings) { s.Similarity.Mode = "bert" }, 1},
		{"negative ttl", func(s *Settings) { s.Server.GameTTL = -time.Second }, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Settings
			s.ApplyDefaults()
			tt.mutate(&s)
			problems := s.Validate()
			assert.Len(t, problems, tt.expectedErrors, "problems: %v", problems)
		})
	}
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pedantle.yaml")
	content := `threshold: 0.45
corpus:
  format: sqlite
  sqlite_path: data/corpus.sqlite
similarity:
  mode: lexical
server:
  game_ttl: 5m
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("PEDANTLE_SERVER_PORT", "9090")

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.45, s.Threshold)
	assert.Equal(t, FormatSQLite, s.Corpus.Format)
	assert.Equal(t, "data/corpus.sqlite", s.Corpus.SQLitePath)
	assert.Equal(t, SimilarityLexical, s.Similarity.Mode)
	assert.Equal(t, 5*time.Minute, s.Server.GameTTL)
	assert.Equal(t, "9090", s.Server.Port)
	assert.Equal(t, DefaultMaskChar, s.MaskChar)
}

func TestLoad_WithoutFile(t *testing.T) {
	t.Setenv("PEDANTLE_MASK_CHAR", "*")

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "*", s.MaskChar)
	assert.Equal(t, FormatJSON, s.Corpus.Format)
	assert.Equal(t, DefaultThreshold, s.Threshold)
	assert.Equal(t, DefaultDictionaryPath, s.Analyzer.DictionaryPath)
}

func TestLoad_ExplicitZeroThreshold(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pedantle.yaml")
	require.NoError(t, os.WriteFile(path, []byte("threshold: 0\n"), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Zero(t, s.Threshold)
}

func TestLoad_ZeroThresholdFromEnvironment(t *testing.T) {
	t.Setenv("PEDANTLE_THRESHOLD", "0")

	s, err := Load("")
	require.NoError(t, err)
	assert.Zero(t, s.Threshold)
}

func TestLoad_InvalidSettings(t *testing.T) {
	t.Setenv("PEDANTLE_CORPUS_FORMAT", "xml")

	_, err := Load("")
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
