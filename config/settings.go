// Package config provides configuration structures for the game.
// It defines corpus locations, analyzer and similarity options, and server settings.
package config

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Corpus formats accepted by CorpusSettings.Format.
const (
	FormatJSON     = "json"
	FormatSQLite   = "sqlite"
	FormatSnapshot = "snapshot"
)

// Similarity modes accepted by SimilaritySettings.Mode.
const (
	SimilarityVectors = "vectors"
	SimilarityLexical = "lexical"
)

// CorpusSettings locates the playable articles.
type CorpusSettings struct {
	Format       string `mapstructure:"format" json:"format"`               // "json", "sqlite" or "snapshot"
	CorpusPath   string `mapstructure:"corpus_path" json:"corpus_path"`     // Article bodies with lemmas (JSON)
	TitlesPath   string `mapstructure:"titles_path" json:"titles_path"`     // Titles with lemmas (JSON)
	LinksPath    string `mapstructure:"links_path" json:"links_path"`       // Alternating title/link lines
	SQLitePath   string `mapstructure:"sqlite_path" json:"sqlite_path"`     // Compiled SQLite corpus
	SnapshotPath string `mapstructure:"snapshot_path" json:"snapshot_path"` // Compiled gob snapshot
}

// AnalyzerSettings configures morphological analysis.
type AnalyzerSettings struct {
	DictionaryPath string `mapstructure:"dictionary_path" json:"dictionary_path"` // TSV lexicon: surface, lemma, category
}

// SimilaritySettings configures the similarity oracle.
type SimilaritySettings struct {
	Mode        string `mapstructure:"mode" json:"mode"`                 // "vectors" or "lexical"
	VectorsPath string `mapstructure:"vectors_path" json:"vectors_path"` // word2vec text model
}

// LogSettings configures logging.
type LogSettings struct {
	Level  string `mapstructure:"level" json:"level"`
	Pretty bool   `mapstructure:"pretty" json:"pretty"`
}

// ServerSettings configures the HTTP API.
type ServerSettings struct {
	Port         string        `mapstructure:"port" json:"port"`
	GameTTL      time.Duration `mapstructure:"game_ttl" json:"game_ttl"`             // Idle games older than this are dropped
	MaxBodyBytes int64         `mapstructure:"max_body_bytes" json:"max_body_bytes"` // Request body limit
}

// Settings contains every configuration option of the game.
type Settings struct {
	Threshold  float64            `mapstructure:"threshold" json:"threshold"` // Approximate matches must score strictly above this
	MaskChar   string             `mapstructure:"mask_char" json:"mask_char"` // Single character replacing each hidden letter
	Corpus     CorpusSettings     `mapstructure:"corpus" json:"corpus"`
	Analyzer   AnalyzerSettings   `mapstructure:"analyzer" json:"analyzer"`
	Similarity SimilaritySettings `mapstructure:"similarity" json:"similarity"`
	Log        LogSettings        `mapstructure:"log" json:"log"`
	Server     ServerSettings     `mapstructure:"server" json:"server"`
}

// Default values.
const (
	DefaultThreshold    = 0.3
	DefaultMaskChar     = "_"
	DefaultPort         = "8080"
	DefaultGameTTL      = 30 * time.Minute
	DefaultMaxBodyBytes = 1 << 20
)

// DefaultDictionaryPath is the lexicon looked up when none is configured.
const DefaultDictionaryPath = "dictionary.tsv"

// ApplyDefaults fills in every unset option.
// Threshold is left alone because 0 is a meaningful value; Load defaults it.
func (s *Settings) ApplyDefaults() {
	if s.MaskChar == "" {
		s.MaskChar = DefaultMaskChar
	}
	if s.Corpus.Format == "" {
		s.Corpus.Format = FormatJSON
	}
	if s.Corpus.CorpusPath == "" {
		s.Corpus.CorpusPath = "corpus_lemmas.json"
	}
	if s.Corpus.TitlesPath == "" {
		s.Corpus.TitlesPath = "titles_lemmas.json"
	}
	if s.Corpus.LinksPath == "" {
		s.Corpus.LinksPath = "all_links.txt"
	}
	if s.Corpus.SQLitePath == "" {
		s.Corpus.SQLitePath = "corpus.sqlite"
	}
	if s.Corpus.SnapshotPath == "" {
		s.Corpus.SnapshotPath = "corpus.gob"
	}
	if s.Analyzer.DictionaryPath == "" {
		s.Analyzer.DictionaryPath = DefaultDictionaryPath
	}
	if s.Similarity.Mode == "" {
		s.Similarity.Mode = SimilarityVectors
	}
	if s.Similarity.VectorsPath == "" {
		s.Similarity.VectorsPath = "model.txt"
	}
	if s.Log.Level == "" {
		s.Log.Level = "info"
	}
	if s.Server.Port == "" {
		s.Server.Port = DefaultPort
	}
	if s.Server.GameTTL == 0 {
		s.Server.GameTTL = DefaultGameTTL
	}
	if s.Server.MaxBodyBytes == 0 {
		s.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}
}

// Validate returns one message per invalid option; an empty result means the settings are usable.
func (s *Settings) Validate() []string {
	var problems []string

	if s.Threshold < -1 || s.Threshold >= 1 {
		problems = append(problems, fmt.Sprintf("threshold %v must be in [-1, 1)", s.Threshold))
	}
	if utf8.RuneCountInString(s.MaskChar) != 1 {
		problems = append(problems, "mask_char '"+s.MaskChar+"' must be exactly one character")
	}

	switch s.Corpus.Format {
	case FormatJSON:
		problems = append(problems, requirePath("corpus.corpus_path", s.Corpus.CorpusPath)...)
		problems = append(problems, requirePath("corpus.titles_path", s.Corpus.TitlesPath)...)
		problems = append(problems, requirePath("corpus.links_path", s.Corpus.LinksPath)...)
	case FormatSQLite:
		problems = append(problems, requirePath("corpus.sqlite_path", s.Corpus.SQLitePath)...)
	case FormatSnapshot:
		problems = append(problems, requirePath("corpus.snapshot_path", s.Corpus.SnapshotPath)...)
	default:
		problems = append(problems, "Invalid corpus.format '"+s.Corpus.Format+"' (must be 'json', 'sqlite' or 'snapshot')")
	}

	problems = append(problems, requirePath("analyzer.dictionary_path", s.Analyzer.DictionaryPath)...)

	switch s.Similarity.Mode {
	case SimilarityVectors:
		problems = append(problems, requirePath("similarity.vectors_path", s.Similarity.VectorsPath)...)
	case SimilarityLexical:
	default:
		problems = append(problems, "Invalid similarity.mode '"+s.Similarity.Mode+"' (must be 'vectors' or 'lexical')")
	}

	if s.Server.GameTTL < 0 {
		problems = append(problems, "server.game_ttl cannot be negative")
	}
	if s.Server.MaxBodyBytes < 0 {
		problems = append(problems, "server.max_body_bytes cannot be negative")
	}

	return problems
}

// MaskRune returns the mask character as a rune.
func (s *Settings) MaskRune() rune {
	r, _ := utf8.DecodeRuneInString(s.MaskChar)
	return r
}

func requirePath(key, path string) []string {
	if strings.TrimSpace(path) == "" {
		return []string{key + " cannot be empty"}
	}
	return nil
}
