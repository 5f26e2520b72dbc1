package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mariaschitik/ru-pedantle/config"
	"github.com/mariaschitik/ru-pedantle/internal/errors"
	"github.com/mariaschitik/ru-pedantle/internal/match"
	"github.com/mariaschitik/ru-pedantle/internal/morph"
	"github.com/mariaschitik/ru-pedantle/internal/vectors"
	"github.com/mariaschitik/ru-pedantle/services"
	"github.com/mariaschitik/ru-pedantle/store"
)

// loadCorpus opens the corpus in the configured format.
func loadCorpus(ctx context.Context, s *config.Settings) (*store.CorpusStore, error) {
	switch s.Corpus.Format {
	case config.FormatSQLite:
		return store.LoadSQLite(ctx, s.Corpus.SQLitePath)
	case config.FormatSnapshot:
		return store.LoadSnapshot(s.Corpus.SnapshotPath)
	default:
		return loadJSONCorpus(s)
	}
}

func loadJSONCorpus(s *config.Settings) (*store.CorpusStore, error) {
	return store.LoadJSON(store.JSONPaths{
		Corpus: s.Corpus.CorpusPath,
		Titles: s.Corpus.TitlesPath,
		Links:  s.Corpus.LinksPath,
	})
}

// loadAnalyzer reads the dictionary. Without one every word is its own base form.
func loadAnalyzer(s *config.Settings) (services.Analyzer, error) {
	if s.Analyzer.DictionaryPath == "" {
		return nil, errors.NewValidationError("analyzer.dictionary_path", "a morphological dictionary is required")
	}
	return morph.LoadDictionaryFile(s.Analyzer.DictionaryPath)
}

func loadOracle(s *config.Settings) (services.SimilarityOracle, error) {
	if s.Similarity.Mode == config.SimilarityLexical {
		log.Info().Msg("using lexical similarity")
		return vectors.NewLexical(), nil
	}
	return vectors.LoadWord2VecTextFile(s.Similarity.VectorsPath)
}

// buildMatcher constructs the analyzer and oracle once for the whole process.
func buildMatcher(s *config.Settings) (*match.Matcher, error) {
	analyzer, err := loadAnalyzer(s)
	if err != nil {
		return nil, fmt.Errorf("failed to load analyzer: %w", err)
	}
	oracle, err := loadOracle(s)
	if err != nil {
		return nil, fmt.Errorf("failed to load similarity model: %w", err)
	}
	return match.NewMatcher(morph.NewNormalizer(analyzer), oracle, s.Threshold), nil
}
