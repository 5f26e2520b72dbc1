package vectors

import (
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/mariaschitik/ru-pedantle/internal/errors"
	"github.com/mariaschitik/ru-pedantle/model"
)

// Lexical is a vocabulary-free oracle that scores keys by the spelling of their
// base forms. It is used when no vector model is configured.
// Scores fall in [0, 1] and are halved when the categories differ.
type Lexical struct {
	metric strutil.StringMetric
}

// NewLexical creates a Jaro-Winkler based oracle.
func NewLexical() *Lexical {
	return &Lexical{metric: metrics.NewJaroWinkler()}
}

// Contains implements services.SimilarityOracle; every key with a base form is known.
func (l *Lexical) Contains(key model.NormalizedKey) bool {
	return key.BaseForm != ""
}

// Similarity implements services.SimilarityOracle.
func (l *Lexical) Similarity(a, b model.NormalizedKey) (float64, error) {
	if !l.Contains(a) {
		return 0, errors.NewKeyNotFoundError(a.String())
	}
	if !l.Contains(b) {
		return 0, errors.NewKeyNotFoundError(b.String())
	}
	score := strutil.Similarity(a.BaseForm, b.BaseForm, l.metric)
	if a.Category != b.Category {
		score /= 2
	}
	return score, nil
}
