package match

import (
	"github.com/rs/zerolog/log"

	"github.com/mariaschitik/ru-pedantle/internal/morph"
	"github.com/mariaschitik/ru-pedantle/internal/tokenizer"
	"github.com/mariaschitik/ru-pedantle/model"
	"github.com/mariaschitik/ru-pedantle/services"
)

// DefaultThreshold is the similarity a pairing must exceed to count as close.
const DefaultThreshold = 0.3

// Matcher bundles the collaborators needed to resolve guesses.
// It holds no per-round state and may be shared between rounds.
type Matcher struct {
	normalizer *morph.Normalizer
	oracle     services.SimilarityOracle
	threshold  float64
}

// NewMatcher creates a matcher. threshold is the exclusive floor for approximate matches.
func NewMatcher(normalizer *morph.Normalizer, oracle services.SimilarityOracle, threshold float64) *Matcher {
	return &Matcher{normalizer: normalizer, oracle: oracle, threshold: threshold}
}

// Threshold returns the configured approximate-match floor.
func (m *Matcher) Threshold() float64 { return m.threshold }

// BodyKey is a body position whose lemma resolves to a key known to the oracle.
type BodyKey struct {
	Index int
	Lemma string
	Word  string
	Key   model.NormalizedKey
}

// PrepareBody resolves the best key of every word lemma once, keeping only
// positions the oracle can score. Positions are kept in text order.
func (m *Matcher) PrepareBody(a model.Article) []BodyKey {
	keys := make([]BodyKey, 0, len(a.Lemmas))
	for i, lemma := range a.Lemmas {
		if i >= len(a.OriginalWords) || !tokenizer.IsWord(a.OriginalWords[i]) {
			continue
		}
		key, ok := m.normalizer.BestKeyFor(lemma)
		if !ok || !m.oracle.Contains(key) {
			continue
		}
		keys = append(keys, BodyKey{Index: i, Lemma: lemma, Word: a.OriginalWords[i], Key: key})
	}
	return keys
}

// Nearest finds the body word most similar to guess using the matcher's threshold.
func (m *Matcher) Nearest(guess string, body []BodyKey) (model.Nearest, bool) {
	return m.NearestAbove(guess, body, m.threshold)
}

// NearestAbove finds the body word most similar to guess with a score strictly
// greater than threshold. Candidate keys are tried in analyzer rank order and
// body keys in text order; on equal scores the first pair found wins.
func (m *Matcher) NearestAbove(guess string, body []BodyKey, threshold float64) (model.Nearest, bool) {
	candidates := m.normalizer.AllKeys(guess)
	log.Debug().Str("guess", guess).Interface("keys", candidates).Msg("candidate keys for guess")
	if len(candidates) == 0 {
		return model.Nearest{}, false
	}

	best := threshold
	var found *model.Nearest
	for _, candidate := range candidates {
		if !m.oracle.Contains(candidate) {
			continue
		}
		for _, bk := range body {
			sim, err := m.oracle.Similarity(candidate, bk.Key)
			if err != nil {
				continue
			}
			if sim > best {
				best = sim
				found = &model.Nearest{Index: bk.Index, Lemma: bk.Lemma, Word: bk.Word, Score: sim}
			}
		}
	}

	if found == nil {
		log.Debug().Str("guess", guess).Float64("threshold", threshold).Msg("no close words above threshold")
		return model.Nearest{}, false
	}
	log.Debug().Str("guess", guess).Str("lemma", found.Lemma).Float64("score", found.Score).Msg("found close word")
	return *found, true
}
