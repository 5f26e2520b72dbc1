// Package morph turns surface words into normalized similarity keys
// through a pluggable morphological analyzer.
package morph

import (
	"github.com/mariaschitik/ru-pedantle/internal/tokenizer"
	"github.com/mariaschitik/ru-pedantle/model"
	"github.com/mariaschitik/ru-pedantle/services"
)

// Normalizer adapts a services.Analyzer to the key scheme used by the matchers.
type Normalizer struct {
	analyzer services.Analyzer
}

// NewNormalizer creates a normalizer over analyzer.
func NewNormalizer(analyzer services.Analyzer) *Normalizer {
	return &Normalizer{analyzer: analyzer}
}

// AllKeys returns one key per fully resolved analysis of word, in analyzer rank order,
// without duplicates. Analyses missing a base form or category are dropped.
// An empty result means the word cannot be graded.
func (n *Normalizer) AllKeys(word string) []model.NormalizedKey {
	analyses := n.analyzer.Analyze(word)
	keys := make([]model.NormalizedKey, 0, len(analyses))
	seen := make(map[model.NormalizedKey]struct{}, len(analyses))
	for _, a := range analyses {
		if !a.Resolved() {
			continue
		}
		key := newKey(a)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys
}

// BestKeyFor returns the key of the top-ranked analysis only.
// It reports false when there is no analysis or the top one lacks a category.
func (n *Normalizer) BestKeyFor(word string) (model.NormalizedKey, bool) {
	analyses := n.analyzer.Analyze(word)
	if len(analyses) == 0 || !analyses[0].Resolved() {
		return model.NormalizedKey{}, false
	}
	return newKey(analyses[0]), true
}

// BestBaseForm returns the case-folded base form of the top-ranked analysis,
// whatever its category.
func (n *Normalizer) BestBaseForm(word string) (string, bool) {
	analyses := n.analyzer.Analyze(word)
	if len(analyses) == 0 || analyses[0].BaseForm == "" {
		return "", false
	}
	return tokenizer.Fold(analyses[0].BaseForm), true
}

// BaseForms returns every distinct case-folded base form the analyzer proposes for word.
func (n *Normalizer) BaseForms(word string) []string {
	analyses := n.analyzer.Analyze(word)
	forms := make([]string, 0, len(analyses))
	seen := make(map[string]struct{}, len(analyses))
	for _, a := range analyses {
		if a.BaseForm == "" {
			continue
		}
		f := tokenizer.Fold(a.BaseForm)
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		forms = append(forms, f)
	}
	return forms
}

func newKey(a model.Analysis) model.NormalizedKey {
	return model.NormalizedKey{BaseForm: tokenizer.Fold(a.BaseForm), Category: a.Category}
}
