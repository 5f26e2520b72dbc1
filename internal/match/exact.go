// Package match resolves a guess against an article's body and title.
package match

import (
	"github.com/mariaschitik/ru-pedantle/index"
	"github.com/mariaschitik/ru-pedantle/internal/tokenizer"
	"github.com/mariaschitik/ru-pedantle/model"
)

// TitleContext is the tokenized title together with the best base form of each token.
type TitleContext struct {
	Tokens    []string
	BaseForms []string // Folded best base form per token, empty for non-word tokens
	Index     *index.InvertedIndex
}

// GuessForms returns the folded guess followed by every base form the analyzer
// proposes for it, without duplicates.
func (m *Matcher) GuessForms(guess string) []string {
	folded := tokenizer.Fold(guess)
	if folded == "" {
		return nil
	}
	forms := []string{folded}
	for _, f := range m.normalizer.BaseForms(guess) {
		if f != folded {
			forms = append(forms, f)
		}
	}
	return forms
}

// BuildBodyIndex indexes every token of the article under its surface form and its lemma.
func BuildBodyIndex(a model.Article) *index.InvertedIndex {
	ii := index.NewInvertedIndex()
	for i, word := range a.OriginalWords {
		lemma := word
		if i < len(a.Lemmas) {
			lemma = a.Lemmas[i]
		}
		ii.Add(i, word, lemma)
	}
	return ii
}

// BuildTitle tokenizes the title and indexes each word token under its surface form
// and its best base form. Words the analyzer does not know are their own base form.
func (m *Matcher) BuildTitle(text string) *TitleContext {
	tokens := tokenizer.Tokenize(text)
	tc := &TitleContext{
		Tokens:    tokens,
		BaseForms: make([]string, len(tokens)),
		Index:     index.NewInvertedIndex(),
	}
	for i, tok := range tokens {
		if !tokenizer.IsWord(tok) {
			continue
		}
		base, ok := m.normalizer.BestBaseForm(tok)
		if !ok {
			base = tokenizer.Fold(tok)
		}
		tc.BaseForms[i] = base
		tc.Index.Add(i, tok, base)
	}
	return tc
}

// Exact returns the sorted positions whose surface form or base form equals one of forms.
func Exact(forms []string, idx *index.InvertedIndex) []int {
	if len(forms) == 0 {
		return nil
	}
	return idx.Lookup(forms...)
}
