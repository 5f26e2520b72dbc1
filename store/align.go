package store

import (
	"github.com/mariaschitik/ru-pedantle/internal/errors"
	"github.com/mariaschitik/ru-pedantle/internal/tokenizer"
)

// AlignLemmas returns lemmas index-aligned 1:1 with words.
// Lemma lists that already match the token count are returned as is. Lists that
// cover only the word tokens are expanded, giving every non-word token an
// identity lemma. Anything else is a MisalignedArticleError.
func AlignLemmas(articleIndex int, words, lemmas []string) ([]string, error) {
	if len(lemmas) == len(words) {
		return lemmas, nil
	}

	wordTokens := tokenizer.CountWords(words)
	if len(lemmas) != wordTokens {
		return nil, errors.NewMisalignedArticleError(articleIndex, len(words), wordTokens, len(lemmas))
	}

	aligned := make([]string, len(words))
	next := 0
	for i, w := range words {
		if tokenizer.IsWord(w) {
			aligned[i] = lemmas[next]
			next++
		} else {
			aligned[i] = w
		}
	}
	return aligned, nil
}
