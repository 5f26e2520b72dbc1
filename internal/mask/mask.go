// Package mask renders token sequences with unrevealed words hidden.
package mask

import (
	"strings"
	"unicode/utf8"

	"github.com/mariaschitik/ru-pedantle/index"
	"github.com/mariaschitik/ru-pedantle/internal/tokenizer"
)

// DefaultChar is the mask used when none is configured.
const DefaultChar = '_'

// Render concatenates tokens, replacing every unrevealed word token with
// maskChar repeated once per rune. Non-word tokens are always shown verbatim.
func Render(tokens []string, revealed index.PositionSet, maskChar rune) string {
	var b strings.Builder
	for i, tok := range tokens {
		if !tokenizer.IsWord(tok) || revealed.Has(i) {
			b.WriteString(tok)
			continue
		}
		b.WriteString(strings.Repeat(string(maskChar), utf8.RuneCountInString(tok)))
	}
	return b.String()
}
