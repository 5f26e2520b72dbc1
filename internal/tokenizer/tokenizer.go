package tokenizer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// tokenRegex matches a maximal run of word characters or a maximal run of non-word characters.
// Word characters are letters, combining marks, digits and underscore in any script.
var tokenRegex = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+|[^\p{L}\p{M}\p{N}_]+`)

// Tokenize splits text into alternating word and non-word runs.
// Concatenating the result reproduces text exactly; no token is empty.
func Tokenize(text string) []string {
	tokens := tokenRegex.FindAllString(text, -1)
	if tokens == nil {
		return make([]string, 0) // Initialize as empty slice, not nil
	}
	return tokens
}

// IsWord reports whether token contains at least one word character.
// Tokens produced by Tokenize are either entirely word characters or entirely not.
func IsWord(token string) bool {
	for _, r := range token {
		if isWordRune(r) {
			return true
		}
	}
	return false
}

// IsAlpha reports whether the trimmed token is non-empty and made only of letters.
func IsAlpha(token string) bool {
	token = strings.TrimSpace(token)
	if token == "" {
		return false
	}
	for _, r := range token {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// CountWords returns the number of word tokens in tokens.
func CountWords(tokens []string) int {
	n := 0
	for _, t := range tokens {
		if IsWord(t) {
			n++
		}
	}
	return n
}

// Fold returns the caseless form of s used for every case-insensitive comparison.
// A new caser is created per call since casers are not safe for concurrent use.
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsNumber(r) || unicode.IsMark(r)
}
