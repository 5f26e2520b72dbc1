package model

// MatchKind tags the outcome of resolving one guess.
type MatchKind string

const (
	MatchNone        MatchKind = "none"
	MatchExactBody   MatchKind = "exact_body"
	MatchExactTitle  MatchKind = "exact_title"
	MatchExactBoth   MatchKind = "exact_both"
	MatchApproximate MatchKind = "approximate"
)

// Nearest describes the best approximate pairing for a guess that matched nothing exactly.
type Nearest struct {
	Index int     `json:"index"` // Position in the article's token sequence
	Lemma string  `json:"lemma"`
	Word  string  `json:"word"` // Surface token at Index
	Score float64 `json:"score"`
}

// MatchResult is the outcome of a single guess.
// Body and Title hold the newly matched positions for exact kinds;
// Nearest is set only for MatchApproximate.
type MatchResult struct {
	Kind    MatchKind `json:"kind"`
	Body    []int     `json:"body,omitempty"`
	Title   []int     `json:"title,omitempty"`
	Nearest *Nearest  `json:"nearest,omitempty"`
}

// IsExact reports whether the guess revealed anything.
func (r MatchResult) IsExact() bool {
	switch r.Kind {
	case MatchExactBody, MatchExactTitle, MatchExactBoth:
		return true
	}
	return false
}

// ExactResult builds the exact variant that fits the given position lists,
// or a MatchNone result when both are empty.
func ExactResult(body, title []int) MatchResult {
	switch {
	case len(body) > 0 && len(title) > 0:
		return MatchResult{Kind: MatchExactBoth, Body: body, Title: title}
	case len(body) > 0:
		return MatchResult{Kind: MatchExactBody, Body: body}
	case len(title) > 0:
		return MatchResult{Kind: MatchExactTitle, Title: title}
	}
	return MatchResult{Kind: MatchNone}
}
