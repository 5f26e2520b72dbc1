package index

import "github.com/mariaschitik/ru-pedantle/internal/tokenizer"

// InvertedIndex maps a case-folded term to the positions of the tokens it identifies.
// A token is usually indexed under two terms: its surface form and its base form.
// It is built once per round and read-only afterwards.
type InvertedIndex struct {
	Index map[string]PostingList
}

// NewInvertedIndex creates an empty index.
func NewInvertedIndex() *InvertedIndex {
	return &InvertedIndex{Index: make(map[string]PostingList)}
}

// Add indexes the token at pos under every non-empty term (folded before insertion).
func (ii *InvertedIndex) Add(pos int, terms ...string) {
	for _, term := range terms {
		key := tokenizer.Fold(term)
		if key == "" {
			continue
		}
		ii.Index[key] = ii.Index[key].add(pos)
	}
}

// Lookup returns the sorted union of positions for all terms.
// Terms are folded the same way Add folds them.
func (ii *InvertedIndex) Lookup(terms ...string) []int {
	hits := make(PositionSet)
	for _, term := range terms {
		for _, pos := range ii.Index[tokenizer.Fold(term)] {
			hits[pos] = struct{}{}
		}
	}
	if len(hits) == 0 {
		return nil
	}
	return hits.Sorted()
}

// Terms returns the number of distinct terms in the index.
func (ii *InvertedIndex) Terms() int { return len(ii.Index) }
