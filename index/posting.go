package index

import "sort"

// PostingList is the sorted, duplicate-free list of token positions where a term occurs.
type PostingList []int

// add inserts pos keeping the list sorted and unique.
func (pl PostingList) add(pos int) PostingList {
	i := sort.SearchInts(pl, pos)
	if i < len(pl) && pl[i] == pos {
		return pl
	}
	pl = append(pl, 0)
	copy(pl[i+1:], pl[i:])
	pl[i] = pos
	return pl
}

// PositionSet is a set of token positions within one token sequence.
// The zero value is not usable; create sets with NewPositionSet.
type PositionSet map[int]struct{}

// NewPositionSet creates a set holding the given positions.
func NewPositionSet(positions ...int) PositionSet {
	s := make(PositionSet, len(positions))
	s.Add(positions...)
	return s
}

// Add inserts positions into the set.
func (s PositionSet) Add(positions ...int) {
	for _, p := range positions {
		s[p] = struct{}{}
	}
}

// Has reports whether pos is in the set.
func (s PositionSet) Has(pos int) bool {
	_, ok := s[pos]
	return ok
}

// Len returns the number of positions in the set.
func (s PositionSet) Len() int { return len(s) }

// Sorted returns the positions in ascending order.
func (s PositionSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}

// Clone returns an independent copy of the set.
func (s PositionSet) Clone() PositionSet {
	c := make(PositionSet, len(s))
	for p := range s {
		c[p] = struct{}{}
	}
	return c
}
