package model

// Article is the body of one playable entry.
// Lemmas is index-aligned 1:1 with OriginalWords; non-word tokens carry an
// identity lemma equal to the token itself.
type Article struct {
	OriginalWords []string `json:"original_words"`
	Lemmas        []string `json:"lemmas"`
}

// Text reconstructs the raw article text by concatenating its tokens.
func (a Article) Text() string {
	n := 0
	for _, w := range a.OriginalWords {
		n += len(w)
	}
	buf := make([]byte, 0, n)
	for _, w := range a.OriginalWords {
		buf = append(buf, w...)
	}
	return string(buf)
}

// Title is the hidden headline of an article. Every entry of Lemmas must be
// revealed inside the title for the round to be won.
type Title struct {
	Text   string   `json:"title"`
	Lemmas []string `json:"lemmas"`
}

// Link is the source URL of an article.
type Link string

// Record bundles everything needed to play one article.
type Record struct {
	Article Article `json:"article"`
	Title   Title   `json:"title"`
	Link    Link    `json:"link"`
}
