package model

// Analysis is one reading of a surface word produced by a morphological analyzer.
// An empty BaseForm or Category means the analyzer could not resolve that field.
type Analysis struct {
	BaseForm string `json:"base_form"`
	Category string `json:"category"`
}

// Resolved reports whether both fields of the analysis are present.
func (a Analysis) Resolved() bool {
	return a.BaseForm != "" && a.Category != ""
}

// NormalizedKey identifies a word in the similarity model: base form plus grammatical category.
// Keys compare by value.
type NormalizedKey struct {
	BaseForm string `json:"base_form"`
	Category string `json:"category"`
}

// String renders the key the way word2vec models trained on tagged lemmas spell it,
// e.g. "кот_NOUN".
func (k NormalizedKey) String() string {
	return k.BaseForm + "_" + k.Category
}
