package morph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mariaschitik/ru-pedantle/internal/tokenizer"
	"github.com/mariaschitik/ru-pedantle/model"
)

// Dictionary is a lexicon-backed analyzer.
// Each surface form maps to its analyses in rank order; lookups are case-insensitive.
type Dictionary struct {
	entries map[string][]model.Analysis
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{entries: make(map[string][]model.Analysis)}
}

// Add appends an analysis for surface with the lowest rank so far.
// Repeated analyses for the same surface are ignored.
func (d *Dictionary) Add(surface string, a model.Analysis) {
	key := tokenizer.Fold(surface)
	if key == "" {
		return
	}
	for _, existing := range d.entries[key] {
		if existing == a {
			return
		}
	}
	d.entries[key] = append(d.entries[key], a)
}

// Analyze implements services.Analyzer.
func (d *Dictionary) Analyze(word string) []model.Analysis {
	found := d.entries[tokenizer.Fold(word)]
	if len(found) == 0 {
		return nil
	}
	out := make([]model.Analysis, len(found))
	copy(out, found)
	return out
}

// Len returns the number of distinct surface forms.
func (d *Dictionary) Len() int { return len(d.entries) }

// LoadDictionary reads a tab-separated lexicon:
//
//	surface<TAB>base form[<TAB>category]
//
// Lines are ranked in file order per surface. Blank lines and lines starting
// with '#' are skipped. A base form that never appears as a surface gets every
// distinct analysis naming it, in file order, so that lemmas can be analyzed too.
func LoadDictionary(r io.Reader) (*Dictionary, error) {
	d := NewDictionary()
	var lemmas []model.Analysis
	surfaces := make(map[string]struct{})

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected at least 2 tab-separated fields, got %d", lineNo, len(fields))
		}
		a := model.Analysis{BaseForm: strings.TrimSpace(fields[1])}
		if len(fields) > 2 {
			a.Category = strings.TrimSpace(fields[2])
		}
		d.Add(fields[0], a)
		surfaces[tokenizer.Fold(fields[0])] = struct{}{}
		if a.BaseForm != "" {
			lemmas = append(lemmas, a)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}

	for _, a := range lemmas {
		if _, ok := surfaces[tokenizer.Fold(a.BaseForm)]; !ok {
			d.Add(a.BaseForm, a)
		}
	}
	return d, nil
}

// LoadDictionaryFile opens path and parses it with LoadDictionary.
func LoadDictionaryFile(path string) (*Dictionary, error) {
	file, err := os.Open(path) // #nosec G304 -- path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Str("path", path).Msg("failed to close dictionary file")
		}
	}()

	d, err := LoadDictionary(file)
	if err != nil {
		return nil, fmt.Errorf("dictionary %s: %w", path, err)
	}
	log.Info().Str("path", path).Int("surfaces", d.Len()).Msg("loaded morphological dictionary")
	return d, nil
}
