package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mariaschitik/ru-pedantle/model"
)

// corpusEntry mirrors one element of corpus_lemmas.json.
type corpusEntry struct {
	OriginalWords []string `json:"original_words"`
	Lemmas        []string `json:"lemmas"`
}

// titleEntry mirrors one element of titles_lemmas.json.
type titleEntry struct {
	Title  string   `json:"title"`
	Lemmas []string `json:"lemmas"`
}

// JSONPaths locates the three files of a JSON corpus.
type JSONPaths struct {
	Corpus string
	Titles string
	Links  string
}

// LoadJSON reads the article, title and link files and joins them by position.
// When the files disagree on the number of articles, only the common prefix is kept.
func LoadJSON(paths JSONPaths) (*CorpusStore, error) {
	var articles []corpusEntry
	if err := readJSON(paths.Corpus, &articles); err != nil {
		return nil, err
	}
	var titles []titleEntry
	if err := readJSON(paths.Titles, &titles); err != nil {
		return nil, err
	}
	_, links, err := readLinks(paths.Links)
	if err != nil {
		return nil, err
	}

	n := min(len(articles), len(titles), len(links))
	if n != len(articles) || n != len(titles) || n != len(links) {
		log.Warn().Int("articles", len(articles)).Int("titles", len(titles)).Int("links", len(links)).
			Int("kept", n).Msg("corpus files disagree on article count")
	}

	records := make([]model.Record, n)
	for i := 0; i < n; i++ {
		lemmas, err := AlignLemmas(i, articles[i].OriginalWords, articles[i].Lemmas)
		if err != nil {
			return nil, fmt.Errorf("corpus %s: %w", paths.Corpus, err)
		}
		records[i] = model.Record{
			Article: model.Article{OriginalWords: articles[i].OriginalWords, Lemmas: lemmas},
			Title:   model.Title{Text: titles[i].Title, Lemmas: titles[i].Lemmas},
			Link:    model.Link(links[i]),
		}
	}

	log.Info().Int("articles", n).Str("corpus", paths.Corpus).Msg("loaded JSON corpus")
	return NewCorpusStore(records), nil
}

func readJSON(path string, target interface{}) error {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from operator configuration
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// readLinks parses a file of non-empty lines alternating article name and URL.
func readLinks(path string) (names, links []string, err error) {
	file, err := os.Open(path) // #nosec G304 -- path comes from operator configuration
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Str("path", path).Msg("failed to close links file")
		}
	}()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	for i := 0; i+1 < len(lines); i += 2 {
		names = append(names, lines[i])
		links = append(links, lines[i+1])
	}
	return names, links, nil
}
