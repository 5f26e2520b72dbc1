package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/mariaschitik/ru-pedantle/model"
)

const articlesSchema = `CREATE TABLE IF NOT EXISTS articles (
	id             INTEGER PRIMARY KEY,
	original_words TEXT NOT NULL,
	lemmas         TEXT NOT NULL,
	title          TEXT NOT NULL,
	title_lemmas   TEXT NOT NULL,
	link           TEXT NOT NULL
);`

// openSQLite opens (and creates if missing) a SQLite database file.
func openSQLite(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return db, nil
}

// SaveSQLite replaces the contents of the articles table at path with the store's records.
// Article ids are the 0-based record indexes.
func SaveSQLite(ctx context.Context, path string, cs *CorpusStore) (err error) {
	db, err := openSQLite(path)
	if err != nil {
		return err
	}
	defer closeDB(db, path)

	if _, err := db.ExecContext(ctx, articlesSchema); err != nil {
		return fmt.Errorf("create articles table: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM articles`); err != nil {
		return fmt.Errorf("clear articles: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO articles (id, original_words, lemmas, title, title_lemmas, link) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	cs.Mu.RLock()
	records := cs.Records
	cs.Mu.RUnlock()
	for i, rec := range records {
		words, lemmas, titleLemmas, encErr := encodeRecord(rec)
		if encErr != nil {
			err = fmt.Errorf("encode article %d: %w", i, encErr)
			return err
		}
		if _, err = stmt.ExecContext(ctx, i, words, lemmas, rec.Title.Text, titleLemmas, string(rec.Link)); err != nil {
			return fmt.Errorf("insert article %d: %w", i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	log.Info().Str("path", path).Int("articles", len(records)).Msg("saved corpus to sqlite")
	return nil
}

// LoadSQLite reads every article ordered by id. Lemma lists are aligned the same
// way the JSON loader aligns them.
func LoadSQLite(ctx context.Context, path string) (*CorpusStore, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("sqlite corpus %s: %w", path, err)
	}
	db, err := openSQLite(path)
	if err != nil {
		return nil, err
	}
	defer closeDB(db, path)

	rows, err := db.QueryContext(ctx,
		`SELECT original_words, lemmas, title, title_lemmas, link FROM articles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	records := make([]model.Record, 0)
	for rows.Next() {
		var words, lemmas, title, titleLemmas, link string
		if err := rows.Scan(&words, &lemmas, &title, &titleLemmas, &link); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		rec, err := decodeRecord(len(records), words, lemmas, title, titleLemmas, link)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}

	log.Info().Str("path", path).Int("articles", len(records)).Msg("loaded sqlite corpus")
	return NewCorpusStore(records), nil
}

func encodeRecord(rec model.Record) (words, lemmas, titleLemmas string, err error) {
	w, err := json.Marshal(rec.Article.OriginalWords)
	if err != nil {
		return "", "", "", err
	}
	l, err := json.Marshal(rec.Article.Lemmas)
	if err != nil {
		return "", "", "", err
	}
	tl, err := json.Marshal(rec.Title.Lemmas)
	if err != nil {
		return "", "", "", err
	}
	return string(w), string(l), string(tl), nil
}

func decodeRecord(i int, words, lemmas, title, titleLemmas, link string) (model.Record, error) {
	var rec model.Record
	if err := json.Unmarshal([]byte(words), &rec.Article.OriginalWords); err != nil {
		return rec, fmt.Errorf("article %d original_words: %w", i, err)
	}
	var rawLemmas []string
	if err := json.Unmarshal([]byte(lemmas), &rawLemmas); err != nil {
		return rec, fmt.Errorf("article %d lemmas: %w", i, err)
	}
	aligned, err := AlignLemmas(i, rec.Article.OriginalWords, rawLemmas)
	if err != nil {
		return rec, err
	}
	rec.Article.Lemmas = aligned
	if err := json.Unmarshal([]byte(titleLemmas), &rec.Title.Lemmas); err != nil {
		return rec, fmt.Errorf("article %d title_lemmas: %w", i, err)
	}
	rec.Title.Text = title
	rec.Link = model.Link(link)
	return rec, nil
}

func closeDB(db *sql.DB, path string) {
	if err := db.Close(); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to close sqlite database")
	}
}
