package store

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mariaschitik/ru-pedantle/internal/persistence"
)

// SaveSnapshot writes the store as a gob snapshot at path.
func SaveSnapshot(path string, cs *CorpusStore) error {
	if err := persistence.SaveGob(path, cs); err != nil {
		return fmt.Errorf("failed to save corpus snapshot: %w", err)
	}
	log.Info().Str("path", path).Int("articles", cs.Count()).Msg("saved corpus snapshot")
	return nil
}

// LoadSnapshot reads a gob snapshot written by SaveSnapshot.
// A missing file is reported as os.ErrNotExist.
func LoadSnapshot(path string) (*CorpusStore, error) {
	cs := &CorpusStore{}
	if err := persistence.LoadGob(path, cs); err != nil {
		return nil, err
	}
	log.Info().Str("path", path).Int("articles", cs.Count()).Msg("loaded corpus snapshot")
	return cs, nil
}
