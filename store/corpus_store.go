package store

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"sync"

	"github.com/mariaschitik/ru-pedantle/internal/errors"
	"github.com/mariaschitik/ru-pedantle/model"
)

// CorpusStore holds every playable record in article order.
// It implements services.DataSource and never changes after loading.
type CorpusStore struct {
	Mu      sync.RWMutex
	Records []model.Record
}

// gobCorpusStoreData is a helper struct for Gob encoding/decoding CorpusStore data.
// It excludes the mutex.
type gobCorpusStoreData struct {
	Records []model.Record
}

// NewCorpusStore creates a store over records.
func NewCorpusStore(records []model.Record) *CorpusStore {
	return &CorpusStore{Records: records}
}

// Count returns the number of records.
func (cs *CorpusStore) Count() int {
	cs.Mu.RLock()
	defer cs.Mu.RUnlock()
	return len(cs.Records)
}

// Record returns the record at the 0-based index i.
func (cs *CorpusStore) Record(i int) (model.Record, error) {
	cs.Mu.RLock()
	defer cs.Mu.RUnlock()
	if i < 0 || i >= len(cs.Records) {
		return model.Record{}, errors.NewArticleNotFoundError(i)
	}
	return cs.Records[i], nil
}

// Article returns the body of record i.
func (cs *CorpusStore) Article(i int) (model.Article, error) {
	rec, err := cs.Record(i)
	return rec.Article, err
}

// Title returns the title of record i.
func (cs *CorpusStore) Title(i int) (model.Title, error) {
	rec, err := cs.Record(i)
	return rec.Title, err
}

// Link returns the link of record i.
func (cs *CorpusStore) Link(i int) (model.Link, error) {
	rec, err := cs.Record(i)
	return rec.Link, err
}

// GobEncode implements the gob.GobEncoder interface for CorpusStore.
func (cs *CorpusStore) GobEncode() ([]byte, error) {
	cs.Mu.RLock()
	defer cs.Mu.RUnlock()

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(gobCorpusStoreData{Records: cs.Records}); err != nil {
		return nil, fmt.Errorf("failed to gob encode corpus store data: %w", err)
	}
	return buf.Bytes(), nil
}

// GobDecode implements the gob.GobDecoder interface for CorpusStore.
func (cs *CorpusStore) GobDecode(data []byte) error {
	decoded := gobCorpusStoreData{}
	if err := gob.NewDecoder(bytes.NewBuffer(data)).Decode(&decoded); err != nil {
		return fmt.Errorf("failed to gob decode corpus store data: %w", err)
	}

	cs.Mu.Lock()
	defer cs.Mu.Unlock()
	cs.Records = decoded.Records
	if cs.Records == nil {
		cs.Records = make([]model.Record, 0)
	}
	return nil
}
