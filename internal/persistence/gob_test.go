package persistence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Words []string
	Count int
}

func TestSaveAndLoadGob(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "sample.gob")
	in := sample{Words: []string{"кот", "пёс"}, Count: 2}

	require.NoError(t, SaveGob(path, in))

	var out sample
	require.NoError(t, LoadGob(path, &out))
	assert.Equal(t, in, out)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestSaveGob_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.gob")
	require.NoError(t, SaveGob(path, sample{Count: 1}))
	require.NoError(t, SaveGob(path, sample{Count: 2}))

	var out sample
	require.NoError(t, LoadGob(path, &out))
	assert.Equal(t, 2, out.Count)
}

func TestLoadGob_Missing(t *testing.T) {
	var out sample
	err := LoadGob(filepath.Join(t.TempDir(), "missing.gob"), &out)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadGob_Corrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.gob")
	require.NoError(t, os.WriteFile(path, []byte("not gob at all"), 0o600))

	var out sample
	err := LoadGob(path, &out)
	require.Error(t, err)
	assert.NotErrorIs(t, err, os.ErrNotExist)
}
