package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	store := NewStateStore(path)

	snapshot := []byte(`{"cookies":[{"name":"session","value":"abc"}],"origins":[]}`)
	require.NoError(t, store.SaveState(snapshot))

	loaded, err := store.LoadState()
	require.NoError(t, err)
	assert.JSONEq(t, string(snapshot), string(loaded))
}

func TestStateStoreMissingFile(t *testing.T) {
	store := NewStateStore(filepath.Join(t.TempDir(), "state.json"))

	loaded, err := store.LoadState()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStateStoreRejectsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := NewStateStore(path)

	assert.Error(t, store.SaveState([]byte("not json")))

	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))
	_, err := store.LoadState()
	assert.Error(t, err)
}

func TestStateStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := NewStateStore(path)

	require.NoError(t, store.SaveState([]byte(`{}`)))
	require.NoError(t, store.Clear())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// clearing twice is fine
	require.NoError(t, store.Clear())
}
