package gateway

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTempStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(filepath.Join(t.TempDir(), "keys", "gemini_api_key"))
	require.NoError(t, err)
	return store
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := newTempStore(t)

	key, err := store.Get()
	require.NoError(t, err)
	assert.Empty(t, key, "a fresh store holds no credential")

	require.NoError(t, store.Set("my-secret-key"))

	key, err = store.Get()
	require.NoError(t, err)
	assert.Equal(t, "my-secret-key", key)

	require.NoError(t, store.Clear())

	key, err = store.Get()
	require.NoError(t, err)
	assert.Empty(t, key)
}

func TestFileStoreClearIsIdempotent(t *testing.T) {
	store := newTempStore(t)
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
}

func TestFileStoreRejectsEmptyKey(t *testing.T) {
	store := newTempStore(t)
	assert.Error(t, store.Set("   "))
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gemini_api_key")

	first, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Set("persisted"))

	second, err := NewFileStore(path)
	require.NoError(t, err)
	key, err := second.Get()
	require.NoError(t, err)
	assert.Equal(t, "persisted", key)
}

func TestNewFileStoreRequiresPath(t *testing.T) {
	_, err := NewFileStore("")
	assert.Error(t, err)
}
