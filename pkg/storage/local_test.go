package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	path, err := store.Save("memory-1-abc.jpg", strings.NewReader("jpegdata"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/memory-1-abc.jpg", path)

	data, err := os.ReadFile(filepath.Join(dir, "memory-1-abc.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpegdata", string(data))

	require.NoError(t, store.Delete(path))
	_, err = os.Stat(filepath.Join(dir, "memory-1-abc.jpg"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorageDeleteMissingIsNoop(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Delete("/uploads/never-existed.jpg"))
}

func TestLocalStorageDeleteRejectsTraversal(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, store.Delete("/uploads/../secrets.txt"))
}
