package session

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	store := NewFileStore(path)

	assert.Empty(t, store.Token(), "missing file means unauthenticated")

	require.NoError(t, store.SetToken("abc"))
	assert.Equal(t, "abc", store.Token())

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}

	require.NoError(t, store.Clear())
	assert.Empty(t, store.Token())
}

func TestFileStoreClearIdempotent(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "token"))
	assert.NoError(t, store.Clear())
	assert.NoError(t, store.Clear())
}

func TestFileStoreTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("abc\n"), 0o600))

	store := NewFileStore(path)
	assert.Equal(t, "abc", store.Token())
}

func TestMemStore(t *testing.T) {
	store := &MemStore{}
	assert.Empty(t, store.Token())
	require.NoError(t, store.SetToken("abc"))
	assert.Equal(t, "abc", store.Token())
	require.NoError(t, store.Clear())
	assert.Empty(t, store.Token())
}
