package blob

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()

	store, err := NewLocalStore(filepath.Join(t.TempDir(), "images"), nil)
	require.NoError(t, err)

	// Fixed clock makes stored names deterministic
	store.timeFunc = func() time.Time {
		return time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	}
	return store
}

func TestLocalStoreSave(t *testing.T) {
	t.Parallel()

	t.Run("stores under a timestamp-prefixed name", func(t *testing.T) {
		t.Parallel()

		store := newTestStore(t)

		path, err := store.Save(context.Background(), "photo.png", strings.NewReader("png-bytes"))
		require.NoError(t, err)

		assert.Equal(t, "images/2026-01-01T12:00:00Z-photo.png", path)

		content, err := os.ReadFile(filepath.Join(store.Dir(), "2026-01-01T12:00:00Z-photo.png"))
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(content))
	})

	t.Run("strips directories from the client filename", func(t *testing.T) {
		t.Parallel()

		store := newTestStore(t)

		path, err := store.Save(context.Background(), "../../etc/passwd.png", strings.NewReader("x"))
		require.NoError(t, err)

		assert.Equal(t, "images/2026-01-01T12:00:00Z-passwd.png", path)

		entries, err := os.ReadDir(store.Dir())
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "2026-01-01T12:00:00Z-passwd.png", entries[0].Name())
	})
}

func TestLocalStoreRemove(t *testing.T) {
	t.Parallel()

	t.Run("removes a stored blob", func(t *testing.T) {
		t.Parallel()

		store := newTestStore(t)
		path, err := store.Save(context.Background(), "photo.png", strings.NewReader("png-bytes"))
		require.NoError(t, err)

		require.NoError(t, store.Remove(context.Background(), path))

		entries, err := os.ReadDir(store.Dir())
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("already-removed blob is not an error", func(t *testing.T) {
		t.Parallel()

		store := newTestStore(t)
		assert.NoError(t, store.Remove(context.Background(), "images/never-existed.png"))
	})

	t.Run("rejects traversal attempts", func(t *testing.T) {
		t.Parallel()

		store := newTestStore(t)
		assert.Error(t, store.Remove(context.Background(), ".."))
	})
}

func TestNewLocalStoreCreatesDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "images")
	_, err := NewLocalStore(dir, nil)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
