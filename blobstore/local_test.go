package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStoreLifecycle(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewLocalStore(tmpDir)

	ctx := context.Background()

	// Create a blob.
	blobName := "languages.csv"
	data := []byte("year,language\n2012,Julia\n")

	w, err := store.Create(ctx, blobName)
	require.NoError(t, err)

	n, err := w.Write(data)
	require.NoError(t, err)
	require.Equal(t, len(data), n)

	require.NoError(t, w.Close())

	// Published under the final name, not the temp name.
	_, err = os.Stat(filepath.Join(tmpDir, blobName))
	require.NoError(t, err)

	// Open and ReadAt.
	blob, err := store.Open(ctx, blobName)
	require.NoError(t, err)
	defer blob.Close()

	require.Equal(t, int64(len(data)), blob.Size())

	buf := make([]byte, 4)
	n, err = blob.ReadAt(ctx, buf, 0)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, "year", string(buf))

	// ReadRange, including truncation past the end.
	rc, err := blob.ReadRange(ctx, 14, 9999)
	require.NoError(t, err)
	rest, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	require.Equal(t, "2012,Julia\n", string(rest))

	// List.
	require.NoError(t, store.Put(ctx, "snapshots/latest.ltb", []byte{1, 2, 3}))

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	require.Equal(t, []string{"languages.csv", "snapshots/latest.ltb"}, names)

	names, err = store.List(ctx, "snapshots/")
	require.NoError(t, err)
	require.Equal(t, []string{"snapshots/latest.ltb"}, names)

	// Delete is idempotent.
	require.NoError(t, store.Delete(ctx, blobName))
	require.NoError(t, store.Delete(ctx, blobName))

	_, err = store.Open(ctx, blobName)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStoreListEmptyRoot(t *testing.T) {
	store := NewLocalStore(filepath.Join(t.TempDir(), "does-not-exist"))

	names, err := store.List(context.Background(), "")
	require.NoError(t, err)
	require.Empty(t, names)
}
