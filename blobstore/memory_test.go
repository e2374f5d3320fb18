package blobstore

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	data := []byte("in-memory summary payload")

	w, err := store.Create(ctx, "scene.pre")
	require.NoError(t, err)
	_, err = w.Write(data[:10])
	require.NoError(t, err)
	_, err = w.Write(data[10:])
	require.NoError(t, err)
	require.NoError(t, w.Close())

	blob, err := store.Open(ctx, "scene.pre")
	require.NoError(t, err)
	defer blob.Close()

	require.Equal(t, int64(len(data)), blob.Size())

	got, err := ReadAll(ctx, blob)
	require.NoError(t, err)
	require.Equal(t, data, got)

	// Opened blobs see a snapshot; later Puts must not affect them.
	require.NoError(t, store.Put(ctx, "scene.pre", []byte("replaced")))
	again, err := ReadAll(ctx, blob)
	require.NoError(t, err)
	require.Equal(t, data, again)

	names, err := store.List(ctx, "scene")
	require.NoError(t, err)
	require.Equal(t, []string{"scene.pre"}, names)

	require.NoError(t, store.Delete(ctx, "scene.pre"))
	_, err = store.Open(ctx, "scene.pre")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestMemoryStore_ReadRange(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "r.bin", []byte("abcdefgh")))

	blob, err := store.Open(ctx, "r.bin")
	require.NoError(t, err)
	defer blob.Close()

	r, err := blob.ReadRange(ctx, 2, 3)
	require.NoError(t, err)
	content, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "cde", string(content))
	require.NoError(t, r.Close())

	_, err = blob.ReadRange(ctx, 100, 1)
	require.ErrorIs(t, err, io.EOF)
}
