package minio

import (
	"context"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/gridest/summary"
)

// TestMinioStore_Integration requires a running MinIO instance.
// Skip if not available.
func TestMinioStore_Integration(t *testing.T) {
	endpoint := "localhost:9000"
	accessKey := "minioadmin"
	secretKey := "minioadmin"
	bucket := "test-gridest"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false,
	})
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}

	ctx := context.Background()

	_, err = client.ListBuckets(ctx)
	if err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		err = client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
		require.NoError(t, err)
	}

	store := NewStore(client, bucket, "test-prefix/")

	// Put and Open an encoded summary
	data := summary.Encode(&summary.Summary{Version: 1, ObjectCount: 0})
	err = store.Put(ctx, "empty.pre", data)
	require.NoError(t, err)

	blob, err := store.Open(ctx, "empty.pre")
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), blob.Size())

	buf := make([]byte, len(data))
	n, err := blob.ReadAt(ctx, buf, 0)
	require.NoError(t, err)
	require.Equal(t, len(data), n)
	require.Equal(t, data, buf)
	require.NoError(t, blob.Close())

	// ReadRange over the magic bytes
	blob2, err := store.Open(ctx, "empty.pre")
	require.NoError(t, err)
	rc, err := blob2.ReadRange(ctx, 0, 4)
	require.NoError(t, err)
	partBuf := make([]byte, 4)
	_, err = rc.Read(partBuf)
	require.NoError(t, err)
	assert.Equal(t, []byte("BD3R"), partBuf) // little-endian "R3DB"
	require.NoError(t, rc.Close())
	require.NoError(t, blob2.Close())

	// List
	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, names, "empty.pre")

	// Delete
	err = store.Delete(ctx, "empty.pre")
	require.NoError(t, err)

	_, err = store.Open(ctx, "empty.pre")
	require.Error(t, err)

	// Create (streaming)
	wb, err := store.Create(ctx, "stream.pre")
	require.NoError(t, err)
	_, err = wb.Write(data)
	require.NoError(t, err)
	err = wb.Close()
	require.NoError(t, err)

	blob3, err := store.Open(ctx, "stream.pre")
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), blob3.Size())
	require.NoError(t, blob3.Close())

	_ = store.Delete(ctx, "stream.pre")
}
