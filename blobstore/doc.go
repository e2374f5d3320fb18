// Package blobstore abstracts where .pre summary files live.
//
// Benchmark datasets are preprocessed once and their summaries archived;
// depending on the rig they sit on local disk, in MinIO, or in S3. The
// BlobStore interface lets the loader treat all three the same:
//
//	store := blobstore.NewLocalStore("./summaries")
//	blob, _ := store.Open(ctx, "buildings_a.pre")
//	data, _ := blobstore.ReadAll(ctx, blob)
//	sum, _ := summary.Decode(data)
//
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: memory-mapped local files (zero-copy reads)
//   - MemoryStore: in-memory, for tests
//   - s3.Store: Amazon S3 with range reads and streamed uploads
//   - minio.Store: MinIO and S3-compatible object storage
//
// # Custom Implementations
//
// Implement the BlobStore interface to support custom storage backends.
// Blobs that can expose their content as a single byte slice without
// copying should additionally implement Mappable; ReadAll picks it up.
package blobstore
