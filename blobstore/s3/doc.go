// Package s3 provides an S3 implementation of the blobstore.BlobStore
// interface for archived .pre summary files.
//
// # Usage
//
//	store, err := s3.New(ctx, "benchmark-data", s3.WithPrefix("summaries/"))
//	if err != nil { ... }
//
//	sum, err := gridest.LoadSummaryFromStore(ctx, store, "buildings_a.pre")
//
// # Features
//
//   - Range reads for partial fetches
//   - Streamed multipart uploads via the S3 transfer manager
//   - Automatic pagination for listing
//   - Configurable prefix for sharing a bucket across benchmark suites
package s3
