// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	store := s3.NewStore(s3.NewFromConfig(cfg), "my-bucket", "corpora/")
//
//	c, err := corpus.OpenBagOfWords(ctx, store, "nips.bow.gz")
//
// # Features
//
//   - Range reads for efficient partial fetches
//   - Streaming multipart uploads for large corpora
//   - Optional CRC32C integrity checksums
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
