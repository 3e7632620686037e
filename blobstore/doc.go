// Package blobstore provides storage abstraction for langtab's source
// tables and index snapshots.
//
// BlobStore is the interface for reading and writing named blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: in-memory, for tests
//   - LocalStore: local filesystem with atomic renames
//   - CachingStore: whole-blob read cache over any inner store
//   - s3.Store: Amazon S3 with ranged reads and streaming uploads
//   - s3.DDBCommitStore: S3 plus DynamoDB-backed atomic CURRENT commits
//   - minio.Store: MinIO and other S3-compatible object stores
//
// # Custom Implementations
//
// Implement the BlobStore interface to support other backends. Cloud
// backends should serve ReadRange with a native range request so callers
// never have to download more than they decode.
package blobstore
