// Package s3 implements blobstore.BlobStore on Amazon S3.
//
// Reads use ranged GetObject requests so a caller decoding a snapshot header
// never downloads the whole object. Writes stream through an io.Pipe into a
// parallel multipart upload.
//
// DDBCommitStore layers DynamoDB conditional writes on top, giving the
// manifest CURRENT pointer the atomic compare-and-swap semantics S3 lacks.
package s3
