// Package minio implements blobstore.BlobStore for MinIO and other
// S3-compatible object stores via the native MinIO client.
//
// Use this instead of the s3 package when talking to self-hosted object
// storage that does not speak the AWS credential chain.
package minio
