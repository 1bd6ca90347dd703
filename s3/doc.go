// Package s3 provides the object-storage client shard uploads through.
//
// The Client wraps the AWS SDK v2 S3 service with the small surface this
// tool needs: uploading single files and whole directories under a key
// prefix, with per-file content-type and cache-control parameters supplied
// by the caller. Transfer mechanics (retries, signing, connection reuse)
// are delegated to the SDK; the HTTP connection pool size is an explicit
// client option rather than process-wide state.
package s3
