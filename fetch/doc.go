// Package fetch retrieves dataset files from remote locations into the local
// filesystem.
//
// Every Fetcher is idempotent: when the local path already exists the call
// logs and returns without touching the network. Downloads are written to a
// temp file next to the destination and renamed into place on success, so an
// interrupted download never leaves a partial file that a later run would
// mistake for a finished one.
//
// Supported locations:
//
//	http://host/path, https://host/path  HTTPFetcher
//	s3://bucket/key                      S3Fetcher (aws-sdk-go-v2 transfer manager)
//	minio://bucket/key                   MinioFetcher (minio-go)
//	file:///abs/path                     FileFetcher (local mirrors)
//
// A Router dispatches on the URL scheme.
package fetch
