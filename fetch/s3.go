package fetch

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/arloliu/idxset/internal/fsutil"
)

// S3Client is the subset of *s3.Client used for downloads.
type S3Client = manager.DownloadAPIClient

// S3Fetcher downloads s3://bucket/key objects with the transfer manager,
// which issues ranged GETs in parallel and writes them into the temp file.
type S3Fetcher struct {
	cfg        *fetchConfig
	downloader *manager.Downloader
}

var _ Fetcher = (*S3Fetcher)(nil)

// NewS3Fetcher creates an S3 fetcher around client.
//
// Options: WithLogger. Rate and progress options do not apply because the
// transfer manager writes parts concurrently.
func NewS3Fetcher(client S3Client, opts ...Option) (*S3Fetcher, error) {
	cfg, err := newFetchConfig(opts)
	if err != nil {
		return nil, err
	}

	return &S3Fetcher{
		cfg:        cfg,
		downloader: manager.NewDownloader(client),
	}, nil
}

// Fetch downloads the object named by remote into localPath unless localPath
// already exists.
func (f *S3Fetcher) Fetch(ctx context.Context, remote, localPath string) error {
	bucket, key, err := parseObjectURL(remote, "s3")
	if err != nil {
		return err
	}

	skip, err := skipExisting(ctx, f.cfg.logger, localPath)
	if err != nil || skip {
		return err
	}

	var written int64
	err = fsutil.WriteAtomic(localPath, func(out *os.File) error {
		written, err = f.downloader.Download(ctx, out, &s3.GetObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		})

		return err
	})
	if err != nil {
		return fmt.Errorf("download %s: %w", remote, err)
	}

	f.cfg.logger.InfoContext(ctx, "downloaded", "remote", remote, "path", localPath, "bytes", written)

	return nil
}
