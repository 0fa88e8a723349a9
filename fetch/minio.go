package fetch

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/minio/minio-go/v7"

	"github.com/arloliu/idxset/internal/fsutil"
	"github.com/arloliu/idxset/internal/pool"
)

// MinioFetcher downloads minio://bucket/key objects from MinIO or any
// S3-compatible endpoint configured on the client.
type MinioFetcher struct {
	cfg    *fetchConfig
	client *minio.Client
}

var _ Fetcher = (*MinioFetcher)(nil)

// NewMinioFetcher creates a MinIO fetcher around client.
//
// Options: WithLogger, WithRateLimit, WithProgressInterval.
func NewMinioFetcher(client *minio.Client, opts ...Option) (*MinioFetcher, error) {
	if client == nil {
		return nil, errors.New("minio client must not be nil")
	}

	cfg, err := newFetchConfig(opts)
	if err != nil {
		return nil, err
	}

	return &MinioFetcher{cfg: cfg, client: client}, nil
}

// Fetch streams the object named by remote into localPath unless localPath
// already exists.
func (f *MinioFetcher) Fetch(ctx context.Context, remote, localPath string) error {
	bucket, key, err := parseObjectURL(remote, "minio")
	if err != nil {
		return err
	}

	skip, err := skipExisting(ctx, f.cfg.logger, localPath)
	if err != nil || skip {
		return err
	}

	obj, err := f.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("get %s: %w", remote, err)
	}
	defer func() { _ = obj.Close() }()

	body := &meteredReader{
		ctx:      ctx,
		r:        obj,
		remote:   remote,
		logger:   f.cfg.logger,
		limiter:  f.cfg.limiter,
		interval: f.cfg.progressInterval,
	}

	err = fsutil.WriteAtomic(localPath, func(out *os.File) error {
		_, err := pool.Copy(out, body)
		return err
	})
	if err != nil {
		return fmt.Errorf("download %s: %w", remote, err)
	}

	f.cfg.logger.InfoContext(ctx, "downloaded", "remote", remote, "path", localPath, "bytes", body.total)

	return nil
}
