package fetch

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/arloliu/idxset/errs"
	"github.com/arloliu/idxset/internal/fsutil"
	"github.com/arloliu/idxset/internal/pool"
)

// HTTPFetcher downloads http:// and https:// URLs with a GET request.
type HTTPFetcher struct {
	cfg *fetchConfig
}

var _ Fetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher creates an HTTP fetcher.
//
// Options: WithLogger, WithHTTPClient, WithRateLimit, WithProgressInterval.
func NewHTTPFetcher(opts ...Option) (*HTTPFetcher, error) {
	cfg, err := newFetchConfig(opts)
	if err != nil {
		return nil, err
	}

	return &HTTPFetcher{cfg: cfg}, nil
}

// Fetch downloads remote into localPath unless localPath already exists.
//
// Non-2xx responses fail with errs.ErrUnexpectedStatus and leave nothing on
// disk. Progress is logged every progress interval bytes.
func (f *HTTPFetcher) Fetch(ctx context.Context, remote, localPath string) error {
	logger := f.cfg.logger

	skip, err := skipExisting(ctx, logger, localPath)
	if err != nil || skip {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, remote, nil)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", errs.ErrInvalidRemote, remote, err)
	}

	resp, err := f.cfg.client.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", remote, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.ErrorContext(ctx, "failed to download file", "remote", remote, "status", resp.StatusCode)
		return fmt.Errorf("%w: %s: %s", errs.ErrUnexpectedStatus, remote, resp.Status)
	}

	body := &meteredReader{
		ctx:      ctx,
		r:        resp.Body,
		remote:   remote,
		logger:   logger,
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

	logger.InfoContext(ctx, "downloaded", "remote", remote, "path", localPath, "bytes", body.total)

	return nil
}
