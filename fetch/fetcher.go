package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/arloliu/idxset/errs"
	"github.com/arloliu/idxset/internal/fsutil"
)

// Fetcher copies a remote object to a local path.
//
// Implementations must be idempotent (no work when localPath exists) and
// atomic (localPath appears only once complete).
type Fetcher interface {
	Fetch(ctx context.Context, remote, localPath string) error
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, remote, localPath string) error

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, remote, localPath string) error {
	return f(ctx, remote, localPath)
}

// skipExisting reports whether localPath is already present, logging the skip.
func skipExisting(ctx context.Context, logger *slog.Logger, localPath string) (bool, error) {
	exists, err := fsutil.Exists(localPath)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", localPath, err)
	}
	if exists {
		logger.InfoContext(ctx, "already exists, skipping download", "path", localPath)
	}

	return exists, nil
}

// parseRemote parses remote and lowercases its scheme.
func parseRemote(remote string) (*url.URL, error) {
	u, err := url.Parse(remote)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", errs.ErrInvalidRemote, remote, err)
	}
	if u.Scheme == "" {
		return nil, fmt.Errorf("%w: %q has no scheme", errs.ErrInvalidRemote, remote)
	}
	u.Scheme = strings.ToLower(u.Scheme)

	return u, nil
}

// parseObjectURL splits a bucket-style URL such as s3://bucket/path/to/key.
func parseObjectURL(remote, scheme string) (bucket, key string, err error) {
	u, err := parseRemote(remote)
	if err != nil {
		return "", "", err
	}
	if u.Scheme != scheme {
		return "", "", fmt.Errorf("%w: %q is not a %s:// location", errs.ErrInvalidRemote, remote, scheme)
	}

	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: %q must name a bucket and a key", errs.ErrInvalidRemote, remote)
	}

	return bucket, key, nil
}
