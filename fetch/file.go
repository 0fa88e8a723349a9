package fetch

import (
	"context"
	"fmt"
	"os"

	"github.com/arloliu/idxset/errs"
	"github.com/arloliu/idxset/internal/fsutil"
	"github.com/arloliu/idxset/internal/pool"
)

// FileFetcher copies file:// locations, typically a pre-seeded local mirror.
// Only absolute paths are supported: file:///path or file://localhost/path.
type FileFetcher struct {
	cfg *fetchConfig
}

var _ Fetcher = (*FileFetcher)(nil)

// NewFileFetcher creates a local file fetcher.
func NewFileFetcher(opts ...Option) (*FileFetcher, error) {
	cfg, err := newFetchConfig(opts)
	if err != nil {
		return nil, err
	}

	return &FileFetcher{cfg: cfg}, nil
}

// Fetch copies the file named by remote into localPath unless localPath exists.
func (f *FileFetcher) Fetch(ctx context.Context, remote, localPath string) error {
	u, err := parseRemote(remote)
	if err != nil {
		return err
	}
	if u.Scheme != "file" || u.Path == "" {
		return fmt.Errorf("%w: %q is not a file:// location", errs.ErrInvalidRemote, remote)
	}
	// file://mirror/x.gz names host "mirror", not a relative path.
	if u.Host != "" && u.Host != "localhost" {
		return fmt.Errorf("%w: %q must use an absolute path (file:///path)", errs.ErrInvalidRemote, remote)
	}

	skip, err := skipExisting(ctx, f.cfg.logger, localPath)
	if err != nil || skip {
		return err
	}

	in, err := os.Open(u.Path)
	if err != nil {
		return fmt.Errorf("open %s: %w", u.Path, err)
	}
	defer in.Close()

	var written int64
	err = fsutil.WriteAtomic(localPath, func(out *os.File) error {
		written, err = pool.Copy(out, in)
		return err
	})
	if err != nil {
		return fmt.Errorf("copy %s: %w", remote, err)
	}

	f.cfg.logger.InfoContext(ctx, "copied", "remote", remote, "path", localPath, "bytes", written)

	return nil
}
