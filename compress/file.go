package compress

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/arloliu/idxset/internal/fsutil"
	"github.com/arloliu/idxset/internal/pool"
)

// DecompressFile inflates src into dst, choosing the algorithm from the
// extension of src.
//
// It is a no-op when dst already exists. The context is checked between read
// chunks, so a cancelled load stops promptly and leaves no dst behind.
//
// Parameters:
//   - ctx: Cancellation for the copy loop
//   - src: Compressed source file
//   - dst: Destination file, created atomically
//   - logger: Progress logger; nil uses slog.Default()
//
// Returns:
//   - error: Filesystem, format or cancellation errors
func DecompressFile(ctx context.Context, src, dst string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	exists, err := fsutil.Exists(dst)
	if err != nil {
		return fmt.Errorf("stat %s: %w", dst, err)
	}
	if exists {
		logger.InfoContext(ctx, "already exists, skipping decompression", "path", dst)
		return nil
	}

	compression := DetectCompression(src)
	decompressor, err := GetDecompressor(compression)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	var written int64
	err = fsutil.WriteAtomic(dst, func(out *os.File) error {
		zr, err := decompressor.NewReader(in)
		if err != nil {
			return err
		}
		defer zr.Close()

		written, err = pool.Copy(out, &contextReader{ctx: ctx, r: zr})

		return err
	})
	if err != nil {
		return fmt.Errorf("decompress %s: %w", src, err)
	}

	logger.InfoContext(ctx, "decompressed",
		"src", src,
		"dst", dst,
		"compression", compression.String(),
		"bytes", written,
	)

	return nil
}

// contextReader fails reads once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}

	return c.r.Read(p)
}
