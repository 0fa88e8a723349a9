// Package idxset decodes the IDX binary format used by MNIST and
// Fashion-MNIST and loads those datasets from remote storage.
//
// An IDX file is a fixed header of big-endian uint32 fields followed by a
// dense payload of unsigned bytes. Label files carry an 8-byte header
// (magic 2049, count) and one byte per label. Image files carry a 16-byte
// header (magic 2051, count, height, width) and count row-major planes of
// height*width pixels.
//
// # Core Features
//
//   - Zero-copy decoders: every image, label and batch is a view of the input buffer
//   - Bounds-checked accessors reporting absence instead of failing
//   - Idempotent dataset loading over HTTP(S), S3, MinIO or local mirrors
//   - gzip, zstd, S2 and LZ4 source files
//   - Optional read-only memory mapping of decompressed files
//   - xxHash64 fingerprints for verifying reloads
//
// # Basic Usage
//
// Decoding files that are already on disk:
//
//	labels, err := idxset.OpenLabelSet("datasets/train-labels-idx1-ubyte")
//	images, err := idxset.OpenImageSet("datasets/train-images-idx3-ubyte.gz")
//
//	img, ok := images.Get(0)      // 784 raw bytes for MNIST
//	label, ok := labels.Get(0)
//	batch, ok := images.GetBatch(3, 64) // images 192..255 packed back to back
//
// Downloading and decoding a whole dataset:
//
//	ds, err := idxset.Load(ctx, dataset.WithSources(dataset.FashionMNIST()))
//	if err != nil {
//	    return err
//	}
//	defer ds.Close()
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the idx and
// dataset packages. For fine-grained control use those packages directly.
package idxset

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/arloliu/idxset/compress"
	"github.com/arloliu/idxset/dataset"
	"github.com/arloliu/idxset/format"
	"github.com/arloliu/idxset/idx"
)

// NewLabelSet decodes an IDX label buffer.
//
// The buffer is owned by the returned LabelSet and must not be modified.
//
// Returns errs.ErrInvalidHeaderSize if data is shorter than 8 bytes.
func NewLabelSet(data []byte) (*idx.LabelSet, error) {
	return idx.NewLabelSet(data)
}

// NewImageSet decodes an IDX image buffer.
//
// The buffer is owned by the returned ImageSet and must not be modified.
//
// Available options:
//   - idx.WithLogger(logger)
//
// Returns errs.ErrInvalidHeaderSize if data is shorter than 16 bytes.
func NewImageSet(data []byte, opts ...idx.Option) (*idx.ImageSet, error) {
	return idx.NewImageSet(data, opts...)
}

// OpenLabelSet reads and decodes an IDX label file. Files ending in .gz,
// .zst, .s2, .sz or .lz4 are decompressed in memory.
func OpenLabelSet(path string) (*idx.LabelSet, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	labels, err := idx.NewLabelSet(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return labels, nil
}

// OpenImageSet reads and decodes an IDX image file. Compressed files are
// handled as in OpenLabelSet.
func OpenImageSet(path string, opts ...idx.Option) (*idx.ImageSet, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	images, err := idx.NewImageSet(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return images, nil
}

// Load fetches, decompresses and decodes a dataset. MNIST is loaded into
// ./datasets unless options say otherwise.
//
// Available options:
//   - dataset.WithDir(dir)
//   - dataset.WithSources(dataset.MNIST()|dataset.FashionMNIST()|custom)
//   - dataset.WithFetcher(fetcher)
//   - dataset.WithLogger(logger)
//   - dataset.WithConcurrency(n)
//   - dataset.WithMmap(true)
func Load(ctx context.Context, opts ...dataset.Option) (*dataset.Dataset, error) {
	return dataset.Load(ctx, opts...)
}

func readFile(path string) ([]byte, error) {
	compression := compress.DetectCompression(path)
	if compression == format.CompressionNone {
		return os.ReadFile(path)
	}

	decompressor, err := compress.GetDecompressor(compression)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := decompressor.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", path, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", path, err)
	}

	return data, nil
}

// NewLogger creates a logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
func NewLogger(handler slog.Handler) *slog.Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}

	return slog.New(handler)
}

// NewJSONLogger creates a logger that writes JSON records to stderr.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a logger that writes human-readable records to stderr.
func NewTextLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a logger that discards all output.
// Use this to disable logging entirely.
func NoopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
