package dataset

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/idxset/compress"
	"github.com/arloliu/idxset/fetch"
	"github.com/arloliu/idxset/idx"
	"github.com/arloliu/idxset/internal/mmap"
)

// file positions within Sources.Files.
const (
	trainImages = iota
	trainLabels
	testImages
	testLabels
)

type rawFile struct {
	name   string
	data   []byte
	closer io.Closer
}

// Load fetches, decompresses and decodes the four files of a dataset.
//
// Every step is skipped when its output file already exists, so repeated
// loads touch the network only for files that are missing. Any failure
// aborts the whole load: buffers opened so far are released and no partial
// dataset is returned.
//
// Parameters:
//   - ctx: Cancels downloads and decompression
//   - opts: WithDir, WithSources, WithFetcher, WithLogger, WithConcurrency, WithMmap
//
// Returns:
//   - *Dataset: Train and test partitions; call Close when loaded WithMmap
//   - error: Option, fetch, decompression or decode failure
func Load(ctx context.Context, opts ...Option) (*Dataset, error) {
	cfg, err := newLoaderConfig(opts)
	if err != nil {
		return nil, err
	}

	fetcher := cfg.fetcher
	if fetcher == nil {
		fetcher, err = fetch.NewDefaultRouter(fetch.WithLogger(cfg.logger))
		if err != nil {
			return nil, err
		}
	}

	files := cfg.sources.Files()
	raws := make([]rawFile, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency)
	for i, name := range files {
		g.Go(func() error {
			raw, err := loadFile(gctx, cfg, fetcher, name)
			if err != nil {
				return fmt.Errorf("load %s: %w", name, err)
			}
			raws[i] = raw

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		_ = closeAll(rawClosers(raws))
		return nil, err
	}

	ds, err := decode(cfg, raws)
	if err != nil {
		_ = closeAll(rawClosers(raws))
		return nil, err
	}

	cfg.logger.InfoContext(ctx, "dataset loaded",
		"name", ds.name,
		"train", ds.train.Len(),
		"test", ds.test.Len(),
		"fingerprint", ds.Fingerprint(),
	)

	return ds, nil
}

// loadFile runs fetch, decompress and read for one file.
func loadFile(ctx context.Context, cfg *loaderConfig, fetcher fetch.Fetcher, name string) (rawFile, error) {
	compressedPath := filepath.Join(cfg.dir, name)
	rawPath := filepath.Join(cfg.dir, compress.TrimExtension(name))

	if err := fetcher.Fetch(ctx, cfg.sources.URL(name), compressedPath); err != nil {
		return rawFile{}, err
	}

	if rawPath != compressedPath {
		if err := compress.DecompressFile(ctx, compressedPath, rawPath, cfg.logger); err != nil {
			return rawFile{}, err
		}
	}

	if cfg.mmap {
		m, err := mmap.Open(rawPath)
		if err != nil {
			return rawFile{}, err
		}
		cfg.logger.DebugContext(ctx, "mapped", "path", rawPath, "bytes", m.Len())

		return rawFile{name: name, data: m.Bytes(), closer: m}, nil
	}

	data, err := os.ReadFile(rawPath)
	if err != nil {
		return rawFile{}, err
	}

	return rawFile{name: name, data: data}, nil
}

func decode(cfg *loaderConfig, raws []rawFile) (*Dataset, error) {
	train, err := decodePartition(cfg, raws[trainImages], raws[trainLabels])
	if err != nil {
		return nil, err
	}
	test, err := decodePartition(cfg, raws[testImages], raws[testLabels])
	if err != nil {
		return nil, err
	}

	return &Dataset{
		name:    cfg.sources.Name,
		train:   train,
		test:    test,
		closers: rawClosers(raws),
	}, nil
}

func decodePartition(cfg *loaderConfig, images, labels rawFile) (Partition, error) {
	imageSet, err := idx.NewImageSet(images.data, idx.WithLogger(cfg.logger))
	if err != nil {
		return Partition{}, fmt.Errorf("decode %s: %w", images.name, err)
	}
	labelSet, err := idx.NewLabelSet(labels.data)
	if err != nil {
		return Partition{}, fmt.Errorf("decode %s: %w", labels.name, err)
	}

	return Partition{Images: imageSet, Labels: labelSet}, nil
}

func rawClosers(raws []rawFile) []io.Closer {
	closers := make([]io.Closer, 0, len(raws))
	for _, raw := range raws {
		if raw.closer != nil {
			closers = append(closers, raw.closer)
		}
	}

	return closers
}
