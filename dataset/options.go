package dataset

import (
	"errors"
	"log/slog"

	"github.com/arloliu/idxset/fetch"
	"github.com/arloliu/idxset/internal/options"
)

// Defaults used by Load.
const (
	DefaultDir         = "./datasets"
	DefaultConcurrency = 4
)

type loaderConfig struct {
	dir         string
	sources     Sources
	fetcher     fetch.Fetcher
	logger      *slog.Logger
	concurrency int
	mmap        bool
}

func newLoaderConfig(opts []Option) (*loaderConfig, error) {
	cfg := &loaderConfig{
		dir:         DefaultDir,
		sources:     MNIST(),
		logger:      slog.Default(),
		concurrency: DefaultConcurrency,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	if err := cfg.sources.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Option configures Load.
type Option = options.Option[*loaderConfig]

// WithDir sets the directory holding downloaded and decompressed files.
func WithDir(dir string) Option {
	return options.New(func(c *loaderConfig) error {
		if dir == "" {
			return errors.New("dir must not be empty")
		}
		c.dir = dir

		return nil
	})
}

// WithSources selects the dataset to load. The default is MNIST().
func WithSources(sources Sources) Option {
	return options.NoError(func(c *loaderConfig) {
		c.sources = sources
	})
}

// WithFetcher overrides the retrieval collaborator. The default routes
// http, https and file locations.
func WithFetcher(fetcher fetch.Fetcher) Option {
	return options.New(func(c *loaderConfig) error {
		if fetcher == nil {
			return errors.New("fetcher must not be nil")
		}
		c.fetcher = fetcher

		return nil
	})
}

// WithLogger sets the logger passed to the fetcher, the decompressor and the
// image decoders.
func WithLogger(logger *slog.Logger) Option {
	return options.New(func(c *loaderConfig) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		c.logger = logger

		return nil
	})
}

// WithConcurrency bounds how many files are processed at once. 1 loads
// the files sequentially.
func WithConcurrency(n int) Option {
	return options.New(func(c *loaderConfig) error {
		if n < 1 {
			return errors.New("concurrency must be at least 1")
		}
		c.concurrency = n

		return nil
	})
}

// WithMmap maps decompressed files read-only instead of reading them into
// the heap. The Dataset must then be closed after its last use.
func WithMmap(enabled bool) Option {
	return options.NoError(func(c *loaderConfig) {
		c.mmap = enabled
	})
}
