package fetch

import (
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/arloliu/idxset/internal/options"
)

// DefaultProgressInterval is the number of bytes between progress log lines.
const DefaultProgressInterval = 1_000_000

type fetchConfig struct {
	logger           *slog.Logger
	client           *http.Client
	limiter          *rate.Limiter
	progressInterval int64
}

func newFetchConfig(opts []Option) (*fetchConfig, error) {
	cfg := &fetchConfig{
		logger:           slog.Default(),
		client:           http.DefaultClient,
		progressInterval: DefaultProgressInterval,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Option configures a fetcher.
type Option = options.Option[*fetchConfig]

// WithLogger sets the logger for progress and skip messages.
func WithLogger(logger *slog.Logger) Option {
	return options.New(func(c *fetchConfig) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		c.logger = logger

		return nil
	})
}

// WithHTTPClient sets the client used by HTTPFetcher. Timeouts belong on the
// client or on the context passed to Fetch.
func WithHTTPClient(client *http.Client) Option {
	return options.New(func(c *fetchConfig) error {
		if client == nil {
			return errors.New("http client must not be nil")
		}
		c.client = client

		return nil
	})
}

// WithRateLimit caps streamed downloads at bytesPerSec. Zero disables the limit.
func WithRateLimit(bytesPerSec int) Option {
	return options.New(func(c *fetchConfig) error {
		if bytesPerSec < 0 {
			return errors.New("rate limit must not be negative")
		}
		if bytesPerSec == 0 {
			c.limiter = nil
			return nil
		}
		c.limiter = rate.NewLimiter(rate.Limit(bytesPerSec), bytesPerSec)

		return nil
	})
}

// WithProgressInterval sets how many bytes pass between progress log lines.
func WithProgressInterval(n int64) Option {
	return options.New(func(c *fetchConfig) error {
		if n <= 0 {
			return errors.New("progress interval must be positive")
		}
		c.progressInterval = n

		return nil
	})
}
