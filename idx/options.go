package idx

import (
	"errors"
	"log/slog"

	"github.com/arloliu/idxset/internal/options"
)

type decoderConfig struct {
	logger *slog.Logger
}

func newDecoderConfig(opts []Option) (*decoderConfig, error) {
	cfg := &decoderConfig{logger: slog.Default()}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Option configures a LabelSet or ImageSet.
type Option = options.Option[*decoderConfig]

// WithLogger sets the logger used for decoder diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return options.New(func(c *decoderConfig) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		c.logger = logger

		return nil
	})
}
