// Package config holds the runtime knobs of the idxinspect command.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/idxset/errs"
)

// Config captures the runtime knobs for an inspection run.
type Config struct {
	Dir         string        `yaml:"dir"`
	Dataset     string        `yaml:"dataset"`
	BaseURL     string        `yaml:"base_url"`
	Concurrency int           `yaml:"concurrency"`
	Mmap        bool          `yaml:"mmap"`
	RateLimit   int           `yaml:"rate_limit"`
	Timeout     time.Duration `yaml:"timeout"`
	Log         LogConfig     `yaml:"log"`
	S3          S3Config      `yaml:"s3"`
	Minio       MinioConfig   `yaml:"minio"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// S3Config configures the s3:// fetcher. Credentials come from the default
// AWS chain.
type S3Config struct {
	Region       string `yaml:"region"`
	Endpoint     string `yaml:"endpoint"`
	UsePathStyle bool   `yaml:"use_path_style"`
}

// MinioConfig configures the minio:// fetcher. An empty endpoint disables it.
type MinioConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Secure    bool   `yaml:"secure"`
}

// Overrides captures CLI supplied values.
type Overrides struct {
	Dir         string
	Dataset     string
	BaseURL     string
	Concurrency int
	Mmap        bool
	LogLevel    string
	LogFormat   string
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Dir:         "./datasets",
		Dataset:     "mnist",
		Concurrency: 4,
		Timeout:     10 * time.Minute,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads and validates a Config from YAML. Keys missing from the file keep
// their Default values; unknown keys are rejected.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := parseYAML(f)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyOverrides updates cfg using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Dir != "" {
		c.Dir = o.Dir
	}
	if o.Dataset != "" {
		c.Dataset = o.Dataset
	}
	if o.BaseURL != "" {
		c.BaseURL = o.BaseURL
	}
	if o.Concurrency > 0 {
		c.Concurrency = o.Concurrency
	}
	if o.Mmap {
		c.Mmap = true
	}
	if o.LogLevel != "" {
		c.Log.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		c.Log.Format = o.LogFormat
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: config is nil", errs.ErrInvalidConfig)
	}
	if c.Dir == "" {
		return fmt.Errorf("%w: dir must be set", errs.ErrInvalidConfig)
	}
	if c.Dataset == "" {
		return fmt.Errorf("%w: dataset must be set", errs.ErrInvalidConfig)
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("%w: concurrency must be > 0 (got %d)", errs.ErrInvalidConfig, c.Concurrency)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("%w: rate_limit must be >= 0 (got %d)", errs.ErrInvalidConfig, c.RateLimit)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout must be >= 0 (got %s)", errs.ErrInvalidConfig, c.Timeout)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format must be text or json (got %q)", errs.ErrInvalidConfig, c.Log.Format)
	}
	if c.Minio.Endpoint != "" && (c.Minio.AccessKey == "") != (c.Minio.SecretKey == "") {
		return fmt.Errorf("%w: minio access_key and secret_key must be set together", errs.ErrInvalidConfig)
	}

	return nil
}

// SlogLevel parses Level ("debug", "info", "warn", "error", or offsets such as "info+2").
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}

	return level, nil
}

func parseYAML(r io.Reader) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return cfg, nil
}
