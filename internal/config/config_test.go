package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/idxset/errs"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "idxinspect.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
# local mirror of fashion-mnist
dir: /var/cache/datasets
dataset: fashion-mnist
base_url: s3://datasets/fashion
concurrency: 2
mmap: true
rate_limit: 1048576
timeout: 90s
log:
  level: debug
  format: json
s3:
  region: eu-central-1
  use_path_style: true
minio:
  endpoint: localhost:9000
  access_key: minioadmin
  secret_key: minioadmin
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "/var/cache/datasets", cfg.Dir)
	require.Equal(t, "fashion-mnist", cfg.Dataset)
	require.Equal(t, "s3://datasets/fashion", cfg.BaseURL)
	require.Equal(t, 2, cfg.Concurrency)
	require.True(t, cfg.Mmap)
	require.Equal(t, 1<<20, cfg.RateLimit)
	require.Equal(t, 90*time.Second, cfg.Timeout)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, "eu-central-1", cfg.S3.Region)
	require.True(t, cfg.S3.UsePathStyle)
	require.Equal(t, "localhost:9000", cfg.Minio.Endpoint)

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, level)
}

func TestLoad_KeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "dataset: mnist\n"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	cfg, err = Load(writeConfig(t, ""))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := Load(writeConfig(t, "datset: mnist\n"))
		require.ErrorContains(t, err, "datset")
	})

	t.Run("bad type", func(t *testing.T) {
		_, err := Load(writeConfig(t, "concurrency: many\n"))
		require.Error(t, err)
	})

	t.Run("invalid value", func(t *testing.T) {
		_, err := Load(writeConfig(t, "concurrency: -1\n"))
		require.ErrorIs(t, err, errs.ErrInvalidConfig)
	})
}

func TestApplyOverrides(t *testing.T) {
	cfg := Default()
	cfg.ApplyOverrides(Overrides{})
	require.Equal(t, Default(), cfg, "zero overrides change nothing")

	cfg.ApplyOverrides(Overrides{
		Dir:         "/tmp/ds",
		Dataset:     "fashion",
		BaseURL:     "file:///mirror",
		Concurrency: 1,
		Mmap:        true,
		LogLevel:    "warn",
		LogFormat:   "json",
	})

	require.Equal(t, "/tmp/ds", cfg.Dir)
	require.Equal(t, "fashion", cfg.Dataset)
	require.Equal(t, "file:///mirror", cfg.BaseURL)
	require.Equal(t, 1, cfg.Concurrency)
	require.True(t, cfg.Mmap)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty dir", func(c *Config) { c.Dir = "" }},
		{"empty dataset", func(c *Config) { c.Dataset = "" }},
		{"zero concurrency", func(c *Config) { c.Concurrency = 0 }},
		{"negative rate", func(c *Config) { c.RateLimit = -1 }},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }},
		{"half minio credentials", func(c *Config) {
			c.Minio.Endpoint = "localhost:9000"
			c.Minio.AccessKey = "key"
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), errs.ErrInvalidConfig)
		})
	}

	var nilCfg *Config
	require.ErrorIs(t, nilCfg.Validate(), errs.ErrInvalidConfig)
}
