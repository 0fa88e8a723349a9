// Command idxinspect downloads an IDX dataset, prints a summary of its four
// files and optionally renders one training image.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/arloliu/idxset"
	"github.com/arloliu/idxset/dataset"
	"github.com/arloliu/idxset/fetch"
	"github.com/arloliu/idxset/internal/config"
)

func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	dir := flag.String("dir", "", "Override dataset directory")
	name := flag.String("dataset", "", "Dataset: mnist or fashion-mnist")
	baseURL := flag.String("base-url", "", "Override source base URL (http, https, s3, minio, file)")
	concurrency := flag.Int("concurrency", 0, "Number of files processed in parallel")
	useMmap := flag.Bool("mmap", false, "Memory-map decompressed files")
	show := flag.Int("show", -1, "Render training image N as ASCII")
	pngPath := flag.String("png", "", "Export the -show image (default 0) as PNG to this path")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	logFormat := flag.String("log-format", "", "Log format: text or json")

	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	cfg.ApplyOverrides(config.Overrides{
		Dir:         *dir,
		Dataset:     *name,
		BaseURL:     *baseURL,
		Concurrency: *concurrency,
		Mmap:        *useMmap,
		LogLevel:    *logLevel,
		LogFormat:   *logFormat,
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, *show, *pngPath); err != nil {
		logger.Error("inspection failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, show int, pngPath string) error {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	sources, err := dataset.ByName(cfg.Dataset)
	if err != nil {
		return err
	}
	if cfg.BaseURL != "" {
		sources = sources.WithBaseURL(cfg.BaseURL)
	}

	router, err := newRouter(ctx, cfg, logger, sources.BaseURL)
	if err != nil {
		return err
	}

	ds, err := idxset.Load(ctx,
		dataset.WithDir(cfg.Dir),
		dataset.WithSources(sources),
		dataset.WithFetcher(router),
		dataset.WithLogger(logger),
		dataset.WithConcurrency(cfg.Concurrency),
		dataset.WithMmap(cfg.Mmap),
	)
	if err != nil {
		return err
	}
	defer ds.Close()

	out := os.Stdout
	fmt.Fprintf(out, "dataset %s from %s\n", ds.Name(), sources.BaseURL)
	printSummary(out, "train", ds.Train())
	printSummary(out, "test", ds.Test())
	fmt.Fprintf(out, "fingerprint: %016x\n", ds.Fingerprint())

	if show < 0 && pngPath == "" {
		return nil
	}
	index := uint32(max(show, 0))

	train := ds.Train()
	pixels, label, ok := train.Sample(index)
	if !ok {
		return fmt.Errorf("training sample %d not available (count %d)", index, train.Len())
	}

	if show >= 0 {
		fmt.Fprintf(out, "\nsample %d label %d\n", index, label)
		if err := renderASCII(out, pixels, train.Images.Width()); err != nil {
			return err
		}
	}

	if pngPath != "" {
		if err := writePNG(pngPath, train.Images, index); err != nil {
			return err
		}
		logger.Info("wrote image", "path", pngPath, "index", index, "label", label)
	}

	return nil
}

// newRouter registers the default fetchers plus S3 and MinIO when the
// configuration calls for them.
func newRouter(ctx context.Context, cfg *config.Config, logger *slog.Logger, baseURL string) (*fetch.Router, error) {
	opts := []fetch.Option{
		fetch.WithLogger(logger),
		fetch.WithRateLimit(cfg.RateLimit),
	}

	router, err := fetch.NewDefaultRouter(opts...)
	if err != nil {
		return nil, err
	}

	if strings.HasPrefix(strings.ToLower(baseURL), "s3://") {
		client, err := newS3Client(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		s3Fetcher, err := fetch.NewS3Fetcher(client, opts...)
		if err != nil {
			return nil, err
		}
		router.Register("s3", s3Fetcher)
	}

	if cfg.Minio.Endpoint != "" {
		client, err := minio.New(cfg.Minio.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Minio.AccessKey, cfg.Minio.SecretKey, ""),
			Secure: cfg.Minio.Secure,
		})
		if err != nil {
			return nil, fmt.Errorf("minio client: %w", err)
		}
		minioFetcher, err := fetch.NewMinioFetcher(client, opts...)
		if err != nil {
			return nil, err
		}
		router.Register("minio", minioFetcher)
	}

	return router, nil
}

func newS3Client(ctx context.Context, cfg config.S3Config) (*s3.Client, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	}), nil
}

func newLogger(cfg config.LogConfig) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(cfg.Format, "json") {
		return idxset.NewJSONLogger(level), nil
	}

	return idxset.NewTextLogger(level), nil
}
