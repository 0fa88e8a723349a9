package fetch

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/idxset/errs"
)

func TestRouter_Dispatch(t *testing.T) {
	var got []string
	record := func(name string) Fetcher {
		return FetcherFunc(func(_ context.Context, remote, _ string) error {
			got = append(got, name+" "+remote)
			return nil
		})
	}

	r := NewRouter().
		Register("s3", record("s3")).
		Register("minio", record("minio"))

	require.Equal(t, []string{"minio", "s3"}, r.Schemes())
	require.NoError(t, r.Fetch(context.Background(), "s3://b/k", "x"))
	require.NoError(t, r.Fetch(context.Background(), "MINIO://b/k", "x"))
	require.Equal(t, []string{"s3 s3://b/k", "minio MINIO://b/k"}, got)
}

func TestRouter_Errors(t *testing.T) {
	r := NewRouter()

	err := r.Fetch(context.Background(), "ftp://host/file.gz", "x")
	require.ErrorIs(t, err, errs.ErrUnsupportedScheme)

	err = r.Fetch(context.Background(), "train-images-idx3-ubyte.gz", "x")
	require.ErrorIs(t, err, errs.ErrInvalidRemote)

	err = r.Fetch(context.Background(), "http://[::1", "x")
	require.ErrorIs(t, err, errs.ErrInvalidRemote)
}

func TestDefaultRouter(t *testing.T) {
	srv, hits := newTestServer(t, []byte("over http"), http.StatusOK)
	dir := t.TempDir()

	mirror := filepath.Join(dir, "mirror.gz")
	require.NoError(t, os.WriteFile(mirror, []byte("from mirror"), 0o644))

	r, err := NewDefaultRouter(WithLogger(slog.New(slog.DiscardHandler)))
	require.NoError(t, err)
	require.Equal(t, []string{"file", "http", "https"}, r.Schemes())

	httpDst := filepath.Join(dir, "out", "http.gz")
	require.NoError(t, r.Fetch(context.Background(), srv.URL+"/x.gz", httpDst))
	require.Equal(t, int32(1), hits.Load())

	fileDst := filepath.Join(dir, "out", "file.gz")
	require.NoError(t, r.Fetch(context.Background(), "file://"+mirror, fileDst))

	data, err := os.ReadFile(httpDst)
	require.NoError(t, err)
	require.Equal(t, "over http", string(data))

	data, err = os.ReadFile(fileDst)
	require.NoError(t, err)
	require.Equal(t, "from mirror", string(data))
}

func TestDefaultRouter_InvalidOption(t *testing.T) {
	r, err := NewDefaultRouter(WithLogger(nil))
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
	require.Nil(t, r)
}

func TestFileFetcher(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.gz")
	require.NoError(t, os.WriteFile(src, payload(5000), 0o644))

	f, err := NewFileFetcher(WithLogger(slog.New(slog.DiscardHandler)))
	require.NoError(t, err)

	dst := filepath.Join(dir, "dst.gz")
	require.NoError(t, f.Fetch(context.Background(), "file://"+src, dst))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, payload(5000), got)

	t.Run("missing source", func(t *testing.T) {
		err := f.Fetch(context.Background(), "file://"+filepath.Join(dir, "nope.gz"), filepath.Join(dir, "nope"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("localhost host", func(t *testing.T) {
		local := filepath.Join(dir, "local.gz")
		require.NoError(t, f.Fetch(context.Background(), "file://localhost"+src, local))
		require.FileExists(t, local)
	})

	t.Run("relative path rejected", func(t *testing.T) {
		rel := filepath.Join(dir, "rel.gz")
		err := f.Fetch(context.Background(), "file://mirror/src.gz", rel)
		require.ErrorIs(t, err, errs.ErrInvalidRemote)
		require.NoFileExists(t, rel)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		err := f.Fetch(context.Background(), "http://host/x", filepath.Join(dir, "y"))
		require.ErrorIs(t, err, errs.ErrInvalidRemote)
	})
}
