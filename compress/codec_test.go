package compress

import (
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/idxset/errs"
	"github.com/arloliu/idxset/format"
)

// compressFor produces a stream in the given format for decompression tests.
func compressFor(t testing.TB, compressionType format.CompressionType, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	var w io.WriteCloser
	switch compressionType {
	case format.CompressionNone:
		return append([]byte(nil), data...)
	case format.CompressionGzip:
		w = gzip.NewWriter(&buf)
	case format.CompressionZstd:
		enc, err := zstd.NewWriter(&buf)
		require.NoError(t, err)
		w = enc
	case format.CompressionS2:
		w = s2.NewWriter(&buf)
	case format.CompressionLZ4:
		w = lz4.NewWriter(&buf)
	default:
		t.Fatalf("unsupported compression %s", compressionType)
	}

	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

// testPayload resembles an IDX label file: a header followed by small values.
func testPayload(n int) []byte {
	data := []byte{0, 0, 8, 1, byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)}
	for i := range n {
		data = append(data, byte(i%10))
	}

	return data
}

func TestDecompressors_RoundTrip(t *testing.T) {
	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionGzip,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}
	sizes := []int{0, 1, 1000, 300_000}

	for _, ct := range types {
		for _, size := range sizes {
			t.Run(ct.String(), func(t *testing.T) {
				original := testPayload(size)
				compressed := compressFor(t, ct, original)

				d, err := GetDecompressor(ct)
				require.NoError(t, err)

				r, err := d.NewReader(bytes.NewReader(compressed))
				require.NoError(t, err)

				got, err := io.ReadAll(r)
				require.NoError(t, err)
				require.NoError(t, r.Close())
				require.Equal(t, original, got)
			})
		}
	}
}

func TestDecompressors_ReuseAfterClose(t *testing.T) {
	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionLZ4} {
		t.Run(ct.String(), func(t *testing.T) {
			d, err := GetDecompressor(ct)
			require.NoError(t, err)

			for i := range 5 {
				original := testPayload(100 * (i + 1))
				r, err := d.NewReader(bytes.NewReader(compressFor(t, ct, original)))
				require.NoError(t, err)

				got, err := io.ReadAll(r)
				require.NoError(t, err)
				require.NoError(t, r.Close())
				require.NoError(t, r.Close(), "double close must be safe")
				require.Equal(t, original, got)
			}
		})
	}
}

func TestGzipDecompressor_InvalidHeader(t *testing.T) {
	_, err := NewGzipDecompressor().NewReader(bytes.NewReader([]byte("not gzip at all")))
	require.Error(t, err)
}

func TestGzipDecompressor_Truncated(t *testing.T) {
	compressed := compressFor(t, format.CompressionGzip, testPayload(5000))

	r, err := NewGzipDecompressor().NewReader(bytes.NewReader(compressed[:len(compressed)/2]))
	require.NoError(t, err)

	_, err = io.ReadAll(r)
	require.Error(t, err)
}

func TestGetDecompressor_Unsupported(t *testing.T) {
	d, err := GetDecompressor(format.CompressionType(0x7F))

	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
	require.Nil(t, d)
}

func TestDetectCompression(t *testing.T) {
	tests := []struct {
		path string
		want format.CompressionType
	}{
		{"train-images-idx3-ubyte.gz", format.CompressionGzip},
		{"datasets/t10k-labels-idx1-ubyte.GZ", format.CompressionGzip},
		{"train-images-idx3-ubyte.zst", format.CompressionZstd},
		{"train-images-idx3-ubyte.s2", format.CompressionS2},
		{"train-images-idx3-ubyte.sz", format.CompressionS2},
		{"train-images-idx3-ubyte.lz4", format.CompressionLZ4},
		{"train-images-idx3-ubyte", format.CompressionNone},
		{"archive.tar", format.CompressionNone},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.want, DetectCompression(tt.path))
		})
	}
}

func TestTrimExtension(t *testing.T) {
	require.Equal(t, "train-images-idx3-ubyte", TrimExtension("train-images-idx3-ubyte.gz"))
	require.Equal(t, "dir/x", TrimExtension("dir/x.zst"))
	require.Equal(t, "train-images-idx3-ubyte", TrimExtension("train-images-idx3-ubyte"))
	require.Equal(t, "archive.tar", TrimExtension("archive.tar"))
}

func BenchmarkGzipDecompressor(b *testing.B) {
	compressed := compressFor(b, format.CompressionGzip, testPayload(1<<20))
	d := NewGzipDecompressor()
	for b.Loop() {
		r, _ := d.NewReader(bytes.NewReader(compressed))
		_, _ = io.Copy(io.Discard, r)
		_ = r.Close()
	}
}
