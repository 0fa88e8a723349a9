package compress

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/arloliu/idxset/errs"
	"github.com/arloliu/idxset/format"
)

// Decompressor wraps a compressed stream with a reader that yields the original bytes.
//
// Implementations must be safe for concurrent use. Callers must Close the
// returned reader to release pooled resources.
type Decompressor interface {
	// NewReader returns a decompressing reader over r.
	//
	// Errors from malformed input may surface either here (header parsing)
	// or from Read on the returned stream.
	NewReader(r io.Reader) (io.ReadCloser, error)
}

var builtinDecompressors = map[format.CompressionType]Decompressor{
	format.CompressionNone: NewNoOpDecompressor(),
	format.CompressionGzip: NewGzipDecompressor(),
	format.CompressionZstd: NewZstdDecompressor(),
	format.CompressionS2:   NewS2Decompressor(),
	format.CompressionLZ4:  NewLZ4Decompressor(),
}

// GetDecompressor retrieves the built-in Decompressor for a compression type.
func GetDecompressor(compressionType format.CompressionType) (Decompressor, error) {
	if d, ok := builtinDecompressors[compressionType]; ok {
		return d, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}

var extensions = map[string]format.CompressionType{
	".gz":  format.CompressionGzip,
	".zst": format.CompressionZstd,
	".s2":  format.CompressionS2,
	".sz":  format.CompressionS2,
	".lz4": format.CompressionLZ4,
}

// DetectCompression returns the compression implied by the extension of path.
// Unknown extensions map to format.CompressionNone.
func DetectCompression(path string) format.CompressionType {
	if c, ok := extensions[strings.ToLower(filepath.Ext(path))]; ok {
		return c
	}

	return format.CompressionNone
}

// TrimExtension strips a recognized compression extension from path.
//
//	TrimExtension("train-images-idx3-ubyte.gz") == "train-images-idx3-ubyte"
func TrimExtension(path string) string {
	ext := filepath.Ext(path)
	if _, ok := extensions[strings.ToLower(ext)]; ok {
		return strings.TrimSuffix(path, ext)
	}

	return path
}
