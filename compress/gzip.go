package compress

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipDecompressor inflates gzip streams, the format MNIST mirrors publish.
//
// Concatenated gzip members are read as one stream.
type GzipDecompressor struct{}

var _ Decompressor = (*GzipDecompressor)(nil)

// NewGzipDecompressor creates a gzip decompressor.
func NewGzipDecompressor() GzipDecompressor {
	return GzipDecompressor{}
}

// NewReader parses the gzip header of r and returns the inflating stream.
func (GzipDecompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("gzip header: %w", err)
	}

	return zr, nil
}
