package compress

import (
	"io"

	"github.com/klauspost/compress/s2"
)

// S2Decompressor reads the S2 (and Snappy-compatible) stream format.
type S2Decompressor struct{}

var _ Decompressor = (*S2Decompressor)(nil)

// NewS2Decompressor creates an S2 stream decompressor.
func NewS2Decompressor() S2Decompressor {
	return S2Decompressor{}
}

// NewReader returns an S2 stream reader over r.
func (S2Decompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(s2.NewReader(r)), nil
}
