package compress

import "io"

// NoOpDecompressor passes uncompressed source files through unchanged.
type NoOpDecompressor struct{}

var _ Decompressor = (*NoOpDecompressor)(nil)

// NewNoOpDecompressor creates a pass-through decompressor.
func NewNoOpDecompressor() NoOpDecompressor {
	return NoOpDecompressor{}
}

// NewReader returns r unchanged with a no-op Close.
func (NoOpDecompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}
