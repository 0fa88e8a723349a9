//go:build gozstd && cgo

package compress

import (
	"io"
	"sync"

	"github.com/valyala/gozstd"
)

// NewReader returns a libzstd stream reader over r. Close releases its C resources.
func (ZstdDecompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	return &gozstdReadCloser{Reader: gozstd.NewReader(r)}, nil
}

type gozstdReadCloser struct {
	*gozstd.Reader
	once sync.Once
}

func (c *gozstdReadCloser) Close() error {
	c.once.Do(c.Reader.Release)

	return nil
}
