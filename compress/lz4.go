package compress

import (
	"io"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4ReaderPool pools frame readers; lz4.Reader keeps sizable block buffers.
var lz4ReaderPool = sync.Pool{
	New: func() any {
		return lz4.NewReader(nil)
	},
}

// LZ4Decompressor reads the LZ4 frame format produced by the lz4 command line tool.
type LZ4Decompressor struct{}

var _ Decompressor = (*LZ4Decompressor)(nil)

// NewLZ4Decompressor creates an LZ4 frame decompressor.
func NewLZ4Decompressor() LZ4Decompressor {
	return LZ4Decompressor{}
}

// NewReader returns a pooled LZ4 frame reader over r. Close returns it to the pool.
func (LZ4Decompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	zr, _ := lz4ReaderPool.Get().(*lz4.Reader)
	zr.Reset(r)

	return &lz4ReadCloser{Reader: zr}, nil
}

type lz4ReadCloser struct {
	*lz4.Reader
	once sync.Once
}

func (c *lz4ReadCloser) Close() error {
	c.once.Do(func() {
		c.Reader.Reset(nil)
		lz4ReaderPool.Put(c.Reader)
	})

	return nil
}
