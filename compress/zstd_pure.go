//go:build !gozstd || !cgo

package compress

import (
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdDecoderPool pools zstd decoders for reuse.
// The klauspost/compress/zstd decoder is designed to run without allocations
// after warmup, so it is kept across files rather than rebuilt per stream.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}
		return decoder
	},
}

// NewReader returns a pooled zstd stream decoder over r. Close returns it to the pool.
func (ZstdDecompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	if err := decoder.Reset(r); err != nil {
		zstdDecoderPool.Put(decoder)
		return nil, fmt.Errorf("zstd header: %w", err)
	}

	return &zstdReadCloser{Decoder: decoder}, nil
}

type zstdReadCloser struct {
	*zstd.Decoder
	once sync.Once
}

func (c *zstdReadCloser) Close() error {
	c.once.Do(func() {
		_ = c.Decoder.Reset(nil)
		zstdDecoderPool.Put(c.Decoder)
	})

	return nil
}
