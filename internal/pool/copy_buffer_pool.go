package pool

import (
	"io"
	"sync"
)

// CopyBufferSize is the size of buffers handed out for streaming copies.
// Large enough to amortize syscalls on 10-50MB dataset files.
const CopyBufferSize = 1024 * 256 // 256KiB

var copyBufferPool = sync.Pool{
	New: func() any {
		b := make([]byte, CopyBufferSize)
		return &b
	},
}

// GetCopyBuffer retrieves a CopyBufferSize byte slice from the pool.
//
// The caller must call the returned cleanup function to return the slice to the pool.
//
// Example:
//
//	buf, cleanup := pool.GetCopyBuffer()
//	defer cleanup()
//	_, err := io.CopyBuffer(dst, src, buf)
func GetCopyBuffer() ([]byte, func()) {
	ptr, _ := copyBufferPool.Get().(*[]byte)
	buf := (*ptr)[:CopyBufferSize]

	return buf, func() { copyBufferPool.Put(ptr) }
}

// Copy copies src to dst through a pooled buffer and returns the bytes written.
//
// ReaderFrom/WriterTo fast paths are bypassed so every chunk passes through
// the pooled buffer and through any wrapping reader (progress, rate limits).
func Copy(dst io.Writer, src io.Reader) (int64, error) {
	buf, cleanup := GetCopyBuffer()
	defer cleanup()

	return io.CopyBuffer(writerOnly{dst}, readerOnly{src}, buf)
}

type writerOnly struct{ io.Writer }

type readerOnly struct{ io.Reader }
