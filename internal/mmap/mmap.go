// Package mmap maps dataset files read-only so decoders can borrow views of
// the file contents without copying them onto the Go heap.
//
// On platforms without mmap support the file is read into memory instead; the
// API is identical either way.
//
// A Mapping is safe for concurrent reads. Slices obtained from Bytes must not
// be used after Close returns.
package mmap

import (
	"os"
	"sync/atomic"

	"github.com/arloliu/idxset/errs"
)

// Mapping is a read-only view of a whole file.
type Mapping struct {
	data   []byte
	closed atomic.Bool
	unmap  func([]byte) error
}

// Open maps the file at path into memory.
func Open(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	size := fi.Size()
	if size == 0 {
		return &Mapping{}, nil
	}

	data, unmap, err := osMap(f, int(size))
	if err != nil {
		return nil, err
	}

	return &Mapping{data: data, unmap: unmap}, nil
}

// Bytes returns the mapped contents, or nil after Close.
func (m *Mapping) Bytes() []byte {
	if m.closed.Load() {
		return nil
	}

	return m.data
}

// Len returns the mapped size in bytes.
func (m *Mapping) Len() int {
	return len(m.data)
}

// Close releases the mapping. Closing an already closed Mapping returns
// errs.ErrClosed.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) {
		return errs.ErrClosed
	}
	if m.unmap != nil && m.data != nil {
		return m.unmap(m.data)
	}

	return nil
}
