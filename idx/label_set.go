package idx

import (
	"iter"

	"github.com/arloliu/idxset/internal/hash"
	"github.com/arloliu/idxset/section"
)

// LabelSet is a decoded IDX label file: an 8-byte header followed by one byte per label.
type LabelSet struct {
	header section.LabelHeader
	data   []byte
}

// NewLabelSet decodes the header of an IDX label file and takes ownership of data.
//
// The payload length is not checked against the header count.
//
// Parameters:
//   - data: Complete file contents; must not be modified afterwards
//
// Returns:
//   - *LabelSet: Decoder over data
//   - error: errs.ErrInvalidHeaderSize if data is shorter than 8 bytes
func NewLabelSet(data []byte) (*LabelSet, error) {
	header, err := section.ParseLabelHeader(data)
	if err != nil {
		return nil, err
	}

	return &LabelSet{header: header, data: data}, nil
}

// Magic returns the magic number from the header.
func (s *LabelSet) Magic() uint32 {
	return s.header.Magic
}

// Count returns the label count from the header.
func (s *LabelSet) Count() uint32 {
	return s.header.Count
}

// Len returns the size of the underlying buffer in bytes, header included.
func (s *LabelSet) Len() int {
	return len(s.data)
}

// Get returns the label at index.
//
// It reports false when index >= Count. It panics if the buffer is truncated
// before the requested label.
func (s *LabelSet) Get(index uint32) (byte, bool) {
	if index >= s.header.Count {
		return 0, false
	}

	return s.data[section.LabelHeaderSize+int(index)], true
}

// GetBatch returns batch number index: up to batchSize labels starting at
// label index*batchSize.
//
// It reports false when index >= Count or when the batch would start at or
// past the end of the buffer. The last batch is clamped to the buffer end.
func (s *LabelSet) GetBatch(index, batchSize uint32) ([]byte, bool) {
	if index >= s.header.Count {
		return nil, false
	}

	return sliceBatch(s.data, section.LabelHeaderSize, int(index), int(batchSize))
}

// BatchCount returns the number of batch indices for which GetBatch returns a
// non-empty batch. It is zero when batchSize is zero.
func (s *LabelSet) BatchCount(batchSize uint32) uint32 {
	return batchCount(s.header.Count, batchSize, 1, len(s.data)-section.LabelHeaderSize)
}

// All iterates over every label in index order.
func (s *LabelSet) All() iter.Seq2[uint32, byte] {
	return func(yield func(uint32, byte) bool) {
		for i := range s.header.Count {
			label, _ := s.Get(i)
			if !yield(i, label) {
				return
			}
		}
	}
}

// Batches iterates over consecutive batches of batchSize labels.
func (s *LabelSet) Batches(batchSize uint32) iter.Seq2[uint32, []byte] {
	return func(yield func(uint32, []byte) bool) {
		n := s.BatchCount(batchSize)
		for i := range n {
			batch, _ := s.GetBatch(i, batchSize)
			if !yield(i, batch) {
				return
			}
		}
	}
}

// Checksum returns the xxHash64 of the whole buffer.
func (s *LabelSet) Checksum() uint64 {
	return hash.Checksum(s.data)
}

// Classes builds a per-label index of sample positions.
//
// Labels beyond the end of a truncated buffer are skipped.
func (s *LabelSet) Classes() *ClassIndex {
	payload := s.data[section.LabelHeaderSize:]
	n := min(int(s.header.Count), len(payload))

	return newClassIndex(payload[:n])
}
