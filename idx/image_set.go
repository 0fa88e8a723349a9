package idx

import (
	"image"
	"iter"
	"log/slog"

	"github.com/arloliu/idxset/internal/hash"
	"github.com/arloliu/idxset/section"
)

// ImageSet is a decoded IDX image file: a 16-byte header followed by Count
// single-channel planes of Height*Width bytes, row-major, one byte per pixel.
type ImageSet struct {
	header section.ImageHeader
	data   []byte
	logger *slog.Logger
}

// NewImageSet decodes the header of an IDX image file and takes ownership of data.
//
// The payload length is not checked against the header.
//
// Parameters:
//   - data: Complete file contents; must not be modified afterwards
//   - opts: Optional configuration (WithLogger)
//
// Returns:
//   - *ImageSet: Decoder over data
//   - error: errs.ErrInvalidHeaderSize if data is shorter than 16 bytes,
//     errs.ErrInvalidImageSize if Width*Height exceeds section.MaxImageSize, or an option error
func NewImageSet(data []byte, opts ...Option) (*ImageSet, error) {
	cfg, err := newDecoderConfig(opts)
	if err != nil {
		return nil, err
	}

	header, err := section.ParseImageHeader(data)
	if err != nil {
		return nil, err
	}

	return &ImageSet{header: header, data: data, logger: cfg.logger}, nil
}

// Magic returns the magic number from the header.
func (s *ImageSet) Magic() uint32 {
	return s.header.Magic
}

// Count returns the image count from the header.
func (s *ImageSet) Count() uint32 {
	return s.header.Count
}

// Width returns the number of pixel columns per image.
func (s *ImageSet) Width() int {
	return int(s.header.Width)
}

// Height returns the number of pixel rows per image.
func (s *ImageSet) Height() int {
	return int(s.header.Height)
}

// ImageSize returns the number of bytes per image (Width*Height).
func (s *ImageSet) ImageSize() int {
	return s.header.ImageSize()
}

// Len returns the size of the underlying buffer in bytes, header included.
func (s *ImageSet) Len() int {
	return len(s.data)
}

// Get returns the raw pixels of image index, exactly ImageSize bytes.
//
// It reports false when index >= Count. If the image would extend past the end
// of the buffer, a diagnostic is logged and it reports false.
func (s *ImageSet) Get(index uint32) ([]byte, bool) {
	if index >= s.header.Count {
		return nil, false
	}

	size := s.header.ImageSize()
	start := section.ImageHeaderSize + int(index)*size
	end := start + size

	if end > len(s.data) {
		s.logger.Error("image exceeds buffer",
			"index", index,
			"start", start,
			"end", end,
			"len", len(s.data),
		)

		return nil, false
	}

	return s.data[start:end:end], true
}

// GetBatch returns batch number index: up to batchSize images packed
// contiguously, starting at image index*batchSize. Callers reshape the result.
//
// It reports false when index >= Count or when the batch would start at or
// past the end of the buffer. The last batch is clamped to the buffer end.
func (s *ImageSet) GetBatch(index, batchSize uint32) ([]byte, bool) {
	if index >= s.header.Count {
		return nil, false
	}

	batchBytes := int(batchSize) * s.header.ImageSize()

	return sliceBatch(s.data, section.ImageHeaderSize, int(index), batchBytes)
}

// BatchCount returns the number of batch indices for which GetBatch returns a
// non-empty batch. It is zero when batchSize is zero.
func (s *ImageSet) BatchCount(batchSize uint32) uint32 {
	return batchCount(s.header.Count, batchSize, s.header.ImageSize(), len(s.data)-section.ImageHeaderSize)
}

// All iterates over every complete image in index order and stops at the
// first image that does not fit in the buffer.
func (s *ImageSet) All() iter.Seq2[uint32, []byte] {
	return func(yield func(uint32, []byte) bool) {
		for i := range s.header.Count {
			pixels, ok := s.Get(i)
			if !ok || !yield(i, pixels) {
				return
			}
		}
	}
}

// Batches iterates over consecutive batches of batchSize images.
func (s *ImageSet) Batches(batchSize uint32) iter.Seq2[uint32, []byte] {
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

// Gray returns image index as an *image.Gray whose Pix borrows the buffer.
// The returned image must not be modified.
func (s *ImageSet) Gray(index uint32) (*image.Gray, bool) {
	pixels, ok := s.Get(index)
	if !ok {
		return nil, false
	}

	return &image.Gray{
		Pix:    pixels,
		Stride: s.Width(),
		Rect:   image.Rect(0, 0, s.Width(), s.Height()),
	}, true
}

// Checksum returns the xxHash64 of the whole buffer.
func (s *ImageSet) Checksum() uint64 {
	return hash.Checksum(s.data)
}
