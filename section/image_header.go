package section

import (
	"fmt"

	"github.com/arloliu/idxset/endian"
	"github.com/arloliu/idxset/errs"
	"github.com/arloliu/idxset/format"
)

// ImageHeader represents the fixed-size header at the start of an IDX image file.
//
// The on-disk order is magic, count, height, width. Height comes before width.
type ImageHeader struct {
	// Magic identifies element type and dimensions. byte offset 0-3
	Magic uint32
	// Count is the number of images that follow the header. byte offset 4-7
	Count uint32
	// Height is the number of pixel rows per image. byte offset 8-11
	Height uint32
	// Width is the number of pixel columns per image. byte offset 12-15
	Width uint32
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be exactly 16 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 16 bytes, ErrInvalidImageSize
//     if Width*Height exceeds MaxImageSize
func (h *ImageHeader) Parse(data []byte) error {
	if len(data) != ImageHeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	engine := endian.GetIDXEngine()
	h.Magic = endian.Uint32At(engine, data, MagicOffset)
	h.Count = endian.Uint32At(engine, data, CountOffset)
	h.Height = endian.Uint32At(engine, data, HeightOffset)
	h.Width = endian.Uint32At(engine, data, WidthOffset)

	if uint64(h.Width)*uint64(h.Height) > MaxImageSize {
		return fmt.Errorf("%w: %dx%d exceeds %d bytes", errs.ErrInvalidImageSize, h.Height, h.Width, MaxImageSize)
	}

	return nil
}

// ImageSize returns the number of bytes in one image plane (width*height).
func (h *ImageHeader) ImageSize() int {
	return int(h.Width) * int(h.Height)
}

// DataType returns the element type encoded in the magic number.
func (h *ImageHeader) DataType() format.DataType {
	return format.MagicDataType(h.Magic)
}

// ParseImageHeader parses an ImageHeader from the start of a byte slice.
//
// Bytes after the header are ignored; the magic number is not validated.
//
// Returns:
//   - ImageHeader: Parsed header struct
//   - error: ErrInvalidHeaderSize if data is shorter than 16 bytes,
//     ErrInvalidImageSize if one image plane exceeds MaxImageSize
func ParseImageHeader(data []byte) (ImageHeader, error) {
	if len(data) < ImageHeaderSize {
		return ImageHeader{}, errs.ErrInvalidHeaderSize
	}

	h := ImageHeader{}
	if err := h.Parse(data[:ImageHeaderSize]); err != nil {
		return ImageHeader{}, err
	}

	return h, nil
}
