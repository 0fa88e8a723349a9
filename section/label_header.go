package section

import (
	"github.com/arloliu/idxset/endian"
	"github.com/arloliu/idxset/errs"
	"github.com/arloliu/idxset/format"
)

// LabelHeader represents the fixed-size header at the start of an IDX label file.
type LabelHeader struct {
	// Magic identifies element type and dimensions. byte offset 0-3
	Magic uint32
	// Count is the number of labels that follow the header. byte offset 4-7
	Count uint32
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be exactly 8 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 8 bytes
func (h *LabelHeader) Parse(data []byte) error {
	if len(data) != LabelHeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	engine := endian.GetIDXEngine()
	h.Magic = endian.Uint32At(engine, data, MagicOffset)
	h.Count = endian.Uint32At(engine, data, CountOffset)

	return nil
}

// DataType returns the element type encoded in the magic number.
func (h *LabelHeader) DataType() format.DataType {
	return format.MagicDataType(h.Magic)
}

// ParseLabelHeader parses a LabelHeader from the start of a byte slice.
//
// Bytes after the header are ignored; the magic number is not validated.
//
// Returns:
//   - LabelHeader: Parsed header struct
//   - error: ErrInvalidHeaderSize if data is shorter than 8 bytes
func ParseLabelHeader(data []byte) (LabelHeader, error) {
	if len(data) < LabelHeaderSize {
		return LabelHeader{}, errs.ErrInvalidHeaderSize
	}

	h := LabelHeader{}
	if err := h.Parse(data[:LabelHeaderSize]); err != nil {
		return LabelHeader{}, err
	}

	return h, nil
}
