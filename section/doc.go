// Package section defines the fixed-size headers of IDX files.
//
// This package provides the header types and offsets that define the physical
// layout of IDX label and image files. Headers are parsed with explicit
// big-endian reads regardless of the host byte order.
//
// # File Structure
//
// Label file (magic 2049 = 0x00000801):
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (8 bytes, fixed)                                 │
//	│  - Magic (4 bytes)                                      │
//	│  - Count (4 bytes)                                      │
//	├─────────────────────────────────────────────────────────┤
//	│ Labels (Count × 1 byte)                                 │
//	└─────────────────────────────────────────────────────────┘
//
// Image file (magic 2051 = 0x00000803):
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (16 bytes, fixed)                                │
//	│  - Magic (4 bytes)                                      │
//	│  - Count (4 bytes)                                      │
//	│  - Height (4 bytes), rows                               │
//	│  - Width (4 bytes), columns                             │
//	├─────────────────────────────────────────────────────────┤
//	│ Pixels (Count × Height × Width bytes, row-major)        │
//	└─────────────────────────────────────────────────────────┘
//
// Height precedes width on disk. Image i starts at byte 16 + i*Height*Width.
//
// # Magic Number
//
//	Byte   | Meaning
//	-------|----------------------------------------
//	0-1    | Always zero
//	2      | Element type (0x08 = unsigned byte)
//	3      | Number of dimensions (1 labels, 3 images)
//
// Use format.MagicDataType and format.MagicDims to split a magic value. The
// parsers here do not reject unexpected magic values; callers decide.
//
// # Usage Examples
//
//	header, err := section.ParseImageHeader(data)
//	if err != nil {
//	    return err // errs.ErrInvalidHeaderSize
//	}
//	pixels := data[section.ImageHeaderSize : section.ImageHeaderSize+header.ImageSize()]
package section
