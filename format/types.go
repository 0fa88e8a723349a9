package format

type (
	DataType        uint8
	CompressionType uint8
)

// IDX element type codes, stored in the third byte of the magic number.
const (
	TypeUint8   DataType = 0x08 // TypeUint8 represents unsigned bytes.
	TypeInt8    DataType = 0x09 // TypeInt8 represents signed bytes.
	TypeInt16   DataType = 0x0B // TypeInt16 represents 16-bit integers.
	TypeInt32   DataType = 0x0C // TypeInt32 represents 32-bit integers.
	TypeFloat32 DataType = 0x0D // TypeFloat32 represents 32-bit floats.
	TypeFloat64 DataType = 0x0E // TypeFloat64 represents 64-bit floats.
)

// Well-known magic numbers of the MNIST family.
const (
	MagicLabels uint32 = 0x00000801 // MagicLabels is the magic of a 1-D unsigned byte label file (2049).
	MagicImages uint32 = 0x00000803 // MagicImages is the magic of a 3-D unsigned byte image file (2051).
)

// Source file compression. The decoders always operate on inflated bytes.
const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents an uncompressed source file.
	CompressionGzip CompressionType = 0x2 // CompressionGzip represents gzip, the format MNIST mirrors publish.
	CompressionZstd CompressionType = 0x3 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x4 // CompressionS2 represents S2 stream compression.
	CompressionLZ4  CompressionType = 0x5 // CompressionLZ4 represents LZ4 frame compression.
)

// MagicDataType returns the element type encoded in an IDX magic number.
func MagicDataType(magic uint32) DataType {
	return DataType(magic >> 8)
}

// MagicDims returns the number of dimensions encoded in an IDX magic number.
func MagicDims(magic uint32) int {
	return int(magic & 0xFF)
}

// Size returns the element size in bytes, or 0 for an unknown type.
func (d DataType) Size() int {
	switch d {
	case TypeUint8, TypeInt8:
		return 1
	case TypeInt16:
		return 2
	case TypeInt32, TypeFloat32:
		return 4
	case TypeFloat64:
		return 8
	default:
		return 0
	}
}

func (d DataType) String() string {
	switch d {
	case TypeUint8:
		return "Uint8"
	case TypeInt8:
		return "Int8"
	case TypeInt16:
		return "Int16"
	case TypeInt32:
		return "Int32"
	case TypeFloat32:
		return "Float32"
	case TypeFloat64:
		return "Float64"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
