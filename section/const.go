package section

// Header sizes and field offsets of IDX files. All fields are big-endian uint32.
const (
	LabelHeaderSize = 8  // magic, count
	ImageHeaderSize = 16 // magic, count, height, width

	MagicOffset  = 0  // byte offset of the magic number
	CountOffset  = 4  // byte offset of the item count
	HeightOffset = 8  // byte offset of the image height (rows); precedes width on disk
	WidthOffset  = 12 // byte offset of the image width (columns)
)

// MaxImageSize bounds Width*Height of one image plane so that pixel offsets
// stay within int on every platform.
const MaxImageSize = 1<<31 - 1
