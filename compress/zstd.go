package compress

// ZstdDecompressor reads Zstandard frames.
//
// The default build uses the pure Go decoder from klauspost/compress with pooled
// decoders. Building with -tags gozstd (and cgo enabled) switches to the
// libzstd binding from valyala/gozstd.
type ZstdDecompressor struct{}

var _ Decompressor = (*ZstdDecompressor)(nil)

// NewZstdDecompressor creates a Zstandard decompressor.
func NewZstdDecompressor() ZstdDecompressor {
	return ZstdDecompressor{}
}
