// Package compress inflates compressed dataset source files.
//
// Dataset mirrors publish IDX files compressed, most commonly with gzip. The
// decoders in package idx only operate on inflated bytes, so loading a dataset
// first runs DecompressFile once per source file.
//
// # Supported Algorithms
//
// The compression is detected from the file extension:
//
//	.gz       format.CompressionGzip  klauspost/compress/gzip
//	.zst      format.CompressionZstd  klauspost/compress/zstd (valyala/gozstd with -tags gozstd)
//	.s2, .sz  format.CompressionS2    klauspost/compress/s2 stream format
//	.lz4      format.CompressionLZ4   pierrec/lz4/v4 frame format
//	other     format.CompressionNone  copied as-is
//
// # Architecture
//
// Every algorithm implements one interface:
//
//	type Decompressor interface {
//	    NewReader(r io.Reader) (io.ReadCloser, error)
//	}
//
// Decompressors are stateless values and safe for concurrent use; each call to
// NewReader returns an independent stream.
//
// # Idempotence
//
// DecompressFile is a no-op when its destination already exists. Output is
// written to a temp file in the destination directory and renamed into place
// only after the stream was fully inflated, so an interrupted run never leaves
// a truncated destination behind that a later run would mistake for a
// finished one.
//
//	err := compress.DecompressFile(ctx, "datasets/train-images-idx3-ubyte.gz",
//	    "datasets/train-images-idx3-ubyte", logger)
package compress
