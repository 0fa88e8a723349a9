// Package endian provides the byte order used by IDX headers.
//
// IDX files store every header field as an unsigned 32-bit big-endian integer,
// independent of the host byte order. This package wraps encoding/binary so that
// header parsers read fields by explicit byte offset instead of overlaying a Go
// struct on the raw bytes, which keeps the on-disk field order visible in code.
//
// # Basic Usage
//
//	engine := endian.GetIDXEngine()
//	count := endian.Uint32At(engine, data, 4)
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetIDXEngine returns the engine for IDX header fields (big-endian).
func GetIDXEngine() EndianEngine {
	return binary.BigEndian
}

// Uint32At reads the 32-bit field that starts at byte offset off.
//
// Panics if data does not hold 4 bytes at off; callers check header size first.
func Uint32At(engine EndianEngine, data []byte, off int) uint32 {
	return engine.Uint32(data[off : off+4])
}
