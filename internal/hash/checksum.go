package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Checksum computes the xxHash64 of a raw buffer.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Combine folds several checksums into one. Order matters.
func Combine(sums ...uint64) uint64 {
	d := xxhash.New()
	var b [8]byte
	for _, s := range sums {
		binary.BigEndian.PutUint64(b[:], s)
		_, _ = d.Write(b[:])
	}

	return d.Sum64()
}
