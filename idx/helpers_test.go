package idx

import (
	"encoding/binary"
	"math/rand/v2"
)

// labelFile builds an IDX label buffer with the given header values and payload.
func labelFile(magic, count uint32, payload []byte) []byte {
	b := make([]byte, 0, 8+len(payload))
	b = binary.BigEndian.AppendUint32(b, magic)
	b = binary.BigEndian.AppendUint32(b, count)

	return append(b, payload...)
}

// imageFile builds an IDX image buffer. Header order is magic, count, height, width.
func imageFile(magic, count, height, width uint32, payload []byte) []byte {
	b := make([]byte, 0, 16+len(payload))
	b = binary.BigEndian.AppendUint32(b, magic)
	b = binary.BigEndian.AppendUint32(b, count)
	b = binary.BigEndian.AppendUint32(b, height)
	b = binary.BigEndian.AppendUint32(b, width)

	return append(b, payload...)
}

func randomBytes(seed uint64, n int) []byte {
	r := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(r.UintN(256))
	}

	return b
}
