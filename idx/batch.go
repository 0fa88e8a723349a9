// sliceBatch returns batch index of batchBytes bytes from the payload that
// follows a headerSize-byte header, clamped to the end of data. A batch
// starting at or past the end of data is absent.
func sliceBatch(data []byte, headerSize, index, batchBytes int) ([]byte, bool) {
	payload := len(data) - headerSize
	if payload <= 0 {
		return nil, false
	}
	// index*batchBytes < payload, checked without multiplying.
	if batchBytes > 0 && index > (payload-1)/batchBytes {
		return nil, false
	}

	start := headerSize + index*batchBytes
	end := start + min(batchBytes, len(data)-start)

	return data[start:end:end], true
}

// batchCount returns how many batch indices yield a non-empty batch: index
// must be below count and the batch must start inside the payload.
func batchCount(count, batchSize uint32, itemSize, payload int) uint32 {
	if batchSize == 0 || itemSize == 0 || payload <= 0 {
		return 0
	}

	byCount := (int(count) + int(batchSize) - 1) / int(batchSize)
	batchBytes := int(batchSize) * itemSize
	byPayload := payload / batchBytes
	if payload%batchBytes != 0 {
		byPayload++
	}

	return uint32(min(byCount, byPayload))
}
