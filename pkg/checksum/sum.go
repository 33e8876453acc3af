package checksum

// Sum8 returns the two's-complement sum of all bytes modulo 2^8.
func Sum8(data []byte) uint8 {
	var sum uint8
	for _, b := range data {
		sum += b
	}
	return sum
}

// Sum16 sums big-endian 2-byte groups modulo 2^16, without carry folding.
// A trailing lone byte counts as the high byte of a final group.
func Sum16(data []byte) uint16 {
	var sum uint16
	n := len(data) &^ 1
	for i := 0; i < n; i += 2 {
		sum += uint16(data[i])<<8 | uint16(data[i+1])
	}
	if n < len(data) {
		sum += uint16(data[n]) << 8
	}
	return sum
}

// Sum32 sums big-endian 4-byte groups modulo 2^32. A trailing partial group
// is high-aligned, as if the input were zero-padded past its end.
func Sum32(data []byte) uint32 {
	var sum uint32
	n := len(data) &^ 3
	for i := 0; i < n; i += 4 {
		sum += uint32(data[i])<<24 | uint32(data[i+1])<<16 |
			uint32(data[i+2])<<8 | uint32(data[i+3])
	}
	var tail uint32
	for i, b := range data[n:] {
		tail |= uint32(b) << (24 - 8*i)
	}
	return sum + tail
}

// Sum64 sums big-endian 8-byte groups modulo 2^64. A trailing partial group
// is high-aligned, as if the input were zero-padded past its end.
func Sum64(data []byte) uint64 {
	var sum uint64
	n := len(data) &^ 7
	for i := 0; i < n; i += 8 {
		sum += uint64(data[i])<<56 | uint64(data[i+1])<<48 |
			uint64(data[i+2])<<40 | uint64(data[i+3])<<32 |
			uint64(data[i+4])<<24 | uint64(data[i+5])<<16 |
			uint64(data[i+6])<<8 | uint64(data[i+7])
	}
	var tail uint64
	for i, b := range data[n:] {
		tail |= uint64(b) << (56 - 8*i)
	}
	return sum + tail
}
