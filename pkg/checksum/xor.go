package checksum

// XOR checksums. For widths above one byte the input is treated as
// interleaved lanes: every W/8-th byte XORs into the same single-byte
// accumulator, and the lanes concatenate into the result. A trailing
// partial group only touches the leading lanes; the remaining lanes keep
// their accumulated value.

// XOR8 XORs all bytes into one accumulator.
func XOR8(data []byte) uint8 {
	var sum uint8
	for _, b := range data {
		sum ^= b
	}
	return sum
}

// XOR16 XORs even-indexed bytes into the high lane and odd-indexed bytes
// into the low lane.
func XOR16(data []byte) uint16 {
	var hi, lo uint8
	n := len(data) &^ 1
	for i := 0; i < n; i += 2 {
		hi ^= data[i]
		lo ^= data[i+1]
	}
	if n < len(data) {
		hi ^= data[n]
	}
	return uint16(hi)<<8 | uint16(lo)
}

// XOR32 runs four interleaved lanes.
func XOR32(data []byte) uint32 {
	var lane [4]uint8
	n := len(data) &^ 3
	for i := 0; i < n; i += 4 {
		lane[0] ^= data[i]
		lane[1] ^= data[i+1]
		lane[2] ^= data[i+2]
		lane[3] ^= data[i+3]
	}
	for i, b := range data[n:] {
		lane[i] ^= b
	}
	return uint32(lane[0])<<24 | uint32(lane[1])<<16 |
		uint32(lane[2])<<8 | uint32(lane[3])
}

// XOR64 runs eight interleaved lanes.
func XOR64(data []byte) uint64 {
	var lane [8]uint8
	n := len(data) &^ 7
	for i := 0; i < n; i += 8 {
		lane[0] ^= data[i]
		lane[1] ^= data[i+1]
		lane[2] ^= data[i+2]
		lane[3] ^= data[i+3]
		lane[4] ^= data[i+4]
		lane[5] ^= data[i+5]
		lane[6] ^= data[i+6]
		lane[7] ^= data[i+7]
	}
	for i, b := range data[n:] {
		lane[i] ^= b
	}
	return uint64(lane[0])<<56 | uint64(lane[1])<<48 |
		uint64(lane[2])<<40 | uint64(lane[3])<<32 |
		uint64(lane[4])<<24 | uint64(lane[5])<<16 |
		uint64(lane[6])<<8 | uint64(lane[7])
}
