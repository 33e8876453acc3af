package checksum

// Fletcher checksums: two running sums bounded modulo 2^(W/2)-1, sum2
// accumulating snapshots of sum1, packed with sum2 in the high half. The
// 8-bit variant runs over 4-bit nibbles, the 16-bit variant over bytes and
// the 32-bit variant over big-endian 16-bit words.

// Fletcher16 and Fletcher32 defer the modulus across a block of terms. The
// block limits below bound the worst case of both sums entering a block at
// base-1 and every term being maximal; they are functions of the Go
// accumulator widths and must be recomputed if the accumulators change.

// Worst case for a uint32 accumulator and byte terms:
// 254 + 254*n + 255*n*(n+1)/2 <= 2^32-1 holds for n = 5802.
const fletcher16BlockLimit = 5802

// Worst case for a uint64 accumulator and 16-bit word terms leaves room for
// tens of millions of words; 23726746 bytes (11863373 words) is safely
// inside. Kept even so a lone trailing byte only appears after all blocks.
const fletcher32BlockLimit = 23726746

// Fletcher8 accumulates 4-bit nibbles, most significant nibble first,
// modulo 15. The modulus is deferred across the two nibbles of each byte.
func Fletcher8(data []byte) uint8 {
	const base = 15
	var sum1, sum2 uint32
	for _, b := range data {
		sum1 += uint32(b >> 4)
		sum2 += sum1
		sum1 = (sum1 + uint32(b&0x0f)) % base
		sum2 = (sum2 + sum1) % base
	}
	return uint8(sum2<<4 | sum1)
}

// Fletcher16 is the classic Fletcher checksum: byte terms modulo 255.
func Fletcher16(data []byte) uint16 {
	const base = 255
	var sum1, sum2 uint32
	for len(data) > 0 {
		n := min(len(data), fletcher16BlockLimit)
		block := data[:n]
		data = data[n:]
		for _, b := range block {
			sum1 += uint32(b)
			sum2 += sum1
		}
		sum1 %= base
		sum2 %= base
	}
	return uint16(sum2)<<8 | uint16(sum1)
}

// Fletcher32 accumulates big-endian 16-bit words modulo 65535. An
// odd-length input is implicitly zero-padded at the low byte of a final
// word.
func Fletcher32(data []byte) uint32 {
	const base = 65535
	var sum1, sum2 uint64
	n := len(data) &^ 1
	tail := data[n:]
	data = data[:n]
	for len(data) > 0 {
		bl := min(len(data), fletcher32BlockLimit)
		block := data[:bl]
		data = data[bl:]
		for len(block) > 0 {
			sum1 += uint64(block[0])<<8 | uint64(block[1])
			sum2 += sum1
			block = block[2:]
		}
		sum1 %= base
		sum2 %= base
	}
	if len(tail) == 1 {
		sum1 = (sum1 + uint64(tail[0])<<8) % base
		sum2 = (sum2 + sum1) % base
	}
	return uint32(sum2)<<16 | uint32(sum1)
}
