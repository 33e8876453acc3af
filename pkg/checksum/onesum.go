package checksum

// One's-complement sums with end-around carry. OneSum16 is the internet
// checksum of RFC 1071. The optimized forms accumulate a bounded block of
// terms before folding carries back in; the block limits below are derived
// from the Go accumulator widths and must be recomputed if the accumulators
// change.

// A fully folded sum fits the target width, so a block of n terms pushes the
// uint32 accumulator to at most 0xff + n*0xff; n = 16843008 keeps that
// under 2^32-1.
const onesum8BlockLimit = 16843008

// 16-bit groups in a uint32 accumulator: 0xffff + g*0xffff <= 2^32-1 holds
// for g = 65536 groups, i.e. 131072 bytes. The limit must stay even so a
// lone trailing byte can only appear in the final block.
const onesum16BlockLimit = 131072

// 32-bit groups in a uint64 accumulator would allow 2^32 groups; 1<<30
// bytes stays comfortably inside that and fits int on 32-bit hosts. Must be
// a multiple of 4.
const onesum32BlockLimit = 1 << 30

// OneSum8 returns the one's-complement sum of all bytes, complemented.
func OneSum8(data []byte) uint8 {
	var sum uint32
	for len(data) > 0 {
		n := min(len(data), onesum8BlockLimit)
		block := data[:n]
		data = data[n:]
		for _, b := range block {
			sum += uint32(b)
		}
		for sum>>8 != 0 {
			sum = sum>>8 + sum&0xff
		}
	}
	return ^uint8(sum)
}

// OneSum8Textbook folds the carry after every byte. Oracle for OneSum8.
func OneSum8Textbook(data []byte) uint8 {
	var sum uint32
	for _, b := range data {
		sum += uint32(b)
		sum = sum>>8 + sum&0xff
	}
	return ^uint8(sum)
}

// OneSum16 is the internet checksum (RFC 1071): one's-complement sum of
// big-endian 16-bit groups, complemented. An odd trailing byte is the high
// byte of a final group with an implicit zero low byte.
//
// The complement makes a stream with the checksum appended sum to zero, but
// only when the checksum starts on an even byte boundary.
func OneSum16(data []byte) uint16 {
	var sum uint32
	for len(data) > 0 {
		n := min(len(data), onesum16BlockLimit)
		block := data[:n]
		data = data[n:]
		for len(block) > 1 {
			sum += uint32(block[0])<<8 | uint32(block[1])
			block = block[2:]
		}
		if len(block) == 1 {
			sum += uint32(block[0]) << 8
		}
		for sum>>16 != 0 {
			sum = sum>>16 + sum&0xffff
		}
	}
	return ^uint16(sum)
}

// OneSum16Textbook folds the carry after every group. Oracle for OneSum16.
func OneSum16Textbook(data []byte) uint16 {
	var sum uint32
	for len(data) > 1 {
		sum += uint32(data[0])<<8 | uint32(data[1])
		sum = sum>>16 + sum&0xffff
		data = data[2:]
	}
	if len(data) == 1 {
		sum += uint32(data[0]) << 8
		sum = sum>>16 + sum&0xffff
	}
	return ^uint16(sum)
}

// OneSum32 is the 32-bit one's-complement sum over big-endian 4-byte
// groups, complemented. A trailing partial group is high-aligned.
func OneSum32(data []byte) uint32 {
	var sum uint64
	for len(data) > 0 {
		n := min(len(data), onesum32BlockLimit)
		block := data[:n]
		data = data[n:]
		for len(block) > 3 {
			sum += uint64(block[0])<<24 | uint64(block[1])<<16 |
				uint64(block[2])<<8 | uint64(block[3])
			block = block[4:]
		}
		var tail uint64
		for i, b := range block {
			tail |= uint64(b) << (24 - 8*i)
		}
		sum += tail
		for sum>>32 != 0 {
			sum = sum>>32 + sum&0xffffffff
		}
	}
	return ^uint32(sum)
}

// OneSum32Textbook folds the carry after every group. Oracle for OneSum32.
func OneSum32Textbook(data []byte) uint32 {
	var sum uint64
	for len(data) > 3 {
		sum += uint64(data[0])<<24 | uint64(data[1])<<16 |
			uint64(data[2])<<8 | uint64(data[3])
		sum = sum>>32 + sum&0xffffffff
		data = data[4:]
	}
	var tail uint64
	for i, b := range data {
		tail |= uint64(b) << (24 - 8*i)
	}
	sum += tail
	for sum>>32 != 0 {
		sum = sum>>32 + sum&0xffffffff
	}
	return ^uint32(sum)
}
