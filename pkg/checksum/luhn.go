package checksum

import "math"

// Luhn's mod-N checksum, generalized from the classic base-10 credit card
// check digit to an arbitrary base. Input bytes must be digits of the base
// (values 0..base-1); base 0 means base 256 and admits any byte. The
// returned checksum, appended to the input, makes the weighted digit sum
// come out to 0 mod base.

// Luhn computes the mod-N check value over data. The rightmost byte always
// carries weight 2, weights alternating 2, 1 leftward from there. Doubled
// terms are always below 2*base, so their digit sum reduces by a single
// subtraction of base-1 instead of division.
func Luhn(data []byte, base uint8) uint8 {
	b := uint32(base)
	if b == 0 {
		b = 256
	}
	if b == 1 {
		// every value is congruent to 0 mod 1
		return 0
	}

	// Defer the modulus across a block of pairs. After a block the sum is
	// below b, and each pair adds at most 2*(b-1), so the uint32
	// accumulator holds blockLimit/2 pairs when
	// (b-1) + blockLimit*(b-1) <= 2^32-1. Kept even so the single
	// odd-length leftover is handled outside the pair loop.
	blockLimit := (uint32(math.MaxUint32)/(2*(b-1)) - 1) &^ 1

	var sum uint32
	i := len(data)
	n := uint32(len(data)) &^ 1
	// Walk backward from the end so the pair loop always starts on a
	// weight-2 term.
	for n > 0 {
		bl := min(n, blockLimit)
		n -= bl
		for ; bl > 0; bl -= 2 {
			addend := uint32(data[i-1]) * 2
			if addend >= b {
				addend -= b - 1
			}
			sum += addend
			// weight-1 terms are already digits, no reduction needed
			sum += uint32(data[i-2])
			i -= 2
		}
		sum %= b
	}
	// leftover leftmost byte of an odd-length input, weight 2
	if len(data)&1 == 1 {
		addend := uint32(data[0]) * 2
		if addend >= b {
			addend -= b - 1
		}
		sum += addend
		if sum >= b {
			sum -= b
		}
	}
	return uint8((b - sum) % b)
}

// LuhnTextbook computes the same check value with an explicit division and
// modulus for every byte. Oracle for Luhn; far slower.
func LuhnTextbook(data []byte, base uint8) uint8 {
	b := uint32(base)
	if b == 0 {
		b = 256
	}
	// the rightmost byte must get weight 2: start at 2 for odd lengths
	factor := uint32(1)
	if len(data)&1 == 1 {
		factor = 2
	}
	var sum uint32
	for _, d := range data {
		addend := factor * uint32(d)
		sum += addend/b + addend%b
		sum %= b
		if factor == 2 {
			factor = 1
		} else {
			factor = 2
		}
	}
	return uint8((b - sum) % b)
}

// Luhn256 is the base-256 specialization. Eight-bit wraparound does the
// modulus for free, so the general block machinery drops away.
func Luhn256(data []byte) uint8 {
	var sum uint8
	i := len(data)
	for i > 1 {
		addend := uint16(data[i-1]) * 2
		if addend >= 256 {
			addend -= 0xff
		}
		sum += uint8(addend)
		sum += data[i-2]
		i -= 2
	}
	if i == 1 {
		addend := uint16(data[0]) * 2
		if addend >= 256 {
			addend -= 0xff
		}
		sum += uint8(addend)
	}
	// two's-complement negation is (256 - sum) mod 256
	return -sum
}
