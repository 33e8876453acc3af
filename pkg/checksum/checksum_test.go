package checksum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumVectors(t *testing.T) {
	assert.Equal(t, uint8(0), Sum8(nil))
	assert.Equal(t, uint8(6), Sum8([]byte{1, 2, 3}))
	assert.Equal(t, uint8(0x01), Sum8([]byte{0xff, 0x02}), "wraps modulo 2^8")

	assert.Equal(t, uint16(0), Sum16(nil))
	assert.Equal(t, uint16(0x0402), Sum16([]byte{0x01, 0x02, 0x03}),
		"trailing byte is the high byte of a zero-padded group")

	assert.Equal(t, uint32(0x06020304), Sum32([]byte{0x01, 0x02, 0x03, 0x04, 0x05}))
	assert.Equal(t, uint64(0x0102030405060708),
		Sum64([]byte{1, 2, 3, 4, 5, 6, 7, 8}))
	assert.Equal(t, uint64(0x0102030405060708+0x0900000000000000),
		Sum64([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9}))
}

func TestOneSum16RFC1071Vector(t *testing.T) {
	// worked example from RFC 1071 section 3
	data := []byte{0x00, 0x01, 0xf2, 0x03, 0xf4, 0xf5, 0xf6, 0xf7}
	require.Equal(t, uint16(0x220d), OneSum16(data))
	require.Equal(t, uint16(0x220d), OneSum16Textbook(data))

	// a stream with its checksum appended on an even boundary sums to zero
	withSum := append(append([]byte(nil), data...), 0x22, 0x0d)
	assert.Equal(t, uint16(0), OneSum16(withSum))
}

func TestOneSumSmallVectors(t *testing.T) {
	assert.Equal(t, uint8(0xff), OneSum8(nil))
	assert.Equal(t, uint8(0xfe), OneSum8([]byte{0xff, 0x01}), "end-around carry")
	assert.Equal(t, uint16(0xffff), OneSum16(nil))
	// odd length: last byte is the high byte of a final group
	assert.Equal(t, ^uint16(0x0100), OneSum16([]byte{0x01}))
	assert.Equal(t, uint32(0xffffffff), OneSum32(nil))
	assert.Equal(t, ^uint32(0x01020300), OneSum32([]byte{0x01, 0x02, 0x03}))
}

func TestXORVectors(t *testing.T) {
	assert.Equal(t, uint8(0xff), XOR8([]byte{0xaa, 0x55}))
	assert.Equal(t, uint8(0), XOR8(nil))

	// trailing byte XORs into the leading lane only
	assert.Equal(t, uint16(0x0502), XOR16([]byte{0x01, 0x02, 0x04}))
	assert.Equal(t, uint32(0x05020304), XOR32([]byte{1, 2, 3, 4, 4}))
	assert.Equal(t, uint64(0x0902030405060708),
		XOR64([]byte{1, 2, 3, 4, 5, 6, 7, 8, 8}))
}

func TestLuhnClassicBase10(t *testing.T) {
	// classic example: check digit for 7992739871 is 3
	digits := []byte{7, 9, 9, 2, 7, 3, 9, 8, 7, 1}
	require.Equal(t, uint8(3), Luhn(digits, 10))
	require.Equal(t, uint8(3), LuhnTextbook(digits, 10))
}

func TestLuhnEdgeBases(t *testing.T) {
	data := []byte{200, 13, 0, 255, 7}

	// base 0 means base 256 and matches the specialization
	assert.Equal(t, Luhn256(data), Luhn(data, 0))
	assert.Equal(t, LuhnTextbook(data, 0), Luhn(data, 0))

	// base 1: everything is congruent to zero
	assert.Equal(t, uint8(0), Luhn([]byte{0, 0, 0}, 1))
	assert.Equal(t, uint8(0), LuhnTextbook([]byte{0, 0, 0}, 1))

	// empty input: checksum of nothing is zero
	assert.Equal(t, uint8(0), Luhn(nil, 10))
	assert.Equal(t, uint8(0), Luhn256(nil))
}

func TestFletcherVectors(t *testing.T) {
	// well-known Fletcher-16 test values
	assert.Equal(t, uint16(0xc8f0), Fletcher16([]byte("abcde")))
	assert.Equal(t, uint16(0x2057), Fletcher16([]byte("abcdef")))
	assert.Equal(t, uint16(0x0627), Fletcher16([]byte("abcdefgh")))

	// nibble variant, worked by hand
	assert.Equal(t, uint8(0x43), Fletcher8([]byte{0x12}))
	assert.Equal(t, uint8(0x53), Fletcher8([]byte{0x01, 0x02}))

	assert.Equal(t, uint8(0), Fletcher8(nil))
	assert.Equal(t, uint16(0), Fletcher16(nil))
	assert.Equal(t, uint32(0), Fletcher32(nil))
}

func TestFletcher32OddPadding(t *testing.T) {
	// an odd input behaves like the same input padded with one zero byte
	odd := []byte{0x01, 0x02, 0x03}
	padded := []byte{0x01, 0x02, 0x03, 0x00}
	assert.Equal(t, Fletcher32(padded), Fletcher32(odd))
}
