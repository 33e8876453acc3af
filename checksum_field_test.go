package bytemsg_test

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/bytemsg"
	"github.com/rawbytedev/bytemsg/pkg/checksum"
)

func TestChecksumComputeStoredRefreshVerify(t *testing.T) {
	m := bytemsg.New(5, 8)
	payload := bytemsg.NewField[uint32](m, 1)
	sum := bytemsg.NewChecksum[uint16](m, 6, checksum.Fletcher16)

	payload.Set(0xdeadbeef)

	// compute does not store
	want := checksum.Fletcher16(m.Bytes()[:6])
	require.Equal(t, want, sum.Compute())
	require.Equal(t, uint16(0), sum.Stored())
	require.False(t, sum.Verify())

	sum.Refresh()
	require.Equal(t, want, sum.Stored())
	require.True(t, sum.Verify())
}

func TestChecksumDetectsCorruption(t *testing.T) {
	m := bytemsg.New(5, 8)
	payload := bytemsg.NewField[uint32](m, 1)
	sum := bytemsg.NewChecksum[uint16](m, 6, checksum.OneSum16)

	payload.Set(0x01020304)
	sum.Refresh()
	require.True(t, sum.Verify())

	payload.Set(0x01020305)
	assert.False(t, sum.Verify())

	sum.Refresh()
	require.True(t, sum.Verify())
}

func TestChecksumRangeExcludesTrailingBytes(t *testing.T) {
	// checksum at byte 4 covering only bytes [1,3); the field at byte 6
	// must not influence it
	m := bytemsg.New(5, 8)
	covered := bytemsg.NewField[uint16](m, 1)
	outside := bytemsg.NewField[uint16](m, 6)
	sum := bytemsg.NewChecksumRange[uint8](m, 4, 1, 2, checksum.XOR8)

	covered.Set(0x1234)
	sum.Refresh()
	require.Equal(t, uint8(0x12^0x34), sum.Stored())
	require.True(t, sum.Verify())

	outside.Set(0xffff)
	assert.True(t, sum.Verify(), "bytes outside the range must not affect the checksum")

	covered.Set(0x1235)
	assert.False(t, sum.Verify())
}

func TestChecksumWithLuhnBaseClosure(t *testing.T) {
	m := bytemsg.New(5, 12)
	blob := bytemsg.NewBlob(m, 1, 10)
	sum := bytemsg.NewChecksum[uint8](m, 11, func(data []byte) uint8 {
		return checksum.Luhn(data, 0)
	})

	blob.Set([]byte{9, 8, 7, 6, 5})
	sum.Refresh()
	require.True(t, sum.Verify())
	require.Equal(t, checksum.Luhn256(m.Bytes()[:11]), sum.Stored())
}

func TestNewChecksumPanicsOutsideBuffer(t *testing.T) {
	m := bytemsg.New(5, 8)
	require.Panics(t, func() { bytemsg.NewChecksum[uint16](m, 7, checksum.Fletcher16) })
	require.Panics(t, func() {
		bytemsg.NewChecksumRange[uint8](m, 1, 4, 8, checksum.XOR8)
	})
}

func TestRefreshThenVerifyAlwaysHolds(t *testing.T) {
	m := bytemsg.New(5, 64)
	blob := bytemsg.NewBlob(m, 1, 59)
	sum := bytemsg.NewChecksum[uint32](m, 60, checksum.Fletcher32)

	property := func(content []byte) bool {
		blob.Set(content)
		sum.Refresh()
		return sum.Verify()
	}
	require.NoError(t, quick.Check(property, nil))
}
