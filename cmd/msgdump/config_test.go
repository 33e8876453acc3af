package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/bytemsg/pkg/layout"
)

const point3dTOML = `
name = "point3d"
type = 21
size = 14

[[field]]
name = "x"
kind = "float32"
offset = 1

[[field]]
name = "y"
kind = "float32"
offset = 5

[[field]]
name = "z"
kind = "float32"
offset = 9

[checksum]
algorithm = "luhn256"
offset = 13
`

func writeLayout(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadLayout(t *testing.T) {
	d, err := loadLayout(writeLayout(t, point3dTOML))
	require.NoError(t, err)

	assert.Equal(t, "point3d", d.Name)
	assert.Equal(t, uint8(21), d.Type)
	assert.Equal(t, 14, d.Size)
	require.Len(t, d.Fields, 3)
	assert.Equal(t, layout.FieldSpec{Name: "y", Kind: "float32", Offset: 5}, d.Fields[1])
	require.NotNil(t, d.Checksum)
	assert.Equal(t, "luhn256", d.Checksum.Algorithm)
	assert.Equal(t, 13, d.Checksum.Offset)
}

func TestLoadLayoutRejectsInvalidDescriptor(t *testing.T) {
	bad := `
name = "broken"
type = 1
size = 4

[[field]]
name = "big"
kind = "uint64"
offset = 1
`
	_, err := loadLayout(writeLayout(t, bad))
	require.ErrorIs(t, err, layout.ErrOutOfBounds)
}

func TestLoadLayoutRejectsBadTOML(t *testing.T) {
	_, err := loadLayout(writeLayout(t, "size = [["))
	require.Error(t, err)
}

func TestLoadLayoutMissingFile(t *testing.T) {
	_, err := loadLayout(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestReadMessageHexForms(t *testing.T) {
	raw, err := readMessage("15 40a0 0000", "")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x15, 0x40, 0xa0, 0x00, 0x00}, raw)

	path := filepath.Join(t.TempDir(), "msg.hex")
	require.NoError(t, os.WriteFile(path, []byte("0102\n0304\n"), 0o644))
	raw, err = readMessage("", path)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, raw)

	_, err = readMessage("", "")
	require.Error(t, err)

	_, err = readMessage("zz", "")
	require.Error(t, err)
}
