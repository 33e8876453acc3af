package layout

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/rawbytedev/bytemsg/internal/common"
	"github.com/rawbytedev/bytemsg/pkg/checksum"
)

// Decode reads the field's value from a raw message buffer. The returned
// value has the field's Go kind (bool, int16, float32, ...).
func (f FieldSpec) Decode(buf []byte) (any, error) {
	k, ok := common.ParseKind(f.Kind)
	if !ok {
		return nil, fmt.Errorf("field %q kind %q: %w", f.Name, f.Kind, ErrUnknownKind)
	}
	w := k.Width()
	if f.Offset < 0 || f.Offset+w > len(buf) {
		return nil, fmt.Errorf("field %q [%d:%d): %w", f.Name, f.Offset, f.Offset+w, ErrOutOfBounds)
	}
	b := buf[f.Offset : f.Offset+w]
	switch k {
	case common.KindBool:
		return b[0] != 0, nil
	case common.KindUint8:
		return b[0], nil
	case common.KindInt8:
		return int8(b[0]), nil
	case common.KindUint16:
		return binary.BigEndian.Uint16(b), nil
	case common.KindInt16:
		return int16(binary.BigEndian.Uint16(b)), nil
	case common.KindUint32:
		return binary.BigEndian.Uint32(b), nil
	case common.KindInt32:
		return int32(binary.BigEndian.Uint32(b)), nil
	case common.KindUint64:
		return binary.BigEndian.Uint64(b), nil
	case common.KindInt64:
		return int64(binary.BigEndian.Uint64(b)), nil
	case common.KindFloat32:
		return math.Float32frombits(binary.BigEndian.Uint32(b)), nil
	default:
		return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
	}
}

// DecodeValue reads a declared field by name from a raw message buffer.
func (d *Descriptor) DecodeValue(buf []byte, name string) (any, error) {
	f, ok := d.Field(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNoSuchField)
	}
	return f.Decode(buf)
}

// algo adapts one checksum function to a uniform width + uint64 shape so
// descriptors can name it.
type algo struct {
	width int
	fn    func(data []byte, luhnBase uint8) uint64
}

var algorithms = map[string]algo{
	"sum8":  {1, func(d []byte, _ uint8) uint64 { return uint64(checksum.Sum8(d)) }},
	"sum16": {2, func(d []byte, _ uint8) uint64 { return uint64(checksum.Sum16(d)) }},
	"sum32": {4, func(d []byte, _ uint8) uint64 { return uint64(checksum.Sum32(d)) }},
	"sum64": {8, func(d []byte, _ uint8) uint64 { return checksum.Sum64(d) }},

	"onesum8":  {1, func(d []byte, _ uint8) uint64 { return uint64(checksum.OneSum8(d)) }},
	"onesum16": {2, func(d []byte, _ uint8) uint64 { return uint64(checksum.OneSum16(d)) }},
	"onesum32": {4, func(d []byte, _ uint8) uint64 { return uint64(checksum.OneSum32(d)) }},

	"xor8":  {1, func(d []byte, _ uint8) uint64 { return uint64(checksum.XOR8(d)) }},
	"xor16": {2, func(d []byte, _ uint8) uint64 { return uint64(checksum.XOR16(d)) }},
	"xor32": {4, func(d []byte, _ uint8) uint64 { return uint64(checksum.XOR32(d)) }},
	"xor64": {8, func(d []byte, _ uint8) uint64 { return checksum.XOR64(d) }},

	"luhn":    {1, func(d []byte, base uint8) uint64 { return uint64(checksum.Luhn(d, base)) }},
	"luhn256": {1, func(d []byte, _ uint8) uint64 { return uint64(checksum.Luhn256(d)) }},

	"fletcher8":  {1, func(d []byte, _ uint8) uint64 { return uint64(checksum.Fletcher8(d)) }},
	"fletcher16": {2, func(d []byte, _ uint8) uint64 { return uint64(checksum.Fletcher16(d)) }},
	"fletcher32": {4, func(d []byte, _ uint8) uint64 { return uint64(checksum.Fletcher32(d)) }},
}

// Algorithms lists the checksum algorithm names a descriptor may declare.
func Algorithms() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	return names
}

// ChecksumResult reports one verification: the value stored in the message
// against the value computed over the declared region.
type ChecksumResult struct {
	Stored   uint64
	Computed uint64
}

// OK reports whether stored and computed values match.
func (r ChecksumResult) OK() bool { return r.Stored == r.Computed }

// VerifyChecksum computes the declared checksum over a raw message buffer
// and compares it with the stored value. It fails when the descriptor has
// no checksum or the buffer is too small.
func (d *Descriptor) VerifyChecksum(buf []byte) (ChecksumResult, error) {
	if d.Checksum == nil {
		return ChecksumResult{}, fmt.Errorf("layout %q declares no checksum", d.Name)
	}
	c := d.Checksum
	a, ok := algorithms[c.Algorithm]
	if !ok {
		return ChecksumResult{}, fmt.Errorf("checksum algorithm %q: %w", c.Algorithm, ErrUnknownAlgorithm)
	}
	if c.Offset < 0 || c.Offset+a.width > len(buf) {
		return ChecksumResult{}, fmt.Errorf("checksum [%d:%d): %w", c.Offset, c.Offset+a.width, ErrOutOfBounds)
	}
	start, length := c.region()
	if start < 0 || length < 0 || start+length > len(buf) {
		return ChecksumResult{}, fmt.Errorf("checksum range [%d:%d): %w", start, start+length, ErrOutOfBounds)
	}

	var stored uint64
	for _, b := range buf[c.Offset : c.Offset+a.width] {
		stored = stored<<8 | uint64(b)
	}
	computed := a.fn(buf[start:start+length], uint8(c.LuhnBase))
	return ChecksumResult{Stored: stored, Computed: computed}, nil
}
