package bytemsg

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Value enumerates the kinds a Field can carry. Booleans occupy exactly one
// byte on the wire; integers occupy their natural width; floats are IEEE 754
// bit patterns. The constraint is exact (no ~) so encoding can dispatch on
// the concrete kind.
type Value interface {
	bool |
		int8 | uint8 |
		int16 | uint16 |
		int32 | uint32 |
		int64 | uint64 |
		float32 | float64
}

// Field is a non-owning view over a fixed-width value at a fixed offset
// inside a Message buffer. Multi-byte kinds are encoded big-endian on the
// wire independent of host byte order. A Field must not outlive its Message.
type Field[T Value] struct {
	b []byte // the field's width-sized window into the message buffer
}

// NewField binds a field view to m at the given byte offset. It panics when
// offset+width would exceed the message size; offset 0 holds the type tag
// and is the declarer's responsibility to avoid.
func NewField[T Value](m *Message, offset int) Field[T] {
	w := width[T]()
	if offset < 0 || offset+w > len(m.buf) {
		panic(fmt.Sprintf("bytemsg: field [%d:%d) outside message of size %d",
			offset, offset+w, len(m.buf)))
	}
	return Field[T]{b: m.buf[offset : offset+w]}
}

// Width returns the number of wire bytes the field occupies.
func (f Field[T]) Width() int { return len(f.b) }

// Set encodes v into the field's bytes in wire byte order. Booleans are
// written as exactly 0 or 1.
func (f Field[T]) Set(v T) {
	switch x := any(v).(type) {
	case bool:
		if x {
			f.b[0] = 1
		} else {
			f.b[0] = 0
		}
	case uint8:
		f.b[0] = x
	case int8:
		f.b[0] = uint8(x)
	case uint16:
		binary.BigEndian.PutUint16(f.b, x)
	case int16:
		binary.BigEndian.PutUint16(f.b, uint16(x))
	case uint32:
		binary.BigEndian.PutUint32(f.b, x)
	case int32:
		binary.BigEndian.PutUint32(f.b, uint32(x))
	case uint64:
		binary.BigEndian.PutUint64(f.b, x)
	case int64:
		binary.BigEndian.PutUint64(f.b, uint64(x))
	case float32:
		binary.BigEndian.PutUint32(f.b, math.Float32bits(x))
	case float64:
		binary.BigEndian.PutUint64(f.b, math.Float64bits(x))
	}
}

// Get decodes the field's wire bytes into a value. Any non-zero stored byte
// decodes to true for booleans.
func (f Field[T]) Get() T {
	var v T
	switch p := any(&v).(type) {
	case *bool:
		*p = f.b[0] != 0
	case *uint8:
		*p = f.b[0]
	case *int8:
		*p = int8(f.b[0])
	case *uint16:
		*p = binary.BigEndian.Uint16(f.b)
	case *int16:
		*p = int16(binary.BigEndian.Uint16(f.b))
	case *uint32:
		*p = binary.BigEndian.Uint32(f.b)
	case *int32:
		*p = int32(binary.BigEndian.Uint32(f.b))
	case *uint64:
		*p = binary.BigEndian.Uint64(f.b)
	case *int64:
		*p = int64(binary.BigEndian.Uint64(f.b))
	case *float32:
		*p = math.Float32frombits(binary.BigEndian.Uint32(f.b))
	case *float64:
		*p = math.Float64frombits(binary.BigEndian.Uint64(f.b))
	}
	return v
}

// width reports the wire width of kind T. Booleans are forced to one byte;
// everything else uses its natural size.
func width[T Value]() int {
	var v T
	switch any(v).(type) {
	case bool, int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32, float32:
		return 4
	default:
		return 8
	}
}
