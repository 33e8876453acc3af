package bytemsg

import "fmt"

// ChecksumValue enumerates the unsigned widths a checksum field can store.
type ChecksumValue interface {
	uint8 | uint16 | uint32 | uint64
}

// Func is a checksum algorithm: a pure function from a byte region to an
// unsigned value of the field's width. The functions in pkg/checksum satisfy
// this shape; algorithms with extra parameters (Luhn bases other than 256)
// are bound with a closure.
type Func[T ChecksumValue] func(data []byte) T

// Checksum composes a Field for storing an integrity value with the
// algorithm and the byte region the value is computed over. None of its
// operations can fail; a mismatch is only ever reported by Verify.
type Checksum[T ChecksumValue] struct {
	region []byte
	fn     Func[T]
	field  Field[T]
}

// NewChecksum places a checksum field at pos covering the region [0, pos) —
// everything before the checksum, the usual arrangement. It panics when the
// field does not fit the message.
func NewChecksum[T ChecksumValue](m *Message, pos int, fn Func[T]) Checksum[T] {
	return NewChecksumRange[T](m, pos, 0, pos, fn)
}

// NewChecksumRange places a checksum field at pos covering the region
// [base, base+length). The field's own bytes are only included when the
// declarer makes the region cover them. Panics when field or region fall
// outside the message buffer.
func NewChecksumRange[T ChecksumValue](m *Message, pos, base, length int, fn Func[T]) Checksum[T] {
	if base < 0 || length < 0 || base+length > len(m.buf) {
		panic(fmt.Sprintf("bytemsg: checksum region [%d:%d) outside message of size %d",
			base, base+length, len(m.buf)))
	}
	return Checksum[T]{
		region: m.buf[base : base+length],
		fn:     fn,
		field:  NewField[T](m, pos),
	}
}

// Compute runs the checksum over the region and returns the result without
// storing it.
func (c Checksum[T]) Compute() T { return c.fn(c.region) }

// Stored returns the checksum value currently held in the field, without
// recomputing.
func (c Checksum[T]) Stored() T { return c.field.Get() }

// Refresh computes the checksum and writes it into the field.
func (c Checksum[T]) Refresh() { c.field.Set(c.Compute()) }

// Verify reports whether the stored checksum matches a fresh computation.
func (c Checksum[T]) Verify() bool { return c.Compute() == c.Stored() }
