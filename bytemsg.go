// Package bytemsg implements fixed-layout binary messages for
// resource-constrained communication. A message is a byte buffer of known
// size whose first byte is its type tag. Typed field views, a blob view and
// an optional checksum field are declared at fixed offsets over the shared
// buffer; all multi-byte values are encoded most-significant-byte-first on
// the wire regardless of host byte order.
//
// The Message owns the buffer; views are lightweight non-owning handles and
// must not be used after the Message is gone. Declaring views with
// overlapping byte ranges is undefined. There is no internal locking: a
// Message is meant to be touched by one goroutine at a time.
package bytemsg

// Message is a fixed-size, typed byte buffer. Byte 0 always holds the type
// tag. Mutation happens through the views composed over the buffer, or
// wholesale through Populate.
type Message struct {
	typ uint8
	buf []byte
}

// New creates a zero-filled message of the given size with the type tag
// stamped into byte 0. It panics if size < 1: a message always carries at
// least its type byte.
func New(typ uint8, size int) *Message {
	if size < 1 {
		panic("bytemsg: message size must be at least 1")
	}
	m := &Message{typ: typ, buf: make([]byte, size)}
	m.buf[0] = typ
	return m
}

// Type returns the fixed type tag.
func (m *Message) Type() uint8 { return m.typ }

// Size returns the fixed buffer length in bytes.
func (m *Message) Size() int { return len(m.buf) }

// Bytes returns the message buffer for transmission or storage. The slice
// aliases the internal buffer; callers must not mutate through it.
func (m *Message) Bytes() []byte { return m.buf }

// Populate overwrites the entire buffer from raw. It succeeds only when
// len(raw) equals Size and raw[0] equals Type; on failure the message is
// left completely unchanged. The copy happens in place, so existing views
// remain valid after a successful call.
func (m *Message) Populate(raw []byte) bool {
	if len(raw) != len(m.buf) || raw[0] != m.typ {
		return false
	}
	copy(m.buf, raw)
	return true
}

// Clone returns a new message with the same type and a verbatim copy of the
// buffer. Views bound to the original do not carry over.
func (m *Message) Clone() *Message {
	c := &Message{typ: m.typ, buf: make([]byte, len(m.buf))}
	copy(c.buf, m.buf)
	return c
}

// CopyFrom copies the full buffer from src into m. Like Populate it requires
// matching type and size and reports whether the copy happened.
func (m *Message) CopyFrom(src *Message) bool {
	return m.Populate(src.buf)
}
