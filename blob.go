package bytemsg

import "fmt"

// Blob is a non-owning view over a fixed-length, variable-content byte range
// of a Message buffer. The region length is fixed at construction; writes
// shorter than the region zero-pad the remainder and longer writes truncate
// silently.
type Blob struct {
	b []byte
}

// NewBlob binds a blob view of the given size to m at offset and zero-fills
// the region. It panics when the region falls outside the message buffer.
func NewBlob(m *Message, offset, size int) Blob {
	if offset < 0 || size < 0 || offset+size > len(m.buf) {
		panic(fmt.Sprintf("bytemsg: blob [%d:%d) outside message of size %d",
			offset, offset+size, len(m.buf)))
	}
	b := Blob{b: m.buf[offset : offset+size]}
	b.Fill(0)
	return b
}

// Size returns the fixed region length.
func (b Blob) Size() int { return len(b.b) }

// Set copies min(len(data), Size) bytes from data into the region and
// zero-fills whatever remains. It returns the number of bytes copied from
// data, not counting padding.
func (b Blob) Set(data []byte) int {
	n := copy(b.b, data)
	for i := n; i < len(b.b); i++ {
		b.b[i] = 0
	}
	return n
}

// Fill sets every byte of the region to v and returns the region size.
func (b Blob) Fill(v byte) int {
	for i := range b.b {
		b.b[i] = v
	}
	return len(b.b)
}

// Get copies min(len(dst), Size) bytes from the region into dst and returns
// the number of bytes copied.
func (b Blob) Get(dst []byte) int {
	if len(dst) > len(b.b) {
		dst = dst[:len(b.b)]
	}
	return copy(dst, b.b)
}

// Bytes returns the blob region. The slice aliases the message buffer;
// callers must not mutate through it.
func (b Blob) Bytes() []byte { return b.b }
