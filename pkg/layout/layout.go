// Package layout provides declarative message layout descriptors: a
// schema-driven counterpart to composing bytemsg views in code. A Descriptor
// names the message type and size plus its fields, optional blob region and
// optional checksum, and can decode any declared field from a raw message
// buffer. The struct fields carry toml tags so descriptors can be loaded
// directly from configuration files.
package layout

import (
	"errors"
	"fmt"

	"github.com/rawbytedev/bytemsg"
	"github.com/rawbytedev/bytemsg/internal/common"
)

var (
	ErrUnknownKind      = errors.New("unknown field kind")
	ErrUnknownAlgorithm = errors.New("unknown checksum algorithm")
	ErrOutOfBounds      = errors.New("region outside message buffer")
	ErrOverlap          = errors.New("overlapping byte ranges")
	ErrNoSuchField      = errors.New("no such field")
)

// FieldSpec declares one fixed-width field at a byte offset.
type FieldSpec struct {
	Name   string `toml:"name"`
	Kind   string `toml:"kind"`
	Offset int    `toml:"offset"`
}

// BlobSpec declares a fixed-length variable-content byte region.
type BlobSpec struct {
	Name   string `toml:"name"`
	Offset int    `toml:"offset"`
	Size   int    `toml:"size"`
}

// ChecksumSpec declares the integrity field. RangeStart/RangeLength bound
// the checksummed region; a zero RangeLength means the usual arrangement,
// everything before the checksum. LuhnBase only applies to the "luhn"
// algorithm (0 means base 256).
type ChecksumSpec struct {
	Algorithm   string `toml:"algorithm"`
	Offset      int    `toml:"offset"`
	RangeStart  int    `toml:"range_start"`
	RangeLength int    `toml:"range_length"`
	LuhnBase    int    `toml:"luhn_base"`
}

// Descriptor declares a complete message layout.
type Descriptor struct {
	Name     string        `toml:"name"`
	Type     uint8         `toml:"type"`
	Size     int           `toml:"size"`
	Fields   []FieldSpec   `toml:"field"`
	Blob     *BlobSpec     `toml:"blob"`
	Checksum *ChecksumSpec `toml:"checksum"`
}

// Validate checks the descriptor against the core's construction contract:
// every declared range must lie inside the buffer, byte 0 is reserved for
// the type tag, kinds and algorithms must be known, and no two declarations
// may claim the same byte. Overlap is undefined behavior in the core; the
// descriptor layer rejects it outright.
func (d *Descriptor) Validate() error {
	if d.Size < 1 {
		return fmt.Errorf("layout %q: size must be at least 1", d.Name)
	}
	claimed := make([]string, d.Size)
	claimed[0] = "type tag"

	claim := func(what string, start, length int) error {
		if start < 0 || length < 0 || start+length > d.Size {
			return fmt.Errorf("layout %q: %s [%d:%d): %w",
				d.Name, what, start, start+length, ErrOutOfBounds)
		}
		for i := start; i < start+length; i++ {
			if claimed[i] != "" {
				return fmt.Errorf("layout %q: %s and %s both claim byte %d: %w",
					d.Name, what, claimed[i], i, ErrOverlap)
			}
			claimed[i] = what
		}
		return nil
	}

	for _, f := range d.Fields {
		k, ok := common.ParseKind(f.Kind)
		if !ok {
			return fmt.Errorf("layout %q: field %q kind %q: %w",
				d.Name, f.Name, f.Kind, ErrUnknownKind)
		}
		if err := claim("field "+f.Name, f.Offset, k.Width()); err != nil {
			return err
		}
	}
	if d.Blob != nil {
		if err := claim("blob "+d.Blob.Name, d.Blob.Offset, d.Blob.Size); err != nil {
			return err
		}
	}
	if d.Checksum != nil {
		c := d.Checksum
		a, ok := algorithms[c.Algorithm]
		if !ok {
			return fmt.Errorf("layout %q: checksum algorithm %q: %w",
				d.Name, c.Algorithm, ErrUnknownAlgorithm)
		}
		if c.Algorithm == "luhn" && (c.LuhnBase < 0 || c.LuhnBase > 255) {
			return fmt.Errorf("layout %q: luhn_base %d out of range 0..255",
				d.Name, c.LuhnBase)
		}
		if err := claim("checksum", c.Offset, a.width); err != nil {
			return err
		}
		start, length := c.region()
		if start < 0 || length < 0 || start+length > d.Size {
			return fmt.Errorf("layout %q: checksum range [%d:%d): %w",
				d.Name, start, start+length, ErrOutOfBounds)
		}
	}
	return nil
}

// region resolves the checksummed byte range, defaulting to everything
// before the checksum field.
func (c *ChecksumSpec) region() (start, length int) {
	if c.RangeLength == 0 {
		return 0, c.Offset
	}
	return c.RangeStart, c.RangeLength
}

// Message creates a fresh zero-filled message matching the descriptor.
func (d *Descriptor) Message() *bytemsg.Message {
	return bytemsg.New(d.Type, d.Size)
}

// Field looks up a declared field by name.
func (d *Descriptor) Field(name string) (FieldSpec, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}
