// Package common holds the field kind table shared between the layout
// descriptor package and tooling.
package common

// Kind identifies a fixed-width field kind by name.
type Kind int

const (
	KindInvalid Kind = iota
	KindBool
	KindInt8
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindFloat32
	KindFloat64
)

var kindNames = map[string]Kind{
	"bool":    KindBool,
	"int8":    KindInt8,
	"uint8":   KindUint8,
	"int16":   KindInt16,
	"uint16":  KindUint16,
	"int32":   KindInt32,
	"uint32":  KindUint32,
	"int64":   KindInt64,
	"uint64":  KindUint64,
	"float32": KindFloat32,
	"float64": KindFloat64,
}

// ParseKind maps a kind name to its Kind. The names match the Go type names.
func ParseKind(name string) (Kind, bool) {
	k, ok := kindNames[name]
	return k, ok
}

// Width returns the wire width of the kind in bytes, or -1 for KindInvalid.
func (k Kind) Width() int {
	switch k {
	case KindBool, KindInt8, KindUint8:
		return 1
	case KindInt16, KindUint16:
		return 2
	case KindInt32, KindUint32, KindFloat32:
		return 4
	case KindInt64, KindUint64, KindFloat64:
		return 8
	default:
		return -1
	}
}

func (k Kind) String() string {
	for name, kk := range kindNames {
		if kk == k {
			return name
		}
	}
	return "invalid"
}
