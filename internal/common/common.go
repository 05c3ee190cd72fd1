package common

import "github.com/rawbytedev/fricgan/config"

// Kind groups capabilities by how their text form is parsed.
type Kind uint8

const (
	KindUnsigned Kind = iota
	KindSigned
	KindFloat
	KindVLQ
	KindString
)

// KindOf returns the parsing kind of c.
func KindOf(c config.Capability) Kind {
	switch c {
	case config.U8, config.U16, config.U32, config.U64:
		return KindUnsigned
	case config.I8, config.I16, config.I32, config.I64:
		return KindSigned
	case config.F32, config.F64:
		return KindFloat
	case config.VLQ32, config.VLQ64:
		return KindVLQ
	default:
		return KindString
	}
}

// IsFixed reports whether c encodes to a fixed number of bytes.
func IsFixed(c config.Capability) bool {
	return FixedSize(c) > 0
}

// FixedSize returns the encoded width of fixed-size capabilities and -1
// for the variable-length ones.
func FixedSize(c config.Capability) int {
	switch c {
	case config.U8, config.I8:
		return 1
	case config.U16, config.I16:
		return 2
	case config.U32, config.I32, config.F32:
		return 4
	case config.U64, config.I64, config.F64:
		return 8
	default:
		return -1
	}
}

// BitSize returns the value width in bits used when parsing text for c.
// String capabilities report the width of their length field.
func BitSize(c config.Capability) int {
	if n := FixedSize(c); n > 0 {
		return 8 * n
	}
	if c == config.VLQ64 {
		return 64
	}
	return 32
}
