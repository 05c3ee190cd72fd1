package config

import (
	"fmt"
	"strings"
)

// Capability names one opt-in codec operation.
type Capability uint8

const (
	U8 Capability = iota
	I8
	U16
	I16
	U32
	I32
	U64
	I64
	F32
	F64
	VLQ32
	VLQ64
	String
	VLQString

	numCapabilities
)

var capabilityNames = [numCapabilities]string{
	U8:        "u8",
	I8:        "i8",
	U16:       "u16",
	I16:       "i16",
	U32:       "u32",
	I32:       "i32",
	U64:       "u64",
	I64:       "i64",
	F32:       "f32",
	F64:       "f64",
	VLQ32:     "vlq32",
	VLQ64:     "vlq64",
	String:    "string",
	VLQString: "vlq-string",
}

func (c Capability) String() string {
	if c < numCapabilities {
		return capabilityNames[c]
	}
	return fmt.Sprintf("capability(%d)", uint8(c))
}

// ParseCapability maps a capability name such as "u16" or "vlq-string"
// to its Capability.
func ParseCapability(name string) (Capability, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range capabilityNames {
		if n == name {
			return Capability(c), nil
		}
	}
	return 0, fmt.Errorf("unknown capability %q", name)
}

// Capabilities returns every capability in declaration order.
func Capabilities() []Capability {
	all := make([]Capability, numCapabilities)
	for i := range all {
		all[i] = Capability(i)
	}
	return all
}

// Features is a set of enabled capabilities. The zero value enables
// nothing.
type Features uint16

// AllFeatures enables every capability.
const AllFeatures = Features(1<<numCapabilities - 1)

func (f Features) Has(c Capability) bool {
	return c < numCapabilities && f&(1<<c) != 0
}

func (f Features) With(c Capability) Features {
	return f | 1<<c
}

func (f Features) Without(c Capability) Features {
	return f &^ (1 << c)
}

// List returns the enabled capabilities in declaration order.
func (f Features) List() []Capability {
	var out []Capability
	for _, c := range Capabilities() {
		if f.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func (f Features) String() string {
	names := make([]string, 0, numCapabilities)
	for _, c := range f.List() {
		names = append(names, c.String())
	}
	return strings.Join(names, ",")
}

// ParseFeatures builds a set from capability names. The name "all"
// enables every capability.
func ParseFeatures(names []string) (Features, error) {
	var f Features
	for _, name := range names {
		if strings.EqualFold(strings.TrimSpace(name), "all") {
			f = AllFeatures
			continue
		}
		c, err := ParseCapability(name)
		if err != nil {
			return 0, err
		}
		f = f.With(c)
	}
	return f, nil
}
