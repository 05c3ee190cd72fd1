package fricgan

import "unsafe"

// Scalar is the closed set of fixed-width types the codec transcodes.
type Scalar interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 |
		~int64 | ~uint64 | ~float32 | ~float64
}

// Unsigned types may back a fixed-width string length field.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// VLQInt types may be encoded as variable-length quantities.
type VLQInt interface {
	~uint32 | ~uint64
}

const (
	// MaxVLQLen32 is the longest canonical encoding of a uint32.
	MaxVLQLen32 = 5
	// MaxVLQLen64 is the longest canonical encoding of a uint64.
	MaxVLQLen64 = 10

	vlqCeiling32 = 35
	vlqCeiling64 = 71
)

// MaxVLQLen returns the longest canonical encoding of T.
func MaxVLQLen[T VLQInt]() int {
	var v T
	if unsafe.Sizeof(v) == 4 {
		return MaxVLQLen32
	}
	return MaxVLQLen64
}

// VLQCeiling returns the bit offset at which DecodeVLQ stops reading,
// whatever the continuation bit says.
func VLQCeiling[T VLQInt]() uint {
	var v T
	if unsafe.Sizeof(v) == 4 {
		return vlqCeiling32
	}
	return vlqCeiling64
}

// VLQReadLimit returns the most bytes DecodeVLQ will consume for T.
// It is one more than MaxVLQLen for uint64 since the decoder tolerates
// padded input up to the bit ceiling.
func VLQReadLimit[T VLQInt]() int {
	return int((VLQCeiling[T]() + 6) / 7)
}
