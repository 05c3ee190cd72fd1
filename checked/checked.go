// Package checked wraps the fricgan codec with explicit precondition
// checks. Every function validates buffer sizes before touching them and
// reports violations as *Error values instead of panicking.
//
// DecodeVLQ here is strict: it rejects truncated input, encodings that run
// past the longest canonical length, padded encodings and values wider
// than the target type. The unchecked decoder accepts all of these.
package checked

import (
	"math"

	"github.com/rawbytedev/fricgan"
)

// Write copies src into sink at offset 0.
func Write(src, sink []byte) (int, error) {
	if len(src) > len(sink) {
		return 0, shortBuffer("Write", len(src), len(sink))
	}
	return fricgan.Write(src, sink), nil
}

// Read fills dst from source at offset 0.
func Read(dst, source []byte) (int, error) {
	if len(dst) > len(source) {
		return 0, shortBuffer("Read", len(dst), len(source))
	}
	return fricgan.Read(dst, source), nil
}

func EncodeFixed[T fricgan.Scalar](v T, sink []byte) (int, error) {
	if w := fricgan.Size[T](); len(sink) < w {
		return 0, shortBuffer("EncodeFixed", w, len(sink))
	}
	return fricgan.EncodeFixed(v, sink), nil
}

func DecodeFixed[T fricgan.Scalar](v *T, source []byte) (int, error) {
	if w := fricgan.Size[T](); len(source) < w {
		return 0, shortBuffer("DecodeFixed", w, len(source))
	}
	return fricgan.DecodeFixed(v, source), nil
}

func EncodeVLQ[T fricgan.VLQInt](v T, sink []byte) (int, error) {
	if need := fricgan.VLQLen(v); len(sink) < need {
		return 0, shortBuffer("EncodeVLQ", need, len(sink))
	}
	return fricgan.EncodeVLQ(v, sink), nil
}

// DecodeVLQ decodes a canonical variable-length quantity into *v. *v is
// left untouched on error.
func DecodeVLQ[T fricgan.VLQInt](v *T, source []byte) (int, error) {
	maxLen := fricgan.MaxVLQLen[T]()
	width := uint(8 * fricgan.Size[T]())
	var x uint64
	for i := 0; i < maxLen; i++ {
		if i >= len(source) {
			return 0, shortBuffer("DecodeVLQ", i+1, len(source))
		}
		b := source[i]
		shift := uint(7 * i)
		payload := uint64(b & 0x7F)
		if shift+7 > width && payload>>(width-shift) != 0 {
			return 0, overflow("DecodeVLQ", "more than %d significant bits", width)
		}
		x |= payload << shift
		if b&0x80 == 0 {
			if i > 0 && b == 0 {
				return 0, &Error{Op: "DecodeVLQ", Kind: ErrNonCanonical,
					Detail: "trailing zero byte"}
			}
			*v = T(x)
			return i + 1, nil
		}
	}
	return 0, overflow("DecodeVLQ", "no terminator within %d bytes", maxLen)
}

// WriteString frames s behind a fixed-width L length.
func WriteString[L fricgan.Unsigned](s string, sink []byte) (int, error) {
	if uint64(len(s)) > maxOf[L]() {
		return 0, overflow("WriteString", "length %d does not fit in %d bytes", len(s), fricgan.Size[L]())
	}
	if need := fricgan.StringLen[L](s); len(sink) < need {
		return 0, shortBuffer("WriteString", need, len(sink))
	}
	return fricgan.WriteString[L](s, sink), nil
}

// ReadString decodes a string framed behind a fixed-width L length. *s is
// left untouched on error.
func ReadString[L fricgan.Unsigned](s *string, source []byte) (int, error) {
	var length L
	n, err := DecodeFixed(&length, source)
	if err != nil {
		return 0, err
	}
	if err := checkPayload("ReadString", n, uint64(length), len(source)); err != nil {
		return 0, err
	}
	return fricgan.ReadString[L](s, source), nil
}

// WriteVLQString frames s behind a VLQ length of type L.
func WriteVLQString[L fricgan.VLQInt](s string, sink []byte) (int, error) {
	if uint64(len(s)) > maxOf[L]() {
		return 0, overflow("WriteVLQString", "length %d does not fit in %d bits", len(s), 8*fricgan.Size[L]())
	}
	if need := fricgan.VLQStringLen[L](s); len(sink) < need {
		return 0, shortBuffer("WriteVLQString", need, len(sink))
	}
	return fricgan.WriteVLQString[L](s, sink), nil
}

// ReadVLQString decodes a string framed behind a VLQ length of type L.
// *s is left untouched on error.
func ReadVLQString[L fricgan.VLQInt](s *string, source []byte) (int, error) {
	var length L
	n, err := DecodeVLQ(&length, source)
	if err != nil {
		return 0, err
	}
	if err := checkPayload("ReadVLQString", n, uint64(length), len(source)); err != nil {
		return 0, err
	}
	return fricgan.ReadVLQString[L](s, source), nil
}

func checkPayload(op string, field int, length uint64, have int) error {
	if length > uint64(math.MaxInt-field) {
		return overflow(op, "payload length %d is not addressable", length)
	}
	if need := field + int(length); need > have {
		return shortBuffer(op, need, have)
	}
	return nil
}

func maxOf[L fricgan.Unsigned]() uint64 {
	return uint64(^L(0))
}
