package fricgan

// VLQLen returns the number of bytes EncodeVLQ emits for v.
func VLQLen[T VLQInt](v T) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

// EncodeVLQ writes the canonical variable-length encoding of v to sink
// and returns the number of bytes written.
func EncodeVLQ[T VLQInt](v T, sink []byte) int {
	if assertions {
		assertFits("EncodeVLQ", VLQLen(v), len(sink))
	}
	i := 0
	for v >= 0x80 {
		sink[i] = byte(v) | 0x80
		v >>= 7
		i++
	}
	sink[i] = byte(v)
	return i + 1
}

// DecodeVLQ reads a variable-length quantity from source into *v and
// returns the number of source bytes consumed.
//
// Decoding stops at the first byte with a clear high bit or once the bit
// offset reaches VLQCeiling, whichever comes first. Padded encodings are
// accepted. Use checked.DecodeVLQ to reject them.
func DecodeVLQ[T VLQInt](v *T, source []byte) int {
	ceiling := VLQCeiling[T]()
	var x T
	i := 0
	for shift := uint(0); shift < ceiling; shift += 7 {
		if assertions {
			assertFits("DecodeVLQ", i+1, len(source))
		}
		b := source[i]
		i++
		x |= T(b&0x7F) << shift
		if b&0x80 == 0 {
			break
		}
	}
	*v = x
	return i
}
