package fricgan

import "unsafe"

// Size returns the encoded width of T in bytes.
func Size[T Scalar]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

// view aliases the memory of *v as a byte slice. Scalar types carry no
// padding, so the view covers exactly Size[T]() bytes.
func view[T Scalar](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}

// EncodeFixed writes the native-order memory image of v to sink and
// returns its width.
func EncodeFixed[T Scalar](v T, sink []byte) int {
	if unsafe.Sizeof(v) == 1 {
		if assertions {
			assertFits("EncodeFixed", 1, len(sink))
		}
		sink[0] = *(*byte)(unsafe.Pointer(&v))
		return 1
	}
	return Write(view(&v), sink)
}

// DecodeFixed loads *v from the first Size[T]() bytes of source and
// returns its width.
func DecodeFixed[T Scalar](v *T, source []byte) int {
	if unsafe.Sizeof(*v) == 1 {
		if assertions {
			assertFits("DecodeFixed", 1, len(source))
		}
		*(*byte)(unsafe.Pointer(v)) = source[0]
		return 1
	}
	return Read(view(v), source)
}
