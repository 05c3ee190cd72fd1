package fricgan

import "unsafe"

// StringLen returns the framed size of s behind a fixed-width L length.
func StringLen[L Unsigned](s string) int {
	return Size[L]() + len(s)
}

// VLQStringLen returns the framed size of s behind a VLQ length of type L.
func VLQStringLen[L VLQInt](s string) int {
	return VLQLen(L(len(s))) + len(s)
}

// WriteString writes len(s) as a fixed-width L followed by the bytes of s,
// and returns the total number of bytes written.
func WriteString[L Unsigned](s string, sink []byte) int {
	n := EncodeFixed(L(len(s)), sink)
	return n + Write(stringBytes(s), sink[n:])
}

// ReadString decodes a fixed-width L length from source, then that many
// payload bytes into *s. It returns the total number of bytes read.
func ReadString[L Unsigned](s *string, source []byte) int {
	var length L
	n := DecodeFixed(&length, source)
	return n + readPayload(s, int(length), source[n:])
}

// WriteVLQString writes len(s) as a VLQ of type L followed by the bytes of
// s, and returns the total number of bytes written.
func WriteVLQString[L VLQInt](s string, sink []byte) int {
	n := EncodeVLQ(L(len(s)), sink)
	return n + Write(stringBytes(s), sink[n:])
}

// ReadVLQString decodes a VLQ length of type L from source, then that many
// payload bytes into *s. The payload starts right after the length field's
// encoded bytes. It returns the total number of bytes read.
func ReadVLQString[L VLQInt](s *string, source []byte) int {
	var length L
	n := DecodeVLQ(&length, source)
	return n + readPayload(s, int(length), source[n:])
}

func stringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// readPayload allocates exactly length bytes, fills them from source and
// hands ownership to *s without a second copy.
func readPayload(s *string, length int, source []byte) int {
	if length == 0 {
		*s = ""
		return 0
	}
	buf := make([]byte, length)
	n := Read(buf, source)
	*s = unsafe.String(unsafe.SliceData(buf), len(buf))
	return n
}
