// Package fricgan transcodes scalar values to and from raw byte buffers.
//
// Three layers are provided, each built on the one below it:
//
//   - fixed-width scalars (EncodeFixed, DecodeFixed): a straight memory
//     image of the value in host-native byte order
//   - variable-length quantities (EncodeVLQ, DecodeVLQ): 7 payload bits
//     per byte, high bit set while more bytes follow
//   - length-prefixed strings (WriteString, ReadString, WriteVLQString,
//     ReadVLQString): a length field immediately followed by the raw bytes
//
// # Wire layout
//
//	fixed:   [W bytes, native order]
//	vlq:     [b0|0x80][b1|0x80]...[bn]      bi = (v >> 7i) & 0x7F
//	string:  [length field][payload]
//
// Every operation reads and writes from offset 0 of the buffer it is handed
// and returns the number of bytes it transferred. Buffers are borrowed for
// the duration of the call only.
//
// The functions in this package do not validate buffer sizes. An undersized
// buffer is a caller bug and panics through Go's own bounds checks; building
// with the fricgan_assert tag turns that into an explicit assertion with a
// descriptive message. Use package checked for error-returning variants and
// package stream to move values over an io.Reader or io.Writer.
//
// Byte order is never normalized. Callers exchanging data between hosts
// of different endianness must convert before encoding and after decoding.
package fricgan
