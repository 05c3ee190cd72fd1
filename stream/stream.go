// Package stream moves fricgan-encoded values over blocking byte streams.
//
// Reads use io.ReadFull, so a value is either transferred whole or the
// call fails. Writes treat a partial write as io.ErrShortWrite. A failed
// write always reports 0 bytes transferred.
package stream

import (
	"errors"
	"fmt"
	"io"
	"unsafe"

	"github.com/rawbytedev/fricgan"
	"go.uber.org/zap"
)

// MaxStringSize bounds the payload length ReadString and ReadVLQString
// will allocate for. A corrupt length field fails with ErrTooLarge
// instead of exhausting memory.
var MaxStringSize = 16 << 20

// ErrTooLarge is returned when a decoded string length exceeds MaxStringSize.
var ErrTooLarge = errors.New("stream: string too large")

// ByteReader is a reader that can also be consumed one byte at a time,
// such as *bufio.Reader or *bytes.Reader.
type ByteReader interface {
	io.Reader
	io.ByteReader
}

// ReadFixed reads exactly Size[T]() bytes from r into *v.
func ReadFixed[T fricgan.Scalar](r io.Reader, v *T) (int, error) {
	var buf [8]byte
	w := fricgan.Size[T]()
	if err := readFull(r, buf[:w]); err != nil {
		return 0, err
	}
	return fricgan.DecodeFixed(v, buf[:w]), nil
}

// WriteFixed writes the native-order image of v to w.
func WriteFixed[T fricgan.Scalar](w io.Writer, v T) (int, error) {
	var buf [8]byte
	n := fricgan.EncodeFixed(v, buf[:])
	return writeAll(w, buf[:n])
}

// ReadVLQ reads one variable-length quantity from r into *v, consuming
// bytes up to and including the terminator or until the bit ceiling is
// reached.
func ReadVLQ[T fricgan.VLQInt](r io.ByteReader, v *T) (int, error) {
	var buf [fricgan.MaxVLQLen64 + 1]byte
	limit := fricgan.VLQReadLimit[T]()
	n := 0
	for n < limit {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF && n > 0 {
				err = io.ErrUnexpectedEOF
			}
			return 0, fmt.Errorf("stream: read vlq byte %d: %w", n, err)
		}
		buf[n] = b
		n++
		if b&0x80 == 0 {
			break
		}
	}
	return fricgan.DecodeVLQ(v, buf[:n]), nil
}

// WriteVLQ writes the canonical encoding of v to w.
func WriteVLQ[T fricgan.VLQInt](w io.Writer, v T) (int, error) {
	var buf [fricgan.MaxVLQLen64]byte
	n := fricgan.EncodeVLQ(v, buf[:])
	return writeAll(w, buf[:n])
}

// ReadString reads a string framed behind a fixed-width L length.
func ReadString[L fricgan.Unsigned](r io.Reader, s *string) (int, error) {
	var length L
	n, err := ReadFixed(r, &length)
	if err != nil {
		return 0, err
	}
	m, err := readPayload(r, s, uint64(length))
	if err != nil {
		return 0, err
	}
	return n + m, nil
}

// WriteString writes s framed behind a fixed-width L length.
func WriteString[L fricgan.Unsigned](w io.Writer, s string) (int, error) {
	buf := make([]byte, fricgan.StringLen[L](s))
	n := fricgan.WriteString[L](s, buf)
	return writeAll(w, buf[:n])
}

// ReadVLQString reads a string framed behind a VLQ length of type L.
func ReadVLQString[L fricgan.VLQInt](r ByteReader, s *string) (int, error) {
	var length L
	n, err := ReadVLQ(r, &length)
	if err != nil {
		return 0, err
	}
	m, err := readPayload(r, s, uint64(length))
	if err != nil {
		return 0, err
	}
	return n + m, nil
}

// WriteVLQString writes s framed behind a VLQ length of type L.
func WriteVLQString[L fricgan.VLQInt](w io.Writer, s string) (int, error) {
	buf := make([]byte, fricgan.VLQStringLen[L](s))
	n := fricgan.WriteVLQString[L](s, buf)
	return writeAll(w, buf[:n])
}

func readPayload(r io.Reader, s *string, length uint64) (int, error) {
	if length > uint64(MaxStringSize) {
		return 0, fmt.Errorf("%w: length %d exceeds %d", ErrTooLarge, length, MaxStringSize)
	}
	if length == 0 {
		*s = ""
		return 0, nil
	}
	buf := make([]byte, length)
	if err := readFull(r, buf); err != nil {
		return 0, err
	}
	*s = unsafe.String(unsafe.SliceData(buf), len(buf))
	return len(buf), nil
}

func readFull(r io.Reader, p []byte) error {
	n, err := io.ReadFull(r, p)
	if err != nil {
		return fmt.Errorf("stream: read %d bytes (got %d): %w", len(p), n, err)
	}
	return nil
}

func writeAll(w io.Writer, p []byte) (int, error) {
	n, err := w.Write(p)
	if err == nil && n != len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		Logger().Debug("stream write failed",
			zap.Int("want", len(p)),
			zap.Int("wrote", n),
			zap.Error(err))
		return 0, fmt.Errorf("stream: write %d bytes: %w", len(p), err)
	}
	return n, nil
}
