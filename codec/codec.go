// Package codec exposes the fricgan operations by capability name, with
// values exchanged as text. Each capability must be enabled in the
// Registry before it can be used.
package codec

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/rawbytedev/fricgan"
	"github.com/rawbytedev/fricgan/checked"
	"github.com/rawbytedev/fricgan/config"
	"github.com/rawbytedev/fricgan/internal/common"
	"go.uber.org/zap"
)

var (
	// ErrDisabled is returned for capabilities that are not enabled.
	ErrDisabled = errors.New("codec: capability disabled")
	// ErrFault is returned when an unchecked operation faults on its
	// buffer.
	ErrFault = errors.New("codec: buffer fault")
)

// Registry dispatches encode and decode requests to the enabled
// capabilities.
type Registry struct {
	features config.Features
	checked  bool
	log      *zap.Logger
}

type Option func(*Registry)

// WithLogger sets the logger used for request tracing.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRegistry returns a Registry serving the capabilities in features.
// When checked is set every operation goes through package checked.
func NewRegistry(features config.Features, checked bool, opts ...Option) *Registry {
	r := &Registry{features: features, checked: checked, log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FromConfig builds a Registry from a loaded configuration.
func FromConfig(cfg *config.Config, opts ...Option) (*Registry, error) {
	features, err := cfg.FeatureSet()
	if err != nil {
		return nil, err
	}
	return NewRegistry(features, cfg.Checked, opts...), nil
}

func (r *Registry) Enabled(c config.Capability) bool {
	return r.features.Has(c)
}

func (r *Registry) Checked() bool {
	return r.checked
}

func (r *Registry) Features() config.Features {
	return r.features
}

// Capabilities lists the enabled capabilities.
func (r *Registry) Capabilities() []config.Capability {
	return r.features.List()
}

// Encode parses text as a value of capability c and returns its encoding.
func (r *Registry) Encode(c config.Capability, text string) (out []byte, err error) {
	if !r.Enabled(c) {
		return nil, fmt.Errorf("%w: %s", ErrDisabled, c)
	}
	defer r.recoverFault(c, "encode", &err)

	switch c {
	case config.U8:
		out, err = encodeUint[uint8](r, c, text)
	case config.U16:
		out, err = encodeUint[uint16](r, c, text)
	case config.U32:
		out, err = encodeUint[uint32](r, c, text)
	case config.U64:
		out, err = encodeUint[uint64](r, c, text)
	case config.I8:
		out, err = encodeInt[int8](r, c, text)
	case config.I16:
		out, err = encodeInt[int16](r, c, text)
	case config.I32:
		out, err = encodeInt[int32](r, c, text)
	case config.I64:
		out, err = encodeInt[int64](r, c, text)
	case config.F32:
		out, err = encodeFloat[float32](r, c, text)
	case config.F64:
		out, err = encodeFloat[float64](r, c, text)
	case config.VLQ32:
		out, err = encodeVLQ[uint32](r, c, text)
	case config.VLQ64:
		out, err = encodeVLQ[uint64](r, c, text)
	case config.String:
		out, err = r.encodeString(text)
	case config.VLQString:
		out, err = r.encodeVLQString(text)
	default:
		return nil, fmt.Errorf("codec: unknown capability %s", c)
	}
	if err != nil {
		return nil, err
	}
	r.log.Debug("encoded",
		zap.Stringer("capability", c),
		zap.Int("bytes", len(out)))
	return out, nil
}

// Decode decodes a value of capability c from the start of data and
// returns its text form and the number of bytes consumed.
func (r *Registry) Decode(c config.Capability, data []byte) (text string, n int, err error) {
	if !r.Enabled(c) {
		return "", 0, fmt.Errorf("%w: %s", ErrDisabled, c)
	}
	defer r.recoverFault(c, "decode", &err)

	switch c {
	case config.U8:
		text, n, err = decodeUint[uint8](r, data)
	case config.U16:
		text, n, err = decodeUint[uint16](r, data)
	case config.U32:
		text, n, err = decodeUint[uint32](r, data)
	case config.U64:
		text, n, err = decodeUint[uint64](r, data)
	case config.I8:
		text, n, err = decodeInt[int8](r, data)
	case config.I16:
		text, n, err = decodeInt[int16](r, data)
	case config.I32:
		text, n, err = decodeInt[int32](r, data)
	case config.I64:
		text, n, err = decodeInt[int64](r, data)
	case config.F32:
		text, n, err = decodeFloat[float32](r, c, data)
	case config.F64:
		text, n, err = decodeFloat[float64](r, c, data)
	case config.VLQ32:
		text, n, err = decodeVLQ[uint32](r, data)
	case config.VLQ64:
		text, n, err = decodeVLQ[uint64](r, data)
	case config.String:
		text, n, err = r.decodeString(data)
	case config.VLQString:
		text, n, err = r.decodeVLQString(data)
	default:
		return "", 0, fmt.Errorf("codec: unknown capability %s", c)
	}
	if err != nil {
		return "", 0, err
	}
	r.log.Debug("decoded",
		zap.Stringer("capability", c),
		zap.Int("consumed", n))
	return text, n, nil
}

func (r *Registry) recoverFault(c config.Capability, op string, err *error) {
	if p := recover(); p != nil {
		r.log.Warn("codec fault",
			zap.Stringer("capability", c),
			zap.String("op", op),
			zap.Any("panic", p))
		*err = fmt.Errorf("%w: %s %s: %v", ErrFault, op, c, p)
	}
}

func parseError(c config.Capability, text string, err error) error {
	return fmt.Errorf("codec: parse %s value %q: %w", c, text, err)
}

func encodeFixed[T fricgan.Scalar](r *Registry, v T) ([]byte, error) {
	buf := make([]byte, fricgan.Size[T]())
	if r.checked {
		n, err := checked.EncodeFixed(v, buf)
		return buf[:n], err
	}
	return buf[:fricgan.EncodeFixed(v, buf)], nil
}

func decodeFixed[T fricgan.Scalar](r *Registry, data []byte) (T, int, error) {
	var v T
	if r.checked {
		n, err := checked.DecodeFixed(&v, data)
		return v, n, err
	}
	return v, fricgan.DecodeFixed(&v, data), nil
}

func encodeUint[T uint8 | uint16 | uint32 | uint64](r *Registry, c config.Capability, text string) ([]byte, error) {
	u, err := strconv.ParseUint(text, 0, common.BitSize(c))
	if err != nil {
		return nil, parseError(c, text, err)
	}
	return encodeFixed(r, T(u))
}

func decodeUint[T uint8 | uint16 | uint32 | uint64](r *Registry, data []byte) (string, int, error) {
	v, n, err := decodeFixed[T](r, data)
	if err != nil {
		return "", 0, err
	}
	return strconv.FormatUint(uint64(v), 10), n, nil
}

func encodeInt[T int8 | int16 | int32 | int64](r *Registry, c config.Capability, text string) ([]byte, error) {
	i, err := strconv.ParseInt(text, 0, common.BitSize(c))
	if err != nil {
		return nil, parseError(c, text, err)
	}
	return encodeFixed(r, T(i))
}

func decodeInt[T int8 | int16 | int32 | int64](r *Registry, data []byte) (string, int, error) {
	v, n, err := decodeFixed[T](r, data)
	if err != nil {
		return "", 0, err
	}
	return strconv.FormatInt(int64(v), 10), n, nil
}

func encodeFloat[T float32 | float64](r *Registry, c config.Capability, text string) ([]byte, error) {
	f, err := strconv.ParseFloat(text, common.BitSize(c))
	if err != nil {
		return nil, parseError(c, text, err)
	}
	return encodeFixed(r, T(f))
}

func decodeFloat[T float32 | float64](r *Registry, c config.Capability, data []byte) (string, int, error) {
	v, n, err := decodeFixed[T](r, data)
	if err != nil {
		return "", 0, err
	}
	return strconv.FormatFloat(float64(v), 'g', -1, common.BitSize(c)), n, nil
}

func encodeVLQ[T fricgan.VLQInt](r *Registry, c config.Capability, text string) ([]byte, error) {
	u, err := strconv.ParseUint(text, 0, common.BitSize(c))
	if err != nil {
		return nil, parseError(c, text, err)
	}
	v := T(u)
	buf := make([]byte, fricgan.VLQLen(v))
	if r.checked {
		n, err := checked.EncodeVLQ(v, buf)
		return buf[:n], err
	}
	return buf[:fricgan.EncodeVLQ(v, buf)], nil
}

func decodeVLQ[T fricgan.VLQInt](r *Registry, data []byte) (string, int, error) {
	var v T
	var n int
	if r.checked {
		var err error
		if n, err = checked.DecodeVLQ(&v, data); err != nil {
			return "", 0, err
		}
	} else {
		n = fricgan.DecodeVLQ(&v, data)
	}
	return strconv.FormatUint(uint64(v), 10), n, nil
}

func (r *Registry) encodeString(s string) ([]byte, error) {
	if r.checked {
		buf := make([]byte, fricgan.StringLen[uint32](s))
		n, err := checked.WriteString[uint32](s, buf)
		return buf[:n], err
	}
	if uint64(len(s)) > math.MaxUint32 {
		return nil, fmt.Errorf("codec: string of %d bytes exceeds uint32 length", len(s))
	}
	buf := make([]byte, fricgan.StringLen[uint32](s))
	return buf[:fricgan.WriteString[uint32](s, buf)], nil
}

func (r *Registry) decodeString(data []byte) (string, int, error) {
	var s string
	if r.checked {
		n, err := checked.ReadString[uint32](&s, data)
		return s, n, err
	}
	var length uint32
	n := fricgan.DecodeFixed(&length, data)
	if err := r.payloadFits(config.String, n, uint64(length), len(data)); err != nil {
		return "", 0, err
	}
	return s, fricgan.ReadString[uint32](&s, data), nil
}

func (r *Registry) encodeVLQString(s string) ([]byte, error) {
	if r.checked {
		buf := make([]byte, fricgan.VLQStringLen[uint32](s))
		n, err := checked.WriteVLQString[uint32](s, buf)
		return buf[:n], err
	}
	if uint64(len(s)) > math.MaxUint32 {
		return nil, fmt.Errorf("codec: string of %d bytes exceeds uint32 length", len(s))
	}
	buf := make([]byte, fricgan.VLQStringLen[uint32](s))
	return buf[:fricgan.WriteVLQString[uint32](s, buf)], nil
}

func (r *Registry) decodeVLQString(data []byte) (string, int, error) {
	var s string
	if r.checked {
		n, err := checked.ReadVLQString[uint32](&s, data)
		return s, n, err
	}
	var length uint32
	n := fricgan.DecodeVLQ(&length, data)
	if err := r.payloadFits(config.VLQString, n, uint64(length), len(data)); err != nil {
		return "", 0, err
	}
	return s, fricgan.ReadVLQString[uint32](&s, data), nil
}

// payloadFits rejects a length field that runs past the input before the
// unchecked read allocates for it.
func (r *Registry) payloadFits(c config.Capability, field int, length uint64, have int) error {
	if uint64(field)+length <= uint64(have) {
		return nil
	}
	r.log.Warn("codec fault",
		zap.Stringer("capability", c),
		zap.String("op", "decode"),
		zap.Uint64("length", length),
		zap.Int("have", have))
	return fmt.Errorf("%w: decode %s: payload of %d bytes after %d-byte length exceeds %d-byte input",
		ErrFault, c, length, field, have)
}
