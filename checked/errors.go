package checked

import (
	"errors"
	"fmt"
)

var (
	ErrShortBuffer  = errors.New("short buffer")
	ErrOverflow     = errors.New("value overflows target width")
	ErrNonCanonical = errors.New("non-canonical vlq encoding")
)

// Error describes a rejected transcode. Kind is one of the package's
// sentinel errors, so errors.Is(err, ErrShortBuffer) works on it.
type Error struct {
	Op     string
	Kind   error
	Need   int
	Have   int
	Detail string
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("fricgan: %s: %v", e.Op, e.Kind)
	if e.Need > 0 {
		msg += fmt.Sprintf(" (need %d bytes, have %d)", e.Need, e.Have)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func shortBuffer(op string, need, have int) error {
	return &Error{Op: op, Kind: ErrShortBuffer, Need: need, Have: have}
}

func overflow(op, format string, args ...any) error {
	return &Error{Op: op, Kind: ErrOverflow, Detail: fmt.Sprintf(format, args...)}
}
