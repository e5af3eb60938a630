package ber

import (
	"fmt"

	"golang.org/x/xerrors"
)

// Kind classifies the ways a Decode or Encode call can fail. Every failure
// the codec reports carries one of these; none are retried internally.
type Kind int

//go:generate stringer -type=Kind -trimprefix=Kind
const (
	// KindBadLength means the slice was shorter than a declared or
	// required length field.
	KindBadLength Kind = iota
	// KindUnsupportedType means the identifier octet isn't one this
	// codec knows how to dispatch.
	KindUnsupportedType
	// KindMalformedOid means an OID body ended mid base-128 continuation,
	// or a subidentifier overflowed the width it was decoded into.
	KindMalformedOid
	// KindIntegerOverflow means a signed INTEGER payload exceeded 8
	// bytes, or a fixed-width unsigned payload exceeded its width.
	KindIntegerOverflow
	// KindUnexpectedPdu means the PDU codec returned a pduType that
	// disagrees with the outer context tag that selected it.
	KindUnexpectedPdu
)

// Error is the concrete error type returned by every failing Decode or
// Encode call in this package. Offset is the byte position within the
// input slice at which the failure was detected, or -1 when the failure
// isn't tied to a single input position (e.g. an encode-side failure).
type Error struct {
	Kind   Kind
	Offset int
	msg    string
	cause  error
}

func (e *Error) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("ber: %s at offset %d: %s", e.Kind, e.Offset, e.msg)
	}
	return fmt.Sprintf("ber: %s: %s", e.Kind, e.msg)
}

func (e *Error) Unwrap() error { return e.cause }

// Format implements fmt.Formatter via xerrors.FormatError, so %+v prints
// this error's message followed by its cause chain. No stack frame is
// recorded when the error is raised.
func (e *Error) Format(s fmt.State, verb rune) { xerrors.FormatError(e, s, verb) }

// FormatError implements xerrors.Formatter.
func (e *Error) FormatError(p xerrors.Printer) (next error) {
	p.Print(e.Error())
	return e.cause
}

func newError(kind Kind, offset int, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Offset: offset, msg: fmt.Sprintf(format, args...)}
}

// NewError constructs an *Error not tied to a particular input offset,
// for use by external collaborators (like package pdu) that need to
// surface one of this package's error kinds without reaching into
// unexported constructors.
func NewError(kind Kind, format string, args ...interface{}) *Error {
	return newError(kind, -1, format, args...)
}

func wrapError(kind Kind, offset int, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Offset: offset, msg: fmt.Sprintf(format, args...), cause: cause}
}

// IsKind reports whether err is a *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var berErr *Error
	if xerrors.As(err, &berErr) {
		return berErr.Kind == kind
	}
	return false
}
