/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: respcore/resperr/errors.go
*/

// Package resperr defines the fatal-error taxonomy raised by the resp
// package. Incompleteness is never reported through these: a short read
// is communicated by the parser's boolean "complete" return instead.
package resperr

import "fmt"

// Kind distinguishes the fatal error categories a frame can fail with.
type Kind int

const (
	KindArgument Kind = iota
	KindArgumentOutOfRange
	KindFormat
	KindInvalid
	KindExpectedNewLine
	KindTypeNotImplemented
	KindStorageKindNotImplemented
	KindUnknownSequenceVariety
)

func (k Kind) String() string {
	switch k {
	case KindArgument:
		return "Argument"
	case KindArgumentOutOfRange:
		return "ArgumentOutOfRange"
	case KindFormat:
		return "Format"
	case KindInvalid:
		return "Invalid"
	case KindExpectedNewLine:
		return "ExpectedNewLine"
	case KindTypeNotImplemented:
		return "RespTypeNotImplemented"
	case KindStorageKindNotImplemented:
		return "StorageKindNotImplemented"
	case KindUnknownSequenceVariety:
		return "UnknownSequenceVariety"
	default:
		return "Unknown"
	}
}

// Error is the concrete type for every fatal error this module raises.
// A frame-level failure (anything other than incomplete input) is
// always one of these, never a bare fmt error, so callers can
// errors.As into it and branch on Kind.
type Error struct {
	Kind    Kind
	Message string
	Byte    byte // populated for KindExpectedNewLine
	hasByte bool
}

func (e *Error) Error() string {
	if e.hasByte {
		return fmt.Sprintf("resp: %s: %s (got %q)", e.Kind, e.Message, string(e.Byte))
	}
	return fmt.Sprintf("resp: %s: %s", e.Kind, e.Message)
}

func newError(k Kind, format string, a ...interface{}) *Error {
	return &Error{Kind: k, Message: fmt.Sprintf(format, a...)}
}

func Argument(format string, a ...interface{}) error {
	return newError(KindArgument, format, a...)
}

func ArgumentOutOfRange(format string, a ...interface{}) error {
	return newError(KindArgumentOutOfRange, format, a...)
}

func Format(format string, a ...interface{}) error {
	return newError(KindFormat, format, a...)
}

func Invalid(format string, a ...interface{}) error {
	return newError(KindInvalid, format, a...)
}

// ExpectedNewLine reports a framing violation: the byte following a
// '\r' was not '\n'.
func ExpectedNewLine(actual byte) error {
	e := newError(KindExpectedNewLine, "expected '\\n' after '\\r'")
	e.Byte = actual
	e.hasByte = true
	return e
}

func TypeNotImplemented(tag byte) error {
	return newError(KindTypeNotImplemented, "unknown RESP type prefix %q", tag)
}

func StorageKindNotImplemented(kind fmt.Stringer) error {
	return newError(KindStorageKindNotImplemented, "storage kind %s not supported for this operation", kind)
}

func UnknownSequenceVariety(format string, a ...interface{}) error {
	return newError(KindUnknownSequenceVariety, format, a...)
}

// RespException is raised by Value.ThrowIfError when a SimpleError or
// BlobError value is inspected by a caller expecting a Go error rather
// than a data value.
type RespException struct {
	Message string
}

func (e *RespException) Error() string { return e.Message }

func NewRespException(message string) error {
	return &RespException{Message: message}
}
