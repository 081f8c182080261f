package jvm

import (
	"errors"
	"fmt"
)

// Decode error categories. Every decode failure wraps exactly one of
// these, so callers can match with errors.Is.
var (
	ErrMalformedType         = errors.New("malformed type")
	ErrMalformedParams       = errors.New("malformed parameter types")
	ErrInvalidMethodID       = errors.New("invalid method id")
	ErrBadReturnType         = errors.New("bad return type")
	ErrInvalidFieldID        = errors.New("invalid field id")
	ErrExtraCharacters       = errors.New("extra characters after type")
	ErrInvalidAbsoluteName   = errors.New("invalid absolute name")
	ErrUnrecognizedToken     = errors.New("unrecognized token")
	ErrUnexpectedToken       = errors.New("unexpected token")
	ErrUnterminatedArray     = errors.New("unterminated array")
	ErrUnsupportedValueShape = errors.New("unsupported value shape")
)

// DecodeError is a decode failure with the input that caused it.
// Kind is one of the sentinel errors above and is reachable via
// errors.Is / errors.Unwrap.
type DecodeError struct {
	Kind   error
	Input  string
	Offset int // byte offset of the offence, -1 when not applicable
	Msg    string
}

func (e *DecodeError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%v: %s at offset %d in %q", e.Kind, e.Msg, e.Offset, e.Input)
	}
	return fmt.Sprintf("%v: %s in %q", e.Kind, e.Msg, e.Input)
}

func (e *DecodeError) Unwrap() error { return e.Kind }

// decodeErr builds a DecodeError without position information.
func decodeErr(kind error, input, format string, args ...interface{}) error {
	return &DecodeError{Kind: kind, Input: input, Offset: -1, Msg: fmt.Sprintf(format, args...)}
}

// decodeErrAt builds a DecodeError pointing at a byte offset.
func decodeErrAt(kind error, input string, offset int, format string, args ...interface{}) error {
	return &DecodeError{Kind: kind, Input: input, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}
