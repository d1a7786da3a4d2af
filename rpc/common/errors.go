package common

import (
	"errors"
	"fmt"
)

// --------------------------------------------------------------------------
// Error Kinds
// --------------------------------------------------------------------------

// ErrorKind categorizes why a call failed, so callers can tell
// "application not running" apart from "protocol mismatch"
type ErrorKind uint8

const (
	ErrKindUnknown           ErrorKind = iota // 0: not produced by this module
	ErrKindConnectionFailed                   // 1: the connection could not be established
	ErrKindTransportError                     // 2: write or read failed after the connection was established
	ErrKindMalformedResponse                  // 3: the peer's answer is too short (or otherwise undecodable)
	ErrKindInvalidRequest                     // 4: the request could not be encoded, nothing was sent
)

func (k ErrorKind) String() string {
	switch k {
	case ErrKindConnectionFailed:
		return "ConnectionFailed"
	case ErrKindTransportError:
		return "TransportError"
	case ErrKindMalformedResponse:
		return "MalformedResponse"
	case ErrKindInvalidRequest:
		return "InvalidRequest"
	default:
		return "Unknown"
	}
}

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is the single error type returned by the codec, the transport and the client.
type Error struct {
	Kind ErrorKind // The error kind
	Cmd  Command   // The command of the failed call (0 if unknown)
	Msg  string    // The error message
	Err  error     // The underlying cause, if any
}

// Sentinels for errors.Is, they match any *Error of the same kind
var (
	ErrConnectionFailed  = &Error{Kind: ErrKindConnectionFailed}
	ErrTransport         = &Error{Kind: ErrKindTransportError}
	ErrMalformedResponse = &Error{Kind: ErrKindMalformedResponse}
	ErrInvalidRequest    = &Error{Kind: ErrKindInvalidRequest}
)

// NewError creates a new Error with the given kind and message
func NewError(kind ErrorKind, cmd Command, msg string) *Error {
	return &Error{
		Kind: kind,
		Cmd:  cmd,
		Msg:  msg,
	}
}

// WrapError creates a new Error with the given kind that wraps err
func WrapError(kind ErrorKind, cmd Command, err error, format string, args ...interface{}) *Error {
	return &Error{
		Kind: kind,
		Cmd:  cmd,
		Msg:  fmt.Sprintf(format, args...),
		Err:  err,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Msg
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Cmd != 0 {
		return fmt.Sprintf("BouyomiError (kind %s, cmd %s): %s", e.Kind, e.Cmd, msg)
	}
	return fmt.Sprintf("BouyomiError (kind %s): %s", e.Kind, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels (ErrConnectionFailed, ...) against any error of the same kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Msg == "" && t.Err == nil
}

// KindOf returns the kind of err, or ErrKindUnknown if err is not an *Error
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrKindUnknown
}
