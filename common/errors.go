package common

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork is the kind of errors caused by the transport: resolving,
	// dialing, sending to or receiving from the bulb
	ErrNetwork = errors.New(`network error`)
	// ErrParse is the kind of errors caused by a reply that is not valid
	// UTF-8, not valid JSON, or not a shape the protocol knows about
	ErrParse = errors.New(`parse error`)
	// ErrServer is the kind of errors reported by the bulb itself, it
	// understood the request but refused it
	ErrServer = errors.New(`server error`)
	// ErrUnexpected is the kind of errors caused by a well-formed reply whose
	// shape does not match the request that was sent
	ErrUnexpected = errors.New(`unexpected response`)

	// ErrTimeout is returned when no reply arrived within the configured
	// timeout, or a subscriber did not accept an event in time
	ErrTimeout = errors.New(`timeout`)
	// ErrClosed is returned when operating on a closed client, transport or
	// subscription
	ErrClosed = errors.New(`closed`)
	// ErrNotFound is returned when looking up an unknown subscription
	ErrNotFound = errors.New(`not found`)
)

// Error describes a failed bulb operation.  Kind is always one of ErrNetwork,
// ErrParse, ErrServer or ErrUnexpected, so callers can match on it with
// errors.Is.
type Error struct {
	Kind error
	Op   string
	Err  error
}

// NewError returns an *Error of the given kind for operation op.  err may be
// nil.
func NewError(kind error, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// KindOf returns the kind of err, or nil if err is not an operation error.
func KindOf(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return nil
}
