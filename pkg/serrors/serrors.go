// Package serrors defines semantic errors: an error kind the transport layer
// maps to a status, a client safe message and an optional internal cause.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a semantic error category created with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a kind sentinel. name is the machine readable code reported
// to clients.
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized indicates missing or invalid authentication.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrForbidden indicates the caller may not perform the operation.
	ErrForbidden = NewKind("FORBIDDEN")
	// ErrBadRequest indicates invalid input.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrConflict indicates the operation clashes with the current state,
	// e.g. a duplicate VIN or selling a sold vehicle.
	ErrConflict = NewKind("CONFLICT")
	// ErrInternal indicates a failure the caller cannot fix.
	ErrInternal = NewKind("INTERNAL")
	// ErrTimeout indicates the operation ran out of time.
	ErrTimeout = NewKind("TIMEOUT")
	// ErrUnavailable indicates a dependency is temporarily down.
	ErrUnavailable = NewKind("UNAVAILABLE")
	// ErrRateLimited indicates a dependency throttled us, or we throttled the caller.
	ErrRateLimited = NewKind("RATE_LIMITED")
)

// Error is a semantic error. errors.Is and errors.As match both its kind and
// its wrapped cause.
//
// Error() renders "<msg>: <cause>", falling back to whichever part is set and
// finally to the kind code.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With creates an error of kind k with a formatted message and no cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap creates an error of kind k wrapping err. The message is what clients
// see; err stays internal.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates an error carrying nothing but k.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// KindOf returns the kind of the outermost semantic error in the chain of
// err, or nil when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}

	return nil
}

// MessageOf returns the message of the outermost semantic error in the chain
// of err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.msg
	}

	return ""
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}

	return (e.kind != nil && errors.Is(e.kind, target)) || (e.err != nil && errors.Is(e.err, target))
}

func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}

	return (e.kind != nil && errors.As(e.kind, target)) || (e.err != nil && errors.As(e.err, target))
}

// Kind returns the kind of e, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the client facing message of e.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped error, or nil.
func (e *Error) Cause() error { return e.err }
