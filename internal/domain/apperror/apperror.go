// Package apperror defines the error kinds shared by services, storage adapters
// and the HTTP layer. Kinds are matched with errors.Is.
package apperror

import "errors"

var (
	ErrInvalid         = errors.New("invalid request")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrUnavailable     = errors.New("unavailable")
)

// Error carries a client-facing message for one of the kinds above plus an
// optional cause that is only ever logged.
type Error struct {
	kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Is(target error) bool { return target == e.kind }

func (e *Error) Unwrap() error { return e.Err }

// Kind returns the sentinel this error belongs to.
func (e *Error) Kind() error { return e.kind }

func newError(kind error, msg string, err error) *Error {
	if msg == "" {
		msg = kind.Error()
	}
	return &Error{kind: kind, Message: msg, Err: err}
}

func Invalid(msg string) error         { return newError(ErrInvalid, msg, nil) }
func Unauthenticated(msg string) error { return newError(ErrUnauthenticated, msg, nil) }
func Forbidden(msg string) error       { return newError(ErrForbidden, msg, nil) }
func NotFound(msg string) error        { return newError(ErrNotFound, msg, nil) }
func Conflict(msg string) error        { return newError(ErrConflict, msg, nil) }
func Unavailable(msg string) error     { return newError(ErrUnavailable, msg, nil) }

// Wrap attaches a cause to a kind. kind must be one of the package sentinels.
func Wrap(kind error, msg string, err error) error { return newError(kind, msg, err) }

// Message returns the client-facing text of err, or fallback when err does not
// carry one.
func Message(err error, fallback string) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return fallback
}
