// Package serrors provides semantic errors: a small set of kinds (not found,
// unauthorized, bad request, ...) that travel with an error through the
// service layers and are translated to transport status codes at the edge.
package serrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind. It allows distinguishing semantic kinds from ordinary errors.
type Kind interface {
	error
	// Status is the HTTP status code the kind is reported with.
	Status() int
	isKind()
}

type kind struct {
	s      string
	status int
}

func (k kind) Error() string { return k.s }
func (k kind) Status() int   { return k.status }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel) with the provided
// name and the HTTP status it maps to.
func NewKind(name string, status int) Kind { return kind{s: name, status: status} }

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = NewKind("NOT_FOUND", http.StatusNotFound)
	// ErrUnauthorized indicates missing or invalid authentication.
	ErrUnauthorized = NewKind("UNAUTHORIZED", http.StatusUnauthorized)
	// ErrForbidden indicates the caller is authenticated but not allowed to perform the operation.
	ErrForbidden = NewKind("FORBIDDEN", http.StatusForbidden)
	// ErrBadRequest indicates the caller sent invalid data, including a
	// violated precondition of a pure computation.
	ErrBadRequest = NewKind("BAD_REQUEST", http.StatusBadRequest)
	// ErrConflict indicates a state conflict (e.g., resource already exists).
	ErrConflict = NewKind("CONFLICT", http.StatusConflict)
	// ErrInternal indicates an internal server error.
	ErrInternal = NewKind("INTERNAL", http.StatusInternalServerError)
	// ErrUnavailable indicates the service is temporarily unavailable.
	ErrUnavailable = NewKind("UNAVAILABLE", http.StatusServiceUnavailable)
	// ErrRateLimited indicates too many requests.
	ErrRateLimited = NewKind("RATE_LIMITED", http.StatusTooManyRequests)
)

// Error is a semantic error carrying a kind, an optional wrapped cause and an
// optional message. errors.Is and errors.As match either the kind or the cause.
//
// Error() renders "<msg>: <cause>", "<msg>", "<cause>" or the kind name,
// depending on which parts are set.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a new semantic error with the given kind and message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a new semantic error with the given kind around cause.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
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

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is matches target against the kind sentinel or the wrapped cause.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}

	return e.err != nil && errors.Is(e.err, target)
}

// As matches target against the kind sentinel or the wrapped cause.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}

	return e.err != nil && errors.As(e.err, target)
}

// Kind returns the kind sentinel associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// KindOf returns the kind of the first semantic error or bare Kind found in
// err's chain. Anything else is reported as ErrInternal.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) && se.kind != nil {
		return se.kind
	}
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}

// PublicMessage returns the text that may be shown to API callers for err.
// Internal errors never leak their cause.
func PublicMessage(err error) string {
	k := KindOf(err)
	if k == ErrInternal {
		return "internal error"
	}
	var se *Error
	if errors.As(err, &se) && se.msg != "" {
		return se.msg
	}

	return defaultMessages[k]
}

var defaultMessages = map[Kind]string{ //nolint: gochecknoglobals
	ErrNotFound:     "resource not found",
	ErrUnauthorized: "could not validate credentials",
	ErrForbidden:    "forbidden",
	ErrBadRequest:   "bad request",
	ErrConflict:     "conflict",
	ErrUnavailable:  "service unavailable",
	ErrRateLimited:  "too many requests",
}
