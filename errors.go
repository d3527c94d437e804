package httperrx

import (
	"errors"
	"runtime"

	pkgerrors "github.com/pkg/errors"
)

// HTTPError is the capability contract shared by every error value this
// package produces. Status and StatusCode always report the same number;
// Expose tells callers whether the message is safe to show to clients.
//
// External error types that implement it are recognized by IsHTTPError, so
// values built elsewhere can conform to the same contract.
type HTTPError interface {
	error
	Status() int
	StatusCode() int
	Expose() bool
}

// Error is the concrete HTTP error value produced by the factory and by the
// per-status variant constructors. The status, expose flag and name are
// fixed at construction; extra properties can be attached.
type Error struct {
	status  int
	expose  bool
	name    string
	message string
	props   map[string]any
	cause   error
	stack   []uintptr
}

var _ HTTPError = (*Error)(nil)

// Error implements the error interface, returning the message.
func (e *Error) Error() string {
	return e.message
}

// Status returns the HTTP status code.
func (e *Error) Status() int {
	return e.status
}

// StatusCode returns the HTTP status code. It is always equal to Status.
func (e *Error) StatusCode() int {
	return e.status
}

// Expose reports whether the message is safe to reveal to clients. It is
// true for client errors (4xx) and false for server errors (5xx) unless the
// factory stamped it otherwise.
func (e *Error) Expose() bool {
	return e.expose
}

// Name returns the error class name, e.g. "NotFoundError".
func (e *Error) Name() string {
	return e.name
}

// Unwrap returns the adopted cause, if any, for errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// Property returns an extra property attached to the error.
func (e *Error) Property(key string) (any, bool) {
	v, ok := e.props[key]
	return v, ok
}

// Properties returns a copy of all extra properties attached to the error.
// Returns nil when there are none.
func (e *Error) Properties() map[string]any {
	if len(e.props) == 0 {
		return nil
	}
	out := make(map[string]any, len(e.props))
	for k, v := range e.props {
		out[k] = v
	}
	return out
}

// WithProperty attaches a single extra property and returns the same error
// for chaining. The protected "status" and "statusCode" keys are ignored.
func (e *Error) WithProperty(key string, value any) *Error {
	if key == "status" || key == "statusCode" {
		return e
	}
	if e.props == nil {
		e.props = make(map[string]any)
	}
	e.props[key] = value
	return e
}

// StackTrace returns the call stack captured when the error was built,
// rooted at the constructing caller. Formatting with %+v prints source
// locations frame by frame.
func (e *Error) StackTrace() pkgerrors.StackTrace {
	st := make(pkgerrors.StackTrace, len(e.stack))
	for i, pc := range e.stack {
		st[i] = pkgerrors.Frame(pc)
	}
	return st
}

// callers captures the current call stack, skipping the given number of
// frames on top of callers itself and runtime.Callers.
func callers(skip int) []uintptr {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(skip+2, pcs)
	return pcs[:n]
}

// IsHTTPError reports whether a value conforms to the HTTP error contract:
// it implements HTTPError and its Status and StatusCode agree. This
// recognizes externally constructed conforming types, not just values built
// by this package.
func IsHTTPError(v any) bool {
	if v == nil {
		return false
	}
	// A typed-nil *Error inside a non-nil interface is still nothing.
	if e, ok := v.(*Error); ok {
		return e != nil
	}
	e, ok := v.(HTTPError)
	if !ok {
		return false
	}
	return e.Status() == e.StatusCode()
}

// IsStatus checks if an error is (or wraps) an Error with a specific status
// code.
func IsStatus(err error, status int) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.status == status
	}
	return false
}
