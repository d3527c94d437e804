package httperrx

import (
	"fmt"

	"github.com/Abraxas-365/httperrx/statusx"
	"github.com/Abraxas-365/httperrx/warnx"
)

// defaultStatus is the resolved status when none is supplied.
const defaultStatus = 500

type builder struct {
	status     int
	message    string
	messageSet bool
	cause      error
	props      map[string]any
	applied    int
}

// Option configures the factory during a New call. Options apply in order;
// within each category the last one wins.
type Option func(*builder)

// WithStatus sets the resolved status code. Supplying it anywhere but as the
// first option is legacy usage and emits a deprecation signal through warnx.
func WithStatus(status int) Option {
	return func(b *builder) {
		if b.applied > 0 {
			warnx.Deprecate(fmt.Sprintf("non-leading status option; pass WithStatus(%d) first", status))
		}
		b.status = status
	}
}

// WithMessage sets the message. It only applies when no cause is adopted; an
// adopted error keeps its own message.
func WithMessage(message string) Option {
	return func(b *builder) {
		b.message = message
		b.messageSet = true
	}
}

// WithCause adopts an existing error. If the cause reports a status code of
// its own (via a Status or StatusCode method), that becomes the resolved
// status, overridable by a later WithStatus.
func WithCause(cause error) Option {
	return func(b *builder) {
		if isNilError(cause) {
			return
		}
		b.cause = cause
		if status, ok := statusOf(cause); ok {
			b.status = status
		}
	}
}

// isNilError reports whether err is nil, including a typed-nil *Error
// carried inside a non-nil error interface.
func isNilError(err error) bool {
	if err == nil {
		return true
	}
	e, ok := err.(*Error)
	return ok && e == nil
}

// WithProperties sets the extra-property bag copied onto the final error.
// Only one bag is retained; a later WithProperties replaces an earlier one
// rather than merging. The protected "status" and "statusCode" keys are
// silently dropped during the copy.
func WithProperties(props map[string]any) Option {
	return func(b *builder) {
		b.props = props
	}
}

func statusOf(err error) (int, bool) {
	if e, ok := err.(interface{ Status() int }); ok && e.Status() != 0 {
		return e.Status(), true
	}
	if e, ok := err.(interface{ StatusCode() int }); ok && e.StatusCode() != 0 {
		return e.StatusCode(), true
	}
	return 0, false
}

// New normalizes its options into an HTTP error value. It never fails on
// bad input: an unknown or non-error status collapses to 500, out-of-range
// statuses emit a deprecation signal, and a matching per-status variant is
// reused when one exists.
//
// When the cause is itself an *Error, that value is stamped in place and
// returned; any other cause is wrapped, adopting its message, and remains
// reachable through Unwrap.
func New(opts ...Option) *Error {
	b := &builder{status: defaultStatus}
	for _, opt := range opts {
		opt(b)
		b.applied++
	}

	status := b.status
	if status < 400 || status >= 600 {
		warnx.Deprecate(fmt.Sprintf("non-error status code %d; use only 4xx or 5xx status codes", status))
	}
	if !statusx.IsKnown(status) && (status < 400 || status >= 600) {
		status = defaultStatus
	}

	variant, ok := ForStatus(status)
	if !ok {
		variant, _ = ForStatus(statusx.Class(status))
	}

	var err *Error
	if b.cause == nil {
		if variant != nil {
			if b.messageSet {
				err = variant.New(b.message)
			} else {
				err = variant.New()
			}
		} else {
			msg := b.message
			if msg == "" {
				msg = statusx.Text(status)
			}
			err = &Error{
				status:  status,
				expose:  status < 500,
				name:    "HTTPError",
				message: msg,
			}
		}
		err.stack = callers(1)
	} else if adopted, isOwn := b.cause.(*Error); isOwn {
		err = adopted
	} else {
		err = &Error{
			status:  status,
			expose:  status < 500,
			name:    "HTTPError",
			message: b.cause.Error(),
			cause:   b.cause,
			stack:   callers(1),
		}
	}

	// Re-stamp unless the error is variant-matched with the resolved status.
	// Status equality alone is not enough: an adopted error with the right
	// status but the wrong class still gets stamped.
	if variant == nil || err.name != variant.className || err.status != status {
		err.expose = status < 500
		err.status = status
	}

	for key, value := range b.props {
		switch key {
		case "status", "statusCode":
			// protected
		case "expose":
			if expose, ok := value.(bool); ok {
				err.expose = expose
				continue
			}
			err.WithProperty(key, value)
		case "message":
			if message, ok := value.(string); ok {
				err.message = message
				continue
			}
			err.WithProperty(key, value)
		case "name":
			if name, ok := value.(string); ok {
				err.name = name
				continue
			}
			err.WithProperty(key, value)
		default:
			err.WithProperty(key, value)
		}
	}

	return err
}
