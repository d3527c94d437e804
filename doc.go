/*
Package httperrx creates HTTP error values with a status code, an expose
flag, and optional extra properties. It is meant for web frameworks that
need to normalize arbitrary errors into a consistent shape keyed by the
standard HTTP status codes (400-599).

# Basic Usage

Build an error through the factory:

	err := httperrx.New(
		httperrx.WithStatus(404),
		httperrx.WithMessage("user 42 not found"),
	)

	err.Status()     // 404
	err.StatusCode() // 404, always equal to Status
	err.Expose()     // true, client errors are safe to show
	err.Error()      // "user 42 not found"

With no options the factory produces a 500:

	err := httperrx.New() // 500 Internal Server Error, Expose() == false

# Per-Status Variants

Every known 4xx and 5xx status code has a registered variant with the
status and expose policy baked in, resolvable by code or by derived name:

	notFound, _ := httperrx.ForStatus(404)
	teapot, _ := httperrx.ForName("ImATeapot")

	err := notFound.New()               // message "Not Found"
	err = notFound.New("user missing")  // custom message

Client-error variants (4xx) expose their message, server-error variants
(5xx) do not.

# Adopting Existing Errors

Wrap an upstream error and normalize its status:

	err := httperrx.New(
		httperrx.WithCause(dbErr),
		httperrx.WithStatus(503),
	)

The cause stays reachable through errors.Unwrap. A cause that reports its
own status (a Status or StatusCode method) contributes it as the resolved
default.

# Extra Properties

Attach arbitrary key/value properties; the protected "status" and
"statusCode" keys are dropped silently:

	err := httperrx.New(
		httperrx.WithStatus(404),
		httperrx.WithProperties(map[string]any{"code": "ENOENT"}),
	)

	code, _ := err.Property("code")

# Recognizing HTTP Errors

IsHTTPError accepts any value and reports whether it conforms to the
HTTPError contract, including conforming types built outside this package:

	if httperrx.IsHTTPError(err) {
		he := err.(httperrx.HTTPError)
		w.WriteHeader(he.StatusCode())
	}

# Deprecation Signals

Legacy usage (a non-leading WithStatus option, or a status outside the
4xx/5xx range) emits an advisory signal through the warnx package. Signals
never change the returned value and are pluggable for tests.
*/
package httperrx
