package httperrx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// conforming is an error type built outside the factory that still matches
// the HTTPError contract.
type conforming struct {
	status int
	code   int
	expose bool
}

func (c *conforming) Error() string   { return "conforming" }
func (c *conforming) Status() int     { return c.status }
func (c *conforming) StatusCode() int { return c.code }
func (c *conforming) Expose() bool    { return c.expose }

func Test_IsHTTPError(t *testing.T) {
	assert.True(t, IsHTTPError(New(WithStatus(500))))
	assert.True(t, IsHTTPError(New(WithStatus(404))))

	v, _ := ForStatus(403)
	assert.True(t, IsHTTPError(v.New()))

	assert.False(t, IsHTTPError(nil))
	assert.False(t, IsHTTPError(struct{}{}))
	assert.False(t, IsHTTPError("not an error"))
	assert.False(t, IsHTTPError(errors.New("plain")))
}

func Test_IsHTTPError_TypedNil(t *testing.T) {
	var e *Error
	assert.False(t, IsHTTPError(e))
	assert.False(t, IsHTTPError((*Error)(nil)))

	var asInterface error = (*Error)(nil)
	assert.False(t, IsHTTPError(asInterface))
}

func Test_IsHTTPError_StructuralConformance(t *testing.T) {
	assert.True(t, IsHTTPError(&conforming{status: 500, code: 500, expose: false}))

	// Status and statusCode disagreeing breaks the contract.
	assert.False(t, IsHTTPError(&conforming{status: 500, code: 503}))
}

func Test_IsStatus(t *testing.T) {
	err := New(WithStatus(404))
	assert.True(t, IsStatus(err, 404))
	assert.False(t, IsStatus(err, 500))
	assert.False(t, IsStatus(errors.New("plain"), 404))
	assert.False(t, IsStatus(nil, 404))

	wrapped := fmt.Errorf("lookup: %w", err)
	assert.True(t, IsStatus(wrapped, 404))
}

func Test_Error_PropertiesAreCopied(t *testing.T) {
	err := New(WithStatus(404), WithProperties(map[string]any{"code": "ENOENT"}))

	props := err.Properties()
	require.NotNil(t, props)
	props["code"] = "tampered"

	code, _ := err.Property("code")
	assert.Equal(t, "ENOENT", code)
}

func Test_Error_WithProperty(t *testing.T) {
	err := New(WithStatus(404)).
		WithProperty("code", "ENOENT").
		WithProperty("status", 1).
		WithProperty("statusCode", 2)

	code, ok := err.Property("code")
	require.True(t, ok)
	assert.Equal(t, "ENOENT", code)

	assert.Equal(t, 404, err.Status())
	_, ok = err.Property("status")
	assert.False(t, ok)
	_, ok = err.Property("statusCode")
	assert.False(t, ok)
}

func Test_Error_StackTrace(t *testing.T) {
	err := New(WithStatus(500))
	assert.NotEmpty(t, err.StackTrace())

	v, _ := ForStatus(404)
	assert.NotEmpty(t, v.New().StackTrace())

	// The trace formats with source locations.
	formatted := fmt.Sprintf("%+v", err.StackTrace())
	assert.Contains(t, formatted, "errors_test.go")
}
