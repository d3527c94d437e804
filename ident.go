package httperrx

import (
	"strings"
	"unicode"
)

// identifier converts a reason phrase into a PascalCase-like identifier,
// e.g. "Request Entity Too Large" -> "RequestEntityTooLarge" and
// "I'm a teapot" -> "ImATeapot". Each whitespace-separated token gets its
// first letter upper-cased, the tokens are concatenated, and any character
// that is not a letter, digit, space or underscore is stripped.
func identifier(phrase string) string {
	var joined strings.Builder
	for _, tok := range strings.Fields(phrase) {
		runes := []rune(tok)
		joined.WriteRune(unicode.ToUpper(runes[0]))
		joined.WriteString(string(runes[1:]))
	}

	var out strings.Builder
	for _, r := range joined.String() {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == ' ', r == '_':
			out.WriteRune(r)
		}
	}
	return out.String()
}

// className appends the "Error" suffix to an identifier unless it already
// ends with it, e.g. "NotFound" -> "NotFoundError" but
// "InternalServerError" stays as is.
func className(ident string) string {
	if strings.HasSuffix(ident, "Error") {
		return ident
	}
	return ident + "Error"
}
