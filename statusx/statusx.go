package statusx

import "net/http"

// Bounds of the probed status code range.
const (
	MinCode = 100
	MaxCode = 599
)

var (
	text  map[int]string
	codes []int
)

func init() {
	text = make(map[int]string)
	for code := MinCode; code <= MaxCode; code++ {
		if t := http.StatusText(code); t != "" {
			text[code] = t
			codes = append(codes, code)
		}
	}
}

// Text returns the canonical reason phrase for a status code, or an empty
// string if the code is unknown.
func Text(code int) string {
	return text[code]
}

// IsKnown reports whether the code has a known reason phrase.
func IsKnown(code int) bool {
	_, ok := text[code]
	return ok
}

// Codes returns every known status code in ascending order. The returned
// slice is a copy and safe to modify.
func Codes() []int {
	out := make([]int, len(codes))
	copy(out, codes)
	return out
}

// Class returns the hundred-bucket of a status code, e.g. 404 -> 400 and
// 503 -> 500.
func Class(code int) int {
	return code / 100 * 100
}

// All returns a copy of the full code to reason phrase mapping.
func All() map[int]string {
	out := make(map[int]string, len(text))
	for code, t := range text {
		out[code] = t
	}
	return out
}
