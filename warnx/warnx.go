package warnx

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Handler receives every emitted warning message.
type Handler func(msg string)

var (
	mu      sync.Mutex
	handler Handler
	out     io.Writer = os.Stderr
	colored           = true
	seen              = make(map[string]struct{})
)

func init() {
	// Colored output can be disabled with WARN_COLOR=false.
	if colorEnv := os.Getenv("WARN_COLOR"); colorEnv != "" {
		colored = strings.ToLower(colorEnv) != "false"
	}
	handler = defaultHandler
}

func defaultHandler(msg string) {
	mu.Lock()
	w, c := out, colored
	mu.Unlock()

	if c {
		color.New(color.FgYellow).Fprintf(w, "httperrx deprecated %s\n", msg)
		return
	}
	fmt.Fprintf(w, "httperrx deprecated %s\n", msg)
}

// SetHandler replaces the global handler. Passing nil restores the default
// stderr handler.
func SetHandler(h Handler) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		h = defaultHandler
	}
	handler = h
}

// SetOutput sets the destination of the default handler.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// SetColored enables or disables colored output of the default handler.
func SetColored(c bool) {
	mu.Lock()
	defer mu.Unlock()
	colored = c
}

// Deprecate emits a deprecation signal. Each distinct message is emitted at
// most once per process; repeats are dropped. The signal is advisory only
// and never affects the caller's result.
func Deprecate(msg string) {
	mu.Lock()
	if _, dup := seen[msg]; dup {
		mu.Unlock()
		return
	}
	seen[msg] = struct{}{}
	h := handler
	mu.Unlock()

	h(msg)
}

// Warnf emits a message through the current handler without deduplication.
func Warnf(format string, args ...any) {
	mu.Lock()
	h := handler
	mu.Unlock()

	h(fmt.Sprintf(format, args...))
}

// Capture runs fn with a recording handler installed and returns the
// messages emitted during the call, restoring the previous handler
// afterwards. Intended for tests that assert on deprecation signals.
func Capture(fn func()) []string {
	var msgs []string

	mu.Lock()
	prev := handler
	handler = func(msg string) {
		msgs = append(msgs, msg)
	}
	mu.Unlock()

	defer func() {
		mu.Lock()
		handler = prev
		mu.Unlock()
	}()

	fn()
	return msgs
}

// Reset clears the once-per-message state so the same deprecation can fire
// again. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	seen = make(map[string]struct{})
}
