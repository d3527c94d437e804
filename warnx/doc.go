/*
Package warnx is the diagnostics channel for deprecation signals emitted by
httperrx. Signals are advisory: they never change the value returned to the
caller.

The default handler writes to stderr in yellow; set WARN_COLOR=false (or
call SetColored) to disable colors. The whole channel is pluggable so tests
can observe signals deterministically:

	signals := warnx.Capture(func() {
		httperrx.New(httperrx.WithStatus(999))
	})
	// signals now holds the emitted messages

Each distinct message fires at most once per process, the way deprecation
warnings usually behave; Reset clears that state between tests.
*/
package warnx
