/*
Package statusx provides the HTTP status code table used by httperrx: the
mapping from numeric status code to canonical reason phrase, the set of all
known codes, and status class helpers.

The table is built once at package load by probing net/http over the full
[100,599] range, so it always matches the status codes the Go standard
library knows about. It is immutable afterwards.

Basic Usage:

	statusx.Text(404)    // "Not Found"
	statusx.IsKnown(499) // false
	statusx.Class(503)   // 500

	for _, code := range statusx.Codes() {
		fmt.Println(code, statusx.Text(code))
	}
*/
package statusx
