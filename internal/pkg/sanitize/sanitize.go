// Package sanitize normalises untrusted string input before storage.
package sanitize

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// EscapeHTML replaces the characters & < > " ' with their HTML entities.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// Input trims surrounding whitespace and HTML-escapes the result. Use for
// values that are stored and later rendered.
func Input(s string) string {
	return EscapeHTML(strings.TrimSpace(s))
}

// Trim only strips surrounding whitespace. Use for values that never reach an
// output channel verbatim, such as passwords about to be hashed.
func Trim(s string) string {
	return strings.TrimSpace(s)
}
