package escape

import (
	"io"
	"strings"
)

// replacer scans left to right and never revisits its own output, so the
// entities it emits are not escaped a second time. The result matches applying
// the five replacements one after another with the ampersand first.
var replacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// String replaces every &, <, >, " and ' in s with its character entity. All
// other runes, including non-ASCII and control characters, pass through.
func String(s string) string {
	if s == "" {
		return ""
	}
	return replacer.Replace(s)
}

// Write escapes s directly into w.
func Write(w io.Writer, s string) (int, error) {
	return replacer.WriteString(w, s)
}
