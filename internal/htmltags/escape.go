package htmltags

import (
	"strings"

	"golang.org/x/net/html"
)

// EscapeText escapes s for use as text or a double-quoted attribute value
// inside a template string.
func EscapeText(s string) string {
	if !strings.ContainsAny(s, `&'<>"`) {
		return s
	}
	return strings.ReplaceAll(html.EscapeString(s), "&#34;", "&quot;")
}
