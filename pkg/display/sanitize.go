package display

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text strips any markup from caller supplied display text (player names,
// game labels) before it is put into a view. The policy entity-escapes what it
// keeps, so the result is unescaped again: views are JSON, not HTML.
func Text(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
