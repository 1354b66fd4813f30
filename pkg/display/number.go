// Package display formats values for the rendered views.
package display

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders numbers with the grouping of a locale, like
// Number.prototype.toLocaleString does in the browser.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

// NewFormatter falls back to German for an unparsable locale; most of the
// learners read the app in German.
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.German
	}
	return &Formatter{tag: tag, printer: message.NewPrinter(tag)}
}

func (f *Formatter) Locale() string {
	return f.tag.String()
}

// Int formats n with thousands separators.
func (f *Formatter) Int(n int) string {
	return f.printer.Sprintf("%d", n)
}

// Percent formats a whole percentage, e.g. "80%".
func (f *Formatter) Percent(p int) string {
	return f.printer.Sprintf("%d%%", p)
}
