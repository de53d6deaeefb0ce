// Package viewmodel turns grouped and filtered EDGAR records into
// render-ready chart entries.
package viewmodel

import (
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const ellipsis = "…"

// Formatter renders counts and percentages for a locale.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter returns a Formatter for the BCP 47 locale tag. An invalid
// tag falls back to English.
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Formatter{printer: message.NewPrinter(tag)}
}

// Count formats n with the locale's thousands separator.
func (f *Formatter) Count(n int64) string {
	return f.printer.Sprintf("%d", n)
}

// Percent formats p with one decimal place and a percent sign.
func (f *Formatter) Percent(p float64) string {
	return f.printer.Sprintf("%.1f%%", p)
}

// TruncateLabel shortens s to at most width terminal cells, ending with an
// ellipsis when cut.
func TruncateLabel(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, ellipsis)
}
