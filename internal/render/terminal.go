// Package render draws the chart view models and the walkthrough for the
// terminal, and exports the charts as images.
package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/edgarviz/internal/viewmodel"
)

const (
	blockFull  = "█"
	blockEmpty = "░"
	barColor   = "#3B82F6"
)

// Options controls terminal rendering.
type Options struct {
	BarWidth   int  // cells for a 100% bar
	LabelWidth int  // cells reserved for labels
	Color      bool // emit ANSI colour codes
}

// DefaultOptions returns 40-cell bars, 16-cell labels and colour enabled.
func DefaultOptions() Options {
	return Options{BarWidth: 40, LabelWidth: 16, Color: true}
}

func (o Options) paint(hex, s string) string {
	if !o.Color || s == "" {
		return s
	}
	return color.HEX(hex).Sprint(s)
}

// cells converts a percentage of the full bar into whole cells. Any
// positive percentage gets at least one cell.
func cells(percent float64, width int) int {
	n := int(math.Round(percent / 100 * float64(width)))
	if n < 1 && percent > 0 {
		n = 1
	}
	if n > width {
		n = width
	}
	return n
}

// Bars writes the proportional bar list, one row per entry:
// rank, padded label, bar, then the tooltip text or the bare count.
func Bars(w io.Writer, entries []viewmodel.BarEntry, opts Options) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No filings to display")
		return err
	}

	rankWidth := len(fmt.Sprint(len(entries)))
	for _, e := range entries {
		n := cells(e.WidthPercent, opts.BarWidth)
		bar := opts.paint(barColor, strings.Repeat(blockFull, n))
		pad := strings.Repeat(" ", opts.BarWidth-n)
		count := e.CountText
		if e.Tooltip != "" {
			count = e.Tooltip
		}
		if _, err := fmt.Fprintf(w, "%*d. %s %s%s %s\n",
			rankWidth, e.Rank,
			runewidth.FillRight(e.Label, opts.LabelWidth),
			bar, pad,
			count,
		); err != nil {
			return err
		}
	}
	return nil
}

// Breakdown writes the extension breakdown. The pie rendition is a single
// stacked strip with a legend; inline percentages follow each entry's
// ShowLabel. The bar rendition draws one bar per extension scaled to the
// largest count.
func Breakdown(w io.Writer, view viewmodel.BreakdownView, opts Options) error {
	if view.Empty() {
		_, err := fmt.Fprintln(w, "No data for this selection")
		return err
	}
	if view.Kind == viewmodel.ChartBar {
		return breakdownBars(w, view, opts)
	}
	return breakdownPie(w, view, opts)
}

func breakdownPie(w io.Writer, view viewmodel.BreakdownView, opts Options) error {
	var strip strings.Builder
	used := 0
	for _, e := range view.Entries {
		n := int(math.Round(e.Percentage / 100 * float64(opts.BarWidth)))
		if used+n > opts.BarWidth {
			n = opts.BarWidth - used
		}
		if n <= 0 {
			continue
		}
		strip.WriteString(opts.paint(e.Color, strings.Repeat(blockFull, n)))
		used += n
	}
	if used < opts.BarWidth {
		strip.WriteString(strings.Repeat(blockEmpty, opts.BarWidth-used))
	}
	if _, err := fmt.Fprintln(w, strip.String()); err != nil {
		return err
	}

	for _, e := range view.Entries {
		line := fmt.Sprintf("%s %s %s",
			opts.paint(e.Color, blockFull),
			runewidth.FillRight(viewmodel.TruncateLabel(e.Name, opts.LabelWidth), opts.LabelWidth),
			e.CountText,
		)
		if e.ShowLabel {
			line += " (" + e.PercentText + ")"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func breakdownBars(w io.Writer, view viewmodel.BreakdownView, opts Options) error {
	var max int64
	for _, e := range view.Entries {
		if e.Value > max {
			max = e.Value
		}
	}

	for _, e := range view.Entries {
		n := 0
		if max > 0 {
			n = cells(float64(e.Value)/float64(max)*100, opts.BarWidth)
		}
		if _, err := fmt.Fprintf(w, "%s %s%s %s (%s)\n",
			runewidth.FillRight(viewmodel.TruncateLabel(e.Name, opts.LabelWidth), opts.LabelWidth),
			opts.paint(e.Color, strings.Repeat(blockFull, n)),
			strings.Repeat(" ", opts.BarWidth-n),
			e.CountText,
			e.PercentText,
		); err != nil {
			return err
		}
	}
	return nil
}
