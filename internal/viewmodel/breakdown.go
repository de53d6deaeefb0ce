package viewmodel

import (
	"fmt"
	"sort"

	"github.com/dbsmedya/edgarviz/internal/grouping"
)

// ChartKind selects how the extension breakdown is drawn.
type ChartKind string

const (
	ChartPie ChartKind = "pie"
	ChartBar ChartKind = "bar"
)

// ParseChartKind validates a chart kind name.
func ParseChartKind(s string) (ChartKind, error) {
	switch ChartKind(s) {
	case ChartPie, ChartBar:
		return ChartKind(s), nil
	default:
		return "", fmt.Errorf("unknown chart kind %q (want pie or bar)", s)
	}
}

// Palette is the slice colour cycle, as hex RGB.
var Palette = []string{
	"#3B82F6", // blue
	"#10B981", // emerald
	"#F59E0B", // amber
	"#EF4444", // red
	"#8B5CF6", // violet
	"#EC4899", // pink
	"#6366F1", // indigo
	"#14B8A6", // teal
	"#F97316", // orange
	"#84CC16", // lime
}

// BreakdownEntry is one slice or bar of the extension breakdown.
type BreakdownEntry struct {
	Rank        int
	Name        string
	Extension   string
	Value       int64
	Percentage  float64
	ShowLabel   bool
	Color       string
	CountText   string
	PercentText string
}

// BreakdownView is the render-ready breakdown for one selection.
type BreakdownView struct {
	Kind    ChartKind
	Entries []BreakdownEntry
	Total   int64
}

// DefaultLabelThreshold is the percentage at or below which pie slices lose
// their inline label.
const DefaultLabelThreshold = 5.0

// Empty reports whether the selection matched nothing.
func (v BreakdownView) Empty() bool {
	return len(v.Entries) == 0
}

// BuildBreakdown converts filtered rows into chart entries. Inline labels are
// suppressed for entries whose supplied percentage is at or below
// labelThreshold; the entry itself is still drawn.
func BuildBreakdown(rows []grouping.BreakdownRow, kind ChartKind, labelThreshold float64, f *Formatter) BreakdownView {
	if f == nil {
		f = NewFormatter("en")
	}

	sorted := make([]grouping.BreakdownRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})

	view := BreakdownView{Kind: kind, Entries: make([]BreakdownEntry, 0, len(sorted))}
	for i, row := range sorted {
		view.Total += row.Count
		view.Entries = append(view.Entries, BreakdownEntry{
			Rank:        i + 1,
			Name:        row.Name,
			Extension:   row.FileExtension,
			Value:       row.Count,
			Percentage:  row.Percentage,
			ShowLabel:   row.Percentage > labelThreshold,
			Color:       Palette[i%len(Palette)],
			CountText:   f.Count(row.Count),
			PercentText: f.Percent(row.Percentage),
		})
	}
	return view
}
