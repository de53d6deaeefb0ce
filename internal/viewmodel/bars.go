package viewmodel

import (
	"sort"

	"github.com/dbsmedya/edgarviz/internal/grouping"
	"github.com/dbsmedya/edgarviz/internal/types"
)

// TopSelection is the selector key for the overall top-N view.
const TopSelection = "top10"

// Selection picks which filings the bar list shows: the overall top N, or
// every member of a named group.
type Selection struct {
	TopN  int
	Group string
}

// Top selects the n largest filings overall.
func Top(n int) Selection {
	return Selection{TopN: n}
}

// Named selects the members of a form group.
func Named(group string) Selection {
	return Selection{Group: group}
}

// IsTop reports whether s selects the overall top N.
func (s Selection) IsTop() bool {
	return s.Group == ""
}

// BarOptions configures the proportional bar list.
type BarOptions struct {
	LabelWidth   int     // display cells before truncation
	FloorPercent float64 // minimum bar width so tiny values stay visible
}

// DefaultBarOptions matches the page: 16-cell labels and a 2% floor.
func DefaultBarOptions() BarOptions {
	return BarOptions{LabelWidth: 16, FloorPercent: 2}
}

// BarEntry is one row of the proportional bar list.
type BarEntry struct {
	Rank         int
	Name         string
	Label        string
	Value        int64
	WidthPercent float64
	CountText    string
	Tooltip      string
}

// BuildBars builds the bar list for sel. Widths are normalised against the
// largest TotalCount in all, not in the selection, and never drop below
// the floor. The maximum renders at exactly 100%.
func BuildBars(all []types.FilingRecord, groups grouping.Groups, sel Selection, opts BarOptions, f *Formatter) []BarEntry {
	if f == nil {
		f = NewFormatter("en")
	}

	globalMax := maxCount(all)
	selected := selectFilings(all, groups, sel)

	entries := make([]BarEntry, 0, len(selected))
	for i, rec := range selected {
		count := f.Count(rec.TotalCount)
		entries = append(entries, BarEntry{
			Rank:         i + 1,
			Name:         rec.FormType,
			Label:        TruncateLabel(rec.FormType, opts.LabelWidth),
			Value:        rec.TotalCount,
			WidthPercent: barWidth(rec.TotalCount, globalMax, opts.FloorPercent),
			CountText:    count,
			Tooltip:      count + " filings",
		})
	}
	return entries
}

func selectFilings(all []types.FilingRecord, groups grouping.Groups, sel Selection) []types.FilingRecord {
	var source []types.FilingRecord
	if sel.IsTop() {
		source = all
	} else if groups != nil {
		source, _ = groups.Get(sel.Group)
	}

	sorted := make([]types.FilingRecord, len(source))
	copy(sorted, source)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalCount > sorted[j].TotalCount
	})

	if sel.IsTop() && sel.TopN >= 0 && sel.TopN < len(sorted) {
		sorted = sorted[:sel.TopN]
	}
	return sorted
}

func maxCount(records []types.FilingRecord) int64 {
	var m int64
	for _, rec := range records {
		if rec.TotalCount > m {
			m = rec.TotalCount
		}
	}
	return m
}

func barWidth(value, max int64, floor float64) float64 {
	if max <= 0 {
		return floor
	}
	pct := float64(value) / float64(max) * 100
	if pct < floor {
		return floor
	}
	return pct
}
