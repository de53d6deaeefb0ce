package grouping

import (
	"math"
	"sort"
	"strings"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/edgarviz/internal/types"
)

// BreakdownRow is a filtered extension record with its display name.
type BreakdownRow struct {
	types.FiletypeRecord
	Name string // upper-cased file extension
}

// FilterBreakdown returns the records matching year and formType, sorted by
// count descending with ties in input order. The percentage is carried over
// as supplied. No match yields an empty, non-nil slice.
func FilterBreakdown(records []types.FiletypeRecord, year int, formType string) []BreakdownRow {
	rows := []BreakdownRow{}
	for _, rec := range records {
		if rec.Year != year || rec.FormType != formType {
			continue
		}
		rows = append(rows, BreakdownRow{
			FiletypeRecord: rec,
			Name:           strings.ToUpper(rec.FileExtension),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})
	return rows
}

// Years returns the distinct years, newest first.
func Years(records []types.FiletypeRecord) []int {
	seen := make(map[int]bool)
	var years []int
	for _, rec := range records {
		if !seen[rec.Year] {
			seen[rec.Year] = true
			years = append(years, rec.Year)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// FormTypes returns the distinct form types in ascending order.
func FormTypes(records []types.FiletypeRecord) []string {
	seen := make(map[string]bool)
	var forms []string
	for _, rec := range records {
		if !seen[rec.FormType] {
			seen[rec.FormType] = true
			forms = append(forms, rec.FormType)
		}
	}
	sort.Strings(forms)
	return forms
}

// DefaultSelection returns the newest year and the first form type.
// ok is false when records is empty.
func DefaultSelection(records []types.FiletypeRecord) (key types.BreakdownKey, ok bool) {
	years := Years(records)
	forms := FormTypes(records)
	if len(years) == 0 || len(forms) == 0 {
		return types.BreakdownKey{}, false
	}
	return types.BreakdownKey{Year: years[0], FormType: forms[0]}, true
}

// PercentageSums totals the supplied percentages per (year, form type), in
// first-seen order.
func PercentageSums(records []types.FiletypeRecord) *orderedmap.OrderedMap[types.BreakdownKey, float64] {
	sums := orderedmap.NewOrderedMap[types.BreakdownKey, float64]()
	for _, rec := range records {
		total, _ := sums.Get(rec.Key())
		sums.Set(rec.Key(), total+rec.Percentage)
	}
	return sums
}

// PercentageDeviation is a selection whose percentages do not sum to 100.
type PercentageDeviation struct {
	Key types.BreakdownKey
	Sum float64
}

// CheckPercentages returns every selection whose percentage total is more
// than tolerance away from 100.
func CheckPercentages(records []types.FiletypeRecord, tolerance float64) []PercentageDeviation {
	var out []PercentageDeviation
	sums := PercentageSums(records)
	for el := sums.Front(); el != nil; el = el.Next() {
		if math.Abs(el.Value-100) > tolerance {
			out = append(out, PercentageDeviation{Key: el.Key, Sum: el.Value})
		}
	}
	return out
}
