package types

import "fmt"

// FilingRecord is one row of the filing-frequency dataset.
type FilingRecord struct {
	FormType   string
	TotalCount int64
}

// FiletypeRecord is one row of the file-extension breakdown dataset.
// Records sharing (Year, FormType) have percentages summing to about 100.
type FiletypeRecord struct {
	Year          int
	FormType      string
	FileExtension string
	Count         int64
	Percentage    float64
}

// BreakdownKey identifies a (year, form type) selection.
type BreakdownKey struct {
	Year     int
	FormType string
}

func (k BreakdownKey) String() string {
	return fmt.Sprintf("%d/%s", k.Year, k.FormType)
}

// Key returns the record's (year, form type) key.
func (r FiletypeRecord) Key() BreakdownKey {
	return BreakdownKey{Year: r.Year, FormType: r.FormType}
}
