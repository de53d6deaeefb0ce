// Package types holds the cell values, tables and typed records shared by the
// loader, grouping and widget packages.
package types

import "github.com/elliotchance/orderedmap/v2"

// Row is one parsed CSV line keyed by header, in header order.
type Row = *orderedmap.OrderedMap[string, Value]

// Table represents a parsed delimited-text document.
type Table struct {
	Header []string
	Rows   []Row
	Stats  ParseStats
}

// ParseStats contains statistics about a parse.
type ParseStats struct {
	LinesRead   int // Data lines read, excluding the header
	BlankLines  int // Empty lines skipped
	SkippedRows int // Malformed lines skipped
}

// NewRow returns an empty row.
func NewRow() Row {
	return orderedmap.NewOrderedMap[string, Value]()
}

// HasColumn reports whether the header contains name.
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Header {
		if h == name {
			return true
		}
	}
	return false
}

// MissingColumns returns the required column names absent from the header.
func (t *Table) MissingColumns(required ...string) []string {
	var missing []string
	for _, name := range required {
		if !t.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	return missing
}
