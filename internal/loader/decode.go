package loader

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dbsmedya/edgarviz/internal/types"
)

// Column names of the two EDGAR summary files.
const (
	ColType       = "Type"
	ColTotalCount = "TotalCount"

	ColYear          = "year"
	ColFormType      = "formType"
	ColFileExtension = "fileExtension"
	ColCount         = "count"
	ColPercentage    = "percentage"
)

// DecodeFilings converts a table into FilingRecords sorted by TotalCount
// descending, ties in file order. Rows with an empty type or a missing or
// negative count are skipped and counted.
func DecodeFilings(tbl *types.Table) ([]types.FilingRecord, int, error) {
	if missing := tbl.MissingColumns(ColType, ColTotalCount); len(missing) > 0 {
		return nil, 0, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	records := make([]types.FilingRecord, 0, len(tbl.Rows))
	skipped := 0

	for _, row := range tbl.Rows {
		formType, _ := row.Get(ColType)
		count, _ := row.Get(ColTotalCount)

		n, ok := types.ToInt64(count)
		name := strings.TrimSpace(formType.String())
		if !ok || n < 0 || name == "" {
			skipped++
			continue
		}

		records = append(records, types.FilingRecord{FormType: name, TotalCount: n})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].TotalCount > records[j].TotalCount
	})

	return records, skipped, nil
}

// DecodeFiletypes converts a table into FiletypeRecords in file order.
// Rows with a non-integer year, a missing or negative count, or a
// percentage outside [0, 100] are skipped and counted.
func DecodeFiletypes(tbl *types.Table) ([]types.FiletypeRecord, int, error) {
	required := []string{ColYear, ColFormType, ColFileExtension, ColCount, ColPercentage}
	if missing := tbl.MissingColumns(required...); len(missing) > 0 {
		return nil, 0, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	records := make([]types.FiletypeRecord, 0, len(tbl.Rows))
	skipped := 0

	for _, row := range tbl.Rows {
		yearVal, _ := row.Get(ColYear)
		formVal, _ := row.Get(ColFormType)
		extVal, _ := row.Get(ColFileExtension)
		countVal, _ := row.Get(ColCount)
		pctVal, _ := row.Get(ColPercentage)

		if yearVal.Kind != types.KindInt {
			skipped++
			continue
		}
		count, ok := types.ToInt64(countVal)
		if !ok || count < 0 {
			skipped++
			continue
		}
		pct, ok := types.ToFloat64(pctVal)
		if !ok || pct < 0 || pct > 100 {
			skipped++
			continue
		}

		records = append(records, types.FiletypeRecord{
			Year:          int(yearVal.Int),
			FormType:      strings.TrimSpace(formVal.String()),
			FileExtension: strings.TrimSpace(extVal.String()),
			Count:         count,
			Percentage:    pct,
		})
	}

	return records, skipped, nil
}
