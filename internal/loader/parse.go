package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dbsmedya/edgarviz/internal/logger"
	"github.com/dbsmedya/edgarviz/internal/types"
)

const utf8BOM = "\ufeff"

// Parse reads a comma-separated document with a header row into a Table.
// Blank lines are skipped. Lines whose field count differs from the header
// or that fail to parse are skipped and counted rather than failing the
// whole document.
func Parse(r io.Reader, log *logger.Logger) (*types.Table, error) {
	if log == nil {
		log = logger.NewNop()
	}

	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrMissingHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	tbl := &types.Table{Header: cleanHeader(header)}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				tbl.Stats.LinesRead++
				tbl.Stats.SkippedRows++
				log.Debugw("Skipping malformed row", "line", perr.Line, "error", perr.Err)
				continue
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		tbl.Stats.LinesRead++

		if isBlank(record) {
			tbl.Stats.BlankLines++
			continue
		}

		if len(record) != len(tbl.Header) {
			line, _ := reader.FieldPos(0)
			tbl.Stats.SkippedRows++
			log.Debugw("Skipping row with wrong field count",
				"line", line,
				"fields", len(record),
				"expected", len(tbl.Header),
			)
			continue
		}

		row := types.NewRow()
		for i, h := range tbl.Header {
			row.Set(h, types.ParseValue(record[i]))
		}
		tbl.Rows = append(tbl.Rows, row)
	}

	return tbl, nil
}

// cleanHeader trims whitespace, quotes and a leading byte-order mark.
func cleanHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		h = strings.TrimSpace(h)
		out[i] = strings.ReplaceAll(h, `"`, "")
	}
	return out
}

func isBlank(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
