package loader

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/edgarviz/internal/types"
)

func TestParse_HeaderAndCoercion(t *testing.T) {
	input := "year,formType,fileExtension,count,percentage\n2023,10-K,pdf,700,70\n2023,10-K,txt,300,30.0\n"

	tbl, err := Parse(strings.NewReader(input), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"year", "formType", "fileExtension", "count", "percentage"}, tbl.Header)
	require.Len(t, tbl.Rows, 2)

	year, _ := tbl.Rows[0].Get("year")
	assert.Equal(t, types.KindInt, year.Kind)
	assert.Equal(t, int64(2023), year.Int)

	form, _ := tbl.Rows[0].Get("formType")
	assert.Equal(t, types.KindString, form.Kind)
	assert.Equal(t, "10-K", form.String())

	pct, _ := tbl.Rows[1].Get("percentage")
	assert.Equal(t, types.KindFloat, pct.Kind)
	assert.InDelta(t, 30.0, pct.Float, 1e-9)

	assert.Equal(t, 2, tbl.Stats.LinesRead)
	assert.Zero(t, tbl.Stats.SkippedRows)
}

func TestParse_CleansHeader(t *testing.T) {
	input := "\ufeff \"Type\" , TotalCount\n4,5000\n"

	tbl, err := Parse(strings.NewReader(input), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Type", "TotalCount"}, tbl.Header)
}

func TestParse_SkipsBlankAndMalformedLines(t *testing.T) {
	input := strings.Join([]string{
		"Type,TotalCount",
		"4,5000",
		"",
		" , ",
		"8-K,3000,extra",
		"10-Q",
		"10-Q,2000",
		"",
	}, "\n")

	tbl, err := Parse(strings.NewReader(input), nil)
	require.NoError(t, err)

	require.Len(t, tbl.Rows, 2)
	first, _ := tbl.Rows[0].Get("Type")
	second, _ := tbl.Rows[1].Get("Type")
	assert.Equal(t, "4", first.String())
	assert.Equal(t, "10-Q", second.String())

	assert.Equal(t, 1, tbl.Stats.BlankLines)
	assert.Equal(t, 2, tbl.Stats.SkippedRows)
}

func TestParse_QuotedFields(t *testing.T) {
	input := "Type,TotalCount\n\"SC 13G/A\",\"1200\"\n"

	tbl, err := Parse(strings.NewReader(input), nil)
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 1)

	v, _ := tbl.Rows[0].Get("Type")
	assert.Equal(t, "SC 13G/A", v.String())
	n, _ := tbl.Rows[0].Get("TotalCount")
	assert.Equal(t, types.KindInt, n.Kind)
}

func TestParse_EmptyDocument(t *testing.T) {
	_, err := Parse(strings.NewReader(""), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingHeader))
}

func TestParse_HeaderOnly(t *testing.T) {
	tbl, err := Parse(strings.NewReader("Type,TotalCount\n"), nil)
	require.NoError(t, err)
	assert.Empty(t, tbl.Rows)
}
