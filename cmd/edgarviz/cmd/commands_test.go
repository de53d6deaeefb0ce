package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureFilings = `Type,TotalCount
4,1000
8-K,500
10-K,100
485BPOS,50
DEF 14A,40
S-1,30
N-CSR,20
XYZ,10
`

const fixtureFiletypes = `year,formType,fileExtension,count,percentage
2023,10-K,htm,700,70
2023,10-K,xml,300,30
2024,10-K,pdf,960,96
2024,10-K,htm,40,4
2024,8-K,htm,10,100
`

// writeFixture lays out a data directory with both CSVs and a config file
// pointing at it, and returns the config path.
func writeFixture(t *testing.T, filings, filetypes string) string {
	t.Helper()

	dir := t.TempDir()
	dataDir := filepath.Join(dir, "data")
	require.NoError(t, os.MkdirAll(dataDir, 0o755))
	if filings != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dataDir, "filing_forms.csv"), []byte(filings), 0o644))
	}
	if filetypes != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dataDir, "edgar_filetypes_breakdown.csv"), []byte(filetypes), 0o644))
	}

	cfg := fmt.Sprintf(`data:
  environment: development
  base_paths:
    development: %q
  data_dir: data
chart:
  top_n: 3
logging:
  level: error
  format: json
  output: stderr
`, dir+string(os.PathSeparator))

	path := filepath.Join(dir, "edgarviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))
	return path
}

// useFixture points the CLI at path and captures output.
func useFixture(t *testing.T, path string) *bytes.Buffer {
	t.Helper()

	originalCfgFile := cfgFile
	originalNoColor := noColor
	t.Cleanup(func() {
		cfgFile = originalCfgFile
		noColor = originalNoColor
		resetOutputWriter()
	})

	cfgFile = path
	noColor = true
	var buf bytes.Buffer
	setOutputWriter(&buf)
	return &buf
}

func TestFilingsCommandStructure(t *testing.T) {
	assert.Equal(t, "filings", filingsCmd.Use)
	assert.NotNil(t, filingsCmd.RunE)
	assert.Contains(t, filingsCmd.Long, "Example:")

	groupFlag := filingsCmd.Flags().Lookup("group")
	require.NotNil(t, groupFlag)
	assert.Equal(t, "g", groupFlag.Shorthand)
	assert.NotNil(t, filingsCmd.Flags().Lookup("top"))
}

func TestRunFilings_Top(t *testing.T) {
	out := useFixture(t, writeFixture(t, fixtureFilings, fixtureFiletypes))

	require.NoError(t, runFilings(filingsCmd, nil))

	text := out.String()
	assert.Contains(t, text, "Top 3 Filing Types")
	assert.Contains(t, text, "1,000")
	assert.Contains(t, text, "8-K")
	assert.NotContains(t, text, "485BPOS")
}

func TestRunFilings_Group(t *testing.T) {
	out := useFixture(t, writeFixture(t, fixtureFilings, fixtureFiletypes))
	filingsGroup = "Ownership Forms"
	defer func() { filingsGroup = "" }()

	require.NoError(t, runFilings(filingsCmd, nil))

	text := out.String()
	assert.Contains(t, text, "Ownership Forms")
	assert.Contains(t, text, "485BPOS")
	assert.NotContains(t, text, "8-K")
}

func TestRunFilings_UnknownGroup(t *testing.T) {
	useFixture(t, writeFixture(t, fixtureFilings, fixtureFiletypes))
	filingsGroup = "Annual Forms"
	defer func() { filingsGroup = "" }()

	err := runFilings(filingsCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown form group")
}

func TestRunFilings_MissingData(t *testing.T) {
	useFixture(t, writeFixture(t, "", fixtureFiletypes))

	err := runFilings(filingsCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load filings")
}

func TestRunGroups(t *testing.T) {
	useFixture(t, writeFixture(t, fixtureFilings, fixtureFiletypes))
	groupsMembers = true
	defer func() { groupsMembers = false }()

	var buf bytes.Buffer
	groupsCmd.SetOut(&buf)
	defer groupsCmd.SetOut(nil)

	require.NoError(t, runGroups(groupsCmd, nil))

	text := buf.String()
	assert.Contains(t, text, "1. Ownership Forms")
	assert.Contains(t, text, "7. Other Forms")
	assert.Contains(t, text, "- 485BPOS (50)")
	assert.Contains(t, text, "Total: 8 filing type(s) in 7 group(s)")
	assert.Less(t, strings.Index(text, "Ownership Forms"), strings.Index(text, "8-K Reports"))
}

func TestRunFiletypes_Default(t *testing.T) {
	out := useFixture(t, writeFixture(t, fixtureFilings, fixtureFiletypes))

	require.NoError(t, runFiletypes(filetypesCmd, nil))

	text := out.String()
	assert.Contains(t, text, "File Types: 10-K (2024)")
	assert.Contains(t, text, "PDF")
	assert.Contains(t, text, "(96.0%)")
	assert.NotContains(t, text, "(4.0%)")
}

func TestRunFiletypes_SelectionAndBar(t *testing.T) {
	out := useFixture(t, writeFixture(t, fixtureFilings, fixtureFiletypes))
	filetypesYear = 2023
	filetypesChart = "bar"
	defer func() {
		filetypesYear = 0
		filetypesChart = "pie"
	}()

	require.NoError(t, runFiletypes(filetypesCmd, nil))

	text := out.String()
	assert.Contains(t, text, "File Types: 10-K (2023)")
	assert.Contains(t, text, "XML")
	assert.Contains(t, text, "(30.0%)")
}

func TestRunFiletypes_EmptySelection(t *testing.T) {
	out := useFixture(t, writeFixture(t, fixtureFilings, fixtureFiletypes))
	filetypesYear = 1999
	defer func() { filetypesYear = 0 }()

	require.NoError(t, runFiletypes(filetypesCmd, nil))
	assert.Contains(t, out.String(), "No data for this selection")
}

func TestRunFiletypes_List(t *testing.T) {
	out := useFixture(t, writeFixture(t, fixtureFilings, fixtureFiletypes))
	filetypesList = true
	defer func() { filetypesList = false }()

	require.NoError(t, runFiletypes(filetypesCmd, nil))

	text := out.String()
	assert.Contains(t, text, "2024, 2023")
	assert.Contains(t, text, "10-K, 8-K")
}

func TestRunFiletypes_BadChart(t *testing.T) {
	filetypesChart = "donut"
	defer func() { filetypesChart = "pie" }()

	assert.Error(t, runFiletypes(filetypesCmd, nil))
}

func TestRunTree_Script(t *testing.T) {
	out := useFixture(t, writeFixture(t, fixtureFilings, fixtureFiletypes))
	treeScript = "next,reveal,next,reveal,next,reveal"
	defer func() { treeScript = "" }()

	require.NoError(t, runTree(treeCmd, nil))

	text := out.String()
	assert.Contains(t, text, "Please show judgment before proceeding to the next step.")
	assert.Contains(t, text, "Step 3 of 3")
	assert.Contains(t, text, "Ruth Porat (CFO)")
}

func TestRunTree_BadScript(t *testing.T) {
	useFixture(t, writeFixture(t, fixtureFilings, fixtureFiletypes))
	treeScript = "reveal,skip"
	defer func() { treeScript = "" }()

	assert.Error(t, runTree(treeCmd, nil))
}

func TestRunPage(t *testing.T) {
	out := useFixture(t, writeFixture(t, fixtureFilings, fixtureFiletypes))

	require.NoError(t, runPage(pageCmd, nil))

	text := out.String()
	assert.Contains(t, text, "Top 3 Filing Types")
	assert.Contains(t, text, "[Form Groups]")
	assert.Contains(t, text, "File Types: 10-K (2024)")
	assert.Contains(t, text, "Tree Search")
	assert.Contains(t, text, "Step 1 of 3")
}

func TestRunPage_LoadFailureRendersEmpty(t *testing.T) {
	out := useFixture(t, writeFixture(t, "", fixtureFiletypes))

	require.NoError(t, runPage(pageCmd, nil))

	text := out.String()
	assert.Contains(t, text, "No filings to display")
	assert.Contains(t, text, "PDF")
}

func TestRunExport(t *testing.T) {
	out := useFixture(t, writeFixture(t, fixtureFilings, fixtureFiletypes))
	dir := t.TempDir()
	exportOut = dir
	defer func() { exportOut = "" }()

	require.NoError(t, runExport(exportCmd, nil))

	assert.FileExists(t, filepath.Join(dir, "filings.svg"))
	assert.FileExists(t, filepath.Join(dir, "filetypes_2024_10-K.svg"))
	assert.Contains(t, out.String(), "Total: 2 chart(s) exported")
}

func TestRunExport_SkipsEmptyChart(t *testing.T) {
	out := useFixture(t, writeFixture(t, fixtureFilings, fixtureFiletypes))
	dir := t.TempDir()
	exportOut = dir
	exportYear = 1999
	defer func() {
		exportOut = ""
		exportYear = 0
	}()

	require.NoError(t, runExport(exportCmd, nil))
	assert.FileExists(t, filepath.Join(dir, "filings.svg"))
	assert.Contains(t, out.String(), "Total: 1 chart(s) exported")
}

func TestRunExport_SingleRowData(t *testing.T) {
	out := useFixture(t, writeFixture(t,
		"Type,TotalCount\n4,5\n",
		"year,formType,fileExtension,count,percentage\n2024,10-K,htm,900,100\n"))
	dir := t.TempDir()
	exportOut = dir
	exportChart = "bar"
	defer func() {
		exportOut = ""
		exportChart = "pie"
	}()

	require.NoError(t, runExport(exportCmd, nil))
	assert.FileExists(t, filepath.Join(dir, "filings.svg"))
	assert.FileExists(t, filepath.Join(dir, "filetypes_2024_10-K.svg"))
	assert.Contains(t, out.String(), "Total: 2 chart(s) exported")
}

func TestRunExport_SingleRowPie(t *testing.T) {
	out := useFixture(t, writeFixture(t,
		"Type,TotalCount\n4,5\n",
		"year,formType,fileExtension,count,percentage\n2024,10-K,htm,900,100\n"))
	dir := t.TempDir()
	exportOut = dir
	defer func() { exportOut = "" }()

	require.NoError(t, runExport(exportCmd, nil))
	assert.Contains(t, out.String(), "Total: 2 chart(s) exported")
}

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "filings", exportFileName("filings"))
	assert.Equal(t, "filetypes_2024_10-K_A", exportFileName("filetypes", "2024", "10-K/A"))
	assert.Equal(t, "filetypes_2024_DEF_14A", exportFileName("filetypes", "2024", "DEF 14A"))
}

func TestRunValidate(t *testing.T) {
	out := useFixture(t, writeFixture(t, fixtureFilings, fixtureFiletypes))

	require.NoError(t, runValidate(validateCmd, nil))

	text := out.String()
	assert.Contains(t, text, "Records: 8")
	assert.Contains(t, text, "Steps: 3")
	assert.Contains(t, text, "=== Validation Complete ===")
}

func TestRunValidate_PercentageDeviation(t *testing.T) {
	bad := fixtureFiletypes + "2022,10-Q,htm,10,60\n"
	out := useFixture(t, writeFixture(t, fixtureFilings, bad))

	err := runValidate(validateCmd, nil)
	require.Error(t, err)
	assert.Contains(t, out.String(), "2022/10-Q: 60.00%")
}

func TestRunValidate_InvalidConfig(t *testing.T) {
	path := writeFixture(t, fixtureFilings, fixtureFiletypes)
	useFixture(t, path)

	originalEnv := environment
	environment = "staging"
	defer func() { environment = originalEnv }()

	err := runValidate(validateCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
