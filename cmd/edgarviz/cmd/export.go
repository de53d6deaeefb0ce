package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/edgarviz/internal/render"
	"github.com/dbsmedya/edgarviz/internal/viewmodel"
)

var (
	exportOut    string
	exportFormat string
	exportChart  string
	exportYear   int
	exportForm   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export both charts as SVG or PNG images",
	Long: `Export loads both datasets and writes one image per chart:

  - filings.<format>: the top filing types as a bar chart
  - filetypes_<year>_<form>.<format>: the extension breakdown

A chart without data is skipped with a warning.

Example:
  edgarviz export --out ./charts --format png --chart bar`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "",
		"Output directory (required)")
	exportCmd.MarkFlagRequired("out")
	exportCmd.Flags().StringVar(&exportFormat, "format", string(render.FormatSVG),
		"Image format (svg, png)")
	exportCmd.Flags().StringVar(&exportChart, "chart", string(viewmodel.ChartPie),
		"Breakdown chart kind (pie, bar)")
	exportCmd.Flags().IntVarP(&exportYear, "year", "y", 0,
		"Breakdown year (default: newest)")
	exportCmd.Flags().StringVarP(&exportForm, "form", "f", "",
		"Breakdown form type (default: first in order)")

	rootCmd.AddCommand(exportCmd)
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// exportFileName builds a file name safe on every platform.
func exportFileName(parts ...string) string {
	name := ""
	for i, p := range parts {
		if i > 0 {
			name += "_"
		}
		name += unsafeFileChars.ReplaceAllString(p, "_")
	}
	return name
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := render.ParseImageFormat(exportFormat)
	if err != nil {
		return err
	}
	kind, err := viewmodel.ParseChartKind(exportChart)
	if err != nil {
		return err
	}

	a, err := setupApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := os.MkdirAll(exportOut, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filings := a.filingsWidget()
	defer filings.Close()
	filetypes := a.filetypesWidget(kind)
	defer filetypes.Close()
	if exportYear != 0 {
		filetypes.SelectYear(exportYear)
	}
	if exportForm != "" {
		filetypes.SelectForm(exportForm)
	}

	if err := loadWidgets(commandContext(cmd), filings, filetypes); err != nil {
		return fmt.Errorf("failed to load widgets: %w", err)
	}

	written := 0

	var buf bytes.Buffer
	err = render.ExportBars(&buf, filings.Bars(), format)
	ok, err := a.writeChart(err, buf.Bytes(), exportFileName("filings")+"."+string(format), "chart", "filings")
	if err != nil {
		return err
	}
	if ok {
		written++
	}

	buf.Reset()
	key := filetypes.Selection()
	err = render.ExportBreakdown(&buf, filetypes.View(), breakdownTitle(key), format)
	name := exportFileName("filetypes", fmt.Sprint(key.Year), key.FormType) + "." + string(format)
	ok, err = a.writeChart(err, buf.Bytes(), name,
		"chart", "filetypes", "year", key.Year, "form_type", key.FormType)
	if err != nil {
		return err
	}
	if ok {
		written++
	}

	fmt.Fprintf(outputWriter, "\nTotal: %d chart(s) exported\n", written)
	return nil
}

// writeChart writes a rendered chart into the output directory. A chart that
// failed to render is logged and skipped so the other chart still gets
// written; only file system errors are returned.
func (a *app) writeChart(renderErr error, data []byte, name string, fields ...interface{}) (bool, error) {
	if renderErr != nil {
		fields = append(fields, "reason", renderErr)
		if errors.Is(renderErr, render.ErrNothingToDraw) {
			a.log.Warnw("Skipped empty chart", fields...)
		} else {
			a.log.Errorw("Skipped chart that failed to render", fields...)
		}
		return false, nil
	}

	path := filepath.Join(exportOut, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(outputWriter, "Wrote %s\n", path)
	return true, nil
}
