package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/edgarviz/internal/render"
	"github.com/dbsmedya/edgarviz/internal/types"
	"github.com/dbsmedya/edgarviz/internal/viewmodel"
)

var (
	filetypesYear  int
	filetypesForm  string
	filetypesChart string
	filetypesList  bool
)

var filetypesCmd = &cobra.Command{
	Use:   "filetypes",
	Short: "Show the file-extension breakdown for a year and form type",
	Long: `Filetypes draws the share of each file extension among the documents
filed for one form type in one year.

Without --year and --form the newest year and the first form type are
shown. Extensions at or below the label threshold are drawn without an
inline percentage.

Example:
  edgarviz filetypes --year 2023 --form 10-K --chart bar
  edgarviz filetypes --list`,
	RunE: runFiletypes,
}

func init() {
	filetypesCmd.Flags().IntVarP(&filetypesYear, "year", "y", 0,
		"Year to show (default: newest)")
	filetypesCmd.Flags().StringVarP(&filetypesForm, "form", "f", "",
		"Form type to show (default: first in order)")
	filetypesCmd.Flags().StringVar(&filetypesChart, "chart", string(viewmodel.ChartPie),
		"Chart kind (pie, bar)")
	filetypesCmd.Flags().BoolVarP(&filetypesList, "list", "l", false,
		"List the available years and form types")

	rootCmd.AddCommand(filetypesCmd)
}

func runFiletypes(cmd *cobra.Command, args []string) error {
	kind, err := viewmodel.ParseChartKind(filetypesChart)
	if err != nil {
		return err
	}

	a, err := setupApp()
	if err != nil {
		return err
	}
	defer a.close()

	w := a.filetypesWidget(kind)
	defer w.Close()

	if filetypesYear != 0 {
		w.SelectYear(filetypesYear)
	}
	if filetypesForm != "" {
		w.SelectForm(filetypesForm)
	}

	if err := w.Load(commandContext(cmd)); err != nil {
		return fmt.Errorf("failed to load file types: %w", err)
	}

	if filetypesList {
		printSection("Years")
		years := make([]string, 0, len(w.Years()))
		for _, y := range w.Years() {
			years = append(years, strconv.Itoa(y))
		}
		fmt.Fprintln(outputWriter, strings.Join(years, ", "))
		fmt.Fprintln(outputWriter)
		printSection("Form Types")
		fmt.Fprintln(outputWriter, strings.Join(w.FormTypes(), ", "))
		return nil
	}

	printHeader("%s", breakdownTitle(w.Selection()))
	return render.Breakdown(outputWriter, w.View(), a.renderOptions())
}

// breakdownTitle names a (year, form type) selection.
func breakdownTitle(key types.BreakdownKey) string {
	return fmt.Sprintf("File Types: %s (%d)", key.FormType, key.Year)
}
