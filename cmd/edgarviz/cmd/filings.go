package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/edgarviz/internal/render"
	"github.com/dbsmedya/edgarviz/internal/viewmodel"
)

var (
	filingsGroup string
	filingsTop   int
)

var filingsCmd = &cobra.Command{
	Use:   "filings",
	Short: "Show the filing-type frequency bar list",
	Long: `Filings draws the proportional bar list of filing-type frequency.

By default the overall top forms are shown. With --group the members of a
form group are shown instead. Bar widths are always relative to the most
filed form overall, with a small floor so rare forms stay visible.

Example:
  edgarviz filings --top 10
  edgarviz filings --group "8-K Reports"`,
	RunE: runFilings,
}

func init() {
	filingsCmd.Flags().StringVarP(&filingsGroup, "group", "g", "",
		"Form group to show (see 'edgarviz groups')")
	filingsCmd.Flags().IntVarP(&filingsTop, "top", "n", 0,
		"Number of top forms to show (default from config)")

	rootCmd.AddCommand(filingsCmd)
}

func runFilings(cmd *cobra.Command, args []string) error {
	a, err := setupApp()
	if err != nil {
		return err
	}
	defer a.close()

	if filingsTop > 0 {
		a.cfg.Chart.TopN = filingsTop
	}

	w := a.filingsWidget()
	defer w.Close()

	if filingsGroup != "" {
		if err := w.Select(filingsGroup); err != nil {
			return err
		}
	}

	if err := w.Load(commandContext(cmd)); err != nil {
		return fmt.Errorf("failed to load filings: %w", err)
	}

	printHeader("%s", barTitle(w.Selection()))
	return render.Bars(outputWriter, w.Bars(), a.renderOptions())
}

// barTitle names the bar list selection.
func barTitle(sel viewmodel.Selection) string {
	if sel.IsTop() {
		return fmt.Sprintf("Top %d Filing Types", sel.TopN)
	}
	return sel.Group
}
