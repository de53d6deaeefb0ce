package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/edgarviz/internal/grouping"
	"github.com/dbsmedya/edgarviz/internal/loader"
	"github.com/dbsmedya/edgarviz/internal/treesearch"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration, datasets and the walkthrough",
	Long: `Validate checks the configuration file, loads both datasets and runs
consistency checks on them.

Checks performed:
  - Configuration syntax and required fields
  - Filing frequency dataset: reachable, required columns, row values
  - File type dataset: reachable, required columns, row values
  - Percentages sum to 100 per year and form type (within tolerance)
  - Tree walkthrough: unique node ids, parents and pruned nodes

Example:
  edgarviz validate --config edgarviz.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	a, err := setupApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx := commandContext(cmd)
	a.log.Info("Starting validation checks...")

	fmt.Fprintf(outputWriter, "\n=== Configuration Validation ===\n")
	fmt.Fprintf(outputWriter, "Config file: %s\n", GetConfigFile())
	fmt.Fprintf(outputWriter, "Environment: %s\n", a.cfg.Data.Environment)
	fmt.Fprintf(outputWriter, "Base path:   %s\n\n", a.cfg.Data.BasePath())

	hasErrors := false

	// Filing frequency
	filingsLocator := loader.FilingsLocator(&a.cfg.Data)
	fmt.Fprintf(outputWriter, "--- Filings: %s ---\n", filingsLocator)
	filings, err := a.loader.LoadFilings(ctx, filingsLocator)
	if err != nil {
		fmt.Fprintf(outputWriter, "❌ Load failed: %v\n\n", err)
		hasErrors = true
	} else {
		groups := grouping.GroupFilings(filings)
		fmt.Fprintf(outputWriter, "Records: %d\n", len(filings))
		fmt.Fprintf(outputWriter, "Groups:  %d\n", groups.Len())
		fmt.Fprintf(outputWriter, "✅ All checks passed\n\n")
	}

	// File type breakdown
	filetypesLocator := loader.FiletypesLocator(&a.cfg.Data)
	fmt.Fprintf(outputWriter, "--- File types: %s ---\n", filetypesLocator)
	filetypes, err := a.loader.LoadFiletypes(ctx, filetypesLocator)
	if err != nil {
		fmt.Fprintf(outputWriter, "❌ Load failed: %v\n\n", err)
		hasErrors = true
	} else {
		fmt.Fprintf(outputWriter, "Records:    %d\n", len(filetypes))
		fmt.Fprintf(outputWriter, "Years:      %d\n", len(grouping.Years(filetypes)))
		fmt.Fprintf(outputWriter, "Form types: %d\n", len(grouping.FormTypes(filetypes)))

		deviations := grouping.CheckPercentages(filetypes, a.cfg.Chart.PercentageTolerance)
		if len(deviations) > 0 {
			fmt.Fprintf(outputWriter, "❌ %d selection(s) do not sum to 100%%:\n", len(deviations))
			for _, d := range deviations {
				fmt.Fprintf(outputWriter, "   - %s: %.2f%%\n", d.Key, d.Sum)
			}
			fmt.Fprintln(outputWriter)
			hasErrors = true
		} else {
			fmt.Fprintf(outputWriter, "✅ All checks passed\n\n")
		}
	}

	// Walkthrough
	fmt.Fprintf(outputWriter, "--- Tree walkthrough ---\n")
	data, err := treesearch.Embedded()
	if err != nil {
		fmt.Fprintf(outputWriter, "❌ Invalid: %v\n\n", err)
		hasErrors = true
	} else {
		nodes := 0
		for _, st := range data.Steps {
			nodes += len(st.Nodes)
		}
		fmt.Fprintf(outputWriter, "Steps: %d\n", data.StepCount())
		fmt.Fprintf(outputWriter, "Nodes: %d\n", nodes)
		fmt.Fprintf(outputWriter, "✅ All checks passed\n\n")
	}

	if hasErrors {
		return fmt.Errorf("validation failed for one or more checks")
	}

	fmt.Fprintln(outputWriter, "=== Validation Complete ===")
	fmt.Fprintln(outputWriter, "✅ All checks passed")
	return nil
}
