package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dbsmedya/edgarviz/internal/loader"
	"github.com/dbsmedya/edgarviz/internal/render"
	"github.com/dbsmedya/edgarviz/internal/treesearch"
	"github.com/dbsmedya/edgarviz/internal/viewmodel"
	"github.com/dbsmedya/edgarviz/internal/widget"
)

var pageCmd = &cobra.Command{
	Use:   "page",
	Short: "Render all three widgets once",
	Long: `Page loads both datasets concurrently and renders every widget in its
initial state, the way the page first appears:

  - Filing frequency: the overall top forms
  - File types: the newest year and first form type, as a pie
  - Tree search: the first step before any judgment

A dataset that fails to load is logged and its widget is drawn empty.

Example:
  edgarviz page --env production`,
	RunE: runPage,
}

func init() {
	rootCmd.AddCommand(pageCmd)
}

// loadWidgets loads both widgets concurrently. A load error leaves its widget
// empty and does not fail the group; only non-load errors are returned.
func loadWidgets(ctx context.Context, filings *widget.FilingsWidget, filetypes *widget.FiletypesWidget) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return tolerateLoadError(filings.Load(gctx))
	})
	g.Go(func() error {
		return tolerateLoadError(filetypes.Load(gctx))
	})
	return g.Wait()
}

func tolerateLoadError(err error) error {
	if err == nil || loader.IsLoadError(err) {
		return nil
	}
	return err
}

func runPage(cmd *cobra.Command, args []string) error {
	a, err := setupApp()
	if err != nil {
		return err
	}
	defer a.close()

	filings := a.filingsWidget()
	defer filings.Close()
	filetypes := a.filetypesWidget(viewmodel.ChartPie)
	defer filetypes.Close()

	if err := loadWidgets(commandContext(cmd), filings, filetypes); err != nil {
		return fmt.Errorf("failed to load widgets: %w", err)
	}

	opts := a.renderOptions()

	printHeader("%s", barTitle(filings.Selection()))
	if err := render.Bars(outputWriter, filings.Bars(), opts); err != nil {
		return err
	}
	fmt.Fprintln(outputWriter)

	printSection("Form Groups")
	for _, g := range filings.GroupSizes() {
		fmt.Fprintf(outputWriter, "  %-26s %d\n", g.Name, g.Count)
	}
	fmt.Fprintln(outputWriter)

	printHeader("%s", breakdownTitle(filetypes.Selection()))
	if err := render.Breakdown(outputWriter, filetypes.View(), opts); err != nil {
		return err
	}
	fmt.Fprintln(outputWriter)

	data, err := treesearch.Embedded()
	if err != nil {
		return fmt.Errorf("failed to load walkthrough: %w", err)
	}
	printHeader("Tree Search")
	fmt.Fprintln(outputWriter, render.Tree(treesearch.NewSession(data), render.DefaultTreeStyles(36)))
	return nil
}
