package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var groupsMembers bool

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List the form groups with their member counts",
	Long: `Groups lists every form group in display order along with how many
filing types fall into it. Every filing type belongs to exactly one group.

Example:
  edgarviz groups
  edgarviz groups --members`,
	RunE: runGroups,
}

func init() {
	groupsCmd.Flags().BoolVarP(&groupsMembers, "members", "m", false,
		"Also list the filing types in each group")

	rootCmd.AddCommand(groupsCmd)
}

func runGroups(cmd *cobra.Command, args []string) error {
	a, err := setupApp()
	if err != nil {
		return err
	}
	defer a.close()

	w := a.filingsWidget()
	defer w.Close()

	if err := w.Load(commandContext(cmd)); err != nil {
		return fmt.Errorf("failed to load filings: %w", err)
	}

	sizes := w.GroupSizes()
	cmd.Printf("Form groups in %s:\n\n", a.cfg.Data.FilingsFile)

	total := 0
	for i, g := range sizes {
		cmd.Printf("%d. %s\n", i+1, g.Name)
		cmd.Printf("   Filing types:  %d\n", g.Count)
		total += g.Count

		if groupsMembers && g.Count > 0 {
			if err := w.Select(g.Name); err != nil {
				return fmt.Errorf("failed to select group %q: %w", g.Name, err)
			}
			for _, bar := range w.Bars() {
				cmd.Printf("      - %s (%s)\n", bar.Name, bar.CountText)
			}
		}

		// Add spacing between groups
		if i < len(sizes)-1 {
			cmd.Println()
		}
	}

	cmd.Printf("\nTotal: %d filing type(s) in %d group(s)\n", total, len(sizes))
	return nil
}
