package cmd

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/edgarviz/internal/render"
	"github.com/dbsmedya/edgarviz/internal/treesearch"
	"github.com/dbsmedya/edgarviz/internal/tui"
)

var (
	treeScript      string
	treeColumnWidth int
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Play the tree-search walkthrough",
	Long: `Tree steps through the scripted search-tree walkthrough: each step
shows its attempted searches, the judgment prunes the failed ones, and the
survivors move on to the next step.

Without --script an interactive terminal UI is started. With --script the
given actions (reveal, next, prev) are replayed and every state is printed.

Example:
  edgarviz tree
  edgarviz tree --script reveal,next,reveal,next,reveal`,
	RunE: runTree,
}

func init() {
	treeCmd.Flags().StringVarP(&treeScript, "script", "s", "",
		"Comma separated actions to replay instead of the interactive UI")
	treeCmd.Flags().IntVar(&treeColumnWidth, "column-width", 36,
		"Column width used by --script output")

	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	a, err := setupApp()
	if err != nil {
		return err
	}
	defer a.close()

	data, err := treesearch.Embedded()
	if err != nil {
		return fmt.Errorf("failed to load walkthrough: %w", err)
	}
	session := treesearch.NewSession(data)

	if treeScript != "" {
		actions, err := tui.ParseScript(treeScript)
		if err != nil {
			return err
		}
		a.log.Debugw("Replaying walkthrough", "actions", len(actions))
		return tui.Replay(outputWriter, session, actions, render.DefaultTreeStyles(treeColumnWidth))
	}

	ctx := commandContext(cmd)
	p := tea.NewProgram(tui.New(session), tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("walkthrough UI failed: %w", err)
	}
	return nil
}
