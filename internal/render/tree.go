package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbsmedya/edgarviz/internal/treesearch"
)

// TreeStyles are the lipgloss styles used to draw walkthrough columns.
type TreeStyles struct {
	Question    lipgloss.Style
	Column      lipgloss.Style
	Title       lipgloss.Style
	Description lipgloss.Style
	Node        lipgloss.Style
	Query       lipgloss.Style
	Pruned      lipgloss.Style
	Moving      lipgloss.Style
	Reason      lipgloss.Style
	Button      lipgloss.Style
	Answer      lipgloss.Style
	Progress    lipgloss.Style
}

// DefaultTreeStyles returns styles close to the dark page theme.
func DefaultTreeStyles(columnWidth int) TreeStyles {
	return TreeStyles{
		Question: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F3F4F6")).MarginBottom(1),
		Column: lipgloss.NewStyle().
			Width(columnWidth).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(lipgloss.Color("#1F2937")),
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E5E7EB")),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")).MarginBottom(1),
		Node: lipgloss.NewStyle().
			Padding(0, 1).
			Background(lipgloss.Color("#3B82F6")).
			Foreground(lipgloss.Color("#FFFFFF")),
		Query: lipgloss.NewStyle().
			Padding(0, 1).
			Background(lipgloss.Color("#3B82F6")).
			Foreground(lipgloss.Color("#DBEAFE")).
			Italic(true),
		Pruned: lipgloss.NewStyle().
			Padding(0, 1).
			Background(lipgloss.Color("#EF4444")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Strikethrough(true).
			Faint(true),
		Moving:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true),
		Reason:   lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171")).MarginBottom(1),
		Button:   lipgloss.NewStyle().Foreground(lipgloss.Color("#D1D5DB")).Background(lipgloss.Color("#1F2937")).Padding(0, 1),
		Answer:   lipgloss.NewStyle().Foreground(lipgloss.Color("#E5E7EB")).Background(lipgloss.Color("#1F2937")).Padding(1, 2),
		Progress: lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")).MarginTop(1),
	}
}

// Tree renders the walkthrough: the question, one column per step and the
// progress line. Columns beyond the current step are drawn blank so the
// layout keeps its width.
func Tree(s *treesearch.Session, styles TreeStyles) string {
	cols := s.Columns()
	rendered := make([]string, 0, len(cols))
	for _, col := range cols {
		rendered = append(rendered, styles.Column.Render(treeColumn(col, styles)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.Question.Render("Example: \""+s.Dataset().Question+"\""),
		lipgloss.JoinHorizontal(lipgloss.Top, rendered...),
		styles.Progress.Render(s.Progress()),
	)
}

func treeColumn(col treesearch.ColumnView, styles TreeStyles) string {
	if !col.Shown {
		return ""
	}

	parts := []string{
		styles.Title.Render(col.Title),
		styles.Description.Render(col.Description),
	}
	if col.PruneReason != "" {
		parts = append(parts, styles.Reason.Render(col.PruneReason))
	}
	if col.ButtonLabel != "" {
		parts = append(parts, styles.Button.Render("["+col.ButtonLabel+"]"))
	}

	if col.FinalAnswer != "" {
		parts = append(parts, styles.Answer.Render(col.FinalAnswer))
		return strings.Join(parts, "\n")
	}

	for _, n := range col.Nodes {
		switch n.Placement {
		case treesearch.PlacementHidden:
			continue
		case treesearch.PlacementTransitioning:
			parts = append(parts, styles.Moving.Render("→ "+n.Text))
		default:
			style, query := styles.Node, styles.Query
			if n.Pruned {
				style, query = styles.Pruned, styles.Pruned
			}
			node := style.Render(n.Text)
			if n.Query != "" {
				node += "\n" + query.Render("$ "+n.Query)
			}
			parts = append(parts, node+"\n"+style.Render(n.Result))
		}
	}
	return strings.Join(parts, "\n")
}
