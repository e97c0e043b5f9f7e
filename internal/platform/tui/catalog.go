package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-smoke/internal/registry"
)

// RenderCatalog draws the registered simulations as a static table.
// Nothing is selected or focused; it is printed once and not updated.
func RenderCatalog(sims []registry.Info) string {
	idWidth, titleWidth := len("ID"), len("Title")
	rows := make([]table.Row, len(sims))
	for i, s := range sims {
		idWidth = max(idWidth, lipgloss.Width(s.ID))
		titleWidth = max(titleWidth, lipgloss.Width(s.Title))
		rows[i] = table.Row{s.ID, s.Title}
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: idWidth},
			{Title: "Title", Width: titleWidth},
		}),
		table.WithRows(rows),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// The cursor row would otherwise be highlighted.
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
	// Header line plus its bottom border.
	t.SetHeight(len(rows) + 2)

	return t.View()
}
