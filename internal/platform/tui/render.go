package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-smoke/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorSmoke0:   lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	core.ColorSmoke1:   lipgloss.NewStyle().Foreground(lipgloss.Color("239")),
	core.ColorSmoke2:   lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	core.ColorSmoke3:   lipgloss.NewStyle().Foreground(lipgloss.Color("247")),
	core.ColorSmoke4:   lipgloss.NewStyle().Foreground(lipgloss.Color("251")),
	core.ColorSmoke5:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	core.ColorObstacle: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorText:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	core.ColorAccent:   lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),
	core.ColorWarning:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
}

// RenderSurface converts a Surface to styled lines for display.
// Adjacent cells with the same color share one style run to keep ANSI
// escape sequences down.
func RenderSurface(s *core.Surface) []string {
	lines := make([]string, 0, s.Height())

	for y := range s.Height() {
		var sb strings.Builder
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// styleFor returns the lipgloss style for a color.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}
