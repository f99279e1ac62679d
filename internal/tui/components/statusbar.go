package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/mburn/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar. seedInfo is shown on the
// right so a run can be replayed exactly.
func RenderStatusBar(width int, seedInfo string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [e]dit  [r]eroll  [[/]]budget  [q]uit"
	right := ""
	if seedInfo != "" {
		right = fmt.Sprintf("seed %s ", seedInfo)
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
