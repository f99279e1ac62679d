package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/mburn/internal/tui/theme"
)

// HistogramData is the input for the distribution chart: per-column trial
// counts, the shock-month share of each column, and marker positions (-1
// for none) for the budget and safe-level lines.
type HistogramData struct {
	Counts      []int
	ShockCounts []int
	BudgetCol   int
	SafeCol     int
	BudgetLabel string
	SafeLabel   string
}

// Histogram renders a vertical bar histogram, one terminal column per bin.
// Shock months stack in red on top of their bin. Marker arrows under the
// axis point at the budget and safe-level columns.
func Histogram(d HistogramData, height int) string {
	n := len(d.Counts)
	if n == 0 || height < 3 {
		return ""
	}
	t := theme.Active

	maxCount := 0
	for _, c := range d.Counts {
		if c > maxCount {
			maxCount = c
		}
	}
	if maxCount == 0 {
		return ""
	}

	normalStyle := lipgloss.NewStyle().Foreground(t.Green)
	shockStyle := lipgloss.NewStyle().Foreground(t.Red)
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	// Eighth blocks for fractional bar tops.
	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	yLabelW := len(fmt.Sprintf("%d", maxCount)) + 1

	var b strings.Builder
	for row := height; row >= 1; row-- {
		label := ""
		if row == height {
			label = fmt.Sprintf("%d", maxCount)
		} else if row == 1 {
			label = "0"
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		rowTop := float64(maxCount) * float64(row) / float64(height)
		rowBottom := float64(maxCount) * float64(row-1) / float64(height)

		for i, c := range d.Counts {
			v := float64(c)
			normal := float64(c - d.ShockCounts[i])

			style := normalStyle
			// The shock share stacks above the normal share; a row fully
			// over the normal portion renders red.
			if rowBottom >= normal && d.ShockCounts[i] > 0 {
				style = shockStyle
			}

			switch {
			case v >= rowTop:
				b.WriteString(style.Render("█"))
			case v > rowBottom:
				frac := (v - rowBottom) / (rowTop - rowBottom)
				idx := int(frac * 8)
				if idx < 1 {
					idx = 1
				}
				if idx > 8 {
					idx = 8
				}
				b.WriteString(style.Render(string(blocks[idx])))
			default:
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}

	// X axis.
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s└%s", yLabelW, "", strings.Repeat("─", n))))
	b.WriteString("\n")

	// Marker arrows and labels.
	b.WriteString(markerLine(d, yLabelW+1, n))
	return b.String()
}

func markerLine(d HistogramData, indent, n int) string {
	t := theme.Active
	budgetStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	safeStyle := lipgloss.NewStyle().Foreground(t.Orange).Bold(true)

	arrows := make([]rune, n)
	for i := range arrows {
		arrows[i] = ' '
	}
	if d.BudgetCol >= 0 && d.BudgetCol < n {
		arrows[d.BudgetCol] = '▲'
	}
	if d.SafeCol >= 0 && d.SafeCol < n {
		arrows[d.SafeCol] = '▲'
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", indent))
	for i, r := range arrows {
		switch {
		case r == ' ':
			b.WriteString(" ")
		case i == d.SafeCol && i != d.BudgetCol:
			b.WriteString(safeStyle.Render("▲"))
		default:
			b.WriteString(budgetStyle.Render("▲"))
		}
	}
	b.WriteString("\n")

	if d.BudgetLabel != "" || d.SafeLabel != "" {
		b.WriteString(strings.Repeat(" ", indent))
		b.WriteString(budgetStyle.Render("▲ " + d.BudgetLabel))
		b.WriteString("   ")
		b.WriteString(safeStyle.Render("▲ " + d.SafeLabel))
		b.WriteString("\n")
	}
	return b.String()
}

// HorizontalBar renders a labeled horizontal bar scaled against maxValue.
func HorizontalBar(value, maxValue float64, maxWidth int, color lipgloss.Color) string {
	if maxValue <= 0 || maxWidth <= 0 {
		return ""
	}
	barLen := int(value / maxValue * float64(maxWidth))
	if barLen < 0 {
		barLen = 0
	}
	if barLen > maxWidth {
		barLen = maxWidth
	}
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", barLen))
}
