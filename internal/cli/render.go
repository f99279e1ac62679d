package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/mburn/internal/engine"
	"github.com/theirongolddev/mburn/internal/model"
)

// Theme colors (Flexoki Dark)
var (
	colorBorder    = lipgloss.Color("#403E3C")
	colorTextDim   = lipgloss.Color("#575653")
	colorTextMuted = lipgloss.Color("#878580")
	colorText      = lipgloss.Color("#FFFCF0")
	colorAccent    = lipgloss.Color("#3AA99F")
	colorGreen     = lipgloss.Color("#879A39")
	colorOrange    = lipgloss.Color("#DA702C")
	colorRed       = lipgloss.Color("#D14D41")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	redStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	greenStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	orangeStyle = lipgloss.NewStyle().
			Foreground(colorOrange)
)

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// Table represents a bordered text table for CLI output. A row consisting of
// the single cell "---" renders as a separator line.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		if len(h) > widths[i] {
			widths[i] = len(h)
		}
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	writeRule := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	writeRule("╭", "┬", "╮")

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(fmt.Sprintf(" %-*s ", widths[i], h)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
		writeRule("├", "┼", "┤")
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			writeRule("├", "┼", "┤")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			// Right-align all but the first column.
			if i == 0 {
				b.WriteString(valueStyle.Render(fmt.Sprintf(" %-*s ", widths[i], cell)))
			} else {
				b.WriteString(valueStyle.Render(fmt.Sprintf(" %*s ", widths[i], cell)))
			}
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	writeRule("╰", "┴", "╯")
	return b.String()
}

// RenderVerdict renders the red/green verdict banner with a coverage bar.
func RenderVerdict(v model.Verdict, s model.RiskSummary) string {
	var accent lipgloss.Style
	var lines []string

	if v.Underfunded {
		accent = redStyle
		lines = []string{
			accent.Bold(true).Render("⚠ DANGER: NOT ENOUGH MONEY"),
			"",
			valueStyle.Render(fmt.Sprintf("Short by %s against the 95%% safe level (%s).",
				FormatMoney(v.Shortfall), FormatMoney(s.SafeBudget95))),
			mutedStyle.Render(fmt.Sprintf("%s of simulated months run out of money before the end.",
				FormatPercent(s.ExceedProb))),
		}
	} else {
		accent = greenStyle
		lines = []string{
			accent.Bold(true).Render("✓ SAFE: FINANCES ARE HEALTHY"),
			"",
			valueStyle.Render(fmt.Sprintf("Buffer of %s above the 95%% safe level (%s).",
				FormatMoney(s.Gap), FormatMoney(s.SafeBudget95))),
			mutedStyle.Render(fmt.Sprintf("Only %s of simulated months run out of money.",
				FormatPercent(s.ExceedProb))),
		}
	}

	lines = append(lines, "", renderCoverageBar(v.Coverage, 40, accent))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent.GetForeground()).
		Padding(0, 2).
		Width(55)

	return box.Render(strings.Join(lines, "\n"))
}

func renderCoverageBar(coverage float64, width int, accent lipgloss.Style) string {
	if coverage < 0 {
		coverage = 0
	}
	if coverage > 1 {
		coverage = 1
	}
	filled := int(coverage * float64(width))
	bar := accent.Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %s", bar, mutedStyle.Render(
		fmt.Sprintf("funds cover %s of the safe level", FormatPercent(coverage))))
}

// RenderSummaryTable renders the headline metrics as a table.
func RenderSummaryTable(s model.RiskSummary, trials int) string {
	rows := [][]string{
		{"Money on hand", FormatMoney(s.Budget)},
		{"Needed for 95% safety", FormatMoney(s.SafeBudget95)},
		{"Risk of running out", FormatPercent(s.ExceedProb)},
		{"---"},
		{"Mean month", FormatMoney(s.Mean)},
		{"Median month", FormatMoney(s.Median)},
		{"Calm month (p5)", FormatMoney(s.P5)},
		{"Shock months", fmt.Sprintf("%s of %s", FormatNumber(int64(s.ShockTrials)), FormatNumber(int64(trials)))},
	}
	return RenderTable(Table{Title: "Risk summary", Rows: rows})
}

// RenderHistogram renders the total-cost distribution as horizontal bars,
// one row per bin, with the budget and safe-level positions marked. Shock
// months show as a red segment at the end of their bin's bar.
func RenderHistogram(bins []engine.HistogramBin, s model.RiskSummary, width int) string {
	if len(bins) == 0 {
		return ""
	}

	maxCount := 0
	for _, bin := range bins {
		if bin.Count > maxCount {
			maxCount = bin.Count
		}
	}
	if maxCount == 0 {
		return ""
	}

	barWidth := width - 24
	if barWidth < 10 {
		barWidth = 10
	}

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(headerStyle.Render("Spending distribution"))
	b.WriteString("\n")

	for _, bin := range bins {
		total := bin.Count * barWidth / maxCount
		shock := bin.ShockCount * barWidth / maxCount
		if shock > total {
			shock = total
		}

		label := fmt.Sprintf("%10s", FormatMoneyCompact(bin.Lo))
		bar := greenStyle.Render(strings.Repeat("█", total-shock)) +
			redStyle.Render(strings.Repeat("█", shock))

		marker := ""
		if bin.Lo <= s.Budget && s.Budget < bin.Hi {
			marker += "  " + valueStyle.Render("◄ your money")
		}
		if bin.Lo <= s.SafeBudget95 && s.SafeBudget95 < bin.Hi {
			marker += "  " + orangeStyle.Render("◄ safe level")
		}

		fmt.Fprintf(&b, "  %s %s%s%s\n",
			mutedStyle.Render(label),
			dimStyle.Render("│"),
			bar,
			marker,
		)
	}

	b.WriteString("  ")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%10s └ %s normal months, %s shock months",
		"", greenStyle.Render("█"), redStyle.Render("█"))))
	b.WriteString("\n")
	return b.String()
}

// RenderSweep renders exceedance probability across a range of budgets.
func RenderSweep(points []engine.SweepPoint, width int) string {
	if len(points) == 0 {
		return ""
	}

	barWidth := width - 32
	if barWidth < 10 {
		barWidth = 10
	}

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(headerStyle.Render("Risk of running out, by budget"))
	b.WriteString("\n")

	for _, pt := range points {
		filled := int(pt.ExceedProb * float64(barWidth))
		style := greenStyle
		switch {
		case pt.ExceedProb >= 0.5:
			style = redStyle
		case pt.ExceedProb >= 0.2:
			style = orangeStyle
		}
		fmt.Fprintf(&b, "  %12s %s%s %s\n",
			mutedStyle.Render(FormatMoneyCompact(pt.Budget)),
			dimStyle.Render("│"),
			style.Render(strings.Repeat("█", filled)),
			valueStyle.Render(FormatPercent(pt.ExceedProb)),
		)
	}
	return b.String()
}
