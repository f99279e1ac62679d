package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/stat"

	"github.com/theirongolddev/mburn/internal/cli"
	"github.com/theirongolddev/mburn/internal/engine"
	"github.com/theirongolddev/mburn/internal/tui/components"
	"github.com/theirongolddev/mburn/internal/tui/theme"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	s := a.summary
	v := a.verdict
	var b strings.Builder

	gapNote := "buffer above the safe level"
	if v.Underfunded {
		gapNote = "short of the safe level"
	}

	cards := []components.Card{
		{Label: "Money on hand", Value: cli.FormatMoney(s.Budget), Note: fmt.Sprintf("%d months simulated", a.batch.Len())},
		{Label: "Needed for 95% safety", Value: cli.FormatMoney(s.SafeBudget95), Note: "typical month " + cli.FormatMoneyCompact(s.Median)},
		{Label: "Risk of running out", Value: cli.FormatPercent(s.ExceedProb), Note: fmt.Sprintf("%d shock months", s.ShockTrials)},
		{Label: "Gap", Value: cli.FormatMoney(s.Gap), Note: gapNote},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Verdict card.
	var title, detail string
	var accent lipgloss.Color
	if v.Underfunded {
		accent = t.Red
		title = "⚠ DANGER: NOT ENOUGH MONEY"
		detail = fmt.Sprintf("Short by %s. %s of simulated months run out of money.",
			cli.FormatMoney(v.Shortfall), cli.FormatPercent(s.ExceedProb))
	} else {
		accent = t.Green
		title = "✓ SAFE: FINANCES ARE HEALTHY"
		detail = fmt.Sprintf("Buffer of %s. Only %s of simulated months run out of money.",
			cli.FormatMoney(s.Gap), cli.FormatPercent(s.ExceedProb))
	}

	titleStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)
	detailStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	barWidth := components.CardInnerWidth(cw) - 10
	if barWidth > 60 {
		barWidth = 60
	}
	filled := int(v.Coverage * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}
	coverage := lipgloss.NewStyle().Foreground(accent).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(t.TextDim).Render(strings.Repeat("░", barWidth-filled)) +
		lipgloss.NewStyle().Foreground(t.TextMuted).Render(" "+cli.FormatPercent(v.Coverage)+" covered")

	b.WriteString(components.ContentCard("",
		titleStyle.Render(title)+"\n"+detailStyle.Render(detail)+"\n\n"+coverage,
		cw,
	))
	b.WriteString("\n")
	return b.String()
}

func (a App) renderDistributionTab(cw int) string {
	inner := components.CardInnerWidth(cw)

	cols := inner - 8
	if cols < 20 {
		cols = 20
	}
	bins := engine.Histogram(a.batch, cols)

	data := components.HistogramData{
		Counts:      make([]int, len(bins)),
		ShockCounts: make([]int, len(bins)),
		BudgetCol:   -1,
		SafeCol:     -1,
		BudgetLabel: "your money " + cli.FormatMoneyCompact(a.summary.Budget),
		SafeLabel:   "safe level " + cli.FormatMoneyCompact(a.summary.SafeBudget95),
	}
	for i, bin := range bins {
		data.Counts[i] = bin.Count
		data.ShockCounts[i] = bin.ShockCount
		if bin.Lo <= a.summary.Budget && a.summary.Budget < bin.Hi {
			data.BudgetCol = i
		}
		if bin.Lo <= a.summary.SafeBudget95 && a.summary.SafeBudget95 < bin.Hi {
			data.SafeCol = i
		}
	}

	height := a.height - 14
	if height < 6 {
		height = 6
	}
	if height > 20 {
		height = 20
	}

	return components.ContentCard(
		"Where your months land",
		components.Histogram(data, height),
		cw,
	) + "\n"
}

func (a App) renderBreakdownTab(cw int) string {
	t := theme.Active
	b := a.batch

	type row struct {
		name string
		vals []float64
	}
	rows := []row{
		{"Housing", b.Housing},
		{"Food", b.Food},
		{"Transport", b.Transport},
		{"Lifestyle", b.Lifestyle},
		{"Shock", b.Shock},
	}

	means := make([]float64, len(rows))
	maxMean := 0.0
	totalMean := 0.0
	for i, r := range rows {
		means[i] = stat.Mean(r.vals, nil)
		totalMean += means[i]
		if means[i] > maxMean {
			maxMean = means[i]
		}
	}

	inner := components.CardInnerWidth(cw)
	barWidth := inner - 40
	if barWidth < 10 {
		barWidth = 10
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	valStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var body strings.Builder
	for i, r := range rows {
		share := 0.0
		if totalMean > 0 {
			share = means[i] / totalMean
		}
		fmt.Fprintf(&body, "%s %s %s %s\n",
			nameStyle.Render(fmt.Sprintf("%-10s", r.name)),
			valStyle.Render(fmt.Sprintf("%14s", cli.FormatMoney(means[i]))),
			components.HorizontalBar(means[i], maxMean, barWidth, t.Blue),
			valStyle.Render(cli.FormatPercent(share)),
		)
	}
	fmt.Fprintf(&body, "\n%s %s",
		nameStyle.Render(fmt.Sprintf("%-10s", "Average")),
		valStyle.Render(fmt.Sprintf("%14s", cli.FormatMoney(totalMean))),
	)

	return components.ContentCard("Average month by category", body.String(), cw) + "\n"
}
