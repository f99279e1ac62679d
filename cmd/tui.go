package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/mburn/internal/tui"
	"github.com/theirongolddev/mburn/internal/tui/theme"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive dashboard",
	Long: `Tui opens the full-screen dashboard: edit your numbers in a form, watch
the verdict and distribution update, and nudge the budget up and down to
see the risk move.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	p, cfg, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	theme.SetActive(cfg.Appearance.Theme)
	if theme.Active.Name != "terminal" {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}

	prog := tea.NewProgram(tui.NewApp(p), tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}
