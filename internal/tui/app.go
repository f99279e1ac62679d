// Package tui provides the interactive Bubble Tea dashboard for mburn.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/mburn/internal/engine"
	"github.com/theirongolddev/mburn/internal/model"
	"github.com/theirongolddev/mburn/internal/tui/components"
	"github.com/theirongolddev/mburn/internal/tui/theme"
)

// budgetStep is how far [ and ] move the budget per keypress.
const budgetStep = 100_000

// resultMsg is sent when a simulation run finishes.
type resultMsg struct {
	batch   *model.TrialBatch
	summary model.RiskSummary
	err     error
}

// App is the root Bubble Tea model.
type App struct {
	// Scenario being simulated.
	params model.Params

	// Parameter form (edit mode).
	form    *huh.Form
	vals    formValues
	editing bool

	// Latest results.
	batch   *model.TrialBatch
	summary model.RiskSummary
	verdict model.Verdict
	runErr  error

	// UI state
	running   bool
	spinner   spinner.Model
	width     int
	height    int
	activeTab int
}

// NewApp creates the TUI app, opening on the parameter form pre-filled with
// the given scenario.
func NewApp(p model.Params) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	a := App{
		params:  p,
		vals:    newFormValues(p),
		editing: true,
		spinner: sp,
	}
	a.form = newParamForm(&a.vals)
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.form.Init()
}

func runCmd(p model.Params) tea.Cmd {
	return func() tea.Msg {
		batch, summary, err := engine.Run(p)
		return resultMsg{batch: batch, summary: summary, err: err}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case resultMsg:
		a.running = false
		a.runErr = msg.err
		if msg.err == nil {
			a.batch = msg.batch
			a.summary = msg.summary
			a.verdict = model.ComputeVerdict(msg.summary)
			// Pin the reported seed so edits rerun the same stream.
			a.params.Seed = msg.batch.Seed
		}
		return a, nil

	case spinner.TickMsg:
		if a.running {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.editing {
			return a.updateForm(msg)
		}
		return a.updateKeys(msg)
	}

	if a.editing {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		p, err := a.vals.params(a.params.Seed)
		if err != nil {
			a.runErr = err
			a.editing = false
			return a, nil
		}
		if err := engine.ValidateParams(p); err != nil {
			// Cross-field constraints (e.g. food ordering) are only
			// checkable after submit; bounce back into the form.
			a.runErr = err
			a.vals = newFormValues(p)
			a.form = newParamForm(&a.vals)
			if a.width > 0 {
				a.form = a.form.WithWidth(a.width).WithHeight(a.height)
			}
			a.editing = true
			return a, a.form.Init()
		}
		a.runErr = nil
		a.params = p
		a.editing = false
		a.running = true
		return a, tea.Batch(a.spinner.Tick, runCmd(a.params))
	}
	if a.form.State == huh.StateAborted {
		return a, tea.Quit
	}
	return a, cmd
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return a, tea.Quit

	case "e":
		a.vals = newFormValues(a.params)
		a.form = newParamForm(&a.vals)
		if a.width > 0 {
			a.form = a.form.WithWidth(a.width).WithHeight(a.height)
		}
		a.editing = true
		return a, a.form.Init()

	case "r":
		// Fresh random stream.
		a.params.Seed = uint64(time.Now().UnixNano())
		a.running = true
		return a, tea.Batch(a.spinner.Tick, runCmd(a.params))

	case "[":
		if a.batch != nil {
			a.params.Budget -= budgetStep
			a.summary = engine.Summarize(a.batch, a.params.Budget)
			a.verdict = model.ComputeVerdict(a.summary)
		}
		return a, nil

	case "]":
		if a.batch != nil {
			a.params.Budget += budgetStep
			a.summary = engine.Summarize(a.batch, a.params.Budget)
			a.verdict = model.ComputeVerdict(a.summary)
		}
		return a, nil

	case "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	}

	if len(msg.Runes) == 1 {
		if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
			a.activeTab = idx
		}
	}
	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	t := theme.Active

	if a.editing {
		return a.form.View()
	}

	if a.running {
		return fmt.Sprintf("\n\n  %s simulating %s months...\n",
			a.spinner.View(),
			lipgloss.NewStyle().Foreground(t.TextPrimary).Render(fmt.Sprintf("%d", a.params.Trials)))
	}

	if a.runErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		hint := lipgloss.NewStyle().Foreground(t.TextMuted)
		return fmt.Sprintf("\n\n  %s\n\n  %s\n",
			errStyle.Render(a.runErr.Error()),
			hint.Render("[e] fix inputs  [q] quit"))
	}

	if a.batch == nil {
		return "\n  loading...\n"
	}

	cw := a.width - 2
	if cw < 60 {
		cw = 60
	}
	if cw > 140 {
		cw = 140
	}

	var body string
	switch a.activeTab {
	case 0:
		body = a.renderOverviewTab(cw)
	case 1:
		body = a.renderDistributionTab(cw)
	case 2:
		body = a.renderBreakdownTab(cw)
	}

	header := components.RenderTabBar(a.activeTab)
	status := components.RenderStatusBar(a.width, fmt.Sprintf("%d", a.batch.Seed))

	return "\n" + header + "\n\n" + body + "\n" + status
}
