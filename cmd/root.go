package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/mburn/internal/cli"
	"github.com/theirongolddev/mburn/internal/config"
	"github.com/theirongolddev/mburn/internal/model"
	"github.com/theirongolddev/mburn/internal/store"
)

var (
	flagBudget      float64
	flagTrials      int
	flagSeed        uint64
	flagCorrelation float64
	flagScenario    string
	flagQuiet       bool
	flagJSON        bool
)

var rootCmd = &cobra.Command{
	Use:   "mburn",
	Short: "Monthly budget risk check",
	Long: "Simulate thousands of possible months against your budget and see\n" +
		"the chance of running out of money before payday.",
	RunE: runCheck,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Float64VarP(&flagBudget, "budget", "b", 0, "Money on hand for the month")
	pf.IntVarP(&flagTrials, "trials", "n", 0, "Number of simulated months")
	pf.Uint64Var(&flagSeed, "seed", 0, "Random seed for a reproducible run (0 = random)")
	pf.Float64VarP(&flagCorrelation, "correlation", "c", 0, "Lifestyle contagion strength, 0-0.95")
	pf.StringVarP(&flagScenario, "scenario", "s", "", "Run a saved scenario preset")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// resolveParams assembles the parameter set for a run: config defaults,
// then the named scenario preset if any, then explicit flag overrides.
func resolveParams(cmd *cobra.Command) (model.Params, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return model.Params{}, cfg, err
	}
	cli.SetCurrency(cfg.General.Currency)

	p := cfg.Params()

	if flagScenario != "" {
		st, err := store.Open(config.ScenarioDBPath())
		if err != nil {
			return p, cfg, err
		}
		defer st.Close()

		sc, err := st.Get(flagScenario)
		if err != nil {
			return p, cfg, err
		}
		p = sc.Params
	}

	f := cmd.Flags()
	if f.Changed("budget") {
		p.Budget = flagBudget
	}
	if f.Changed("trials") {
		p.Trials = flagTrials
	}
	if f.Changed("correlation") {
		p.Correlation = flagCorrelation
	}
	if f.Changed("seed") {
		p.Seed = flagSeed
	}

	return p, cfg, nil
}

func progressf(format string, args ...any) {
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
