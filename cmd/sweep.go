package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/mburn/internal/cli"
	"github.com/theirongolddev/mburn/internal/engine"
)

var (
	flagSweepFrom  float64
	flagSweepTo    float64
	flagSweepSteps int
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Show how risk falls as the budget grows",
	Long: `Sweep runs the simulation once and then re-scores a range of candidate
budgets against the same simulated months, so you can see how much extra
money buys how much extra safety.`,
	RunE: runSweep,
}

func init() {
	sweepCmd.Flags().Float64Var(&flagSweepFrom, "from", 0, "Lowest budget to test (default: half the mean month)")
	sweepCmd.Flags().Float64Var(&flagSweepTo, "to", 0, "Highest budget to test (default: 1.5x the mean month)")
	sweepCmd.Flags().IntVar(&flagSweepSteps, "steps", 13, "Number of budgets to test")
	sweepCmd.Flags().BoolVar(&flagJSON, "json", false, "Print machine-readable results")
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, _ []string) error {
	p, _, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	progressf("  Simulating %s months...\n", cli.FormatNumber(int64(p.Trials)))

	batch, summary, err := engine.Run(p)
	if err != nil {
		return err
	}

	lo, hi := flagSweepFrom, flagSweepTo
	if lo <= 0 {
		lo = summary.Mean * 0.5
	}
	if hi <= lo {
		hi = summary.Mean * 1.5
	}
	if flagSweepSteps < 2 {
		return fmt.Errorf("sweep needs at least 2 steps, got %d", flagSweepSteps)
	}

	points := engine.SweepBudgets(batch, lo, hi, flagSweepSteps)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(points)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("BUDGET SWEEP"))
	fmt.Println()
	fmt.Print(cli.RenderSweep(points, 72))
	fmt.Println()
	progressf("  Replay this run with --seed %d\n", batch.Seed)

	return nil
}
