package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/mburn/internal/cli"
	"github.com/theirongolddev/mburn/internal/engine"
	"github.com/theirongolddev/mburn/internal/model"
)

const histogramBins = 18

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the simulation and print the verdict",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&flagJSON, "json", false, "Print machine-readable results")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "Print machine-readable results")
	rootCmd.AddCommand(checkCmd)
}

// checkResult is the --json output shape.
type checkResult struct {
	Seed         uint64       `json:"seed"`
	Trials       int          `json:"trials"`
	Budget       float64      `json:"budget"`
	ExceedProb   float64      `json:"exceed_probability"`
	SafeBudget95 float64      `json:"safe_budget_95"`
	Gap          float64      `json:"gap"`
	Mean         float64      `json:"mean"`
	Median       float64      `json:"median"`
	ShockMonths  int          `json:"shock_months"`
	Params       model.Params `json:"params"`
}

func runCheck(cmd *cobra.Command, _ []string) error {
	p, _, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	progressf("  Simulating %s months...\n", cli.FormatNumber(int64(p.Trials)))

	batch, summary, err := engine.Run(p)
	if err != nil {
		return err
	}

	if flagJSON {
		out := checkResult{
			Seed:         batch.Seed,
			Trials:       batch.Len(),
			Budget:       summary.Budget,
			ExceedProb:   summary.ExceedProb,
			SafeBudget95: summary.SafeBudget95,
			Gap:          summary.Gap,
			Mean:         summary.Mean,
			Median:       summary.Median,
			ShockMonths:  summary.ShockTrials,
			Params:       p,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	verdict := model.ComputeVerdict(summary)

	fmt.Println()
	fmt.Println(cli.RenderTitle("MONTHLY BUDGET RISK"))
	fmt.Println()
	fmt.Println(cli.RenderVerdict(verdict, summary))
	fmt.Println()
	fmt.Print(cli.RenderSummaryTable(summary, batch.Len()))
	fmt.Println()
	fmt.Print(cli.RenderHistogram(engine.Histogram(batch, histogramBins), summary, 72))
	fmt.Println()
	progressf("  Replay this run with --seed %d\n", batch.Seed)

	return nil
}
