package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/mburn/internal/cli"
	"github.com/theirongolddev/mburn/internal/config"
	"github.com/theirongolddev/mburn/internal/store"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Manage saved parameter presets",
}

var scenarioListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved scenarios",
	RunE: func(_ *cobra.Command, _ []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		scenarios, err := st.List()
		if err != nil {
			return err
		}
		if len(scenarios) == 0 {
			fmt.Println("No saved scenarios. Save one with: mburn scenario save <name>")
			return nil
		}

		t := cli.Table{
			Headers: []string{"Name", "Budget", "Trials", "Contagion", "Updated"},
		}
		for _, sc := range scenarios {
			t.Rows = append(t.Rows, []string{
				sc.Name,
				cli.FormatMoneyCompact(sc.Params.Budget),
				cli.FormatNumber(int64(sc.Params.Trials)),
				fmt.Sprintf("%.2f", sc.Params.Correlation),
				sc.UpdatedAt.Local().Format("2006-01-02 15:04"),
			})
		}
		fmt.Print(cli.RenderTable(t))
		return nil
	},
}

var scenarioSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the current parameters as a named scenario",
	Long: `Save captures the effective parameter set, after config defaults and any
flag overrides, under a name. Saving to an existing name overwrites it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, _, err := resolveParams(cmd)
		if err != nil {
			return err
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Save(args[0], p); err != nil {
			return err
		}
		fmt.Printf("Saved scenario %q (budget %s, %s trials)\n",
			args[0], cli.FormatMoneyCompact(p.Budget), cli.FormatNumber(int64(p.Trials)))
		return nil
	},
}

var scenarioShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a saved scenario's parameters",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		sc, err := st.Get(args[0])
		if err != nil {
			return err
		}

		fmt.Print(renderScenario(sc))
		return nil
	},
}

var scenarioRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a saved scenario",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted scenario %q\n", args[0])
		return nil
	},
}

func init() {
	scenarioCmd.AddCommand(scenarioListCmd)
	scenarioCmd.AddCommand(scenarioSaveCmd)
	scenarioCmd.AddCommand(scenarioShowCmd)
	scenarioCmd.AddCommand(scenarioRmCmd)
	rootCmd.AddCommand(scenarioCmd)
}

func openStore() (*store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	cli.SetCurrency(cfg.General.Currency)
	return store.Open(config.ScenarioDBPath())
}

func renderScenario(sc store.Scenario) string {
	p := sc.Params
	t := cli.Table{
		Title:   sc.Name,
		Headers: []string{"Parameter", "Value"},
		Rows: [][]string{
			{"Budget", cli.FormatMoney(p.Budget)},
			{"Trials", cli.FormatNumber(int64(p.Trials))},
			{"Contagion", fmt.Sprintf("%.2f", p.Correlation)},
			{"---"},
			{"Food min / mode / max", fmt.Sprintf("%s / %s / %s",
				cli.FormatMoneyCompact(p.FoodMin), cli.FormatMoneyCompact(p.FoodMode), cli.FormatMoneyCompact(p.FoodMax))},
			{"Transport range", fmt.Sprintf("%s + %s",
				cli.FormatMoneyCompact(p.TransportLo), cli.FormatMoneyCompact(p.TransportWidth))},
			{"Lifestyle mu / sigma", fmt.Sprintf("%.2f / %.2f", p.LifestyleMu, p.LifestyleSigma)},
			{"Shock chance / cost", fmt.Sprintf("%s / %s",
				cli.FormatPercent(p.ShockProb), cli.FormatMoneyCompact(p.ShockCost))},
			{"Housing mean / stddev", fmt.Sprintf("%s / %s",
				cli.FormatMoneyCompact(p.HousingMean), cli.FormatMoneyCompact(p.HousingStddev))},
			{"---"},
			{"Saved", sc.CreatedAt.Local().Format("2006-01-02 15:04")},
			{"Updated", sc.UpdatedAt.Local().Format("2006-01-02 15:04")},
		},
	}
	return cli.RenderTable(t)
}
