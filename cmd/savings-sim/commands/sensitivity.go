package commands

import (
	"github.com/spf13/cobra"

	"github.com/rpgo/savings-simulator/internal/calculation"
)

var maxYearsFlag int

var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity",
	Short: "Tabulate total savings across horizons and contribution levels",
	Long: `sensitivity recomputes the untaxed projected total while varying the
years to retirement and the annual contribution, holding the portfolio,
current savings, and inflation fixed. Useful for seeing how much horizon
and contribution each move the outcome.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, engine, err := loadEngine()
		if err != nil {
			return err
		}

		spec := calculation.DefaultGridSpec()
		if cmd.Flags().Changed("max-years") {
			spec.MaxYears = maxYearsFlag
		}
		grid := engine.SensitivityGrid(spec)

		projection, err := engine.TotalRetirementSavings(cfg.TaxRate.InexactFloat64())
		if err != nil {
			return err
		}

		report := buildReport(cfg, engine, projection)
		report.Grid = &grid
		return render(report)
	},
}

func init() {
	sensitivityCmd.Flags().IntVar(&maxYearsFlag, "max-years", 40, "largest years-to-retirement horizon in the grid")
}
