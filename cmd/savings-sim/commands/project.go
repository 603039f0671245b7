package commands

import (
	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Compute the deterministic retirement projection",
	Long: `project computes the future value of current savings (lump sum) and of
the recurring contributions (annuity) at the portfolio's inflation-adjusted
weighted return, then applies the plan's tax treatment to report the total.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, engine, err := loadEngine()
		if err != nil {
			return err
		}

		projection, err := engine.TotalRetirementSavings(cfg.TaxRate.InexactFloat64())
		if err != nil {
			return err
		}

		return render(buildReport(cfg, engine, projection))
	},
}
