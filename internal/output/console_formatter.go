package output

import (
	"bytes"
	"fmt"
)

// ConsoleFormatter renders the plan summary, deterministic projection, and
// any simulation results as plain text.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "RETIREMENT PLAN SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Current Age: %d\n", report.Plan.CurrentAge)
	fmt.Fprintf(&buf, "Retirement Age: %d\n", report.Plan.RetirementAge)
	fmt.Fprintf(&buf, "Years to Invest: %d\n", report.YearsToInvest)
	fmt.Fprintf(&buf, "Portfolio Return (real): %s\n", FormatFloatPercentage(report.RealReturn))
	fmt.Fprintf(&buf, "Current Savings: %s\n", FormatCurrency(report.Plan.CurrentSavings))
	fmt.Fprintf(&buf, "Annual Savings: %s\n", FormatCurrency(report.Plan.AnnualSavings))
	fmt.Fprintf(&buf, "Inflation Rate: %s\n", FormatPercentage(report.Plan.InflationRate))
	fmt.Fprintf(&buf, "Tax Treatment: %s (rate %s)\n", report.TaxTreatment, FormatPercentage(report.TaxRate))

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "Assets:")
	for _, asset := range report.Assets {
		fmt.Fprintf(&buf, "  - %s: %s of portfolio, Expected Return: %s, Std Dev: %s\n",
			asset.Name,
			FormatPercentage(asset.Proportion),
			FormatPercentage(asset.ExpectedReturn),
			FormatPercentage(asset.StdDev),
		)
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "Projection:")
	fmt.Fprintf(&buf, "  Future Value of Current Savings: %s\n", FormatFloatCurrency(report.Projection.LumpSum))
	fmt.Fprintf(&buf, "  Future Value of Annual Savings (Annuity): %s\n", FormatFloatCurrency(report.Projection.Annuity))
	fmt.Fprintf(&buf, "  Total Retirement Savings: %s\n", FormatFloatCurrency(report.Projection.Total))

	if sim := report.Simulation; sim != nil {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Monte Carlo Simulation (%d trials, seed %d):\n", sim.NumTrials, sim.Seed)
		fmt.Fprintf(&buf, "  Mean Savings: %s\n", FormatFloatCurrency(sim.Summary.Mean))
		fmt.Fprintf(&buf, "  Median Savings: %s\n", FormatFloatCurrency(sim.Summary.Median))
		fmt.Fprintf(&buf, "  Standard Deviation: %s\n", FormatFloatCurrency(sim.Summary.StdDev))
		fmt.Fprintf(&buf, "  Best Case (95th percentile): %s\n", FormatFloatCurrency(sim.Summary.P95))
		fmt.Fprintf(&buf, "  Worst Case (5th percentile): %s\n", FormatFloatCurrency(sim.Summary.P05))
	}

	if grid := report.Grid; grid != nil {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Sensitivity (total by years to retirement / annual savings):")
		fmt.Fprint(&buf, "  Years")
		for _, s := range grid.AnnualSavings {
			fmt.Fprintf(&buf, "  %14s", FormatFloatCurrency(s))
		}
		fmt.Fprintln(&buf)
		for i, y := range grid.Years {
			fmt.Fprintf(&buf, "  %5d", y)
			for _, total := range grid.Totals[i] {
				fmt.Fprintf(&buf, "  %14s", FormatFloatCurrency(total))
			}
			fmt.Fprintln(&buf)
		}
	}

	return buf.Bytes(), nil
}
