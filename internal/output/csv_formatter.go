package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/rpgo/savings-simulator/internal/calculation"
)

// CSVFormatter exports the report as CSV. The sensitivity grid takes
// priority when present, then per-trial simulation outcomes, then the
// deterministic projection as a single summary table.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	var err error
	switch {
	case report.Grid != nil:
		err = writeGrid(writer, report.Grid)
	case report.Simulation != nil:
		err = writeOutcomes(writer, report)
	default:
		err = writeProjection(writer, report)
	}
	if err != nil {
		return nil, err
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to write CSV: %w", err)
	}
	return buf.Bytes(), nil
}

func writeProjection(w *csv.Writer, report *Report) error {
	rows := [][]string{
		{"Metric", "Value"},
		{"Lump Sum Future Value", formatFloat(report.Projection.LumpSum)},
		{"Annuity Future Value", formatFloat(report.Projection.Annuity)},
		{"Total Retirement Savings", formatFloat(report.Projection.Total)},
		{"Weighted Real Return", formatFloat(report.RealReturn)},
		{"Years to Invest", strconv.Itoa(report.YearsToInvest)},
	}
	return w.WriteAll(rows)
}

func writeOutcomes(w *csv.Writer, report *Report) error {
	sim := report.Simulation
	if err := w.Write([]string{"Trial", "Total Savings"}); err != nil {
		return err
	}
	for i, total := range sim.Totals {
		if err := w.Write([]string{strconv.Itoa(i + 1), formatFloat(total)}); err != nil {
			return err
		}
	}

	summaryRows := [][]string{
		{},
		{"Statistic", "Value"},
		{"Mean", formatFloat(sim.Summary.Mean)},
		{"Median", formatFloat(sim.Summary.Median)},
		{"Std Dev", formatFloat(sim.Summary.StdDev)},
		{"P95", formatFloat(sim.Summary.P95)},
		{"P05", formatFloat(sim.Summary.P05)},
	}
	return w.WriteAll(summaryRows)
}

func writeGrid(w *csv.Writer, grid *calculation.SavingsGrid) error {
	header := make([]string, 0, len(grid.AnnualSavings)+1)
	header = append(header, "Years")
	for _, s := range grid.AnnualSavings {
		header = append(header, formatFloat(s))
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, y := range grid.Years {
		row := make([]string, 0, len(grid.Totals[i])+1)
		row = append(row, strconv.Itoa(y))
		for _, total := range grid.Totals[i] {
			row = append(row, formatFloat(total))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
