package calculation

// GridSpec bounds the sensitivity grid: horizons 1..MaxYears and annual
// savings from SavingsStart to SavingsEnd inclusive, stepping SavingsStep.
type GridSpec struct {
	MaxYears     int
	SavingsStart float64
	SavingsEnd   float64
	SavingsStep  float64
}

// DefaultGridSpec matches the ranges the report has always shown:
// 1-40 years and $1,000-$20,000 of annual savings in $5,000 steps.
func DefaultGridSpec() GridSpec {
	return GridSpec{
		MaxYears:     40,
		SavingsStart: 1000,
		SavingsEnd:   20000,
		SavingsStep:  5000,
	}
}

// SavingsGrid is the untaxed projected total as the investment horizon and
// the annual contribution vary, holding the portfolio, current savings, and
// inflation fixed. Totals[i][j] corresponds to Years[i] and AnnualSavings[j].
type SavingsGrid struct {
	Years         []int       `json:"years"`
	AnnualSavings []float64   `json:"annual_savings"`
	Totals        [][]float64 `json:"totals"`
}

// SensitivityGrid computes the savings grid for the engine's plan. The
// weighted real return does not depend on the varied parameters, so it is
// evaluated once.
func (e *ProjectionEngine) SensitivityGrid(spec GridSpec) SavingsGrid {
	rate := e.WeightedRealReturn()

	var savings []float64
	for s := spec.SavingsStart; s <= spec.SavingsEnd; s += spec.SavingsStep {
		savings = append(savings, s)
	}

	years := make([]int, spec.MaxYears)
	totals := make([][]float64, spec.MaxYears)
	for i := range years {
		y := i + 1
		years[i] = y
		row := make([]float64, len(savings))
		for j, annual := range savings {
			row[j] = futureValueLumpSum(e.currentSavings, rate, y) +
				futureValueAnnuity(annual, rate, y)
		}
		totals[i] = row
	}

	return SavingsGrid{Years: years, AnnualSavings: savings, Totals: totals}
}
