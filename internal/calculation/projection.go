package calculation

import (
	"math"
)

// futureValueLumpSum compounds a single balance at rate for years.
// Shared by the deterministic path and every Monte Carlo trial.
func futureValueLumpSum(balance, rate float64, years int) float64 {
	return balance * math.Pow(1+rate, float64(years))
}

// futureValueAnnuity is the ordinary-annuity future value of a constant
// yearly payment. The rate=0 singularity is removable; the limiting form
// payment*years is substituted explicitly rather than dividing by zero.
func futureValueAnnuity(payment, rate float64, years int) float64 {
	if rate == 0 {
		return payment * float64(years)
	}
	return payment * (math.Pow(1+rate, float64(years)) - 1) / rate
}

// FutureValueLumpSum projects the current savings balance alone.
func (e *ProjectionEngine) FutureValueLumpSum() float64 {
	return futureValueLumpSum(e.currentSavings, e.WeightedRealReturn(), e.years)
}

// FutureValueAnnuity projects the recurring annual contributions.
func (e *ProjectionEngine) FutureValueAnnuity() float64 {
	return futureValueAnnuity(e.annualSavings, e.WeightedRealReturn(), e.years)
}

// Principal is the undiscounted sum of all contributions. The qualified
// tax treatment uses it to separate contributions from growth.
func (e *ProjectionEngine) Principal() float64 {
	return e.annualSavings * float64(e.years)
}

// ProjectionResult is the deterministic projection triple. LumpSum carries
// any treatment-specific adjustment applied to the lump-sum component;
// Annuity is always the untaxed annuity future value.
type ProjectionResult struct {
	LumpSum float64 `json:"lump_sum"`
	Annuity float64 `json:"annuity"`
	Total   float64 `json:"total"`
}

// TotalRetirementSavings applies the plan's tax treatment to the lump-sum
// and annuity projections and reports the combined total.
func (e *ProjectionEngine) TotalRetirementSavings(taxRate float64) (ProjectionResult, error) {
	policy, err := policyFor(e.plan.TaxTreatment)
	if err != nil {
		return ProjectionResult{}, err
	}

	lumpSum := e.FutureValueLumpSum()
	annuity := e.FutureValueAnnuity()
	adjustedLumpSum, total := policy(lumpSum, annuity, e.Principal(), taxRate)

	e.Logger.Debugf("projection: treatment=%s real_rate=%.6f lump=%.2f annuity=%.2f total=%.2f",
		e.plan.TaxTreatment, e.WeightedRealReturn(), adjustedLumpSum, annuity, total)

	return ProjectionResult{
		LumpSum: adjustedLumpSum,
		Annuity: annuity,
		Total:   total,
	}, nil
}
