package calculation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/savings-simulator/internal/domain"
)

// flatPlan yields lump sum 1000, annuity 1000, principal 1000: the real
// rate is zero, so every component is easy to reason about by hand.
func flatPlan(treatment domain.TaxTreatment) *domain.RetirementPlan {
	plan := newTestPlan(1000, 100, 0, 50, 60)
	plan.TaxTreatment = treatment
	addAsset(plan, "Cash", 1.0, 0.0, 0)
	return plan
}

func TestTaxTreatmentFormulas(t *testing.T) {
	const taxRate = 0.2

	tests := []struct {
		name            string
		treatment       domain.TaxTreatment
		expectedLumpSum float64
		expectedTotal   float64
	}{
		{
			// Lump sum taxed, annuity untouched.
			name:            "roth",
			treatment:       domain.TaxTreatmentRoth,
			expectedLumpSum: 1000 * 0.8,
			expectedTotal:   1000*0.8 + 1000,
		},
		{
			// Lump sum grown by (1+rate); annuity growth above principal is
			// zero here, so principal passes through untaxed.
			name:            "qualified",
			treatment:       domain.TaxTreatmentQualified,
			expectedLumpSum: 1000 * 1.2,
			expectedTotal:   1000*1.2 + 1000,
		},
		{
			// Lump sum grown by (1+rate), then the whole sum taxed.
			name:            "non-qualified",
			treatment:       domain.TaxTreatmentNonQualified,
			expectedLumpSum: 1000 * 1.2,
			expectedTotal:   (1000*1.2 + 1000) * 0.8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewProjectionEngine(flatPlan(tt.treatment))
			result, err := engine.TotalRetirementSavings(taxRate)
			require.NoError(t, err)
			assert.InDelta(t, tt.expectedLumpSum, result.LumpSum, 1e-9)
			assert.InDelta(t, 1000.0, result.Annuity, 1e-9)
			assert.InDelta(t, tt.expectedTotal, result.Total, 1e-9)
		})
	}
}

func TestQualifiedTaxesGrowthAbovePrincipal(t *testing.T) {
	plan := newTestPlan(1000, 100, 0, 50, 60)
	plan.TaxTreatment = domain.TaxTreatmentQualified
	addAsset(plan, "Stocks", 1.0, 0.05, 0)
	engine := NewProjectionEngine(plan)

	lump := 1000 * math.Pow(1.05, 10)
	annuity := 100 * (math.Pow(1.05, 10) - 1) / 0.05
	principal := 100.0 * 10

	const taxRate = 0.25
	expectedTotal := lump*(1+taxRate) + principal + (annuity-principal)*(1-taxRate)

	result, err := engine.TotalRetirementSavings(taxRate)
	require.NoError(t, err)
	assert.InDelta(t, expectedTotal, result.Total, 1e-6)
}

func TestZeroTaxRateConvergence(t *testing.T) {
	// Regression anchor: despite the asymmetric formulas, all three
	// treatments must report the identical untaxed sum at tax rate 0.
	treatments := []domain.TaxTreatment{
		domain.TaxTreatmentRoth,
		domain.TaxTreatmentQualified,
		domain.TaxTreatmentNonQualified,
	}

	var totals []float64
	for _, treatment := range treatments {
		plan := newTestPlan(10000, 5000, 0.02, 30, 60)
		plan.TaxTreatment = treatment
		addAsset(plan, "Index Fund", 1.0, 0.07, 0)
		engine := NewProjectionEngine(plan)

		result, err := engine.TotalRetirementSavings(0)
		require.NoError(t, err)
		assert.InDelta(t, engine.FutureValueLumpSum()+engine.FutureValueAnnuity(), result.Total, 1e-9)
		totals = append(totals, result.Total)
	}

	assert.Equal(t, totals[0], totals[1])
	assert.Equal(t, totals[1], totals[2])
}

func TestUnknownTaxTreatment(t *testing.T) {
	plan := newTestPlan(1000, 100, 0, 50, 60)
	plan.TaxTreatment = domain.TaxTreatment("401k")
	engine := NewProjectionEngine(plan)

	_, err := engine.TotalRetirementSavings(0.2)
	assert.ErrorContains(t, err, "no tax policy")
}
