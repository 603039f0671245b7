package calculation

import (
	"github.com/rpgo/savings-simulator/internal/domain"
)

// ProjectionEngine computes deterministic projections and hands the shared
// compounding primitives to the Monte Carlo simulator. It reads the plan's
// portfolio on every call, so assets appended after construction are seen.
//
// The engine performs no input validation: proportion sums, inflation
// domain, and age ranges are the caller's contract (see internal/config).
// In particular an inflation rate of exactly -1 divides by zero in
// InflationAdjust and propagates IEEE infinities.
type ProjectionEngine struct {
	Logger Logger

	plan *domain.RetirementPlan

	currentSavings float64
	annualSavings  float64
	inflationRate  float64
	years          int
}

// NewProjectionEngine creates an engine for one retirement plan.
func NewProjectionEngine(plan *domain.RetirementPlan) *ProjectionEngine {
	return &ProjectionEngine{
		Logger:         NopLogger{},
		plan:           plan,
		currentSavings: plan.Parameters.CurrentSavings.InexactFloat64(),
		annualSavings:  plan.Parameters.AnnualSavings.InexactFloat64(),
		inflationRate:  plan.Parameters.InflationRate.InexactFloat64(),
		years:          plan.YearsToInvest(),
	}
}

// SetLogger sets the logger for the engine. Nil restores the no-op logger.
func (e *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Plan returns the plan the engine projects.
func (e *ProjectionEngine) Plan() *domain.RetirementPlan { return e.plan }

// WeightedNominalReturn is the proportion-weighted sum of the assets'
// expected returns. An empty portfolio yields 0 (vacuous sum, not an error).
func (e *ProjectionEngine) WeightedNominalReturn() float64 {
	var weighted float64
	for _, a := range e.plan.Portfolio.Assets {
		weighted += a.Proportion.InexactFloat64() * a.ExpectedReturn.InexactFloat64()
	}
	return weighted
}

// InflationAdjust converts a nominal rate to a real rate using the Fisher
// approximation (1+nominal)/(1+inflation) - 1.
func (e *ProjectionEngine) InflationAdjust(nominal float64) float64 {
	return (1+nominal)/(1+e.inflationRate) - 1
}

// WeightedRealReturn is the single inflation-adjusted rate every
// deterministic future-value formula uses.
func (e *ProjectionEngine) WeightedRealReturn() float64 {
	return e.InflationAdjust(e.WeightedNominalReturn())
}
