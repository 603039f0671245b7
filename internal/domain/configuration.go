package domain

import (
	"github.com/shopspring/decimal"
)

// SimulationSettings configures a Monte Carlo run.
// A zero seed means "seed from the clock" at run time.
type SimulationSettings struct {
	NumTrials int    `yaml:"num_trials" json:"num_trials"`
	Seed      uint64 `yaml:"seed,omitempty" json:"seed,omitempty"`
}

// Configuration is the YAML input-file schema: one plan, its portfolio,
// the chosen tax treatment, and simulation settings.
type Configuration struct {
	Plan         PlanParameters     `yaml:"plan" json:"plan"`
	Portfolio    Portfolio          `yaml:"portfolio" json:"portfolio"`
	TaxTreatment TaxTreatment       `yaml:"tax_treatment" json:"tax_treatment"`
	TaxRate      decimal.Decimal    `yaml:"tax_rate" json:"tax_rate"`
	Simulation   SimulationSettings `yaml:"simulation" json:"simulation"`
}

// RetirementPlan assembles the domain plan described by the configuration.
func (c *Configuration) RetirementPlan() *RetirementPlan {
	plan := NewRetirementPlan(c.Plan, c.TaxTreatment)
	plan.Portfolio = Portfolio{Assets: append([]Asset(nil), c.Portfolio.Assets...)}
	return plan
}
