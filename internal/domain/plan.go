package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// TaxTreatment identifies how the flat tax rate is applied to the lump-sum
// and annuity components when reporting a projected total.
type TaxTreatment string

const (
	TaxTreatmentRoth         TaxTreatment = "roth"
	TaxTreatmentQualified    TaxTreatment = "qualified"
	TaxTreatmentNonQualified TaxTreatment = "non-qualified"
)

// ParseTaxTreatment normalizes a user-supplied plan type string.
func ParseTaxTreatment(s string) (TaxTreatment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "roth":
		return TaxTreatmentRoth, nil
	case "qualified":
		return TaxTreatmentQualified, nil
	case "non-qualified", "nonqualified", "non_qualified":
		return TaxTreatmentNonQualified, nil
	default:
		return "", fmt.Errorf("unknown tax treatment %q (expected roth, qualified, or non-qualified)", s)
	}
}

// UnmarshalYAML validates the tax treatment while parsing input files.
func (t *TaxTreatment) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseTaxTreatment(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// PlanParameters holds the savings, age, and inflation inputs of a
// retirement plan. All monetary fields are annual amounts in dollars;
// InflationRate is fractional (0.03 = 3%).
type PlanParameters struct {
	CurrentSavings decimal.Decimal `yaml:"current_savings" json:"current_savings"`
	AnnualSavings  decimal.Decimal `yaml:"annual_savings" json:"annual_savings"`
	InflationRate  decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	CurrentAge     int             `yaml:"current_age" json:"current_age"`
	RetirementAge  int             `yaml:"retirement_age" json:"retirement_age"`
}

// RetirementPlan aggregates one set of plan parameters with the portfolio
// the savings are invested in. It is the unit every projection runs on.
//
// The years-to-invest horizon is derived once at construction. Appending
// assets after the first projection call is tolerated but not recommended.
type RetirementPlan struct {
	Parameters   PlanParameters
	Portfolio    Portfolio
	TaxTreatment TaxTreatment

	yearsToInvest int
}

// NewRetirementPlan builds a plan from already-validated parameters.
// Validation of ranges (ages, non-negative savings, inflation domain) is the
// caller's responsibility; see the config package.
func NewRetirementPlan(params PlanParameters, treatment TaxTreatment) *RetirementPlan {
	return &RetirementPlan{
		Parameters:    params,
		TaxTreatment:  treatment,
		yearsToInvest: params.RetirementAge - params.CurrentAge,
	}
}

// YearsToInvest returns the investment horizon fixed at construction.
func (rp *RetirementPlan) YearsToInvest() int { return rp.yearsToInvest }

// AddAsset appends an asset to the plan's portfolio. No cumulative
// proportion check happens here; callers validate allocations before
// projecting.
func (rp *RetirementPlan) AddAsset(name string, proportion, expectedReturn, stdDev decimal.Decimal) {
	rp.Portfolio.AddAsset(name, proportion, expectedReturn, stdDev)
}
