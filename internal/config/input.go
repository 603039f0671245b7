package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/savings-simulator/internal/domain"
)

// rothContributionCap is the annual contribution limit enforced for
// Roth-treatment plans (2024 IRA limit). Informational to the engine;
// enforced here at the input boundary.
var rothContributionCap = decimal.NewFromInt(6500)

// InputParser handles parsing of plan input files.
//
// All range validation lives here, not in the engine: the engine computes
// with whatever numbers it is handed, and behavior with an unvalidated
// portfolio (proportions summing past 1, inflation at -1) is
// garbage-in-garbage-out by contract.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a plan configuration from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validatePlan(config); err != nil {
		return fmt.Errorf("plan validation failed: %w", err)
	}
	if err := ip.validatePortfolio(&config.Portfolio); err != nil {
		return fmt.Errorf("portfolio validation failed: %w", err)
	}
	if err := ip.validateTax(config); err != nil {
		return fmt.Errorf("tax validation failed: %w", err)
	}
	if err := ip.validateSimulation(&config.Simulation); err != nil {
		return fmt.Errorf("simulation validation failed: %w", err)
	}
	return nil
}

func (ip *InputParser) validatePlan(config *domain.Configuration) error {
	p := &config.Plan
	if p.CurrentSavings.LessThan(decimal.Zero) {
		return fmt.Errorf("current savings cannot be negative")
	}
	if p.AnnualSavings.LessThan(decimal.Zero) {
		return fmt.Errorf("annual savings cannot be negative")
	}
	if p.InflationRate.LessThan(decimal.Zero) || p.InflationRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("inflation rate must be in [0, 1), got %s", p.InflationRate)
	}
	if p.CurrentAge < 0 || p.CurrentAge > 120 {
		return fmt.Errorf("current age must be between 0 and 120, got %d", p.CurrentAge)
	}
	if p.RetirementAge < 0 || p.RetirementAge > 120 {
		return fmt.Errorf("retirement age must be between 0 and 120, got %d", p.RetirementAge)
	}
	if p.RetirementAge < p.CurrentAge {
		return fmt.Errorf("retirement age (%d) cannot be before current age (%d)", p.RetirementAge, p.CurrentAge)
	}
	if config.TaxTreatment == domain.TaxTreatmentRoth && p.AnnualSavings.GreaterThan(rothContributionCap) {
		return fmt.Errorf("annual savings %s exceeds the Roth contribution limit of %s",
			p.AnnualSavings.StringFixed(2), rothContributionCap.StringFixed(2))
	}
	return nil
}

func (ip *InputParser) validatePortfolio(portfolio *domain.Portfolio) error {
	if len(portfolio.Assets) == 0 {
		return fmt.Errorf("at least one asset is required")
	}

	one := decimal.NewFromInt(1)
	negOne := decimal.NewFromInt(-1)
	totalProportion := decimal.Zero
	for i, asset := range portfolio.Assets {
		if asset.Name == "" {
			return fmt.Errorf("asset %d: name is required", i)
		}
		if asset.Proportion.LessThan(decimal.Zero) || asset.Proportion.GreaterThan(one) {
			return fmt.Errorf("asset %q: proportion must be between 0 and 1, got %s", asset.Name, asset.Proportion)
		}
		if asset.ExpectedReturn.LessThan(negOne) || asset.ExpectedReturn.GreaterThan(one) {
			return fmt.Errorf("asset %q: expected return must be between -1 and 1, got %s", asset.Name, asset.ExpectedReturn)
		}
		if asset.StdDev.LessThan(decimal.Zero) || asset.StdDev.GreaterThan(one) {
			return fmt.Errorf("asset %q: standard deviation must be between 0 and 1, got %s", asset.Name, asset.StdDev)
		}
		totalProportion = totalProportion.Add(asset.Proportion)
	}

	if totalProportion.GreaterThan(one) {
		return fmt.Errorf("asset proportions sum to %s, cannot exceed 1.0", totalProportion)
	}
	return nil
}

func (ip *InputParser) validateTax(config *domain.Configuration) error {
	if _, err := domain.ParseTaxTreatment(string(config.TaxTreatment)); err != nil {
		return err
	}
	one := decimal.NewFromInt(1)
	if config.TaxRate.LessThan(decimal.Zero) || config.TaxRate.GreaterThan(one) {
		return fmt.Errorf("tax rate must be between 0 and 1, got %s", config.TaxRate)
	}
	return nil
}

func (ip *InputParser) validateSimulation(sim *domain.SimulationSettings) error {
	if sim.NumTrials < 1 {
		return fmt.Errorf("number of trials must be at least 1, got %d", sim.NumTrials)
	}
	return nil
}
