package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/savings-simulator/internal/domain"
)

func validConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Plan: domain.PlanParameters{
			CurrentSavings: decimal.NewFromInt(10000),
			AnnualSavings:  decimal.NewFromInt(5000),
			InflationRate:  decimal.NewFromFloat(0.02),
			CurrentAge:     30,
			RetirementAge:  60,
		},
		Portfolio: domain.Portfolio{Assets: []domain.Asset{
			{
				Name:           "Stocks",
				Proportion:     decimal.NewFromFloat(0.7),
				ExpectedReturn: decimal.NewFromFloat(0.08),
				StdDev:         decimal.NewFromFloat(0.15),
			},
			{
				Name:           "Bonds",
				Proportion:     decimal.NewFromFloat(0.3),
				ExpectedReturn: decimal.NewFromFloat(0.03),
				StdDev:         decimal.NewFromFloat(0.05),
			},
		}},
		TaxTreatment: domain.TaxTreatmentQualified,
		TaxRate:      decimal.NewFromFloat(0.2),
		Simulation:   domain.SimulationSettings{NumTrials: 10000, Seed: 42},
	}
}

func TestValidateConfigurationAccepts(t *testing.T) {
	parser := NewInputParser()
	assert.NoError(t, parser.ValidateConfiguration(validConfiguration()))
}

func TestValidateConfigurationRejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Configuration)
		wantErr string
	}{
		{
			name:    "negative current savings",
			mutate:  func(c *domain.Configuration) { c.Plan.CurrentSavings = decimal.NewFromInt(-1) },
			wantErr: "current savings",
		},
		{
			name:    "negative annual savings",
			mutate:  func(c *domain.Configuration) { c.Plan.AnnualSavings = decimal.NewFromInt(-1) },
			wantErr: "annual savings",
		},
		{
			name:    "negative inflation",
			mutate:  func(c *domain.Configuration) { c.Plan.InflationRate = decimal.NewFromFloat(-0.01) },
			wantErr: "inflation rate",
		},
		{
			name:    "inflation at one",
			mutate:  func(c *domain.Configuration) { c.Plan.InflationRate = decimal.NewFromInt(1) },
			wantErr: "inflation rate",
		},
		{
			name:    "current age out of range",
			mutate:  func(c *domain.Configuration) { c.Plan.CurrentAge = 130 },
			wantErr: "current age",
		},
		{
			name:    "retirement before current age",
			mutate:  func(c *domain.Configuration) { c.Plan.RetirementAge = 25 },
			wantErr: "cannot be before",
		},
		{
			name:    "no assets",
			mutate:  func(c *domain.Configuration) { c.Portfolio.Assets = nil },
			wantErr: "at least one asset",
		},
		{
			name:    "unnamed asset",
			mutate:  func(c *domain.Configuration) { c.Portfolio.Assets[0].Name = "" },
			wantErr: "name is required",
		},
		{
			name:    "proportion above one",
			mutate:  func(c *domain.Configuration) { c.Portfolio.Assets[0].Proportion = decimal.NewFromFloat(1.5) },
			wantErr: "proportion",
		},
		{
			name: "proportions sum past one",
			mutate: func(c *domain.Configuration) {
				c.Portfolio.Assets[0].Proportion = decimal.NewFromFloat(0.8)
				c.Portfolio.Assets[1].Proportion = decimal.NewFromFloat(0.4)
			},
			wantErr: "cannot exceed 1.0",
		},
		{
			name:    "expected return out of range",
			mutate:  func(c *domain.Configuration) { c.Portfolio.Assets[0].ExpectedReturn = decimal.NewFromInt(2) },
			wantErr: "expected return",
		},
		{
			name:    "negative std dev",
			mutate:  func(c *domain.Configuration) { c.Portfolio.Assets[0].StdDev = decimal.NewFromFloat(-0.1) },
			wantErr: "standard deviation",
		},
		{
			name:    "bad tax treatment",
			mutate:  func(c *domain.Configuration) { c.TaxTreatment = domain.TaxTreatment("401k") },
			wantErr: "unknown tax treatment",
		},
		{
			name:    "tax rate above one",
			mutate:  func(c *domain.Configuration) { c.TaxRate = decimal.NewFromFloat(1.1) },
			wantErr: "tax rate",
		},
		{
			name:    "zero trials",
			mutate:  func(c *domain.Configuration) { c.Simulation.NumTrials = 0 },
			wantErr: "at least 1",
		},
		{
			name: "roth over contribution cap",
			mutate: func(c *domain.Configuration) {
				c.TaxTreatment = domain.TaxTreatmentRoth
				c.Plan.AnnualSavings = decimal.NewFromInt(7000)
			},
			wantErr: "Roth contribution limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfiguration()
			tt.mutate(cfg)
			err := NewInputParser().ValidateConfiguration(cfg)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestRothCapAllowsOtherTreatments(t *testing.T) {
	cfg := validConfiguration()
	cfg.TaxTreatment = domain.TaxTreatmentQualified
	cfg.Plan.AnnualSavings = decimal.NewFromInt(20000)
	assert.NoError(t, NewInputParser().ValidateConfiguration(cfg))
}

func TestLoadFromFile(t *testing.T) {
	content := `
plan:
  current_savings: 10000
  annual_savings: 5000
  inflation_rate: 0.02
  current_age: 30
  retirement_age: 60
portfolio:
  assets:
    - name: Index Fund
      proportion: 1.0
      expected_return: 0.07
      std_dev: 0.12
tax_treatment: non-qualified
tax_rate: 0.25
simulation:
  num_trials: 1000
`
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, domain.TaxTreatmentNonQualified, cfg.TaxTreatment)
	assert.Equal(t, 1000, cfg.Simulation.NumTrials)
	require.Len(t, cfg.Portfolio.Assets, 1)
	assert.Equal(t, "Index Fund", cfg.Portfolio.Assets[0].Name)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "failed to read file")
}

func TestLoadFromFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("plan: [unclosed"), 0644))

	_, err := NewInputParser().LoadFromFile(path)
	assert.ErrorContains(t, err, "failed to parse YAML")
}

func TestLoadFromFileFailsValidation(t *testing.T) {
	content := `
plan:
  current_savings: 10000
  annual_savings: 5000
  inflation_rate: 0.02
  current_age: 70
  retirement_age: 60
portfolio:
  assets:
    - name: Index Fund
      proportion: 1.0
      expected_return: 0.07
      std_dev: 0.12
tax_treatment: roth
tax_rate: 0.2
simulation:
  num_trials: 1000
`
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := NewInputParser().LoadFromFile(path)
	assert.ErrorContains(t, err, "validation failed")
}
