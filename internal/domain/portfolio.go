package domain

import (
	"github.com/shopspring/decimal"
)

// Asset is a weighted portfolio holding. Proportion is the fraction of the
// portfolio allocated to it; ExpectedReturn and StdDev are annualized.
// Assets exist only inside a Portfolio.
type Asset struct {
	Name           string          `yaml:"name" json:"name"`
	Proportion     decimal.Decimal `yaml:"proportion" json:"proportion"`
	ExpectedReturn decimal.Decimal `yaml:"expected_return" json:"expected_return"`
	StdDev         decimal.Decimal `yaml:"std_dev" json:"std_dev"`
}

// Portfolio is an ordered set of assets. Insertion order is preserved for
// display; computation does not depend on it. Whether the proportions sum
// to 1.0 is a caller contract, not enforced here.
type Portfolio struct {
	Assets []Asset `yaml:"assets" json:"assets"`
}

// AddAsset appends an asset, preserving insertion order.
func (p *Portfolio) AddAsset(name string, proportion, expectedReturn, stdDev decimal.Decimal) {
	p.Assets = append(p.Assets, Asset{
		Name:           name,
		Proportion:     proportion,
		ExpectedReturn: expectedReturn,
		StdDev:         stdDev,
	})
}
