package output

import "github.com/shopspring/decimal"

// FormatCurrency formats a decimal as USD currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in
// isolation.
func FormatCurrency(amount decimal.Decimal) string { return "$" + amount.StringFixed(2) }

// FormatFloatCurrency formats an engine float64 as USD currency.
func FormatFloatCurrency(amount float64) string {
	return FormatCurrency(decimal.NewFromFloat(amount))
}

// FormatPercentage formats a fractional rate as a percentage with 2
// decimals (0.07 -> "7.00%").
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

// FormatFloatPercentage formats an engine float64 rate as a percentage.
func FormatFloatPercentage(rate float64) string {
	return FormatPercentage(decimal.NewFromFloat(rate))
}
