package calculation

import (
	"fmt"

	"github.com/rpgo/savings-simulator/internal/domain"
)

// taxPolicy combines the untaxed lump-sum and annuity projections with the
// flat tax rate into the reported (adjusted lump sum, total) pair. The
// three treatments differ only in this combination step, so they live side
// by side here for easy comparison.
//
// The formulas mirror the behavior of the tool this replaces, quirks
// included:
//   - Roth applies the tax rate to the lump-sum component even though real
//     Roth withdrawals are untaxed.
//   - Qualified and Non-Qualified both multiply the lump sum by
//     (1+taxRate), growing it, before any taxing happens; Non-Qualified
//     then taxes the whole sum.
//
// At taxRate 0 all three converge to lumpSum + annuity.
type taxPolicy func(lumpSum, annuity, principal, taxRate float64) (adjustedLumpSum, total float64)

func rothPolicy(lumpSum, annuity, _, taxRate float64) (float64, float64) {
	taxed := lumpSum * (1 - taxRate)
	return taxed, taxed + annuity
}

func qualifiedPolicy(lumpSum, annuity, principal, taxRate float64) (float64, float64) {
	grown := lumpSum * (1 + taxRate)
	afterTaxInterest := (annuity - principal) * (1 - taxRate)
	return grown, grown + principal + afterTaxInterest
}

func nonQualifiedPolicy(lumpSum, annuity, _, taxRate float64) (float64, float64) {
	grown := lumpSum * (1 + taxRate)
	return grown, (grown + annuity) * (1 - taxRate)
}

// policyFor selects the tax policy for a treatment.
func policyFor(t domain.TaxTreatment) (taxPolicy, error) {
	switch t {
	case domain.TaxTreatmentRoth:
		return rothPolicy, nil
	case domain.TaxTreatmentQualified:
		return qualifiedPolicy, nil
	case domain.TaxTreatmentNonQualified:
		return nonQualifiedPolicy, nil
	default:
		return nil, fmt.Errorf("no tax policy for treatment %q", t)
	}
}
