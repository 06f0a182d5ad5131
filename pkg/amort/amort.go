// Package amort provides the fixed-rate payment primitives shared by the
// first mortgage and amortizing assistance loans.
package amort

import (
	"math"

	"github.com/closewithmario/mortgage-engine/pkg/constants"
)

// MonthlyPayment calculates the level monthly payment for a fixed-rate loan
// using the standard amortization formula. Non-positive principal, rate, or
// term returns 0 rather than propagating a division error; this is a quoting
// tool and bad keystrokes must not produce NaN.
func MonthlyPayment(principal, annualRatePct float64, termMonths int) float64 {
	if principal <= 0 || annualRatePct <= 0 || termMonths <= 0 {
		return 0
	}

	periodicRate := annualRatePct / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1.00+periodicRate, float64(termMonths))
	return principal * (periodicRate * power) / (power - 1.00)
}

// InterestOnlyPayment calculates the monthly payment when only interest is
// due, as with interest-only assistance loans.
func InterestOnlyPayment(principal, annualRatePct float64) float64 {
	if principal <= 0 || annualRatePct <= 0 {
		return 0
	}
	return principal * annualRatePct / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// PerDiemInterest calculates one day of interest on the principal at the
// note rate using a 365-day basis.
func PerDiemInterest(principal, annualRatePct float64) float64 {
	if principal <= 0 || annualRatePct <= 0 {
		return 0
	}
	return principal * annualRatePct / (constants.PercentageMultiplier * constants.DaysPerYear)
}
