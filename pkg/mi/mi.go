// Package mi computes monthly mortgage insurance for a quoted loan.
//
// VA and DSCR loans never carry MI. FHA loans carry a flat annual premium
// applied to the base loan with the financed UFMIP backed out. Conventional
// loans above 80% LTV price from a fixed LTV-band by credit-band grid.
package mi

import (
	"github.com/closewithmario/mortgage-engine/pkg/constants"
	"github.com/closewithmario/mortgage-engine/pkg/loantype"
)

// creditThresholds are the lower bounds of the grid's credit columns, best
// band first. A score exactly on a threshold belongs to the better band.
var creditThresholds = [8]int{760, 740, 720, 700, 680, 660, 640, 620}

// ltvThresholds are the lower bounds of the grid's LTV rows, riskiest band
// first. An LTV must exceed the threshold to fall in the band.
var ltvThresholds = [4]float64{95, 90, 85, 80}

// conventionalGrid holds annual MI rates in percent, indexed
// [LTV band][credit band] to match the threshold arrays above.
var conventionalGrid = [4][8]float64{
	{0.58, 0.70, 0.87, 0.99, 1.21, 1.54, 1.65, 1.86}, // LTV > 95
	{0.38, 0.53, 0.66, 0.78, 0.96, 1.28, 1.33, 1.42}, // LTV > 90
	{0.28, 0.38, 0.46, 0.55, 0.65, 0.90, 0.91, 0.94}, // LTV > 85
	{0.21, 0.25, 0.27, 0.32, 0.38, 0.48, 0.50, 0.58}, // LTV > 80
}

// FHA annual premium rates in percent.
const (
	fhaRateHighLTV = 0.55 // LTV > 95
	fhaRateLowLTV  = 0.50
)

// Compute returns the monthly mortgage insurance payment and the annual rate
// (percent) it was derived from. The term is accepted for signature parity
// with investor rate cards but does not currently alter the rate.
func Compute(loanType loantype.Type, loanAmount, ltvPercent float64, creditScore, termYears int) (monthly, annualRatePct float64) {
	switch loanType {
	case loantype.VA, loantype.DSCR:
		return 0, 0
	case loantype.FHA:
		rate := fhaRateLowLTV
		if ltvPercent > 95 {
			rate = fhaRateHighLTV
		}
		// The financed UFMIP is backed out so MI prices off the unfinanced base.
		base := loanAmount / constants.FHAUpfrontMIPFactor
		return base * rate / constants.PercentageMultiplier / constants.MonthsPerYear, rate
	default:
		if ltvPercent <= 80 || loanAmount <= 0 {
			return 0, 0
		}
		rate := conventionalGrid[ltvBand(ltvPercent)][creditBand(creditScore)]
		return loanAmount * rate / constants.PercentageMultiplier / constants.MonthsPerYear, rate
	}
}

func ltvBand(ltvPercent float64) int {
	for i, threshold := range ltvThresholds {
		if ltvPercent > threshold {
			return i
		}
	}
	// Callers guard LTV <= 80; the lowest band is the safe default.
	return len(ltvThresholds) - 1
}

func creditBand(score int) int {
	for i, threshold := range creditThresholds {
		if score >= threshold {
			return i
		}
	}
	return len(creditThresholds) - 1
}
