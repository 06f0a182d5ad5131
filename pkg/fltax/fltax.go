// Package fltax implements the Florida closing taxes and title premiums the
// engine itemizes: lender's title insurance, intangible tax on the note, and
// documentary stamp taxes. County names drive the jurisdiction-specific
// rates; unknown counties fall through to the statewide defaults.
package fltax

import (
	"strings"

	"github.com/closewithmario/mortgage-engine/pkg/mathutil"
)

// Statewide schedule rates.
const (
	titleBaseFee       = 575.0  // flat premium up to the base tier
	titleBaseTier      = 100000.0
	titlePerThousand   = 5.0    // premium per $1,000 above the base tier
	intangibleTaxRate  = 0.002  // 0.2% of the note
	noteStampRate      = 0.0035 // 0.35% doc stamps on the note
	deedStampRate      = 0.007  // 0.7% transfer stamps on the deed
	deedStampRateMiami = 0.006  // Miami-Dade carries a reduced deed rate
)

// Counties with jurisdiction-specific behavior. Comparisons are
// case-insensitive.
const (
	CountyMiamiDade = "miami-dade"
	CountyBroward   = "broward"
)

func normalizeCounty(county string) string {
	return strings.ToLower(strings.TrimSpace(county))
}

// LendersTitlePremium returns the lender's title insurance premium for the
// loan amount, rounded to cents.
func LendersTitlePremium(loanAmount float64) float64 {
	if loanAmount <= 0 {
		return 0
	}
	if loanAmount <= titleBaseTier {
		return titleBaseFee
	}
	return mathutil.Round(titleBaseFee + (loanAmount-titleBaseTier)/1000.0*titlePerThousand)
}

// IntangibleTax returns the Florida intangible tax on the note, rounded to
// cents. Waived for tax-exempt assistance programs.
func IntangibleTax(loanAmount float64, waived bool) float64 {
	if waived || loanAmount <= 0 {
		return 0
	}
	return mathutil.Round(loanAmount * intangibleTaxRate)
}

// DeedTax returns the documentary stamp taxes the borrower pays, rounded to
// cents. The note stamps are always borrower-paid; the seller-side transfer
// stamps on the deed are added only when the buyer has agreed to cover them,
// at the county's rate.
func DeedTax(loanAmount, price float64, county string, buyerPaysTransfer, waived bool) float64 {
	if waived {
		return 0
	}

	tax := 0.0
	if loanAmount > 0 {
		tax = loanAmount * noteStampRate
	}

	if buyerPaysTransfer && price > 0 {
		rate := deedStampRate
		if normalizeCounty(county) == CountyMiamiDade {
			rate = deedStampRateMiami
		}
		tax += price * rate
	}

	return mathutil.Round(tax)
}

// BuyerPaysOwnersTitle reports whether local custom puts the owner's title
// policy on the buyer's side of the ledger. True only for Miami-Dade and
// Broward; everywhere else the seller customarily pays.
func BuyerPaysOwnersTitle(county string) bool {
	switch normalizeCounty(county) {
	case CountyMiamiDade, CountyBroward:
		return true
	}
	return false
}
