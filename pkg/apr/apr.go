// Package apr computes the annual percentage rate implied by a level payment
// stream against the amount financed, per the TILA-style definition: the APR
// is the rate at which the present value of every scheduled payment equals
// the loan amount net of prepaid finance charges.
package apr

import (
	"math"

	"github.com/closewithmario/mortgage-engine/pkg/constants"
	"github.com/closewithmario/mortgage-engine/pkg/mathutil"
)

// Result reports the solved APR along with how the solver got there. When
// the bisection fails to converge within the iteration budget the APR falls
// back to the note rate and Converged is false, so callers can still display
// a usable number while tests and diagnostics can tell the outcomes apart.
type Result struct {
	APR        float64 // annual percentage rate, percent, rounded to 3 decimals
	Iterations int
	Converged  bool
}

// Solve runs a bisection over the annual rate bracket until the discounted
// payment stream matches the amount financed. baseLoan and noteRatePct
// describe the quoted first mortgage; prepaidFinanceCharges is the sum of
// the fee items that TILA treats as finance charges; monthlyMI rides on top
// of the level P&I payment for the full term.
func Solve(baseLoan, noteRatePct float64, termYears int, prepaidFinanceCharges, monthlyPI, monthlyMI float64) Result {
	amountFinanced := baseLoan - prepaidFinanceCharges
	payment := monthlyPI + monthlyMI
	termMonths := termYears * constants.MonthsPerYear

	if baseLoan <= 0 || termMonths <= 0 || payment <= 0 || amountFinanced <= 0 {
		return Result{APR: mathutil.RoundTo(noteRatePct, 3)}
	}

	low := constants.APRSearchFloor
	high := constants.APRSearchCeiling

	for i := 1; i <= constants.APRMaxIterations; i++ {
		mid := (low + high) / 2
		monthlyRate := mid / constants.MonthsPerYear

		presentValue := 0.0
		discount := 1.0
		for period := 0; period < termMonths; period++ {
			discount /= 1 + monthlyRate
			presentValue += payment * discount
		}

		gap := presentValue - amountFinanced
		if math.Abs(gap) < constants.APRTolerance {
			return Result{
				APR:        mathutil.RoundTo(mid*constants.PercentageMultiplier, 3),
				Iterations: i,
				Converged:  true,
			}
		}

		// Discounting at too low a rate overshoots the target value.
		if gap > 0 {
			low = mid
		} else {
			high = mid
		}
	}

	return Result{APR: mathutil.RoundTo(noteRatePct, 3), Iterations: constants.APRMaxIterations}
}
