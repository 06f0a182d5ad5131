package dpa

import (
	"github.com/closewithmario/mortgage-engine/pkg/constants"
	"github.com/closewithmario/mortgage-engine/pkg/loantype"
	"github.com/closewithmario/mortgage-engine/pkg/mathutil"
	"go.uber.org/zap"
)

// Adjustment reports the outcome of a financing-structure correction. When
// no limit was violated the original down-payment percent comes back
// unchanged and Adjusted is false.
type Adjustment struct {
	DownPaymentPct float64 `json:"downPaymentPct"`
	ProjectedLoan  float64 `json:"projectedLoan"`
	TotalDPA       float64 `json:"totalDPA"`
	CLTV           float64 `json:"cltv"`
	Adjusted       bool    `json:"adjusted"`
}

// IterativeAdjustment wraps an Adjustment with fixed-point bookkeeping.
type IterativeAdjustment struct {
	Adjustment
	Iterations int  `json:"iterations"`
	Converged  bool `json:"converged"`
}

// projectLoan approximates the financed first mortgage from price and down
// payment using the program's flat fee factor. The exact tiered VA rate is
// deliberately not used here: the projection runs while a hypothetical
// structure is being edited, before the usage class is settled.
func projectLoan(price, downPaymentPct float64, lt loantype.Type) float64 {
	baseBefore := price * (1 - downPaymentPct/constants.PercentageMultiplier)
	return baseBefore * lt.FinancedFeeFactor()
}

// AdjustForCLTV checks a candidate structure against the combined
// loan-to-value ceiling and, when violated, solves for the smallest
// down-payment increase that brings the stack back under it. Triggered on
// every assistance-entry add or edit. Compliant structures pass through
// untouched, so re-applying the correction is a no-op.
func AdjustForCLTV(logger *zap.Logger, price, downPaymentPct float64, lt loantype.Type, entries []Entry) Adjustment {
	if logger == nil {
		logger = zap.NewNop()
	}

	result := Adjustment{DownPaymentPct: downPaymentPct}
	if price <= 0 {
		return result
	}

	result.ProjectedLoan = projectLoan(price, downPaymentPct, lt)
	result.TotalDPA = Aggregate(entries, price, result.ProjectedLoan).Amount
	result.CLTV = (result.ProjectedLoan + result.TotalDPA) / price * constants.PercentageMultiplier

	if result.CLTV <= constants.MaxCombinedLTV {
		return result
	}

	// Solve maxBase * factor + totalDPA = price * ceiling for the pre-fee
	// base loan, holding the DPA total at its current projection.
	factor := lt.FinancedFeeFactor()
	maxBase := (price*constants.MaxCombinedLTV/constants.PercentageMultiplier - result.TotalDPA) / factor

	adjustedPct := (price - maxBase) / price * constants.PercentageMultiplier
	adjustedPct = mathutil.RoundUpToStep(adjustedPct, constants.DownPaymentStep)
	adjustedPct = mathutil.Max(adjustedPct, lt.MinimumDownPercent())

	logger.Debug("adjusted down payment to satisfy CLTV ceiling",
		zap.String("op", "dpa.AdjustForCLTV"),
		zap.Float64("cltv", result.CLTV),
		zap.Float64("originalPct", downPaymentPct),
		zap.Float64("adjustedPct", adjustedPct),
		zap.Float64("totalDPA", result.TotalDPA),
	)

	result.DownPaymentPct = adjustedPct
	result.Adjusted = true
	return result
}

// AdjustForCLTVIterative re-applies the one-shot correction until the
// structure is compliant or the retry budget runs out. Loan-relative
// assistance shrinks as the projected loan shrinks, so a pathological stack
// can need more than one pass; Converged is false when the budget is spent
// with the ceiling still exceeded.
func AdjustForCLTVIterative(logger *zap.Logger, price, downPaymentPct float64, lt loantype.Type, entries []Entry, maxRounds int) IterativeAdjustment {
	if maxRounds <= 0 {
		maxRounds = 4
	}

	current := downPaymentPct
	var last Adjustment
	for round := 1; round <= maxRounds; round++ {
		last = AdjustForCLTV(logger, price, current, lt, entries)
		if !last.Adjusted {
			return IterativeAdjustment{Adjustment: last, Iterations: round, Converged: true}
		}
		// The minimum-down clamp can pin the percent in place; further
		// rounds cannot improve a pinned structure.
		if last.DownPaymentPct == current {
			break
		}
		current = last.DownPaymentPct
	}

	return IterativeAdjustment{Adjustment: last, Iterations: maxRounds, Converged: false}
}

// AdjustForCashToClose raises the down payment to absorb a negative cash to
// close. This utility is not part of the live entry-edit flow, which only
// enforces the CLTV ceiling; it exists for callers that want both limits
// corrected.
func AdjustForCashToClose(logger *zap.Logger, price, downPaymentPct, cashToClose float64, lt loantype.Type) Adjustment {
	if logger == nil {
		logger = zap.NewNop()
	}

	result := Adjustment{DownPaymentPct: downPaymentPct}
	if price <= 0 || cashToClose >= 0 {
		return result
	}

	newDown := price*downPaymentPct/constants.PercentageMultiplier - cashToClose
	adjustedPct := newDown / price * constants.PercentageMultiplier
	adjustedPct = mathutil.RoundUpToStep(adjustedPct, constants.DownPaymentStep)
	adjustedPct = mathutil.Max(adjustedPct, lt.MinimumDownPercent())
	adjustedPct = mathutil.Min(adjustedPct, constants.PercentageMultiplier)

	logger.Debug("adjusted down payment to absorb negative cash to close",
		zap.String("op", "dpa.AdjustForCashToClose"),
		zap.Float64("cashToClose", cashToClose),
		zap.Float64("originalPct", downPaymentPct),
		zap.Float64("adjustedPct", adjustedPct),
	)

	result.DownPaymentPct = adjustedPct
	result.Adjusted = adjustedPct != downPaymentPct
	return result
}
