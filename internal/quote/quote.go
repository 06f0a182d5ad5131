// Package quote ties the calculation packages together: it resolves the
// note rate, applies the CLTV correction for stacked assistance, computes
// the first-mortgage results, and aggregates the assistance programs into
// one displayable quote.
package quote

import (
	"github.com/closewithmario/mortgage-engine/pkg/dpa"
	"github.com/closewithmario/mortgage-engine/pkg/mortgage"
	"github.com/closewithmario/mortgage-engine/pkg/rates"
	"go.uber.org/zap"
)

// Request is one quote to compute.
type Request struct {
	Name     string          `json:"name,omitempty" yaml:"name,omitempty"`
	Inputs   mortgage.Inputs `json:"inputs" yaml:"inputs"`
	Fees     *mortgage.Fees  `json:"fees,omitempty" yaml:"fees,omitempty"`
	Entries  []dpa.Entry     `json:"dpaEntries,omitempty" yaml:"dpaEntries,omitempty"`
	Snapshot rates.Snapshot  `json:"rateSnapshot,omitempty" yaml:"rateSnapshot,omitempty"`
}

// Result is the computed quote. Inputs echoes the request with any
// adjustment applied, so the caller sees the down payment actually quoted.
type Result struct {
	Name       string           `json:"name,omitempty"`
	Inputs     mortgage.Inputs  `json:"inputs"`
	Mortgage   mortgage.Results `json:"mortgage"`
	DPA        dpa.Totals       `json:"dpa"`
	Adjustment *dpa.Adjustment  `json:"adjustment,omitempty"`

	// CombinedMonthly is the full monthly obligation: first-mortgage
	// PITI+MI plus every assistance-program payment.
	CombinedMonthly float64 `json:"combinedMonthly"`

	// NetCashToClose is cash to close after assistance dollars are applied
	// and program fees are added back.
	NetCashToClose float64 `json:"netCashToClose"`
}

// Compute derives the full quote for one request.
func Compute(logger *zap.Logger, req Request) Result {
	if logger == nil {
		logger = zap.NewNop()
	}

	inputs := req.Inputs

	// A caller-supplied override wins; otherwise resolve the rate snapshot
	// so the engine does not fall back to its static defaults needlessly.
	if inputs.NoteRateOverride <= 0 {
		inputs.NoteRateOverride = rates.RateForLoanType(req.Snapshot, inputs.LoanType)
	}

	fees := mortgage.DefaultFees()
	if req.Fees != nil {
		fees = *req.Fees
	}

	result := Result{Name: req.Name}

	// Stacked assistance may push the structure over the CLTV ceiling;
	// the corrected down payment feeds the engine recomputation.
	if len(req.Entries) > 0 {
		adjustment := dpa.AdjustForCLTV(logger, inputs.Price, inputs.DownPaymentPct, inputs.LoanType, req.Entries)
		if adjustment.Adjusted {
			inputs.DownPaymentPct = adjustment.DownPaymentPct
		}
		result.Adjustment = &adjustment
	}

	opts := mortgage.Options{WaiveIntangibleAndDeed: dpa.WaivesTaxStamps(req.Entries)}
	result.Inputs = inputs
	result.Mortgage = mortgage.Compute(logger, inputs, fees, opts)

	// Loan-relative entries reference the fee-inclusive final loan, so the
	// aggregate is only valid against this recomputed base.
	result.DPA = dpa.Aggregate(req.Entries, inputs.Price, result.Mortgage.BaseLoan)

	result.CombinedMonthly = result.Mortgage.MonthlyTotal + result.DPA.Payment
	result.NetCashToClose = result.Mortgage.CashToClose - result.DPA.Amount + result.DPA.Fees

	logger.Debug("computed quote",
		zap.String("op", "quote.Compute"),
		zap.String("name", req.Name),
		zap.Float64("baseLoan", result.Mortgage.BaseLoan),
		zap.Float64("totalDPA", result.DPA.Amount),
		zap.Float64("netCashToClose", result.NetCashToClose),
	)

	return result
}
