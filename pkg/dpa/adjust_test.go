package dpa

import (
	"math"
	"testing"

	"github.com/closewithmario/mortgage-engine/pkg/loantype"
)

func TestAdjustForCLTVCompliantPassesThrough(t *testing.T) {
	// 20% down with a small grant: CLTV well under the ceiling.
	entries := []Entry{{ValueType: ValueFixedDollar, Value: 10000, PaymentType: PaymentNone}}

	result := AdjustForCLTV(nil, 400000, 20, loantype.Conventional, entries)

	if result.Adjusted {
		t.Errorf("compliant structure was adjusted: %+v", result)
	}
	if result.DownPaymentPct != 20 {
		t.Errorf("down payment pct = %v, expected the original 20", result.DownPaymentPct)
	}

	// Idempotence: re-applying with the returned percent changes nothing.
	again := AdjustForCLTV(nil, 400000, result.DownPaymentPct, loantype.Conventional, entries)
	if again.Adjusted || again.DownPaymentPct != result.DownPaymentPct {
		t.Errorf("adjustment is not idempotent: %+v then %+v", result, again)
	}
}

func TestAdjustForCLTVCorrectsViolation(t *testing.T) {
	// 3% down conventional plus a 10% grant projects CLTV at 107%.
	entries := []Entry{{ValueType: ValueSalesPricePct, Value: 10, PaymentType: PaymentNone}}

	result := AdjustForCLTV(nil, 400000, 3, loantype.Conventional, entries)

	if !result.Adjusted {
		t.Fatalf("expected an adjustment, got %+v", result)
	}
	if result.CLTV <= 105 {
		t.Errorf("reported CLTV = %.2f, expected the violating value above 105", result.CLTV)
	}

	// Corrected structure must satisfy the ceiling: loan at the new percent
	// plus the same DPA dollars stays within 105% of price.
	projected := 400000 * (1 - result.DownPaymentPct/100)
	cltv := (projected + result.TotalDPA) / 400000 * 100
	if cltv > 105.0001 {
		t.Errorf("corrected CLTV = %.4f, still above the ceiling", cltv)
	}

	// Half-percent granularity.
	if remainder := math.Mod(result.DownPaymentPct*10, 5); math.Abs(remainder) > 0.0001 {
		t.Errorf("corrected percent %v is not on a half-percent step", result.DownPaymentPct)
	}
	if result.DownPaymentPct < 3 {
		t.Errorf("corrected percent %v fell below the statutory minimum", result.DownPaymentPct)
	}
}

func TestAdjustForCLTVClampsToMinimumDown(t *testing.T) {
	// DSCR requires 20% down; even a tiny violation cannot correct below it.
	entries := []Entry{{ValueType: ValueSalesPricePct, Value: 30, PaymentType: PaymentNone}}

	result := AdjustForCLTV(nil, 400000, 20, loantype.DSCR, entries)

	if result.DownPaymentPct < 20 {
		t.Errorf("corrected percent %v fell below the 20%% DSCR minimum", result.DownPaymentPct)
	}
}

func TestAdjustForCLTVUsesFeeFactor(t *testing.T) {
	// The same structure projects a larger loan for FHA than conventional,
	// so the FHA correction must demand at least as much down.
	entries := []Entry{{ValueType: ValueSalesPricePct, Value: 8, PaymentType: PaymentNone}}

	conventional := AdjustForCLTV(nil, 400000, 3.5, loantype.Conventional, entries)
	fha := AdjustForCLTV(nil, 400000, 3.5, loantype.FHA, entries)

	if fha.ProjectedLoan <= conventional.ProjectedLoan {
		t.Errorf("FHA projected loan %.2f should exceed conventional %.2f",
			fha.ProjectedLoan, conventional.ProjectedLoan)
	}
	if fha.DownPaymentPct < conventional.DownPaymentPct {
		t.Errorf("FHA correction %v should be at least conventional %v",
			fha.DownPaymentPct, conventional.DownPaymentPct)
	}
}

func TestAdjustForCLTVIterative(t *testing.T) {
	// Loan-relative assistance shrinks as the loan shrinks, so the fixed
	// point lands within the retry budget.
	entries := []Entry{{ValueType: ValueLoanAmountPct, Value: 12, PaymentType: PaymentNone}}

	result := AdjustForCLTVIterative(nil, 400000, 3, loantype.Conventional, entries, 4)

	if !result.Converged {
		t.Fatalf("expected convergence, got %+v", result)
	}

	projected := 400000 * (1 - result.DownPaymentPct/100)
	totalDPA := projected * 0.12
	cltv := (projected + totalDPA) / 400000 * 100
	if cltv > 105.0001 {
		t.Errorf("converged CLTV = %.4f, still above the ceiling", cltv)
	}
}

func TestAdjustForCLTVIterativeCompliantIsOneRound(t *testing.T) {
	result := AdjustForCLTVIterative(nil, 400000, 20, loantype.Conventional, nil, 4)
	if !result.Converged || result.Iterations != 1 || result.Adjusted {
		t.Errorf("compliant structure should converge in one round: %+v", result)
	}
}

func TestAdjustForCashToClose(t *testing.T) {
	tests := []struct {
		name        string
		downPct     float64
		cashToClose float64
		expectPct   float64
		adjusted    bool
	}{
		{
			name:        "Non-negative cash passes through",
			downPct:     5,
			cashToClose: 2500,
			expectPct:   5,
			adjusted:    false,
		},
		{
			name:        "Negative cash raises the down payment",
			downPct:     5,
			cashToClose: -8000,
			expectPct:   7, // 20000 + 8000 = 28000 on 400000
			adjusted:    true,
		},
		{
			name:        "Rounds up to the half step",
			downPct:     5,
			cashToClose: -5000,
			expectPct:   6.5, // 25000 / 400000 = 6.25, rounded up
			adjusted:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AdjustForCashToClose(nil, 400000, tt.downPct, tt.cashToClose, loantype.Conventional)

			if result.Adjusted != tt.adjusted {
				t.Errorf("adjusted = %v, expected %v", result.Adjusted, tt.adjusted)
			}
			if math.Abs(result.DownPaymentPct-tt.expectPct) > 0.0001 {
				t.Errorf("down payment pct = %v, expected %v", result.DownPaymentPct, tt.expectPct)
			}
		})
	}
}
