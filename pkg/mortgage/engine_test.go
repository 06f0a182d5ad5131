package mortgage

import (
	"math"
	"testing"

	"github.com/closewithmario/mortgage-engine/pkg/loantype"
)

func baseInputs() Inputs {
	return Inputs{
		Price:            400000,
		LoanType:         loantype.Conventional,
		DownPaymentPct:   20,
		TermYears:        30,
		CreditBand:       CreditBand760Plus,
		County:           "Orange",
		AnnualTax:        4800,
		AnnualInsurance:  2400,
		NoteRateOverride: 6.0,
	}
}

func TestComputeConventionalQuote(t *testing.T) {
	results := Compute(nil, baseInputs(), DefaultFees(), Options{})

	if math.Abs(results.DownPayment-80000) > 0.01 {
		t.Errorf("down payment = %.2f, expected 80000.00", results.DownPayment)
	}
	if math.Abs(results.BaseLoan-320000) > 0.01 {
		t.Errorf("base loan = %.2f, expected 320000.00 (no financed fee)", results.BaseLoan)
	}
	if results.FinancedFee != 0 || results.FinancedFeeRate != 0 {
		t.Errorf("conventional loans carry no financed fee, got %.2f at %.2f%%",
			results.FinancedFee, results.FinancedFeeRate)
	}
	if math.Abs(results.LTV-80) > 0.001 {
		t.Errorf("LTV = %.2f, expected 80.00", results.LTV)
	}
	if results.MonthlyMI != 0 {
		t.Errorf("MI at 80 LTV = %.2f, expected 0", results.MonthlyMI)
	}
	if math.Abs(results.MonthlyPI-1918.56) > 0.01 {
		t.Errorf("monthly P&I = %.2f, expected 1918.56", results.MonthlyPI)
	}
	if math.Abs(results.MonthlyTax-400) > 0.001 || math.Abs(results.MonthlyInsurance-200) > 0.001 {
		t.Errorf("escrow = %.2f tax / %.2f ins, expected 400 / 200", results.MonthlyTax, results.MonthlyInsurance)
	}
	if !results.APRConverged {
		t.Error("APR solver should converge for a standard quote")
	}
	if results.APR <= results.NoteRate {
		t.Errorf("APR = %.3f, expected above the %.3f note rate given prepaid charges",
			results.APR, results.NoteRate)
	}

	wantCash := results.DownPayment + results.ClosingCosts + results.Prepaids - results.SellerCreditAmount
	if math.Abs(results.CashToClose-wantCash) > 0.001 {
		t.Errorf("cash to close = %.2f, expected %.2f", results.CashToClose, wantCash)
	}
}

func TestComputeVAFundingFeeTiers(t *testing.T) {
	tests := []struct {
		name     string
		usage    VAUsage
		downPct  float64
		expected float64
	}{
		{"First use under 5 down", VAFirstUse, 3, 2.15},
		{"First use under 10 down", VAFirstUse, 7, 1.50},
		{"First use 10 or more down", VAFirstUse, 12, 1.25},
		{"Subsequent use under 5 down", VASubsequentUse, 3, 3.30},
		{"Subsequent use 5 or more down", VASubsequentUse, 8, 1.50},
		{"Exempt", VAExempt, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inputs := baseInputs()
			inputs.LoanType = loantype.VA
			inputs.VAUsage = tt.usage
			inputs.DownPaymentPct = tt.downPct

			results := Compute(nil, inputs, DefaultFees(), Options{})

			if math.Abs(results.FinancedFeeRate-tt.expected) > 0.0001 {
				t.Errorf("funding fee rate = %.4f, expected %.4f", results.FinancedFeeRate, tt.expected)
			}

			wantFee := results.BaseLoanBeforeFee * tt.expected / 100
			if math.Abs(results.FinancedFee-wantFee) > 0.01 {
				t.Errorf("funding fee = %.2f, expected %.2f", results.FinancedFee, wantFee)
			}
			if math.Abs(results.BaseLoan-(results.BaseLoanBeforeFee+results.FinancedFee)) > 0.001 {
				t.Error("financed fee must be capitalized into the base loan")
			}
			if results.MonthlyMI != 0 {
				t.Errorf("VA loans carry no MI, got %.2f", results.MonthlyMI)
			}
		})
	}
}

func TestComputeFHAQuote(t *testing.T) {
	inputs := baseInputs()
	inputs.LoanType = loantype.FHA
	inputs.DownPaymentPct = 3.5
	inputs.CreditBand = CreditBand700to719

	results := Compute(nil, inputs, DefaultFees(), Options{})

	if math.Abs(results.FinancedFeeRate-1.75) > 0.0001 {
		t.Errorf("UFMIP rate = %.4f, expected 1.75", results.FinancedFeeRate)
	}

	baseBefore := 400000 * (1 - 0.035)
	if math.Abs(results.BaseLoanBeforeFee-baseBefore) > 0.01 {
		t.Errorf("base before fee = %.2f, expected %.2f", results.BaseLoanBeforeFee, baseBefore)
	}
	if math.Abs(results.BaseLoan-baseBefore*1.0175) > 0.01 {
		t.Errorf("base loan = %.2f, expected %.2f", results.BaseLoan, baseBefore*1.0175)
	}

	// MI prices on the unfinanced base at the high-LTV FHA premium.
	wantMI := baseBefore * 0.0055 / 12
	if math.Abs(results.MonthlyMI-wantMI) > 0.05 {
		t.Errorf("monthly MI = %.2f, expected %.2f (priced on the unfinanced base)", results.MonthlyMI, wantMI)
	}
}

func TestComputeSellerCredit(t *testing.T) {
	inputs := baseInputs()
	inputs.SellerCredit = SellerCredit{Amount: 2, Type: SellerCreditPercentage}
	withPct := Compute(nil, inputs, DefaultFees(), Options{})
	if math.Abs(withPct.SellerCreditAmount-8000) > 0.001 {
		t.Errorf("percentage credit = %.2f, expected 8000.00", withPct.SellerCreditAmount)
	}

	inputs.SellerCredit = SellerCredit{Amount: 5000, Type: SellerCreditDollar}
	withDollar := Compute(nil, inputs, DefaultFees(), Options{})
	if math.Abs(withDollar.SellerCreditAmount-5000) > 0.001 {
		t.Errorf("dollar credit = %.2f, expected 5000.00", withDollar.SellerCreditAmount)
	}

	if math.Abs((withPct.CashToClose+8000)-(withDollar.CashToClose+5000)) > 0.001 {
		t.Error("seller credit must reduce cash to close dollar for dollar")
	}
}

func TestComputeTaxWaiver(t *testing.T) {
	inputs := baseInputs()
	inputs.County = "Miami-Dade"
	inputs.BuyerPaysTransferTax = true

	waived := Compute(nil, inputs, DefaultFees(), Options{WaiveIntangibleAndDeed: true})
	if waived.IntangibleTax != 0 || waived.DeedTax != 0 {
		t.Errorf("waiver must zero intangible (%.2f) and deed (%.2f) taxes",
			waived.IntangibleTax, waived.DeedTax)
	}

	unwaived := Compute(nil, inputs, DefaultFees(), Options{})
	if unwaived.IntangibleTax <= 0 || unwaived.DeedTax <= 0 {
		t.Error("unwaived quote should carry both taxes")
	}
	if unwaived.ClosingCosts <= waived.ClosingCosts {
		t.Error("waiver should lower closing costs")
	}
}

func TestComputeBuyerSideTitleByCounty(t *testing.T) {
	inputs := baseInputs()

	inputs.County = "Broward"
	broward := Compute(nil, inputs, DefaultFees(), Options{})
	if broward.LendersTitleBuyerSide <= 0 {
		t.Error("Broward buyers pay the lender's title premium")
	}
	if math.Abs(broward.LendersTitleBuyerSide-broward.LendersTitle) > 0.001 {
		t.Errorf("buyer side = %.2f, expected the full %.2f premium",
			broward.LendersTitleBuyerSide, broward.LendersTitle)
	}

	inputs.County = "Orange"
	orange := Compute(nil, inputs, DefaultFees(), Options{})
	if orange.LendersTitleBuyerSide != 0 {
		t.Errorf("outside Miami-Dade/Broward the buyer-side portion is zero, got %.2f",
			orange.LendersTitleBuyerSide)
	}
	if orange.LendersTitle <= 0 {
		t.Error("the premium itself is still computed for APR purposes")
	}
}

func TestComputePrepaids(t *testing.T) {
	results := Compute(nil, baseInputs(), DefaultFees(), Options{})

	if math.Abs(results.PrepaidTaxes-1200) > 0.001 { // 3 months at 400
		t.Errorf("prepaid taxes = %.2f, expected 1200.00", results.PrepaidTaxes)
	}
	if math.Abs(results.PrepaidInsurance-3000) > 0.001 { // 15 months at 200
		t.Errorf("prepaid insurance = %.2f, expected 3000.00", results.PrepaidInsurance)
	}
	wantInterest := 320000 * 0.06 / 365 * 15
	if math.Abs(results.PrepaidInterest-wantInterest) > 0.01 {
		t.Errorf("prepaid interest = %.2f, expected %.2f", results.PrepaidInterest, wantInterest)
	}
}

func TestComputeDegradesOnBadInput(t *testing.T) {
	inputs := baseInputs()
	inputs.Price = 0
	inputs.TermYears = 0

	results := Compute(nil, inputs, Fees{}, Options{})

	if math.IsNaN(results.MonthlyPI) || math.IsInf(results.MonthlyPI, 0) {
		t.Errorf("monthly P&I = %v, expected a finite value", results.MonthlyPI)
	}
	if math.IsNaN(results.CashToClose) || math.IsInf(results.CashToClose, 0) {
		t.Errorf("cash to close = %v, expected a finite value", results.CashToClose)
	}
	if results.MonthlyPI != 0 {
		t.Errorf("monthly P&I on a zero quote = %v, expected 0", results.MonthlyPI)
	}
}
