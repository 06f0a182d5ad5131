package mortgage

import (
	"github.com/closewithmario/mortgage-engine/pkg/amort"
	"github.com/closewithmario/mortgage-engine/pkg/apr"
	"github.com/closewithmario/mortgage-engine/pkg/constants"
	"github.com/closewithmario/mortgage-engine/pkg/fltax"
	"github.com/closewithmario/mortgage-engine/pkg/loantype"
	"github.com/closewithmario/mortgage-engine/pkg/mathutil"
	"github.com/closewithmario/mortgage-engine/pkg/mi"
	"github.com/closewithmario/mortgage-engine/pkg/rates"
	"go.uber.org/zap"
)

// vaFundingFeeRate returns the VA funding fee as a percentage of the base
// loan, tiered by entitlement usage and down payment.
func vaFundingFeeRate(usage VAUsage, downPaymentPct float64) float64 {
	switch usage {
	case VAExempt:
		return 0
	case VASubsequentUse:
		if downPaymentPct < 5 {
			return 3.30
		}
		return 1.50
	default: // first use
		if downPaymentPct < 5 {
			return 2.15
		}
		if downPaymentPct < 10 {
			return 1.50
		}
		return 1.25
	}
}

// financedFeeRate returns the upfront fee financed into the loan balance,
// as a percentage of the pre-fee base loan.
func financedFeeRate(inputs Inputs) float64 {
	switch inputs.LoanType {
	case loantype.VA:
		return vaFundingFeeRate(inputs.VAUsage, inputs.DownPaymentPct)
	case loantype.FHA:
		return constants.FHAUpfrontMIPRate
	}
	return 0
}

// Compute derives a full quote from the inputs. Every step is a pure
// function of the prior step's outputs; invalid numeric input degrades to
// zero or passes through rather than raising an error, so a bad keystroke
// never blanks the quote.
func Compute(logger *zap.Logger, inputs Inputs, fees Fees, opts Options) Results {
	if logger == nil {
		logger = zap.NewNop()
	}

	var results Results

	// Down payment and base loan before the financed fee.
	results.DownPayment = mathutil.ApplyPercentage(inputs.Price, inputs.DownPaymentPct)
	results.BaseLoanBeforeFee = inputs.Price - results.DownPayment

	// Financed upfront fee (VA funding fee / FHA UFMIP), capitalized into
	// the principal.
	results.FinancedFeeRate = financedFeeRate(inputs)
	results.FinancedFee = mathutil.ApplyPercentage(results.BaseLoanBeforeFee, results.FinancedFeeRate)
	results.BaseLoan = results.BaseLoanBeforeFee + results.FinancedFee

	// Note rate: caller override wins, otherwise the static program default.
	if inputs.NoteRateOverride > 0 {
		results.NoteRate = inputs.NoteRateOverride
	} else {
		results.NoteRate = rates.DefaultRate(inputs.LoanType)
	}

	termMonths := inputs.TermYears * constants.MonthsPerYear
	results.MonthlyPI = amort.MonthlyPayment(results.BaseLoan, results.NoteRate, termMonths)

	// LTV comes from the requested down payment, not the fee-inflated loan.
	results.LTV = constants.PercentageMultiplier - inputs.DownPaymentPct
	results.MonthlyMI, results.MIAnnualRate = mi.Compute(
		inputs.LoanType, results.BaseLoan, results.LTV, inputs.CreditBand.Score(), inputs.TermYears)

	// Florida taxes and title premiums.
	results.LendersTitle = fltax.LendersTitlePremium(results.BaseLoan)
	if fltax.BuyerPaysOwnersTitle(inputs.County) {
		results.LendersTitleBuyerSide = results.LendersTitle
	}
	results.IntangibleTax = fltax.IntangibleTax(results.BaseLoan, opts.WaiveIntangibleAndDeed)
	results.DeedTax = fltax.DeedTax(results.BaseLoan, inputs.Price, inputs.County,
		inputs.BuyerPaysTransferTax, opts.WaiveIntangibleAndDeed)

	// APR over the level P&I + MI stream against the amount financed.
	aprResult := apr.Solve(results.BaseLoan, results.NoteRate, inputs.TermYears,
		fees.prepaidFinanceCharges()+results.LendersTitle, results.MonthlyPI, results.MonthlyMI)
	results.APR = aprResult.APR
	results.APRConverged = aprResult.Converged
	if !aprResult.Converged {
		logger.Debug("APR solver fell back to the note rate",
			zap.String("op", "mortgage.Compute"),
			zap.Float64("noteRate", results.NoteRate),
			zap.Int("iterations", aprResult.Iterations),
		)
	}

	// Monthly escrow components.
	results.MonthlyTax = inputs.AnnualTax / constants.MonthsPerYear
	results.MonthlyInsurance = inputs.AnnualInsurance / constants.MonthsPerYear
	results.MonthlyTotal = results.MonthlyPI + results.MonthlyMI + results.MonthlyTax + results.MonthlyInsurance

	// Prepaid reserves collected at closing.
	results.PrepaidTaxes = results.MonthlyTax * constants.PrepaidTaxMonths
	results.PrepaidInsurance = results.MonthlyInsurance * constants.PrepaidInsuranceMonths
	results.PrepaidInterest = amort.PerDiemInterest(results.BaseLoan, results.NoteRate) * constants.PrepaidInterestDays
	results.Prepaids = results.PrepaidTaxes + results.PrepaidInsurance + results.PrepaidInterest

	// Closing costs: the flat schedule plus the jurisdictional amounts.
	results.ClosingCosts = fees.Total() + results.LendersTitleBuyerSide +
		results.IntangibleTax + results.DeedTax

	// Seller credit.
	if inputs.SellerCredit.Type == SellerCreditPercentage {
		results.SellerCreditAmount = mathutil.ApplyPercentage(inputs.Price, inputs.SellerCredit.Amount)
	} else {
		results.SellerCreditAmount = inputs.SellerCredit.Amount
	}

	results.CashToClose = results.DownPayment + results.ClosingCosts +
		results.Prepaids - results.SellerCreditAmount

	logger.Debug("computed mortgage quote",
		zap.String("op", "mortgage.Compute"),
		zap.String("loanType", string(inputs.LoanType)),
		zap.Float64("price", inputs.Price),
		zap.Float64("baseLoan", results.BaseLoan),
		zap.Float64("noteRate", results.NoteRate),
		zap.Float64("apr", results.APR),
		zap.Float64("cashToClose", results.CashToClose),
	)

	return results
}
