// Package mortgage derives a full first-mortgage quote from purchase terms:
// financed fees, note rate, APR, monthly payment breakdown, Florida closing
// taxes, prepaid reserves, and cash to close.
package mortgage

import (
	"github.com/closewithmario/mortgage-engine/pkg/loantype"
)

// CreditBand is the score range a borrower reports; the engine only uses it
// to index the mortgage insurance grid via a representative score.
type CreditBand string

const (
	CreditBand760Plus  CreditBand = "760+"
	CreditBand740to759 CreditBand = "740-759"
	CreditBand720to739 CreditBand = "720-739"
	CreditBand700to719 CreditBand = "700-719"
	CreditBand680to699 CreditBand = "680-699"
	CreditBand660to679 CreditBand = "660-679"
	CreditBand640to659 CreditBand = "640-659"
	CreditBand620to639 CreditBand = "620-639"
	CreditBandBelow620 CreditBand = "below 620"
)

// bandScores maps each band to its representative score: the upper band
// boundary, except the open-ended bands at either extreme.
var bandScores = map[CreditBand]int{
	CreditBand760Plus:  760,
	CreditBand740to759: 759,
	CreditBand720to739: 739,
	CreditBand700to719: 719,
	CreditBand680to699: 699,
	CreditBand660to679: 679,
	CreditBand640to659: 659,
	CreditBand620to639: 639,
	CreditBandBelow620: 619,
}

// Score returns the representative numeric score for the band. Unknown
// bands report the top score; the quote degrades rather than rejects.
func (b CreditBand) Score() int {
	if score, ok := bandScores[b]; ok {
		return score
	}
	return 760
}

// VAUsage classifies the borrower's VA entitlement history, which sets the
// funding fee tier.
type VAUsage string

const (
	VAFirstUse      VAUsage = "firstUse"
	VASubsequentUse VAUsage = "subsequentUse"
	VAExempt        VAUsage = "exempt"
)

// SellerCreditType distinguishes how a seller credit is expressed.
type SellerCreditType string

const (
	SellerCreditPercentage SellerCreditType = "percentage"
	SellerCreditDollar     SellerCreditType = "dollar"
)

// SellerCredit is a seller contribution toward the buyer's costs.
type SellerCredit struct {
	Amount float64          `json:"amount" yaml:"amount"`
	Type   SellerCreditType `json:"type" yaml:"type"`
}

// Inputs is the immutable set of purchase terms a quote derives from. The
// engine does not enforce the statutory minimum down payment; callers clamp
// before quoting.
type Inputs struct {
	Price                float64       `json:"price" yaml:"price"`
	LoanType             loantype.Type `json:"loanType" yaml:"loanType"`
	DownPaymentPct       float64       `json:"downPaymentPct" yaml:"downPaymentPct"`
	TermYears            int           `json:"termYears" yaml:"termYears"`
	CreditBand           CreditBand    `json:"creditBand" yaml:"creditBand"`
	County               string        `json:"county" yaml:"county"`
	AnnualTax            float64       `json:"annualTax" yaml:"annualTax"`
	AnnualInsurance      float64       `json:"annualInsurance" yaml:"annualInsurance"`
	BuyerPaysTransferTax bool          `json:"buyerPaysTransferTax" yaml:"buyerPaysTransferTax"`
	VAUsage              VAUsage       `json:"vaUsage,omitempty" yaml:"vaUsage,omitempty"`
	SellerCredit         SellerCredit  `json:"sellerCredit,omitempty" yaml:"sellerCredit,omitempty"`

	// NoteRateOverride, when positive, replaces the static per-program
	// default rate; callers holding a live rate snapshot resolve it here.
	NoteRateOverride float64 `json:"noteRateOverride,omitempty" yaml:"noteRateOverride,omitempty"`
}

// Options carries quote-level switches that are not purchase terms.
type Options struct {
	// WaiveIntangibleAndDeed zeroes the Florida intangible and doc-stamp
	// taxes; set when an active assistance program is tax-exempt.
	WaiveIntangibleAndDeed bool `json:"waiveIntangibleAndDeed" yaml:"waiveIntangibleAndDeed"`
}

// Results is the derived quote. It is a pure function of the inputs with no
// identity or lifecycle; callers recompute it on every input change.
type Results struct {
	DownPayment       float64 `json:"downPayment"`
	BaseLoanBeforeFee float64 `json:"baseLoanBeforeFee"`
	FinancedFee       float64 `json:"financedFee"`
	FinancedFeeRate   float64 `json:"financedFeeRate"`
	BaseLoan          float64 `json:"baseLoan"`
	LTV               float64 `json:"ltv"`

	NoteRate     float64 `json:"noteRate"`
	APR          float64 `json:"apr"`
	APRConverged bool    `json:"aprConverged"`

	MonthlyPI        float64 `json:"monthlyPI"`
	MonthlyMI        float64 `json:"monthlyMI"`
	MIAnnualRate     float64 `json:"miAnnualRate"`
	MonthlyTax       float64 `json:"monthlyTax"`
	MonthlyInsurance float64 `json:"monthlyInsurance"`
	MonthlyTotal     float64 `json:"monthlyTotal"`

	LendersTitle          float64 `json:"lendersTitle"`
	LendersTitleBuyerSide float64 `json:"lendersTitleBuyerSide"`
	IntangibleTax         float64 `json:"intangibleTax"`
	DeedTax               float64 `json:"deedTax"`

	ClosingCosts     float64 `json:"closingCosts"`
	Prepaids         float64 `json:"prepaids"`
	PrepaidTaxes     float64 `json:"prepaidTaxes"`
	PrepaidInsurance float64 `json:"prepaidInsurance"`
	PrepaidInterest  float64 `json:"prepaidInterest"`

	SellerCreditAmount float64 `json:"sellerCreditAmount"`
	CashToClose        float64 `json:"cashToClose"`
}
