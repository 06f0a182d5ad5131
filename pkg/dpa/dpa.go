// Package dpa models down-payment-assistance programs: the dollar amount and
// monthly payment of each program in a quote, the aggregate across programs,
// and the financing-structure corrections applied when stacked assistance
// pushes the deal past investor limits.
package dpa

import (
	"github.com/closewithmario/mortgage-engine/pkg/amort"
	"github.com/closewithmario/mortgage-engine/pkg/constants"
)

// ValueType expresses how a program's dollar amount is derived.
type ValueType string

const (
	ValueSalesPricePct ValueType = "salesPrice"
	ValueLoanAmountPct ValueType = "loanAmount"
	ValueFixedDollar   ValueType = "fixed"
)

// PaymentType expresses how a program is repaid.
type PaymentType string

const (
	PaymentNone         PaymentType = "none"
	PaymentFixed        PaymentType = "fixed"
	PaymentAmortizing   PaymentType = "loanPI"
	PaymentInterestOnly PaymentType = "loanIO"
)

// Entry is one assistance program attached to a quote. Entries are either
// user-authored or instantiated from a preset.
type Entry struct {
	ID           string      `json:"id" yaml:"id"`
	Name         string      `json:"name" yaml:"name"`
	ValueType    ValueType   `json:"valueType" yaml:"valueType"`
	Value        float64     `json:"value" yaml:"value"`
	PaymentType  PaymentType `json:"paymentType" yaml:"paymentType"`
	Rate         float64     `json:"rate,omitempty" yaml:"rate,omitempty"`
	TermMonths   int         `json:"termMonths,omitempty" yaml:"termMonths,omitempty"`
	FixedPayment float64     `json:"fixedPayment,omitempty" yaml:"fixedPayment,omitempty"`
	Fees         float64     `json:"fees,omitempty" yaml:"fees,omitempty"`
}

// Amount returns the program's dollar amount. Loan-relative programs must
// reference the final first-mortgage loan, i.e. the base loan with any
// financed fee already capitalized.
func (e Entry) Amount(price, finalLoan float64) float64 {
	switch e.ValueType {
	case ValueSalesPricePct:
		return price * e.Value / constants.PercentageMultiplier
	case ValueLoanAmountPct:
		return finalLoan * e.Value / constants.PercentageMultiplier
	default:
		return e.Value
	}
}

// Payment returns the program's monthly payment against its dollar amount.
// Amortizing and interest-only programs with a non-positive rate or term pay
// nothing rather than dividing by zero.
func (e Entry) Payment(amount float64) float64 {
	switch e.PaymentType {
	case PaymentFixed:
		return e.FixedPayment
	case PaymentAmortizing:
		return amort.MonthlyPayment(amount, e.Rate, e.TermMonths)
	case PaymentInterestOnly:
		return amort.InterestOnlyPayment(amount, e.Rate)
	default:
		return 0
	}
}

// Totals aggregates a list of programs. Order never affects the sums; every
// loan-relative entry references the same shared finalLoan figure, so totals
// must be recomputed whenever the first mortgage changes.
type Totals struct {
	Amount  float64 `json:"amount"`
	Payment float64 `json:"payment"`
	Fees    float64 `json:"fees"`
}

// Aggregate sums dollar amounts, monthly payments, and flat fees across the
// entry list.
func Aggregate(entries []Entry, price, finalLoan float64) Totals {
	var totals Totals
	for _, entry := range entries {
		amount := entry.Amount(price, finalLoan)
		totals.Amount += amount
		totals.Payment += entry.Payment(amount)
		totals.Fees += entry.Fees
	}
	return totals
}
