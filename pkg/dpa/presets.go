package dpa

import "strings"

// Preset is a named assistance-program template. Presets with a dynamic rate
// rule resolve their rate from the first-mortgage rate at selection time, so
// they behave as builders rather than static records.
type Preset struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	ValueType    ValueType   `json:"valueType"`
	Value        float64     `json:"value"`
	PaymentType  PaymentType `json:"paymentType"`
	Rate         float64     `json:"rate,omitempty"`
	RateOffset   float64     `json:"rateOffset,omitempty"`
	DynamicRate  bool        `json:"dynamicRate,omitempty"`
	TermMonths   int         `json:"termMonths,omitempty"`
	FixedPayment float64     `json:"fixedPayment,omitempty"`
	Fees         float64     `json:"fees,omitempty"`
}

// Instantiate builds an Entry from the template, resolving a dynamic rate
// against the current first-mortgage note rate.
func (p Preset) Instantiate(firstMortgageRate float64) Entry {
	rate := p.Rate
	if p.DynamicRate {
		rate = firstMortgageRate + p.RateOffset
	}
	return Entry{
		ID:           p.ID,
		Name:         p.Name,
		ValueType:    p.ValueType,
		Value:        p.Value,
		PaymentType:  p.PaymentType,
		Rate:         rate,
		TermMonths:   p.TermMonths,
		FixedPayment: p.FixedPayment,
		Fees:         p.Fees,
	}
}

// Catalog returns the fixed preset catalog offered to loan officers.
func Catalog() []Preset {
	return []Preset{
		{
			ID:          "hometown-heroes",
			Name:        "Hometown Heroes",
			ValueType:   ValueSalesPricePct,
			Value:       5,
			PaymentType: PaymentNone,
		},
		{
			ID:          "fl-assist",
			Name:        "FL Assist",
			ValueType:   ValueFixedDollar,
			Value:       10000,
			PaymentType: PaymentNone,
		},
		{
			ID:          "amortizing-second",
			Name:        "Amortizing Second 5%",
			ValueType:   ValueLoanAmountPct,
			Value:       5,
			PaymentType: PaymentAmortizing,
			RateOffset:  1.5,
			DynamicRate: true,
			TermMonths:  120,
		},
		{
			ID:          "interest-only-second",
			Name:        "Interest-Only Second 3%",
			ValueType:   ValueSalesPricePct,
			Value:       3,
			PaymentType: PaymentInterestOnly,
			RateOffset:  2.0,
			DynamicRate: true,
			TermMonths:  360,
		},
	}
}

// taxExemptPrograms are assistance programs statutorily exempt from Florida
// intangible and doc-stamp taxes; matching is by program name.
var taxExemptPrograms = []string{
	"hometown heroes",
	"fl assist",
}

// WaivesTaxStamps reports whether any active entry is a tax-exempt program,
// which forces the intangible and deed taxes on the quote to zero.
func WaivesTaxStamps(entries []Entry) bool {
	for _, entry := range entries {
		name := strings.ToLower(entry.Name)
		for _, program := range taxExemptPrograms {
			if strings.Contains(name, program) {
				return true
			}
		}
	}
	return false
}
