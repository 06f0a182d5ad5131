// Package rates models the note-rate snapshot supplied by the remote quote
// service. The engine treats the snapshot as opaque numeric input; fetching
// and refreshing it belongs to the caller.
package rates

import "github.com/closewithmario/mortgage-engine/pkg/loantype"

// Snapshot is one pull from the rate-quote service: the current 30-year note
// rate per program, in percent.
type Snapshot struct {
	Conventional30 float64 `json:"conventional30" yaml:"conventional30"`
	FHA30          float64 `json:"fha30" yaml:"fha30"`
	VA30           float64 `json:"va30" yaml:"va30"`
}

// defaultNoteRates back the quote when no snapshot or override is available.
var defaultNoteRates = map[loantype.Type]float64{
	loantype.Conventional: 6.99,
	loantype.FHA:          6.25,
	loantype.VA:           6.25,
	loantype.DSCR:         7.50,
}

// RateForLoanType picks the snapshot rate for the program. DSCR is not
// quoted by the service and prices off the conventional rate; zero snapshot
// entries fall back to the static default.
func RateForLoanType(snapshot Snapshot, lt loantype.Type) float64 {
	var rate float64
	switch lt {
	case loantype.FHA:
		rate = snapshot.FHA30
	case loantype.VA:
		rate = snapshot.VA30
	default:
		rate = snapshot.Conventional30
	}

	if rate > 0 {
		return rate
	}
	return DefaultRate(lt)
}

// DefaultRate returns the static per-program note rate used when the quote
// service is unavailable.
func DefaultRate(lt loantype.Type) float64 {
	if rate, ok := defaultNoteRates[lt]; ok {
		return rate
	}
	return defaultNoteRates[loantype.Conventional]
}
