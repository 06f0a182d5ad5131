// Package loantype defines the loan programs the engine quotes and the
// per-program rules shared across packages.
package loantype

// Type identifies a first-mortgage loan program.
type Type string

const (
	Conventional Type = "conventional"
	FHA          Type = "fha"
	VA           Type = "va"
	DSCR         Type = "dscr"
)

// minimumDownPercent holds the statutory minimum down payment per program.
var minimumDownPercent = map[Type]float64{
	Conventional: 3.0,
	FHA:          3.5,
	VA:           0.0,
	DSCR:         20.0,
}

// financedFeeFactor approximates the financed upfront fee (FHA UFMIP, VA
// funding fee) when projecting a loan from price and down payment alone.
// The engine itself uses the exact tiered rates; this factor serves the
// CLTV projection, where the usage class is not yet known.
var financedFeeFactor = map[Type]float64{
	Conventional: 1.0,
	FHA:          1.0175,
	VA:           1.023,
	DSCR:         1.0,
}

// MinimumDownPercent returns the statutory minimum down payment for the
// program, in percent. Unknown programs return 0; the engine does not
// validate enum inputs.
func (t Type) MinimumDownPercent() float64 {
	return minimumDownPercent[t]
}

// FinancedFeeFactor returns the flat multiplier used to project a financed
// loan amount from the pre-fee base.
func (t Type) FinancedFeeFactor() float64 {
	if f, ok := financedFeeFactor[t]; ok {
		return f
	}
	return 1.0
}

// Valid reports whether the value is one of the known programs.
func (t Type) Valid() bool {
	switch t {
	case Conventional, FHA, VA, DSCR:
		return true
	}
	return false
}
