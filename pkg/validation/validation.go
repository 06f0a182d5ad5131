// Package validation provides advisory checks on quote inputs. The engine
// itself never rejects input; these warnings exist so callers can surface
// problems without blocking the quote.
package validation

import (
	"fmt"

	"github.com/closewithmario/mortgage-engine/pkg/constants"
	"github.com/closewithmario/mortgage-engine/pkg/fltax"
	"github.com/closewithmario/mortgage-engine/pkg/mortgage"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON:
		return nil
	}
	return fmt.Errorf("expected output format of %s, %s, or %s, got %s",
		constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON, format)
}

// ValidateInputs returns warnings for input values the engine will accept
// but degrade on.
func ValidateInputs(inputs mortgage.Inputs) []string {
	var warnings []string

	if inputs.Price <= 0 {
		warnings = append(warnings, fmt.Sprintf("price %.2f is not positive - the quote will be zero", inputs.Price))
	}
	if inputs.TermYears <= 0 {
		warnings = append(warnings, fmt.Sprintf("term of %d years is not positive - payment and APR will be zero", inputs.TermYears))
	}

	if !inputs.LoanType.Valid() {
		warnings = append(warnings, fmt.Sprintf("unknown loan type %q - conventional rules will apply", inputs.LoanType))
	} else if inputs.DownPaymentPct < inputs.LoanType.MinimumDownPercent() {
		warnings = append(warnings, fmt.Sprintf("down payment %.2f%% is below the %.2f%% minimum for %s",
			inputs.DownPaymentPct, inputs.LoanType.MinimumDownPercent(), inputs.LoanType))
	}

	if inputs.County == "" {
		warnings = append(warnings, "county is empty - statewide tax rates will apply")
	} else if inputs.BuyerPaysTransferTax && !fltax.BuyerPaysOwnersTitle(inputs.County) {
		warnings = append(warnings, fmt.Sprintf("county %q uses the statewide 0.7%% transfer rate", inputs.County))
	}

	return warnings
}
