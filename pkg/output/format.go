// Package output provides utilities for formatting and displaying quote results.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/closewithmario/mortgage-engine/internal/quote"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable summary.
func PrettyFormat(w io.Writer, results []quote.Result) {
	p := message.NewPrinter(language.English)
	for i, result := range results {
		name := result.Name
		if name == "" {
			name = fmt.Sprintf("quote %d", i+1)
		}
		_, _ = p.Fprintf(w, "--- Results for %s ---\n", name)
		_, _ = p.Fprintf(w, "Price             | $%.2f\n", result.Inputs.Price)
		_, _ = p.Fprintf(w, "Loan type         | %s\n", result.Inputs.LoanType)
		_, _ = p.Fprintf(w, "Down payment      | $%.2f (%.2f%%)\n", result.Mortgage.DownPayment, result.Inputs.DownPaymentPct)
		if result.Adjustment != nil && result.Adjustment.Adjusted {
			_, _ = p.Fprintf(w, "                  | adjusted for the %.0f%% CLTV ceiling\n", 105.0)
		}
		_, _ = p.Fprintf(w, "Base loan         | $%.2f\n", result.Mortgage.BaseLoan)
		if result.Mortgage.FinancedFee > 0 {
			_, _ = p.Fprintf(w, "Financed fee      | $%.2f (%.3f%%)\n", result.Mortgage.FinancedFee, result.Mortgage.FinancedFeeRate)
		}
		_, _ = p.Fprintf(w, "Note rate / APR   | %.3f%% / %.3f%%\n", result.Mortgage.NoteRate, result.Mortgage.APR)
		if !result.Mortgage.APRConverged {
			_, _ = p.Fprintf(w, "                  | APR fell back to the note rate\n")
		}
		_, _ = p.Fprintf(w, "Monthly P&I       | $%.2f\n", result.Mortgage.MonthlyPI)
		if result.Mortgage.MonthlyMI > 0 {
			_, _ = p.Fprintf(w, "Monthly MI        | $%.2f\n", result.Mortgage.MonthlyMI)
		}
		_, _ = p.Fprintf(w, "Monthly total     | $%.2f\n", result.Mortgage.MonthlyTotal)
		_, _ = p.Fprintf(w, "Closing costs     | $%.2f\n", result.Mortgage.ClosingCosts)
		_, _ = p.Fprintf(w, "Prepaids          | $%.2f\n", result.Mortgage.Prepaids)
		_, _ = p.Fprintf(w, "Cash to close     | $%.2f\n", result.Mortgage.CashToClose)
		if result.DPA.Amount > 0 {
			_, _ = p.Fprintf(w, "Assistance        | $%.2f ($%.2f/mo)\n", result.DPA.Amount, result.DPA.Payment)
			_, _ = p.Fprintf(w, "Net cash to close | $%.2f\n", result.NetCashToClose)
		}
		if len(results) > 1 && i < len(results)-1 {
			_, _ = fmt.Fprintf(w, "\n")
		}
	}
}

// CsvFormat outputs in comma-separated value format, one row per quote.
func CsvFormat(w io.Writer, results []quote.Result) {
	_, _ = fmt.Fprintf(w, `"name","price","loanType","downPaymentPct","baseLoan","noteRate","apr","monthlyPI","monthlyMI","monthlyTotal","closingCosts","prepaids","cashToClose","dpaAmount","dpaPayment","netCashToClose"`)
	_, _ = fmt.Fprintf(w, "\n")
	for _, result := range results {
		_, _ = fmt.Fprintf(w, `"%s","%.2f","%s","%.2f","%.2f","%.3f","%.3f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f"`,
			result.Name,
			result.Inputs.Price,
			result.Inputs.LoanType,
			result.Inputs.DownPaymentPct,
			result.Mortgage.BaseLoan,
			result.Mortgage.NoteRate,
			result.Mortgage.APR,
			result.Mortgage.MonthlyPI,
			result.Mortgage.MonthlyMI,
			result.Mortgage.MonthlyTotal,
			result.Mortgage.ClosingCosts,
			result.Mortgage.Prepaids,
			result.Mortgage.CashToClose,
			result.DPA.Amount,
			result.DPA.Payment,
			result.NetCashToClose,
		)
		_, _ = fmt.Fprintf(w, "\n")
	}
}

// JSONFormat outputs the results as indented JSON.
func JSONFormat(w io.Writer, results []quote.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}
