package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/closewithmario/mortgage-engine/internal/quote"
	"github.com/closewithmario/mortgage-engine/pkg/loantype"
	"github.com/closewithmario/mortgage-engine/pkg/mortgage"
)

func sampleResults() []quote.Result {
	req := quote.Request{
		Name: "primary",
		Inputs: mortgage.Inputs{
			Price:            400000,
			LoanType:         loantype.Conventional,
			DownPaymentPct:   20,
			TermYears:        30,
			CreditBand:       mortgage.CreditBand760Plus,
			County:           "Orange",
			AnnualTax:        4800,
			AnnualInsurance:  2400,
			NoteRateOverride: 6.0,
		},
	}
	return []quote.Result{quote.Compute(nil, req)}
}

func TestPrettyFormat(t *testing.T) {
	var buf bytes.Buffer
	PrettyFormat(&buf, sampleResults())

	out := buf.String()
	for _, want := range []string{"primary", "Cash to close", "Note rate / APR", "$400,000.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty output missing %q:\n%s", want, out)
		}
	}
}

func TestCsvFormat(t *testing.T) {
	var buf bytes.Buffer
	CsvFormat(&buf, sampleResults())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], `"cashToClose"`) {
		t.Errorf("header missing cashToClose: %s", lines[0])
	}
	if !strings.Contains(lines[1], `"primary"`) {
		t.Errorf("row missing quote name: %s", lines[1])
	}

	headerFields := strings.Count(lines[0], ",")
	rowFields := strings.Count(lines[1], ",")
	if headerFields != rowFields {
		t.Errorf("header has %d separators but row has %d", headerFields, rowFields)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := JSONFormat(&buf, sampleResults()); err != nil {
		t.Fatalf("JSONFormat() error: %v", err)
	}

	var decoded []map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("expected one result, got %d", len(decoded))
	}
	if decoded[0]["name"] != "primary" {
		t.Errorf("name = %v, expected primary", decoded[0]["name"])
	}
}
