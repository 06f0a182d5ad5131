package amort

import (
	"math"
	"testing"
)

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name          string
		principal     float64
		annualRatePct float64
		termMonths    int
		expected      float64
		tolerance     float64
	}{
		{
			name:          "Standard 30-year fixed",
			principal:     300000,
			annualRatePct: 6.0,
			termMonths:    360,
			expected:      1798.65, // published 30-year table value
			tolerance:     0.01,
		},
		{
			name:          "15-year fixed",
			principal:     200000,
			annualRatePct: 5.0,
			termMonths:    180,
			expected:      1581.59,
			tolerance:     0.01,
		},
		{
			name:          "Small second mortgage",
			principal:     20000,
			annualRatePct: 8.0,
			termMonths:    120,
			expected:      242.66,
			tolerance:     0.01,
		},
		{
			name:          "Zero principal",
			principal:     0,
			annualRatePct: 6.0,
			termMonths:    360,
			expected:      0,
			tolerance:     0.001,
		},
		{
			name:          "Zero rate",
			principal:     100000,
			annualRatePct: 0,
			termMonths:    360,
			expected:      0,
			tolerance:     0.001,
		},
		{
			name:          "Zero term",
			principal:     100000,
			annualRatePct: 6.0,
			termMonths:    0,
			expected:      0,
			tolerance:     0.001,
		},
		{
			name:          "Negative principal",
			principal:     -50000,
			annualRatePct: 6.0,
			termMonths:    360,
			expected:      0,
			tolerance:     0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MonthlyPayment(tt.principal, tt.annualRatePct, tt.termMonths)

			if math.IsNaN(result) || math.IsInf(result, 0) {
				t.Fatalf("MonthlyPayment() = %v, expected a finite value", result)
			}
			if math.Abs(result-tt.expected) > tt.tolerance {
				t.Errorf("MonthlyPayment() = %.2f, expected %.2f", result, tt.expected)
			}
		})
	}
}

func TestInterestOnlyPayment(t *testing.T) {
	tests := []struct {
		name          string
		principal     float64
		annualRatePct float64
		expected      float64
	}{
		{"Standard IO second", 30000, 6.0, 150.0},
		{"High rate", 10000, 12.0, 100.0},
		{"Zero rate", 30000, 0, 0},
		{"Zero principal", 0, 6.0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := InterestOnlyPayment(tt.principal, tt.annualRatePct)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("InterestOnlyPayment() = %.2f, expected %.2f", result, tt.expected)
			}
		})
	}
}

func TestPerDiemInterest(t *testing.T) {
	tests := []struct {
		name          string
		principal     float64
		annualRatePct float64
		expected      float64
	}{
		{"Standard loan", 365000, 6.0, 60.0},
		{"Zero rate", 365000, 0, 0},
		{"Zero principal", 0, 6.0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PerDiemInterest(tt.principal, tt.annualRatePct)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("PerDiemInterest() = %.4f, expected %.4f", result, tt.expected)
			}
		})
	}
}
