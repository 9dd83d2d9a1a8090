package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round down below midpoint", 1.234, 1.23},
		{"No rounding needed", 1.23, 1.23},
		{"Large number", 12345.678, 12345.68},
		{"Negative number round down", -1.234, -1.23},
		{"Zero", 0.0, 0.0},
		{"Very small positive", 0.001, 0.00},
		{"Installment", 945.5960, 945.60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected bool
	}{
		{"Zero", 0, true},
		{"Negative", -12.5, true},
		{"NaN", math.NaN(), false},
		{"Positive infinity", math.Inf(1), false},
		{"Negative infinity", math.Inf(-1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsFinite(tt.input); result != tt.expected {
				t.Errorf("IsFinite(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		n        float64
		min      float64
		max      float64
		expected float64
	}{
		{"Inside range", 50, 0, 100, 50},
		{"Below range", -5, 0, 100, 0},
		{"Above range", 1e15, 0, 1e12, 1e12},
		{"Lower bound inclusive", 0, 0, 100, 0},
		{"Upper bound inclusive", 1000, 0, 1000, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Clamp(tt.n, tt.min, tt.max); result != tt.expected {
				t.Errorf("Clamp(%v, %v, %v) = %v, expected %v", tt.n, tt.min, tt.max, result, tt.expected)
			}
		})
	}

	if result := Clamp(math.NaN(), 0, 1); !math.IsNaN(result) {
		t.Errorf("Clamp(NaN) = %v, expected NaN", result)
	}
}

func TestPercentToRate(t *testing.T) {
	if got := PercentToRate(2); got != 0.02 {
		t.Errorf("PercentToRate(2) = %v, expected 0.02", got)
	}
	if got := PercentToRate(0); got != 0 {
		t.Errorf("PercentToRate(0) = %v, expected 0", got)
	}
}
