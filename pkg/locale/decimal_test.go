package locale

import (
	"math"
	"testing"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"Thousands and decimal comma", "10.000,50", 10000.50},
		{"Plain integer", "1500", 1500},
		{"Comma decimal only", "2,5", 2.5},
		{"Lone period is decimal point", "2.5", 2.5},
		{"Multiple thousands groups", "1.234.567,89", 1234567.89},
		{"Currency symbol and spaces", "  R$ 10.000,00 ", 10000},
		{"Percent sign", "1,99%", 1.99},
		{"Negative value", "-5", -5},
		{"Negative with comma", "-1.000,25", -1000.25},
		{"Zero", "0", 0},
		{"Leading comma", ",5", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseDecimal(tt.input)
			if result != tt.expected {
				t.Errorf("ParseDecimal(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseDecimalNaN(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"abc",
		"-",
		",",
		"1.2.3",
		"1,2,3",
		"--5",
		"5-",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			if result := ParseDecimal(input); !math.IsNaN(result) {
				t.Errorf("ParseDecimal(%q) = %v, expected NaN", input, result)
			}
		})
	}
}

func TestParseDecimalDoesNotRound(t *testing.T) {
	if result := ParseDecimal("0,123456789"); result != 0.123456789 {
		t.Errorf("ParseDecimal kept %v, expected full precision", result)
	}
}
