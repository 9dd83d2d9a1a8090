package testutil

import (
	"os"
	"testing"

	"github.com/iwvelando/loan-simulator/internal/simulation"
	"github.com/iwvelando/loan-simulator/pkg/loans"
)

func TestFindOutcome(t *testing.T) {
	outcomes := []simulation.Outcome{
		{Name: "personal", Result: loans.Result{Installment: 945.60}},
		{Name: "mortgage", Result: loans.Result{Installment: 886.70}},
		{Name: "personal loan", Result: loans.Result{Installment: 1}},
	}

	tests := []struct {
		name        string
		searchName  string
		expectFound bool
		installment float64
	}{
		{"Find first outcome", "personal", true, 945.60},
		{"Find second outcome", "mortgage", true, 886.70},
		{"Name must match exactly", "personal loan", true, 1},
		{"Missing outcome", "car", false, 0},
		{"Empty name", "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FindOutcome(outcomes, tt.searchName)
			if tt.expectFound {
				if result == nil {
					t.Fatalf("FindOutcome(%q) returned nil", tt.searchName)
				}
				if result.Result.Installment != tt.installment {
					t.Errorf("FindOutcome(%q) installment = %v, expected %v", tt.searchName, result.Result.Installment, tt.installment)
				}
			} else if result != nil {
				t.Errorf("FindOutcome(%q) = %+v, expected nil", tt.searchName, result)
			}
		})
	}
}

func TestFindOutcomeReturnsSliceElement(t *testing.T) {
	outcomes := []simulation.Outcome{{Name: "a"}}
	found := FindOutcome(outcomes, "a")
	found.Name = "b"
	if outcomes[0].Name != "b" {
		t.Error("expected pointer into the original slice")
	}
}

func TestFindOutcomeNilSlice(t *testing.T) {
	if FindOutcome(nil, "a") != nil {
		t.Error("expected nil for nil slice")
	}
}

func TestWriteFile(t *testing.T) {
	path := WriteFile(t, "config.yaml", "simulations: []\n")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back file: %v", err)
	}
	if string(data) != "simulations: []\n" {
		t.Errorf("unexpected contents %q", data)
	}
}
