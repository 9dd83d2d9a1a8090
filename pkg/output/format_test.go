package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iwvelando/loan-simulator/internal/config"
	"github.com/iwvelando/loan-simulator/internal/simulation"
	"go.uber.org/zap"
)

func testOutcomes() []simulation.Outcome {
	conf := config.Configuration{
		Simulations: []config.Simulation{
			{Name: "personal", Principal: "10.000,00", Rate: "2", Months: "12"},
			{Name: `quoted "loan"`, Principal: "-5", Rate: "1", Months: "10"},
		},
	}
	return simulation.Run(zap.NewNop(), conf)
}

func TestPrettyFormat(t *testing.T) {
	var buf bytes.Buffer
	PrettyFormat(&buf, testOutcomes())
	output := buf.String()

	expected := []string{
		"--- Results for simulation personal ---",
		"Principal      | R$ 10.000,00",
		"Installments   | 12",
		"Installment    | R$ 945,60",
		"Total paid     | R$ 11.347,15",
		"Total interest | R$ 1.347,15",
		`--- Results for simulation quoted "loan" ---`,
		"error: enter a valid loan amount",
	}
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("PrettyFormat output missing %q:\n%s", want, output)
		}
	}

	if strings.HasSuffix(output, "\n\n") {
		t.Error("PrettyFormat should not end with a blank separator line")
	}
}

func TestCsvString(t *testing.T) {
	csv := CsvString(testOutcomes())
	lines := strings.Split(strings.TrimSuffix(csv, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d lines:\n%s", len(lines), csv)
	}

	if lines[0] != `"name","principal","rate","months","installment","total paid","total interest","error"` {
		t.Errorf("unexpected header %s", lines[0])
	}
	if lines[1] != `"personal","10000.00","2","12","945.60","11347.15","1347.15",""` {
		t.Errorf("unexpected success row %s", lines[1])
	}
	if !strings.HasPrefix(lines[2], `"quoted ""loan""","","","","","","","enter a valid loan amount`) {
		t.Errorf("unexpected failure row %s", lines[2])
	}
}

func TestCsvFormat(t *testing.T) {
	var buf bytes.Buffer
	CsvFormat(&buf, testOutcomes())
	if buf.String() != CsvString(testOutcomes()) {
		t.Error("CsvFormat output differs from CsvString")
	}
}

func TestErrorLines(t *testing.T) {
	if lines := ErrorLines(nil); lines != nil {
		t.Errorf("ErrorLines(nil) = %v, expected nil", lines)
	}
	outcomes := testOutcomes()
	if lines := ErrorLines(outcomes[1].Err); len(lines) != 1 {
		t.Errorf("ErrorLines() = %v, expected a single principal message", lines)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name      string
		expected  Format
		expectErr bool
	}{
		{"pretty", Pretty, false},
		{"csv", CSV, false},
		{"", Pretty, false},
		{"PRETTY", Pretty, false},
		{" csv ", CSV, false},
		{"json", "", true},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := ParseFormat(tt.name)
			if tt.expectErr {
				if err == nil {
					t.Fatalf("ParseFormat(%q) expected error but got none", tt.name)
				}
				if !strings.Contains(err.Error(), tt.name) {
					t.Errorf("error %q does not name the rejected format", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) unexpected error = %v", tt.name, err)
			}
			if format != tt.expected {
				t.Errorf("ParseFormat(%q) = %q, expected %q", tt.name, format, tt.expected)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	outcomes := testOutcomes()

	var pretty bytes.Buffer
	if err := Write(&pretty, Pretty, outcomes); err != nil {
		t.Fatalf("Write(pretty) error = %v", err)
	}
	if !strings.HasPrefix(pretty.String(), "--- Results for simulation") {
		t.Errorf("unexpected pretty output:\n%s", pretty.String())
	}

	var csv bytes.Buffer
	if err := Write(&csv, CSV, outcomes); err != nil {
		t.Fatalf("Write(csv) error = %v", err)
	}
	if csv.String() != CsvString(outcomes) {
		t.Errorf("Write(csv) differs from CsvString")
	}

	var unknown bytes.Buffer
	if err := Write(&unknown, Format("xml"), outcomes); err == nil {
		t.Error("expected error for unknown format")
	}
	if unknown.Len() != 0 {
		t.Errorf("expected no output for unknown format, got %q", unknown.String())
	}
}
