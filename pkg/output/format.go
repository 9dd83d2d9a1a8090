// Package output provides utilities for formatting and displaying simulation results.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/loan-simulator/internal/simulation"
	"github.com/iwvelando/loan-simulator/pkg/constants"
	"github.com/iwvelando/loan-simulator/pkg/locale"
	"github.com/shopspring/decimal"
)

// Format selects how outcomes are rendered.
type Format string

const (
	Pretty Format = constants.OutputFormatPretty
	CSV    Format = constants.OutputFormatCSV
)

// ParseFormat resolves a configured or command-line format name. Names are
// case-insensitive; an empty name selects Pretty.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", Pretty:
		return Pretty, nil
	case CSV:
		return CSV, nil
	default:
		return "", fmt.Errorf("expected output format of %s or %s, got %s", Pretty, CSV, name)
	}
}

// Write renders outcomes to w in the given format.
func Write(w io.Writer, format Format, outcomes []simulation.Outcome) error {
	switch format {
	case Pretty:
		PrettyFormat(w, outcomes)
	case CSV:
		CsvFormat(w, outcomes)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
	return nil
}

// PrettyFormat writes a human-readable rather than machine-readable report
// with amounts in pt-BR currency notation.
func PrettyFormat(w io.Writer, outcomes []simulation.Outcome) {
	for i, outcome := range outcomes {
		fmt.Fprintf(w, "--- Results for simulation %s ---\n", outcome.Name)
		if outcome.Failed() {
			for _, line := range ErrorLines(outcome.Err) {
				fmt.Fprintf(w, "error: %s\n", line)
			}
		} else {
			fmt.Fprintf(w, "Principal      | %s\n", locale.FormatCurrency(outcome.Input.Principal))
			fmt.Fprintf(w, "Monthly rate   | %s%%\n", locale.FormatDecimal(outcome.Input.RatePercent, 4))
			fmt.Fprintf(w, "Installments   | %d\n", outcome.Input.Months)
			fmt.Fprintf(w, "Installment    | %s\n", locale.FormatCurrency(outcome.Result.Installment))
			fmt.Fprintf(w, "Total paid     | %s\n", locale.FormatCurrency(outcome.Result.TotalPaid))
			fmt.Fprintf(w, "Total interest | %s\n", locale.FormatCurrency(outcome.Result.TotalInterest))
		}
		if i < len(outcomes)-1 {
			fmt.Fprintf(w, "\n")
		}
	}
}

// CsvFormat writes comma-separated values with plain two-place amounts.
func CsvFormat(w io.Writer, outcomes []simulation.Outcome) {
	_, _ = io.WriteString(w, CsvString(outcomes))
}

// CsvString renders the CSV representation of outcomes.
func CsvString(outcomes []simulation.Outcome) string {
	var b strings.Builder
	b.WriteString(`"name","principal","rate","months","installment","total paid","total interest","error"` + "\n")
	for _, outcome := range outcomes {
		if outcome.Failed() {
			fmt.Fprintf(&b, `"%s","","","","","","","%s"`+"\n",
				escape(outcome.Name), escape(strings.Join(ErrorLines(outcome.Err), "; ")))
			continue
		}
		fmt.Fprintf(&b, `"%s","%s","%s","%d","%s","%s","%s",""`+"\n",
			escape(outcome.Name),
			fixed(outcome.Input.Principal),
			decimal.NewFromFloat(outcome.Input.RatePercent).String(),
			outcome.Input.Months,
			fixed(outcome.Result.Installment),
			fixed(outcome.Result.TotalPaid),
			fixed(outcome.Result.TotalInterest),
		)
	}
	return b.String()
}

// ErrorLines splits an outcome error into displayable messages. Validation
// failures yield one line per violated rule.
func ErrorLines(err error) []string {
	if err == nil {
		return nil
	}
	if messages := simulation.ErrorMessages(err); len(messages) > 0 {
		return messages
	}
	return []string{err.Error()}
}

func fixed(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func escape(s string) string {
	return strings.ReplaceAll(s, `"`, `""`)
}
