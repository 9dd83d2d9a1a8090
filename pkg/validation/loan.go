// Package validation checks parsed loan input before it reaches the calculator.
package validation

import (
	"math"
	"strconv"
	"strings"

	"github.com/iwvelando/loan-simulator/pkg/constants"
	"github.com/iwvelando/loan-simulator/pkg/loans"
	"github.com/iwvelando/loan-simulator/pkg/mathutil"
)

const (
	msgPrincipalInvalid = "enter a valid loan amount (greater than zero)"
	msgPrincipalHigh    = "the loan amount is too high; review the number entered"
	msgRateInvalid      = "enter a valid monthly interest rate (zero or greater)"
	msgRateHigh         = "the monthly rate looks too high; confirm it is a monthly rate"
	msgMonthsInvalid    = "enter a valid number of installments (a whole number greater than zero)"
	msgMonthsHigh       = "the number of installments is too high; confirm the contract term"
)

// ValidateLoan checks the parsed principal, monthly rate (percent) and number
// of installments. Every field is checked; on failure the returned error is a
// *Errors holding one violation per offending field. Amounts above the limits
// block calculation just like malformed values do.
func ValidateLoan(principal, ratePercent, months float64) (loans.Input, error) {
	errs := &Errors{}

	switch {
	case !mathutil.IsFinite(principal) || principal <= 0:
		errs.add(FieldPrincipal, CodeInvalid, msgPrincipalInvalid)
	case principal > constants.MaxPrincipal:
		errs.add(FieldPrincipal, CodeOutOfRange, msgPrincipalHigh)
	}

	switch {
	case !mathutil.IsFinite(ratePercent) || ratePercent < 0:
		errs.add(FieldRate, CodeInvalid, msgRateInvalid)
	case ratePercent > constants.MaxMonthlyRatePercent:
		errs.add(FieldRate, CodeOutOfRange, msgRateHigh)
	}

	switch {
	case !mathutil.IsFinite(months) || months <= 0 || months != math.Trunc(months):
		errs.add(FieldMonths, CodeInvalid, msgMonthsInvalid)
	case months > constants.MaxInstallments:
		errs.add(FieldMonths, CodeOutOfRange, msgMonthsHigh)
	}

	if len(errs.Violations) > 0 {
		return loans.Input{}, errs
	}

	return loans.Input{
		Principal:   principal,
		RatePercent: ratePercent,
		Months:      int(months),
	}, nil
}

// ParseMonths reads the installment count as a plain number. Thousands
// separators are not accepted. Empty or unparseable text yields NaN.
func ParseMonths(text string) float64 {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return math.NaN()
	}
	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return math.NaN()
	}
	return n
}
