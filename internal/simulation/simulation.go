// Package simulation ties input parsing, validation and the installment
// formula together. It is the single entry point used by the CLI and the API.
package simulation

import (
	"errors"
	"fmt"

	"github.com/iwvelando/loan-simulator/internal/config"
	"github.com/iwvelando/loan-simulator/pkg/loans"
	"github.com/iwvelando/loan-simulator/pkg/locale"
	"github.com/iwvelando/loan-simulator/pkg/validation"
	"go.uber.org/zap"
)

// ComputationMessage is shown when validated input cannot be computed.
const ComputationMessage = "unable to calculate with the values entered; review the rate and installments"

// Outcome holds the result of one named simulation. Exactly one of Result or
// Err is meaningful.
type Outcome struct {
	Name   string
	Input  loans.Input
	Result loans.Result
	Err    error
}

// Failed reports whether the simulation produced an error.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// ComputeLoan parses raw user text, validates it and computes the loan. The
// principal and rate are pt-BR decimals; months is a plain number.
//
// On failure the error is either a *validation.Errors listing every broken
// rule or a *loans.ComputationError when validated input still produced a
// degenerate installment.
func ComputeLoan(rawPrincipal, rawRatePercent, rawMonths string) (loans.Result, error) {
	_, result, err := Simulate(rawPrincipal, rawRatePercent, rawMonths)
	return result, err
}

// Simulate behaves like ComputeLoan and also returns the validated input. The
// input is only set when validation passed.
func Simulate(rawPrincipal, rawRatePercent, rawMonths string) (loans.Input, loans.Result, error) {
	input, err := Parse(rawPrincipal, rawRatePercent, rawMonths)
	if err != nil {
		return loans.Input{}, loans.Result{}, err
	}
	result, err := loans.Compute(input)
	return input, result, err
}

// Parse normalizes and validates raw text without computing anything.
func Parse(rawPrincipal, rawRatePercent, rawMonths string) (loans.Input, error) {
	return validation.ValidateLoan(
		locale.ParseDecimal(rawPrincipal),
		locale.ParseDecimal(rawRatePercent),
		validation.ParseMonths(rawMonths),
	)
}

// IsValidationError reports whether err came from input validation.
func IsValidationError(err error) bool {
	var verrs *validation.Errors
	return errors.As(err, &verrs)
}

// IsComputationError reports whether err came from a degenerate formula result.
func IsComputationError(err error) bool {
	return errors.Is(err, loans.ErrComputation)
}

// Run computes every configured simulation. A failing simulation is logged and
// recorded in its Outcome; the remaining ones still run.
func Run(logger *zap.Logger, conf config.Configuration) []Outcome {
	if logger == nil {
		logger = zap.NewNop()
	}

	outcomes := make([]Outcome, 0, len(conf.Simulations))
	for i, sim := range conf.Simulations {
		outcome := Outcome{Name: sim.DisplayName(i)}

		input, result, err := Simulate(sim.Principal, sim.Rate, sim.Months)
		outcome.Input = input
		outcome.Result = result
		outcome.Err = err

		if err != nil {
			logger.Warn(fmt.Sprintf("simulation %s failed", outcome.Name),
				zap.String("op", "simulation.Run"),
				zap.Bool("validation", IsValidationError(err)),
				zap.Error(err),
			)
		} else {
			logger.Debug(fmt.Sprintf("simulation %s computed", outcome.Name),
				zap.String("op", "simulation.Run"),
				zap.Float64("installment", outcome.Result.Installment),
				zap.Int("months", input.Months),
			)
		}

		outcomes = append(outcomes, outcome)
	}

	return outcomes
}

// ErrorMessages returns the user-facing messages carried by err: one per
// violated rule for validation failures, a single message for computation
// failures and nil for anything else.
func ErrorMessages(err error) []string {
	var verrs *validation.Errors
	if errors.As(err, &verrs) {
		return verrs.Messages()
	}
	if IsComputationError(err) {
		return []string{ComputationMessage}
	}
	return nil
}
