// Package loans computes fixed-installment (PMT) amortized loan payments.
package loans

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/loan-simulator/pkg/mathutil"
)

// ErrComputation is matched by every ComputationError.
var ErrComputation = errors.New("unable to compute installment")

// Input holds a validated loan request. Only validation should build one.
type Input struct {
	Principal   float64 `json:"principal"`
	RatePercent float64 `json:"ratePercent"` // monthly, as a percentage
	Months      int     `json:"months"`
}

// Result holds the computed values for a loan.
type Result struct {
	Installment   float64 `json:"installment"`
	TotalPaid     float64 `json:"totalPaid"`
	TotalInterest float64 `json:"totalInterest"`
}

// ComputationError reports validated input for which the formula produced a
// non-finite, zero or negative installment.
type ComputationError struct {
	Input       Input
	Installment float64
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("%s: principal %v, rate %v%%, %d months gave %v; review the rate and installments",
		ErrComputation, e.Input.Principal, e.Input.RatePercent, e.Input.Months, e.Installment)
}

// Is reports whether target is ErrComputation.
func (e *ComputationError) Is(target error) bool {
	return target == ErrComputation
}

// CalculateInstallment returns the fixed periodic payment for a fully
// amortizing loan:
//
//	PMT = P * i / (1 - (1+i)^-n)
//
// A zero rate divides the principal evenly. NaN is returned when months is not
// positive or when 1+i rounds to exactly 1, where the denominator collapses to
// zero.
//
// The denominator is evaluated as -expm1(-n*log1p(i)) so that small rates keep
// their precision instead of cancelling against 1.
func CalculateInstallment(principal, monthlyRate float64, months int) float64 {
	if months <= 0 {
		return math.NaN()
	}

	if monthlyRate == 0 {
		return principal / float64(months)
	}

	if 1+monthlyRate == 1 {
		return math.NaN()
	}

	denom := -math.Expm1(-float64(months) * math.Log1p(monthlyRate))
	if denom == 0 {
		return math.NaN()
	}
	return principal * (monthlyRate / denom)
}

// Compute applies CalculateInstallment to a validated input and derives the
// totals. It is a pure function of its input.
//
// A positive rate always yields an installment above principal/months; when
// rounding leaves it at or below that, the input is reported as a
// ComputationError instead.
func Compute(input Input) (Result, error) {
	installment := CalculateInstallment(input.Principal, mathutil.PercentToRate(input.RatePercent), input.Months)
	if !mathutil.IsFinite(installment) || installment <= 0 {
		return Result{}, &ComputationError{Input: input, Installment: installment}
	}
	if input.RatePercent > 0 && installment <= input.Principal/float64(input.Months) {
		return Result{}, &ComputationError{Input: input, Installment: installment}
	}

	totalPaid := installment * float64(input.Months)
	return Result{
		Installment:   installment,
		TotalPaid:     totalPaid,
		TotalInterest: totalPaid - input.Principal,
	}, nil
}
