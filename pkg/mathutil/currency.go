// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/loan-simulator/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsFinite reports whether val is neither NaN nor an infinity.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// Clamp limits n to the inclusive range [min, max]. NaN is returned unchanged.
func Clamp(n, min, max float64) float64 {
	return math.Min(max, math.Max(min, n))
}

// PercentToRate converts a percentage such as 2.5 into the fraction 0.025.
func PercentToRate(percent float64) float64 {
	return percent / constants.PercentageMultiplier
}
