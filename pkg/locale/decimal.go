// Package locale converts between pt-BR formatted decimal text and float64
// values. Periods group thousands and the comma is the decimal separator.
package locale

import (
	"math"
	"strconv"
	"strings"
)

// ParseDecimal converts locale-formatted text such as "10.000,50" into a
// number. Every rune other than digits, comma, period and minus is discarded
// first. When a comma is present all periods are treated as thousands
// separators; otherwise a lone period is read as the decimal point.
//
// Empty or unparseable input yields NaN, so callers must check the result
// with math.IsNaN (or mathutil.IsFinite) before using it.
func ParseDecimal(text string) float64 {
	cleaned := clean(strings.TrimSpace(text))
	if cleaned == "" {
		return math.NaN()
	}

	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	}

	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return math.NaN()
	}
	return n
}

func clean(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9', r == ',', r == '.', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}
