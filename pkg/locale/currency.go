package locale

import (
	"github.com/iwvelando/loan-simulator/pkg/constants"
	"github.com/iwvelando/loan-simulator/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Tag is the language used for every formatted number.
var Tag = language.BrazilianPortuguese

// FormatDecimal renders n with pt-BR grouping and at most maxFractionDigits
// fraction digits (e.g. "10.000,5"). Trailing zeros are dropped, so whole
// numbers carry no comma and must not be fed back to ParseDecimal. n must be
// finite.
func FormatDecimal(n float64, maxFractionDigits int) string {
	if maxFractionDigits < 0 {
		maxFractionDigits = 0
	}
	return formatFraction(n, 0, maxFractionDigits)
}

// FormatFixed renders n with exactly two fraction digits (e.g. "1.347,20").
// The comma is always present, so ParseDecimal reads the text back as n
// rounded to cents.
func FormatFixed(n float64) string {
	return formatFraction(n, constants.InputFractionDigits, constants.InputFractionDigits)
}

// FormatCurrency returns an amount with the currency symbol (e.g. "R$ 945,60").
func FormatCurrency(amount float64) string {
	return constants.CurrencySymbol + " " + FormatFixed(amount)
}

func formatFraction(n float64, minFractionDigits, maxFractionDigits int) string {
	// Avoid "-0,00" for amounts that round to zero cents.
	if maxFractionDigits == constants.InputFractionDigits && mathutil.Round(n) == 0 {
		n = 0
	}
	p := message.NewPrinter(Tag)
	return p.Sprint(number.Decimal(n,
		number.MinFractionDigits(minFractionDigits),
		number.MaxFractionDigits(maxFractionDigits),
	))
}

// NormalizeCurrencyInput reformats a typed amount for display, clamped to
// [0, MaxCurrencyInput] and rounded to cents. The text always carries a
// decimal comma, so ParseDecimal(text) equals the returned number. ok is
// false when the input does not hold a finite number, in which case it should
// be left as typed.
func NormalizeCurrencyInput(text string) (normalized string, value float64, ok bool) {
	return normalizeInput(text, constants.MaxCurrencyInput, constants.InputFractionDigits)
}

// NormalizePercentInput reformats a typed percentage for display, clamped to
// [0, MaxPercentInput] with two to four fraction digits. Like
// NormalizeCurrencyInput, the text parses back to the returned number.
func NormalizePercentInput(text string) (normalized string, value float64, ok bool) {
	return normalizeInput(text, constants.MaxPercentInput, constants.PercentFractionDigits)
}

func normalizeInput(text string, max float64, maxFractionDigits int) (string, float64, bool) {
	n := ParseDecimal(text)
	if !mathutil.IsFinite(n) {
		return "", 0, false
	}
	normalized := formatFraction(mathutil.Clamp(n, 0, max), constants.InputFractionDigits, maxFractionDigits)
	return normalized, ParseDecimal(normalized), true
}
