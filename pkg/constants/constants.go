// Package constants provides shared constants for the loan-simulator application.
package constants

// Loan limits. Values beyond these are rejected by validation even though they
// are numerically valid.
const (
	// MaxPrincipal is the largest accepted loan amount.
	MaxPrincipal = 1e9

	// MaxMonthlyRatePercent is the largest accepted monthly interest rate, in percent.
	MaxMonthlyRatePercent = 200.0

	// MaxInstallments is the largest accepted number of monthly installments (40 years).
	MaxInstallments = 480
)

// Input normalization bounds applied before display formatting.
const (
	// MaxCurrencyInput caps a typed currency amount before it is reformatted.
	MaxCurrencyInput = 1e12

	// MaxPercentInput caps a typed percentage before it is reformatted.
	MaxPercentInput = 1000.0

	// InputFractionDigits is the number of fraction digits always written for
	// money, and the minimum written for percentages.
	InputFractionDigits = 2

	// PercentFractionDigits is the most fraction digits kept for a typed
	// percentage, so rates such as 0,375 survive reformatting.
	PercentFractionDigits = 4
)

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencySymbol is prefixed to formatted amounts.
	CurrencySymbol = "R$"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024

	// DefaultRateLimitRequests is the number of requests a client may make per window
	DefaultRateLimitRequests = 60

	// DefaultRateLimitWindow is the rate limit window, as a Go duration string
	DefaultRateLimitWindow = "1m"
)
