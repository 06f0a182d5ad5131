// Package constants provides shared constants for the mortgage-engine application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DaysPerYear is the day-count basis for per-diem interest
	DaysPerYear = 365

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Financed-fee constants
const (
	// FHAUpfrontMIPRate is the flat FHA UFMIP rate as a percentage of the base loan
	FHAUpfrontMIPRate = 1.75

	// FHAUpfrontMIPFactor is the multiplier applied to a base loan when the
	// UFMIP is financed, and the divisor used to back it out for MI purposes
	FHAUpfrontMIPFactor = 1.0175

	// VAFundingFeeFactor approximates the financed VA funding fee when the
	// usage class and down-payment tier are not yet known (CLTV projection)
	VAFundingFeeFactor = 1.023
)

// Program limit constants
const (
	// MaxCombinedLTV is the ceiling on combined loan-to-value once
	// subordinate assistance financing is stacked on the first mortgage
	MaxCombinedLTV = 105.0

	// DownPaymentStep is the granularity corrected down payments round up to
	DownPaymentStep = 0.5
)

// APR solver constants
const (
	// APRSearchFloor is the lower bracket bound for the APR bisection, a
	// decimal annual rate
	APRSearchFloor = 0.0001

	// APRSearchCeiling is the upper bracket bound for the APR bisection, a
	// decimal annual rate
	APRSearchCeiling = 0.30

	// APRMaxIterations bounds the bisection loop
	APRMaxIterations = 100

	// APRTolerance is the present-value gap below which the solver converges
	APRTolerance = 1e-6
)

// Prepaid reserve constants
const (
	// PrepaidTaxMonths is the number of months of property tax collected at closing
	PrepaidTaxMonths = 3

	// PrepaidInsuranceMonths is the number of months of insurance premium collected at closing
	PrepaidInsuranceMonths = 15

	// PrepaidInterestDays is the number of days of per-diem interest collected at closing
	PrepaidInterestDays = 15
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
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
	// DefaultServerAddress is the default HTTP listen address for the quote API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)
