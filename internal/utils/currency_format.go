package utils

import (
	"github.com/shopspring/decimal"
)

// DefaultMinorUnitDigits is the number of fractional digits used when no currency is configured.
const DefaultMinorUnitDigits = 2

// FormatMinorUnits renders an integer amount of minor units as a fixed-point string.
// Example: 12345 with 2 digits returns "123.45"
// Example: -5 with 2 digits returns "-0.05"
// Example: 700 with 0 digits returns "700"
func FormatMinorUnits(amount int64, digits int) string {
	return decimal.New(amount, -int32(digits)).StringFixed(int32(digits))
}
