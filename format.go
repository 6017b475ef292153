package tradecal

import (
	"math"

	"github.com/shopspring/decimal"
)

// NonFinite is what the formatters render for NaN or infinite input.
const NonFinite = "—"

// FormatCurrency renders an amount as US dollars: currency symbol,
// thousands separators, at most two fraction digits (rounded half away
// from zero), and a leading minus sign for negative amounts.
//
//	FormatCurrency(-1234.5) == "-$1,234.50"
//	FormatCurrency(1500)    == "$1,500"
//
// NaN and infinities render as NonFinite; the function never panics.
func FormatCurrency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return NonFinite
	}
	return USD(decimal.NewFromFloat(amount)).String()
}

// FormatPercentage renders a percentage with one fraction digit and an
// explicit leading '+' for strictly positive values. Zero and negative
// values render without a forced sign character.
//
//	FormatPercentage(10)   == "+10.0%"
//	FormatPercentage(-3.25) == "-3.2%"
//
// NaN and infinities render as NonFinite; the function never panics.
func FormatPercentage(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NonFinite
	}
	return Percent(v).SignedString()
}
