// Package renderer turns engine output into markdown for the terminal.
package renderer

import (
	"github.com/oakfin/tradecal"
	"github.com/shopspring/decimal"
)

// usd renders a decimal amount as a dollar string.
func usd(d decimal.Decimal) string { return tradecal.USD(d).String() }

// signedUSD renders a decimal amount with an explicit '+' when positive.
func signedUSD(d decimal.Decimal) string { return tradecal.USD(d).SignedString() }
