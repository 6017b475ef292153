package tradecal

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value for display purposes.
//
// Aggregation in the engine stays on raw decimals; Money only exists to
// render amounts the same way on every presentation surface.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M wraps a decimal amount and an ISO currency code into a Money.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// USD wraps a decimal amount as US dollars.
func USD(value decimal.Decimal) Money { return M(value, "USD") }

// currency returns the money's currency.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the formatted money value: currency symbol, thousands
// separators, and the currency's fraction digits rounded half away from
// zero. Integral amounts drop the fraction part ("$1,500", "-$1,234.50").
// Negative values always carry a leading minus sign.
func (m Money) String() string {
	cur := m.currency()
	rounded := m.value.Round(int32(cur.Fraction))
	s := cur.Formatter().Format(rounded.Abs().Shift(int32(cur.Fraction)).IntPart())
	s = strings.TrimSuffix(s, cur.Decimal+strings.Repeat("0", cur.Fraction))
	if rounded.IsNegative() {
		s = "-" + s
	}
	return s
}

// SignedString is like String with an explicit leading '+' for strictly
// positive values.
func (m Money) SignedString() string {
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) IsZero() bool     { return m.value.IsZero() }
func (m Money) IsPositive() bool { return m.value.IsPositive() }
func (m Money) IsNegative() bool { return m.value.IsNegative() }
