package tradecal

import (
	"github.com/shopspring/decimal"
)

// Action is a typed string for the closed set of brokerage actions a
// ledger record can carry.
type Action string

// Actions recorded in a ledger. Matching only inspects ActionBuy and
// ActionSell; all others contribute, at most, to portfolio totals.
const (
	ActionBuy       Action = "buy"
	ActionSell      Action = "sell"
	ActionDividend  Action = "dividend"
	ActionDeposit   Action = "deposit"
	ActionTaxJune   Action = "tax_june"
	ActionTaxJuly   Action = "tax_july"
	ActionTaxAugust Action = "tax_august"
)

// ParseAction maps a raw action string onto the closed action set.
// Anything outside the known set, including the empty string, defaults
// to ActionBuy. This defaulting happens once, at ingestion; the matching
// algorithm never sees an unknown action.
func ParseAction(s string) Action {
	switch a := Action(s); a {
	case ActionBuy, ActionSell, ActionDividend, ActionDeposit,
		ActionTaxJune, ActionTaxJuly, ActionTaxAugust:
		return a
	default:
		return ActionBuy
	}
}

// Record is one brokerage action in the ledger.
//
// AmountUSD is the signed cash effect: buys are negative (cash out),
// sells and deposits positive, taxes negative. The engine trusts this
// sign convention and does not verify it.
type Record struct {
	Date      Date            `json:"date"`
	Symbol    string          `json:"symbol,omitempty"` // empty for cash-only rows (deposits, taxes)
	Action    Action          `json:"action"`
	Shares    decimal.Decimal `json:"shares,omitempty"` // zero when the action carries no shares
	AmountUSD decimal.Decimal `json:"amount_usd"`
}

// Matchable reports whether the record participates in trade matching:
// a buy or sell tied to an instrument.
func (r Record) Matchable() bool {
	return r.Symbol != "" && (r.Action == ActionBuy || r.Action == ActionSell)
}

// Invested reports whether the record counts toward the portfolio's
// total invested capital (buys and deposits, matched or not).
func (r Record) Invested() bool {
	return r.Action == ActionBuy || r.Action == ActionDeposit
}
