package tradecal

import (
	"slices"

	"github.com/shopspring/decimal"
)

// CompletedTrade is a matched buy/sell pair for one symbol.
//
// It is created once, at matching time, from exactly one buy record and
// one sell record, and never mutated afterwards. The full set is
// recomputed from scratch on every report.
type CompletedTrade struct {
	Symbol           string          `json:"symbol"`
	BuyDate          Date            `json:"buyDate"`
	SellDate         Date            `json:"sellDate"`
	Shares           decimal.Decimal `json:"shares"`     // taken from the sell record
	BuyAmount        decimal.Decimal `json:"buyAmount"`  // absolute value of the matched buy's cash effect
	SellAmount       decimal.Decimal `json:"sellAmount"` // the sell's cash effect
	Profit           decimal.Decimal `json:"profit"`
	ProfitPercentage Percent         `json:"profitPercentage"`
}

// DailyBucket aggregates the completed trades whose sell date falls on
// one calendar day. Trades appear in matching order, not sorted.
type DailyBucket struct {
	Date        Date             `json:"date"`
	Trades      []CompletedTrade `json:"trades"`
	TotalProfit decimal.Decimal  `json:"totalProfit"`
	TotalTrades int              `json:"totalTrades"`
	HasActivity bool             `json:"hasActivity"`
}

// Summary is the portfolio-level rollup of one report.
type Summary struct {
	TotalInvested decimal.Decimal `json:"totalInvested"`
	TotalProfit   decimal.Decimal `json:"totalProfit"`
	TotalWins     int             `json:"totalWins"`
	TotalLosses   int             `json:"totalLosses"`
	TotalTrades   int             `json:"totalTrades"`
	WinRate       Percent         `json:"winRate"`
}

// Report is the complete output of the matcher and aggregator.
//
// Days is sorted ascending by date and holds one bucket per day with at
// least one completed trade. Open lists the buy records left unmatched
// at the end of matching; they are excluded from every statistic.
type Report struct {
	Trades  []CompletedTrade `json:"trades"`
	Days    []DailyBucket    `json:"days"`
	Summary Summary          `json:"summary"`
	Open    []Record         `json:"open,omitempty"`
}

// NewReport matches sells against prior buys per symbol (FIFO) and folds
// the completed trades into daily buckets and a portfolio summary.
//
// The input is treated as read-only: records are copied before sorting.
// Unmatched sells (no prior buy for the symbol, e.g. data starting
// mid-position) are dropped silently, as are buys never consumed by a
// sell. Matching is 1:1 — a sell consumes exactly one buy, whatever the
// share counts say.
func NewReport(records []Record) *Report {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b Record) int {
		return a.Date.Compare(b.Date)
	})

	// Partition matchable records per symbol, preserving the global
	// date order within each group. Symbols keep first-seen order so
	// that a report is deterministic for a given input.
	groups := make(map[string][]Record)
	var symbols []string
	for _, r := range sorted {
		if !r.Matchable() {
			continue
		}
		if _, ok := groups[r.Symbol]; !ok {
			symbols = append(symbols, r.Symbol)
		}
		groups[r.Symbol] = append(groups[r.Symbol], r)
	}

	report := &Report{}
	for _, symbol := range symbols {
		var queue []Record // pending buys, oldest first
		for _, r := range groups[symbol] {
			switch r.Action {
			case ActionBuy:
				queue = append(queue, r)
			case ActionSell:
				if len(queue) == 0 {
					continue // unmatched sell, dropped silently
				}
				var buy Record
				buy, queue = queue[0], queue[1:]
				report.Trades = append(report.Trades, newCompletedTrade(buy, r))
			}
		}
		report.Open = append(report.Open, queue...)
	}

	report.Days = bucketBySellDate(report.Trades)
	report.Summary = newSummary(records, report.Trades)
	return report
}

func newCompletedTrade(buy, sell Record) CompletedTrade {
	buyAmount := buy.AmountUSD.Abs()
	profit := sell.AmountUSD.Add(buy.AmountUSD) // buy amount is negative
	var pct Percent
	if !buyAmount.IsZero() {
		pct = Percent(profit.Div(buyAmount).InexactFloat64() * 100)
	}
	return CompletedTrade{
		Symbol:           sell.Symbol,
		BuyDate:          buy.Date,
		SellDate:         sell.Date,
		Shares:           sell.Shares,
		BuyAmount:        buyAmount,
		SellAmount:       sell.AmountUSD,
		Profit:           profit,
		ProfitPercentage: pct,
	}
}

// bucketBySellDate groups completed trades by sell date and returns the
// buckets sorted ascending. Within a bucket trades keep matching order.
func bucketBySellDate(trades []CompletedTrade) []DailyBucket {
	index := make(map[Date]int)
	var days []DailyBucket
	for _, t := range trades {
		i, ok := index[t.SellDate]
		if !ok {
			i = len(days)
			index[t.SellDate] = i
			days = append(days, DailyBucket{Date: t.SellDate, HasActivity: true})
		}
		days[i].Trades = append(days[i].Trades, t)
		days[i].TotalProfit = days[i].TotalProfit.Add(t.Profit)
		days[i].TotalTrades++
	}
	slices.SortFunc(days, func(a, b DailyBucket) int {
		return a.Date.Compare(b.Date)
	})
	return days
}

// newSummary computes the portfolio rollup. TotalInvested scans the full
// raw record list, not just the matched trades.
func newSummary(records []Record, trades []CompletedTrade) Summary {
	var s Summary
	for _, r := range records {
		if r.Invested() {
			s.TotalInvested = s.TotalInvested.Add(r.AmountUSD.Abs())
		}
	}
	for _, t := range trades {
		s.TotalProfit = s.TotalProfit.Add(t.Profit)
		switch {
		case t.Profit.IsPositive():
			s.TotalWins++
		case t.Profit.IsNegative():
			s.TotalLosses++
		}
	}
	s.TotalTrades = len(trades)
	if s.TotalTrades > 0 {
		s.WinRate = Percent(float64(s.TotalWins) / float64(s.TotalTrades) * 100)
	}
	return s
}
