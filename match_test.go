package tradecal

import (
	"reflect"
	"slices"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewReport_FIFO(t *testing.T) {
	// Two buys, one sell: the sell must consume the oldest buy, the
	// second buy stays open and produces no trade.
	records := []Record{
		buy("2024-01-01", "X", -100),
		buy("2024-01-02", "X", -200),
		sell("2024-01-03", "X", 150),
	}

	report := NewReport(records)

	if got := len(report.Trades); got != 1 {
		t.Fatalf("NewReport() produced %d trades, want 1", got)
	}
	trade := report.Trades[0]
	if !trade.Profit.Equal(amt(50)) {
		t.Errorf("Profit = %s, want 50", trade.Profit)
	}
	if !trade.BuyAmount.Equal(amt(100)) {
		t.Errorf("BuyAmount = %s, want 100 (oldest buy)", trade.BuyAmount)
	}
	if trade.BuyDate != MustParseDate("2024-01-01") {
		t.Errorf("BuyDate = %s, want 2024-01-01", trade.BuyDate)
	}
	if got := len(report.Open); got != 1 {
		t.Fatalf("Open positions = %d, want 1", got)
	}
	if !report.Open[0].AmountUSD.Equal(amt(-200)) {
		t.Errorf("open buy amount = %s, want -200", report.Open[0].AmountUSD)
	}
}

func TestNewReport_UnmatchedSell(t *testing.T) {
	// A sell with no prior buy is dropped silently: no trades, no panic.
	records := []Record{
		sell("2024-01-03", "X", 150),
		deposit("2024-01-04", 500),
	}

	report := NewReport(records)

	if len(report.Trades) != 0 {
		t.Errorf("NewReport() produced %d trades, want 0", len(report.Trades))
	}
	if len(report.Days) != 0 {
		t.Errorf("NewReport() produced %d daily buckets, want 0", len(report.Days))
	}
	if report.Summary.TotalTrades != 0 {
		t.Errorf("TotalTrades = %d, want 0", report.Summary.TotalTrades)
	}
}

func TestNewReport_WinRateWithoutTrades(t *testing.T) {
	report := NewReport(nil)
	if !report.Summary.WinRate.Equal(0) {
		t.Errorf("WinRate = %s, want exactly 0 for an empty report", report.Summary.WinRate)
	}
}

func TestNewReport_EndToEnd(t *testing.T) {
	records := []Record{
		{Date: MustParseDate("2024-03-01"), Symbol: "AAPL", Action: ActionBuy, Shares: amt(10), AmountUSD: amt(-1000)},
		{Date: MustParseDate("2024-03-05"), Symbol: "AAPL", Action: ActionSell, Shares: amt(10), AmountUSD: amt(1100)},
		{Date: MustParseDate("2024-03-05"), Action: ActionDeposit, AmountUSD: amt(500)},
	}

	report := NewReport(records)

	if got := len(report.Trades); got != 1 {
		t.Fatalf("len(Trades) = %d, want 1", got)
	}
	trade := report.Trades[0]
	if !trade.Profit.Equal(amt(100)) {
		t.Errorf("Profit = %s, want 100", trade.Profit)
	}
	if !trade.ProfitPercentage.Equal(10) {
		t.Errorf("ProfitPercentage = %s, want 10%%", trade.ProfitPercentage)
	}

	if got := len(report.Days); got != 1 {
		t.Fatalf("len(Days) = %d, want 1", got)
	}
	day := report.Days[0]
	if day.Date != MustParseDate("2024-03-05") {
		t.Errorf("bucket date = %s, want 2024-03-05", day.Date)
	}
	if !day.TotalProfit.Equal(amt(100)) {
		t.Errorf("bucket TotalProfit = %s, want 100", day.TotalProfit)
	}
	if !day.HasActivity {
		t.Error("bucket HasActivity = false, want true")
	}

	s := report.Summary
	if !s.TotalInvested.Equal(amt(1500)) {
		t.Errorf("TotalInvested = %s, want 1500 (1000 buy + 500 deposit)", s.TotalInvested)
	}
	if !s.TotalProfit.Equal(amt(100)) {
		t.Errorf("TotalProfit = %s, want 100", s.TotalProfit)
	}
	if s.TotalWins != 1 || s.TotalLosses != 0 {
		t.Errorf("wins/losses = %d/%d, want 1/0", s.TotalWins, s.TotalLosses)
	}
	if !s.WinRate.Equal(100) {
		t.Errorf("WinRate = %s, want 100%%", s.WinRate)
	}
}

func TestNewReport_Totals(t *testing.T) {
	// A mixed scenario: wins, losses, a zero-profit trade, an unmatched
	// sell, an open buy, and non-matchable actions.
	records := []Record{
		buy("2024-01-02", "A", -100),
		sell("2024-01-05", "A", 150), // win +50
		buy("2024-01-03", "B", -200),
		sell("2024-01-06", "B", 180), // loss -20
		buy("2024-01-04", "C", -300),
		sell("2024-01-05", "C", 300), // zero profit
		sell("2024-01-07", "D", 90),  // unmatched, dropped
		buy("2024-01-08", "E", -50),  // open position
		deposit("2024-01-01", 1000),
		{Date: MustParseDate("2024-01-09"), Symbol: "A", Action: ActionDividend, AmountUSD: amt(5)},
		{Date: MustParseDate("2024-06-15"), Action: ActionTaxJune, AmountUSD: amt(-40)},
	}

	report := NewReport(records)
	s := report.Summary

	if s.TotalTrades != len(report.Trades) {
		t.Errorf("TotalTrades = %d, want len(Trades) = %d", s.TotalTrades, len(report.Trades))
	}
	zeros := 0
	for _, tr := range report.Trades {
		if tr.Profit.IsZero() {
			zeros++
		}
	}
	if s.TotalWins+s.TotalLosses+zeros != s.TotalTrades {
		t.Errorf("wins %d + losses %d + zeros %d != trades %d", s.TotalWins, s.TotalLosses, zeros, s.TotalTrades)
	}
	if s.TotalWins != 1 || s.TotalLosses != 1 || zeros != 1 {
		t.Errorf("wins/losses/zeros = %d/%d/%d, want 1/1/1", s.TotalWins, s.TotalLosses, zeros)
	}

	// Dividends and taxes never count as invested; deposits and all buys do.
	wantInvested := amt(1000 + 100 + 200 + 300 + 50)
	if !s.TotalInvested.Equal(wantInvested) {
		t.Errorf("TotalInvested = %s, want %s", s.TotalInvested, wantInvested)
	}

	// The sum of bucket profits equals the summary profit.
	var bucketSum decimal.Decimal
	for _, day := range report.Days {
		bucketSum = bucketSum.Add(day.TotalProfit)
	}
	if !bucketSum.Equal(s.TotalProfit) {
		t.Errorf("sum of bucket profits = %s, want summary TotalProfit %s", bucketSum, s.TotalProfit)
	}

	// Buckets are sorted ascending by unique date.
	for i := 1; i < len(report.Days); i++ {
		if !report.Days[i-1].Date.Before(report.Days[i].Date) {
			t.Errorf("buckets not strictly ascending: %s before %s", report.Days[i-1].Date, report.Days[i].Date)
		}
	}
}

func TestNewReport_OneToOneMatching(t *testing.T) {
	// A sell consumes exactly one buy regardless of amounts: no splitting.
	records := []Record{
		buy("2024-01-01", "X", -100),
		buy("2024-01-02", "X", -100),
		sell("2024-01-03", "X", 500),
	}
	report := NewReport(records)
	if len(report.Trades) != 1 {
		t.Fatalf("len(Trades) = %d, want 1", len(report.Trades))
	}
	if !report.Trades[0].Profit.Equal(amt(400)) {
		t.Errorf("Profit = %s, want 400 (500 - 100, first buy only)", report.Trades[0].Profit)
	}
	if len(report.Open) != 1 {
		t.Errorf("Open = %d, want 1", len(report.Open))
	}
}

func TestNewReport_ZeroCostBuy(t *testing.T) {
	// A zero-amount buy must not blow up the percentage computation.
	records := []Record{
		buy("2024-01-01", "X", 0),
		sell("2024-01-02", "X", 50),
	}
	report := NewReport(records)
	if len(report.Trades) != 1 {
		t.Fatalf("len(Trades) = %d, want 1", len(report.Trades))
	}
	if !report.Trades[0].ProfitPercentage.Equal(0) {
		t.Errorf("ProfitPercentage = %s, want 0 for a zero-cost buy", report.Trades[0].ProfitPercentage)
	}
}

func TestNewReport_Idempotence(t *testing.T) {
	records := []Record{
		deposit("2024-02-01", 1000),
		buy("2024-02-02", "A", -400),
		buy("2024-02-02", "B", -300),
		sell("2024-02-10", "A", 450),
		sell("2024-02-10", "B", 250),
	}

	first := NewReport(records)
	second := NewReport(records)

	if !reflect.DeepEqual(first, second) {
		t.Error("NewReport() is not deterministic: two runs over the same input differ")
	}
}

func TestNewReport_DoesNotMutateInput(t *testing.T) {
	records := []Record{
		sell("2024-03-05", "A", 110), // deliberately out of order
		buy("2024-03-01", "A", -100),
	}
	snapshot := slices.Clone(records)

	NewReport(records)

	if !reflect.DeepEqual(records, snapshot) {
		t.Error("NewReport() mutated its input; it must sort a copy")
	}
}

func TestLedger_StableSort(t *testing.T) {
	// Same-day records keep their relative input order: the sort has no
	// secondary key.
	l := NewLedger(
		sell("2024-03-05", "A", 110),
		buy("2024-03-05", "A", -100),
		buy("2024-03-01", "A", -90),
	)
	got := l.Records()
	if got[0].Date != MustParseDate("2024-03-01") {
		t.Fatalf("first record date = %s, want 2024-03-01", got[0].Date)
	}
	if got[1].Action != ActionSell || got[2].Action != ActionBuy {
		t.Error("same-day records reordered; stable sort must preserve input order")
	}
}
