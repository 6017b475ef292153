package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/oakfin/tradecal"
	"github.com/shopspring/decimal"
)

func amt(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func testReport(t *testing.T) *tradecal.Report {
	t.Helper()
	return tradecal.NewReport([]tradecal.Record{
		{Date: tradecal.MustParseDate("2024-03-01"), Symbol: "AAPL", Action: tradecal.ActionBuy, Shares: amt(10), AmountUSD: amt(-1000)},
		{Date: tradecal.MustParseDate("2024-03-05"), Symbol: "AAPL", Action: tradecal.ActionSell, Shares: amt(10), AmountUSD: amt(1100)},
		{Date: tradecal.MustParseDate("2024-03-05"), Action: tradecal.ActionDeposit, AmountUSD: amt(500)},
	})
}

func TestSummaryMarkdown(t *testing.T) {
	report := testReport(t)
	got := SummaryMarkdown(&report.Summary)

	for _, want := range []string{"Portfolio Summary", "$1,500", "+$100", "100.0%"} {
		if !strings.Contains(got, want) {
			t.Errorf("SummaryMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestCalendarMarkdown(t *testing.T) {
	report := testReport(t)
	days := tradecal.ExpandMonth(report.Days, 2024, time.March)
	got := CalendarMarkdown(2024, time.March, days)

	if !strings.Contains(got, "Trading Calendar — March 2024") {
		t.Errorf("missing title in:\n%s", got)
	}
	// March 5th 2024 is active: bold day number with profit and count.
	if !strings.Contains(got, "+$100 (1)") {
		t.Errorf("missing active day cell in:\n%s", got)
	}
	if !strings.Contains(got, "Month total: +$100 over 1 trades.") {
		t.Errorf("missing month total in:\n%s", got)
	}
	// 7 header columns: every row keeps the grid shape.
	for _, line := range strings.Split(got, "\n") {
		if strings.HasPrefix(line, "|") && strings.Count(line, "|") != 8 {
			t.Errorf("grid row does not have 7 columns: %q", line)
		}
	}
}

func TestDayMarkdown(t *testing.T) {
	report := testReport(t)
	got := DayMarkdown(report.Days[0])

	for _, want := range []string{"Tuesday, March 5 2024", "AAPL", "+$100", "+10.0%"} {
		if !strings.Contains(got, want) {
			t.Errorf("DayMarkdown() missing %q in:\n%s", want, got)
		}
	}

	empty := DayMarkdown(tradecal.DailyBucket{Date: tradecal.MustParseDate("2024-03-06")})
	if !strings.Contains(empty, "No completed trades") {
		t.Errorf("empty day rendering missing placeholder:\n%s", empty)
	}
}

func TestTradesMarkdown(t *testing.T) {
	report := testReport(t)
	got := TradesMarkdown(report.Trades)
	if !strings.Contains(got, "AAPL") || !strings.Contains(got, "2024-03-01") {
		t.Errorf("TradesMarkdown() missing trade row in:\n%s", got)
	}

	if got := OpenPositionsMarkdown(nil); !strings.Contains(got, "No open positions") {
		t.Errorf("OpenPositionsMarkdown(nil) = %q", got)
	}
}
