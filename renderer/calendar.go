package renderer

import (
	"bytes"
	"fmt"
	"time"

	md "github.com/nao1215/markdown"
	"github.com/oakfin/tradecal"
	"github.com/shopspring/decimal"
)

// CalendarMarkdown renders one month of daily buckets as a week-aligned
// grid, Monday first. The days slice must be the dense output of
// [tradecal.ExpandMonth] for the same (year, month).
func CalendarMarkdown(year int, month time.Month, days []tradecal.DailyBucket) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Trading Calendar — %s %d", month, year))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft,
			md.AlignLeft, md.AlignLeft, md.AlignLeft,
		},
		Header: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
	}

	// Leading blanks up to the weekday of day 1, Monday-based.
	offset := (int(tradecal.NewDate(year, month, 1).Weekday()) + 6) % 7
	week := make([]string, 0, 7)
	for range offset {
		week = append(week, "")
	}
	for _, day := range days {
		week = append(week, cell(day))
		if len(week) == 7 {
			table.Rows = append(table.Rows, week)
			week = make([]string, 0, 7)
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, "")
		}
		table.Rows = append(table.Rows, week)
	}
	doc.Table(table)

	var profit decimal.Decimal
	trades := 0
	for _, day := range days {
		profit = profit.Add(day.TotalProfit)
		trades += day.TotalTrades
	}
	doc.PlainText(fmt.Sprintf("Month total: %s over %d trades.", signedUSD(profit), trades))

	return doc.String()
}

// cell renders one day of the grid: the day number, and for active days
// the day's profit and trade count.
func cell(day tradecal.DailyBucket) string {
	if !day.HasActivity {
		return fmt.Sprintf("%d", day.Date.Day())
	}
	return fmt.Sprintf("%s %s (%d)", md.Bold(fmt.Sprintf("%d", day.Date.Day())),
		signedUSD(day.TotalProfit), day.TotalTrades)
}
