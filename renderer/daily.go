package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/oakfin/tradecal"
)

// DayMarkdown renders the completed trades of a single day.
func DayMarkdown(day tradecal.DailyBucket) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(day.Date.Format("Monday, January 2 2006"))

	if !day.HasActivity {
		doc.PlainText("No completed trades on this day.")
		return doc.String()
	}

	doc.Table(tradeTable(day.Trades))
	doc.PlainText(fmt.Sprintf("Day total: %s over %d trades.",
		signedUSD(day.TotalProfit), day.TotalTrades))

	return doc.String()
}

// tradeTable renders completed trades, one row each.
func tradeTable(trades []tradecal.CompletedTrade) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignLeft,
			md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
		},
		Header: []string{"Symbol", "Bought", "Sold", "Shares", "Cost", "Profit", "Return"},
	}
	for _, t := range trades {
		table.Rows = append(table.Rows, []string{
			t.Symbol,
			t.BuyDate.String(),
			t.SellDate.String(),
			t.Shares.String(),
			usd(t.BuyAmount),
			signedUSD(t.Profit),
			t.ProfitPercentage.SignedString(),
		})
	}
	return table
}
