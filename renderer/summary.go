package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/oakfin/tradecal"
)

// SummaryMarkdown renders the portfolio-level rollup as a metric table.
func SummaryMarkdown(s *tradecal.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Summary")

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Invested", usd(s.TotalInvested)},
			{"Total Profit", signedUSD(s.TotalProfit)},
			{"Completed Trades", fmt.Sprintf("%d", s.TotalTrades)},
			{"Wins", fmt.Sprintf("%d", s.TotalWins)},
			{"Losses", fmt.Sprintf("%d", s.TotalLosses)},
			{"Win Rate", s.WinRate.String()},
		},
	}
	doc.Table(table)

	return doc.String()
}
