package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/oakfin/tradecal"
)

// TradesMarkdown renders the full completed-trade log in matching order.
func TradesMarkdown(trades []tradecal.CompletedTrade) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Completed Trades")
	if len(trades) == 0 {
		doc.PlainText("No completed trades in the ledger.")
		return doc.String()
	}
	doc.Table(tradeTable(trades))

	return doc.String()
}

// OpenPositionsMarkdown renders the buy records left unmatched at the
// end of matching. Open positions carry no realized profit and are
// excluded from every statistic; this view only exists so they are not
// invisible.
func OpenPositionsMarkdown(open []tradecal.Record) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Open Positions")
	if len(open) == 0 {
		doc.PlainText("No open positions.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Symbol", "Bought", "Shares", "Cost"},
	}
	for _, r := range open {
		table.Rows = append(table.Rows, []string{
			r.Symbol,
			r.Date.String(),
			r.Shares.String(),
			usd(r.AmountUSD.Abs()),
		})
	}
	doc.Table(table)

	return doc.String()
}
