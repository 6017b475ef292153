package tradecal

import "github.com/shopspring/decimal"

// amt is a helper for tests to create decimal amounts from consts.
func amt(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func buy(date, symbol string, amount float64) Record {
	return Record{Date: MustParseDate(date), Symbol: symbol, Action: ActionBuy, AmountUSD: amt(amount)}
}

func sell(date, symbol string, amount float64) Record {
	return Record{Date: MustParseDate(date), Symbol: symbol, Action: ActionSell, AmountUSD: amt(amount)}
}

func deposit(date string, amount float64) Record {
	return Record{Date: MustParseDate(date), Action: ActionDeposit, AmountUSD: amt(amount)}
}
