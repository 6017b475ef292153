package tradecal

import (
	"fmt"
	"time"
)

// ExpandMonth produces one DailyBucket per calendar day of the given
// month, day 1 first. Days without a matching bucket in days get an
// empty synthetic bucket (no trades, zero profit, HasActivity false).
//
// The function is side-effect-free and safe to call repeatedly with
// overlapping inputs, e.g. to render three consecutive months from the
// same report.
//
// A month outside January..December is an internal invariant violation
// and panics: callers derive the month from a Date, never from user
// input.
func ExpandMonth(days []DailyBucket, year int, month time.Month) []DailyBucket {
	if month < time.January || month > time.December {
		panic(fmt.Sprintf("invalid month %d", month))
	}

	index := make(map[Date]DailyBucket, len(days))
	for _, b := range days {
		index[b.Date] = b
	}

	n := DaysIn(year, month)
	expanded := make([]DailyBucket, 0, n)
	for day := 1; day <= n; day++ {
		date := NewDate(year, month, day)
		if b, ok := index[date]; ok {
			expanded = append(expanded, b)
			continue
		}
		expanded = append(expanded, DailyBucket{Date: date})
	}
	return expanded
}
