// Package tradecal turns a chronological ledger of brokerage actions
// (buys, sells, deposits, dividends, taxes) into realized trading results.
//
// The core functionalities include:
//   - Trade Matching: pairing each sell against the oldest unconsumed buy
//     of the same symbol (FIFO), producing an immutable set of completed
//     trades with realized profit figures.
//   - Daily Aggregation: folding completed trades into per-day buckets by
//     sell date, and into a portfolio-level summary (invested capital,
//     total profit, win rate).
//   - Calendar Expansion: turning the sparse per-day buckets into a dense
//     day-by-day sequence for any displayed month, leap years included.
//   - Value Formatting: deterministic currency and percentage strings
//     shared by every presentation surface.
//
// The engine is a pure function of its input: every report is recomputed
// in full from the raw record list, nothing is persisted or updated
// incrementally, and concurrent callers share no state.
//
// This package serves as the foundational logic for the `tcal`
// command-line tool, which handles ledger import, the month calendar
// view, and the daily and summary reports.
package tradecal
