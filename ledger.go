package tradecal

import "slices"

// Ledger represents a list of ledger records.
//
// A Ledger keeps its records in chronological order once StableSort has
// been called; decoding functions return sorted ledgers.
type Ledger struct {
	records []Record
}

// NewLedger creates a ledger from the given records. The slice is copied,
// the caller's slice is never mutated.
func NewLedger(records ...Record) *Ledger {
	l := &Ledger{records: slices.Clone(records)}
	l.StableSort()
	return l
}

// Append adds records to the ledger, keeping chronological order.
func (l *Ledger) Append(records ...Record) {
	l.records = append(l.records, records...)
	l.StableSort()
}

// Records returns the ledger's records in chronological order.
// The returned slice is shared; callers must not mutate it.
func (l *Ledger) Records() []Record { return l.records }

// Len returns the number of records in the ledger.
func (l *Ledger) Len() int { return len(l.records) }

// StableSort sorts records by date ascending. The sort is stable and has
// no secondary key: same-day records keep their relative input order.
// When a same-day buy and sell for one symbol could be ordered either
// way, the FIFO matching result therefore depends on input order. This
// is a known limitation, deliberately not papered over with an invented
// tie-break.
func (l *Ledger) StableSort() {
	slices.SortStableFunc(l.records, func(a, b Record) int {
		return a.Date.Compare(b.Date)
	})
}

// Report computes the full trading report for this ledger.
func (l *Ledger) Report() *Report { return NewReport(l.records) }
