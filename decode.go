package tradecal

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// rawRecord is a specialized struct to decode one untyped ledger row.
// Pointers distinguish absent fields from zero values so required fields
// can be enforced before anything reaches the matching algorithm.
type rawRecord struct {
	Date      *string             `json:"date"`
	Symbol    *string             `json:"symbol"`
	Action    *string             `json:"action"`
	Shares    decimal.NullDecimal `json:"shares"`
	AmountUSD *decimal.Decimal    `json:"amount_usd"`
}

// normalize validates the raw row and coerces it into a Record.
// A missing or unrecognized action defaults to buy; date and amount_usd
// are required.
func (raw rawRecord) normalize() (Record, error) {
	var r Record
	if raw.Date == nil {
		return r, fmt.Errorf("record is missing required field %q", "date")
	}
	d, err := ParseDate(*raw.Date)
	if err != nil {
		return r, err
	}
	if raw.AmountUSD == nil {
		return r, fmt.Errorf("record is missing required field %q", "amount_usd")
	}
	r.Date = d
	r.AmountUSD = *raw.AmountUSD
	if raw.Symbol != nil {
		r.Symbol = *raw.Symbol
	}
	if raw.Action != nil {
		r.Action = ParseAction(*raw.Action)
	} else {
		r.Action = ActionBuy
	}
	if raw.Shares.Valid {
		r.Shares = raw.Shares.Decimal
	}
	return r, nil
}

// DecodeRecords reads ledger records from r and returns them validated.
//
// Two layouts are accepted: a single JSON array of record objects (the
// export format of most brokers, and of pasted text), or JSONL with one
// record object per line (the canonical ledger file format written by
// EncodeRecords). Decoding is the explicit parse step of the ingestion
// path: invalid input yields a descriptive error and no records, so the
// engine never sees a partially-valid row.
func DecodeRecords(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read records: %w", err)
	}

	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		return decodeArray(trimmed)
	}
	return decodeLines(data)
}

func decodeArray(data []byte) ([]Record, error) {
	var raws []rawRecord
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("cannot parse records array: %w", err)
	}
	records := make([]Record, 0, len(raws))
	for i, raw := range raws {
		rec, err := raw.normalize()
		if err != nil {
			return nil, fmt.Errorf("invalid record at index %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func decodeLines(data []byte) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for scanner.Scan() {
		line++
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 {
			continue // Skip empty lines
		}
		var raw rawRecord
		if err := json.Unmarshal(text, &raw); err != nil {
			return nil, fmt.Errorf("cannot parse record on line %d: %w", line, err)
		}
		rec, err := raw.normalize()
		if err != nil {
			return nil, fmt.Errorf("invalid record on line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read records: %w", err)
	}
	return records, nil
}

// ExtractRecords reads a wrapper JSON document from r and decodes the
// record array found at the given JSONPath expression, e.g. "$.trades"
// for {"trades": [...]}. Some broker exports nest the rows this way.
func ExtractRecords(r io.Reader, path string) ([]Record, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot parse document: %w", err)
	}
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("cannot evaluate path %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of one
	// answer or a single answer; unwrap a single-element list holding
	// the array itself.
	if list, ok := jval.([]any); ok && len(list) == 1 {
		if _, isRow := list[0].([]any); isRow {
			jval = list[0]
		}
	}
	data, err := json.Marshal(jval)
	if err != nil {
		return nil, fmt.Errorf("cannot re-encode value at path %q: %w", path, err)
	}
	if len(data) == 0 || data[0] != '[' {
		return nil, fmt.Errorf("path %q does not locate a record array", path)
	}
	return DecodeRecords(bytes.NewReader(data))
}

// DecodeLedger decodes records from r into a chronologically sorted Ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	records, err := DecodeRecords(r)
	if err != nil {
		return nil, err
	}
	return NewLedger(records...), nil
}
