package tradecal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeRecords writes records to w in the canonical ledger format:
// JSONL, one record per line, fields in a stable order. The output of
// EncodeRecords round-trips through DecodeRecords.
func EncodeRecords(w io.Writer, records []Record) error {
	for _, rec := range records {
		if err := EncodeRecord(w, rec); err != nil {
			return err
		}
	}
	return nil
}

// EncodeRecord writes one record to w as a single canonical JSON line.
func EncodeRecord(w io.Writer, rec Record) error {
	var jw jsonObjectWriter
	jw.Append("date", rec.Date)
	jw.Optional("symbol", rec.Symbol)
	jw.Append("action", rec.Action)
	if !rec.Shares.IsZero() {
		jw.Append("shares", rec.Shares)
	}
	jw.Append("amount_usd", rec.AmountUSD)

	data, err := jw.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot encode record: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write record: %w", err)
	}
	return nil
}

// jsonObjectWriter helps construct a JSON object with a specific field
// order. Its zero value is ready to use.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Append adds a new key-value pair to the JSON object.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	valBytes, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal value for key %q: %w", key, err)
		return w
	}
	w.WriteString(fmt.Sprintf("%q:", key))
	w.Write(valBytes)
	w.WriteString(",")
	return w
}

// Optional appends a key-value pair only if the value is not its type's
// zero value, omitting empty fields from the output.
func (w *jsonObjectWriter) Optional(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	v := reflect.ValueOf(value)
	if !v.IsValid() || v.IsZero() {
		return w
	}
	return w.Append(key, value)
}

// MarshalJSON finalizes the object, wrapping the accumulated fields in
// braces. It satisfies the json.Marshaler interface.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	content := bytes.TrimSuffix(w.Bytes(), []byte(","))
	final := make([]byte, 0, len(content)+2)
	final = append(final, '{')
	final = append(final, content...)
	final = append(final, '}')
	return final, nil
}
