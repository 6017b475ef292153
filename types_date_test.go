package tradecal

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	today := Today()

	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		// Standard ISO format, permissive on digits
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{" 2024-03-05 ", NewDate(2024, time.March, 5), false},
		{"invalid-date", Date{}, true},
		{"", Date{}, true},

		// Relative offsets from today
		{"0d", today, false},
		{"-1d", today.Add(-1), false},
		{"+1d", today.Add(1), false},
		{"1d", Date{}, true}, // sign is mandatory
		{"+1m", NewDate(today.Year(), today.Month()+1, today.Day()), false},
		{"-1y", NewDate(today.Year()-1, today.Month(), today.Day()), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.err {
				if err == nil {
					t.Fatalf("ParseDate(%q) = %s, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) returned error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseDate(%q) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDateNormalization(t *testing.T) {
	// Day 0 is the last day of the previous month, like time.Date.
	if got := NewDate(2024, time.March, 0); got != NewDate(2024, time.February, 29) {
		t.Errorf("NewDate(2024, March, 0) = %s, want 2024-02-29", got)
	}
	if got := NewDate(2024, time.January, 32); got != NewDate(2024, time.February, 1) {
		t.Errorf("NewDate(2024, January, 32) = %s, want 2024-02-01", got)
	}
}

func TestDaysIn(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2024, time.December, 31},
		{2024, time.November, 30},
	}
	for _, tt := range tests {
		if got := DaysIn(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysIn(%d, %s) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestDateCompare(t *testing.T) {
	a := NewDate(2024, time.March, 1)
	b := NewDate(2024, time.March, 5)
	if a.Compare(b) >= 0 || b.Compare(a) <= 0 || a.Compare(a) != 0 {
		t.Error("Compare ordering is wrong")
	}
	if !a.Before(b) || !b.After(a) {
		t.Error("Before/After ordering is wrong")
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, time.March, 5)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != `"2024-03-05"` {
		t.Errorf("Marshal() = %s, want %q", data, "2024-03-05")
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}

	if err := json.Unmarshal([]byte(`"not-a-date"`), &back); err == nil {
		t.Error("Unmarshal of invalid date did not fail")
	}
}
