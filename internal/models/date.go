package models

import (
	"encoding/json"
	"time"
)

// dateLayouts are the accepted input formats for journal dates, most
// specific first. Journal documents written by older deployments carry
// bare dates, naive datetimes, or RFC3339 timestamps interchangeably.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Date is a calendar date with flexible JSON decoding. It marshals as
// "YYYY-MM-DD" and accepts any of the historical journal formats on input.
// Unparseable values decode as the zero Date so a single bad record cannot
// sink the whole document; callers skip zero dates.
type Date struct {
	time.Time
}

// NewDate creates a Date at midnight UTC for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an instant to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format("2006-01-02"))
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	d.Time = time.Time{}
	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return nil
		}
	}

	// Unparseable date, leave zero
	return nil
}

// DaysUntil returns the whole days from d to other.
func (d Date) DaysUntil(other Date) int {
	return int(other.Sub(d.Time).Hours() / 24)
}

// Timestamp is an instant with the same lenient decoding as Date. It
// marshals as RFC3339.
type Timestamp struct {
	time.Time
}

// MarshalJSON implements json.Marshaler.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(ts.Format(time.RFC3339))
}

// UnmarshalJSON implements json.Unmarshaler.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	ts.Time = time.Time{}
	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			ts.Time = t
			return nil
		}
	}

	return nil
}
