// Package model defines the core data structures for memento.
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Date layouts.
const (
	StoredLayout = "2006-01-02" // birthday file data line
	PromptLayout = "2006/01/02" // first-run prompt input
)

// ErrEmptyDate is returned when parsing an empty date string.
var ErrEmptyDate = errors.New("empty date")

// Date is a calendar date without a time of day or location.
// The zero value is not a valid date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date for year, month and day, normalized the way
// time.Date normalizes (Feb 29 in a non-leap year becomes Mar 1).
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// unpadded relaxes a layout so one-digit months and days parse too.
var unpadded = strings.NewReplacer("01", "1", "02", "2")

// ParseDate parses s using the given layout. Month and day may be written
// with or without a leading zero.
func ParseDate(s, layout string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, ErrEmptyDate
	}
	t, err := time.Parse(unpadded.Replace(layout), s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns midnight at the start of d in loc.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Before reports whether d falls before other.
func (d Date) Before(other Date) bool {
	return d.Time(time.UTC).Before(other.Time(time.UTC))
}

// After reports whether d falls after other.
func (d Date) After(other Date) bool {
	return d.Time(time.UTC).After(other.Time(time.UTC))
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// Format formats d with a time layout.
func (d Date) Format(layout string) string {
	return d.Time(time.UTC).Format(layout)
}

// String returns d in the stored YYYY-MM-DD form.
func (d Date) String() string {
	return d.Format(StoredLayout)
}

// MarshalText implements encoding.TextMarshaler (used by JSON and YAML).
// The zero Date marshals as an empty string.
func (d Date) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte{}, nil
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty text yields
// the zero Date.
func (d *Date) UnmarshalText(text []byte) error {
	if len(strings.TrimSpace(string(text))) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(text), StoredLayout)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
