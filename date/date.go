// Package date provides a day-granularity Date value and the timestamp
// parsing rules used by the journal.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// Format is the canonical representation of a date, ISO-8601 calendar date.
const Format = "2006-01-02"

// Date represents a calendar day, with no time-of-day component.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// time returns the canonical time.Time for that day (midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Add returns a new Date with the given number of days added.
func (d Date) Add(days int) Date { return New(d.y, d.m, d.d+days) }

// Before reports whether d is strictly before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether d is strictly after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// String formats the date in its canonical form.
func (d Date) String() string { return d.time().Format(Format) }

// Parse parses a Date in the canonical YYYY-MM-DD form.
func Parse(str string) (Date, error) {
	on, err := time.Parse(Format, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, Format, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error. For tests and constants.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// MarshalJSON encodes the date as its canonical string form.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a date from its canonical string form.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := Parse(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)

// timestampLayouts are the accepted ISO-8601 date-time forms, with and
// without fractional seconds and zone offset.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// ParseTimestamp parses an ISO-8601 date-time string. The zone offset is
// optional: entries record a local point in time as plain text.
func ParseTimestamp(str string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, str); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q: want ISO-8601 date-time", str)
}

// Timestamp formats a point in time in the canonical form used for the
// entry timestamp field.
func Timestamp(t time.Time) string {
	return t.Format("2006-01-02T15:04:05")
}
