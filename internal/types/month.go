// Package types implements the month and date keys used throughout the app.
package types

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	ErrInvalidMonth = errors.New("the month must be in YYYY-MM format")
	ErrInvalidDate  = errors.New("the date must be in YYYY-MM-DD format")
)

var monthPattern = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}$`)

// Month is a month in a specific year.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return NewMonth(year, month)
}

// ParseMonth parses a "YYYY-MM" month key.
func ParseMonth(s string) (Month, error) {
	s = strings.TrimSpace(s)
	if !monthPattern.MatchString(s) {
		return Month{}, ErrInvalidMonth
	}

	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, ErrInvalidMonth
	}

	return MonthOf(t), nil
}

// String returns the month key, formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// Label returns the human readable name of the month, e.g. "Mar 2024".
func (m Month) Label() string {
	return time.Time(m).Format("Jan 2006")
}

// Prefix is the prefix shared by all date keys within the month.
func (m Month) Prefix() string {
	return m.String() + "-"
}

// Contains reports whether the date key lies within the month.
//
// Date keys are zero padded, so a prefix comparison is sufficient.
func (m Month) Contains(date string) bool {
	return strings.HasPrefix(date, m.Prefix())
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Before reports whether the month m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}

// MarshalJSON encodes the month as its YYYY-MM key.
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON decodes a YYYY-MM key.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	month, err := ParseMonth(value)
	if err != nil {
		return err
	}

	*m = month
	return nil
}

// UnmarshalParam allows gin to bind query parameters to a Month.
func (m *Month) UnmarshalParam(p string) error {
	if p == "" {
		*m = Month{}
		return nil
	}

	month, err := ParseMonth(p)
	if err != nil {
		return err
	}

	*m = month
	return nil
}
