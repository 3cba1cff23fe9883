package types

import (
	"regexp"
	"strings"
	"time"
)

var datePattern = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)

// ValidDate reports whether s is a valid YYYY-MM-DD date key.
func ValidDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}

	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// ParseDate validates a date key and returns it trimmed.
func ParseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !ValidDate(s) {
		return "", ErrInvalidDate
	}

	return s, nil
}

// DateOf returns the date key for a time.
func DateOf(t time.Time) string {
	return t.Format("2006-01-02")
}
