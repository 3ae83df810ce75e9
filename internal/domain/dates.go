package domain

import (
	"fmt"
	"time"
)

// DateLayout is the storage format for all plan dates.
// Dates are kept as strings so that an empty string means "unset" and
// min/max comparisons reduce to lexical ordering.
const DateLayout = "2006-01-02"

// MinDate returns the earlier of two ISO dates. Empty strings lose.
func MinDate(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	if b < a {
		return b
	}
	return a
}

// MaxDate returns the later of two ISO dates. Empty strings lose.
func MaxDate(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	if b > a {
		return b
	}
	return a
}

// ParseDate parses an ISO date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ValidDate reports whether s is a parseable ISO date.
func ValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// AddDays shifts an ISO date by the given number of days.
// Unparseable input is returned unchanged.
func AddDays(s string, days int) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return t.AddDate(0, 0, days).Format(DateLayout)
}

// DiffDays returns the number of days from one ISO date to another.
// Returns 0 if either date is unparseable.
func DiffDays(from, to string) int {
	f, err := ParseDate(from)
	if err != nil {
		return 0
	}
	t, err := ParseDate(to)
	if err != nil {
		return 0
	}
	return int(t.Sub(f).Hours() / 24)
}

// DefaultStartForYear is the planning-year fallback start date.
func DefaultStartForYear(year int) string {
	return fmt.Sprintf("%d-01-15", year)
}

// DefaultEndForYear is the planning-year fallback end date.
func DefaultEndForYear(year int) string {
	return fmt.Sprintf("%d-11-01", year)
}
