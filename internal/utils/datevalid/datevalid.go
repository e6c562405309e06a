// Package datevalid holds the pure date predicates shared by the transaction
// schema and the CSV importer.
package datevalid

import (
	"regexp"
	"time"
)

// DateRegex matches zero-padded ISO date-only strings (YYYY-MM-DD).
var DateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

const dateLayout = "2006-01-02"

// IsValidCalendarDate reports whether value is a real calendar date in
// YYYY-MM-DD form. "2024-02-30" matches the regex but is rejected here.
func IsValidCalendarDate(value string) bool {
	if !DateRegex.MatchString(value) {
		return false
	}
	// time.Parse rejects out-of-range components such as 2024-02-30.
	_, err := time.Parse(dateLayout, value)
	return err == nil
}

// IsPastOrToday reports whether value is not after now, compared at day
// granularity.
func IsPastOrToday(value string, now time.Time) bool {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !parsed.After(today)
}

// IsYearInRange reports whether the year component of value falls within
// [minYear, maxYear].
func IsYearInRange(value string, minYear, maxYear int) bool {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return false
	}
	year := parsed.Year()
	return year >= minYear && year <= maxYear
}
