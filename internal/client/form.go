package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/hodamousavipour/banking-dashboard-front/internal/core/domain"
	"github.com/hodamousavipour/banking-dashboard-front/internal/utils/datevalid"
)

const minEntryYear = 2000

// FieldError is one form-level rejection, keyed by the offending field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateEntry applies the entry-form rules, which are stricter than the
// store's contract: the date is mandatory, the year is bounded, future
// dates are rejected, and the description needs at least two characters.
// Imports bypass these rules on purpose, so historical files with short
// descriptions still load.
func ValidateEntry(input domain.NewTransaction, now time.Time) []FieldError {
	var errs []FieldError

	if input.Amount == 0 {
		errs = append(errs, FieldError{Field: "amount", Message: "Amount cannot be 0"})
	} else if input.Amount > 1_000_000_000 {
		errs = append(errs, FieldError{Field: "amount", Message: "Amount cannot exceed 1,000,000,000"})
	}

	switch trimmed := strings.TrimSpace(input.Description); {
	case trimmed == "":
		errs = append(errs, FieldError{Field: "description", Message: "Description is required"})
	case len([]rune(trimmed)) < 2:
		errs = append(errs, FieldError{Field: "description", Message: "Description must be at least 2 characters"})
	case len([]rune(trimmed)) > 120:
		errs = append(errs, FieldError{Field: "description", Message: "Description must be at most 120 characters"})
	}

	if dateErr := validateEntryDate(input.Date, now); dateErr != nil {
		errs = append(errs, *dateErr)
	}

	return errs
}

func validateEntryDate(value string, now time.Time) *FieldError {
	switch {
	case strings.TrimSpace(value) == "":
		return &FieldError{Field: "date", Message: "Date is required"}
	case !datevalid.DateRegex.MatchString(value):
		return &FieldError{Field: "date", Message: "Invalid date format"}
	case !datevalid.IsValidCalendarDate(value):
		return &FieldError{Field: "date", Message: "Invalid calendar date"}
	case !datevalid.IsYearInRange(value, minEntryYear, now.Year()):
		return &FieldError{Field: "date", Message: fmt.Sprintf("Year must be between %d and %d", minEntryYear, now.Year())}
	case !datevalid.IsPastOrToday(value, now):
		return &FieldError{Field: "date", Message: "Date cannot be in the future"}
	}
	return nil
}
