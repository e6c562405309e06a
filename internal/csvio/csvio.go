// Package csvio encodes and decodes the fixed four-column transaction CSV
// format (Date,Amount,Description,Type). The format has no quoting or
// escaping; commas inside descriptions are replaced by spaces on export,
// which is an intentional limitation of the format, not a defect.
package csvio

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hodamousavipour/banking-dashboard-front/internal/core/domain"
	"github.com/hodamousavipour/banking-dashboard-front/internal/utils/datevalid"
)

// Header is the only accepted column layout, compared case-insensitively.
const Header = "Date,Amount,Description,Type"

var expectedColumns = []string{"date", "amount", "description", "type"}

// ParseResult is the outcome of decoding one CSV file. Errors is per-line
// and never fatal to other lines; DuplicateCount counts rows skipped
// because their (date, amount, description) key was already present.
type ParseResult struct {
	ToCreate       []domain.NewTransaction
	Errors         []string
	DuplicateCount int
}

// BuildTransactionsCSV serializes transactions in the given order. Dates are
// truncated to YYYY-MM-DD, amounts keep their sign and carry exactly two
// fractional digits, and Type is Deposit for non-negative amounts. Lines are
// joined with "\n" and there is no trailing newline.
func BuildTransactionsCSV(transactions []domain.Transaction) string {
	lines := make([]string, 0, len(transactions)+1)
	lines = append(lines, Header)

	for _, tx := range transactions {
		description := strings.ReplaceAll(tx.Description, ",", " ")
		amount := decimal.NewFromFloat(tx.Amount).StringFixed(2)
		lines = append(lines, fmt.Sprintf("%s,%s,%s,%s", tx.DateOnly(), amount, description, tx.Type()))
	}

	return strings.Join(lines, "\n")
}

// ParseTransactionsCSV decodes text into validated creation inputs. Rows
// whose duplicate key matches an existing transaction, or an earlier
// accepted row of the same file, are counted and skipped without an error.
func ParseTransactionsCSV(text string, existing []domain.Transaction) ParseResult {
	result := ParseResult{}

	normalized := strings.TrimSpace(text)
	if normalized == "" {
		result.Errors = []string{"File is empty"}
		return result
	}

	lines := splitLines(normalized)
	if len(lines) < 2 {
		result.Errors = []string{"CSV must contain a header and at least one data row"}
		return result
	}

	if !headerMatches(lines[0]) {
		result.Errors = []string{"Invalid header. Expected: Date,Amount,Description,Type (in this exact order)"}
		return result
	}

	seen := make(map[string]struct{}, len(existing))
	for _, tx := range existing {
		seen[duplicateKey(tx.DateOnly(), tx.Amount, tx.Description)] = struct{}{}
	}

	for i, line := range lines[1:] {
		lineNumber := i + 2 // 1-based, counting the header

		if strings.TrimSpace(line) == "" {
			continue
		}

		cols := splitColumns(line)
		if len(cols) != 4 {
			result.Errors = append(result.Errors, fmt.Sprintf("Line %d: Expected 4 columns, found %d", lineNumber, len(cols)))
			continue
		}

		date, amountRaw, description, typeRaw := cols[0], cols[1], cols[2], cols[3]

		if !datevalid.IsValidCalendarDate(date) {
			result.Errors = append(result.Errors, fmt.Sprintf("Line %d: Invalid date %q", lineNumber, date))
			continue
		}

		amount, err := parseAmount(amountRaw)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Line %d: Invalid amount %q", lineNumber, amountRaw))
			continue
		}

		if description == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Line %d: Description is required", lineNumber))
			continue
		}

		var txType domain.TransactionType
		switch strings.ToLower(typeRaw) {
		case "deposit":
			txType = domain.Deposit
		case "withdrawal":
			txType = domain.Withdrawal
		default:
			result.Errors = append(result.Errors, fmt.Sprintf("Line %d: Type must be \"Deposit\" or \"Withdrawal\", got %q", lineNumber, typeRaw))
			continue
		}

		// The Type column wins over whatever sign the amount carried.
		if txType == domain.Deposit {
			amount = abs(amount)
		} else {
			amount = -abs(amount)
		}

		key := duplicateKey(date, amount, description)
		if _, dup := seen[key]; dup {
			result.DuplicateCount++
			continue
		}
		seen[key] = struct{}{}

		result.ToCreate = append(result.ToCreate, domain.NewTransaction{
			Amount:      amount,
			Description: description,
			Date:        date,
		})
	}

	return result
}

func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// splitColumns splits on raw commas; the format has no quoting mechanism.
func splitColumns(line string) []string {
	cols := strings.Split(line, ",")
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}
	return cols
}

func headerMatches(line string) bool {
	cols := splitColumns(line)
	if len(cols) != len(expectedColumns) {
		return false
	}
	for i, want := range expectedColumns {
		if strings.ToLower(cols[i]) != want {
			return false
		}
	}
	return true
}

// parseAmount tolerates a comma decimal separator by substitution.
func parseAmount(raw string) (float64, error) {
	dec, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
	if err != nil {
		return 0, err
	}
	return dec.InexactFloat64(), nil
}

func duplicateKey(date string, amount float64, description string) string {
	return fmt.Sprintf("%s|%v|%s", date, amount, strings.ToLower(strings.TrimSpace(description)))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
