// Package listview derives the filtered, sorted, paged transaction view
// from the authoritative collection. It is pure: the input slice is never
// mutated.
package listview

import (
	"sort"
	"strings"

	"github.com/hodamousavipour/banking-dashboard-front/internal/core/domain"
)

// DefaultPageSize is the page size used when callers pass size <= 0.
const DefaultPageSize = 10

// Kind discriminates transactions by amount sign.
type Kind string

const (
	KindAll         Kind = "all"
	KindDeposits    Kind = "deposits"
	KindWithdrawals Kind = "withdrawals"
)

// Filters is the ephemeral, UI-scoped filter state. Zero values mean
// "not set".
type Filters struct {
	Q    string // case-insensitive substring over description
	From string // inclusive lower bound, YYYY-MM-DD
	To   string // inclusive upper bound, YYYY-MM-DD
	Kind Kind
}

// View is one page of the derived list plus its pagination metadata.
type View struct {
	Items         []domain.Transaction
	FilteredCount int
	TotalPages    int
	Page          int
	PageSize      int
}

// Derive applies, in order: description filter, inclusive date range on the
// date-only portion, kind filter, stable sort by date descending, then
// 1-based pagination. An out-of-range page yields an empty slice.
func Derive(txs []domain.Transaction, f Filters, page, pageSize int) View {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	filtered := make([]domain.Transaction, 0, len(txs))
	qLower := strings.ToLower(f.Q)
	for _, tx := range txs {
		if qLower != "" && !strings.Contains(strings.ToLower(tx.Description), qLower) {
			continue
		}
		// Zero-padded ISO dates compare correctly as strings.
		date := tx.DateOnly()
		if f.From != "" && date < f.From {
			continue
		}
		if f.To != "" && date > f.To {
			continue
		}
		if f.Kind == KindDeposits && tx.Amount <= 0 {
			continue
		}
		if f.Kind == KindWithdrawals && tx.Amount >= 0 {
			continue
		}
		filtered = append(filtered, tx)
	}

	// Stable keeps the original collection order among equal dates.
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].DateOnly() > filtered[j].DateOnly()
	})

	count := len(filtered)
	totalPages := (count + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	var items []domain.Transaction
	if start < count {
		if end > count {
			end = count
		}
		items = filtered[start:end]
	} else {
		items = []domain.Transaction{}
	}

	return View{
		Items:         items,
		FilteredCount: count,
		TotalPages:    totalPages,
		Page:          page,
		PageSize:      pageSize,
	}
}
