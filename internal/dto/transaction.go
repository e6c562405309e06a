package dto

import (
	"github.com/hodamousavipour/banking-dashboard-front/internal/core/domain"
)

// CreateTransactionRequest is the body of POST /transactions. A zero amount
// is rejected by the required binding, matching the store contract. Date is
// optional and defaults to today.
type CreateTransactionRequest struct {
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Date        string  `json:"date" binding:"omitempty,txdate"`
}

// ToInput converts the request into a domain creation input.
func (r CreateTransactionRequest) ToInput() domain.NewTransaction {
	return domain.NewTransaction{
		Amount:      r.Amount,
		Description: r.Description,
		Date:        r.Date,
	}
}

// UpdateTransactionRequest is the body of PUT /transactions/:id.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateTransactionRequest struct {
	Amount      *float64 `json:"amount" binding:"omitempty"`
	Description *string  `json:"description" binding:"omitempty"`
	Date        *string  `json:"date" binding:"omitempty,txdate"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateTransactionRequest) ToPatch() domain.TransactionPatch {
	return domain.TransactionPatch{
		Amount:      r.Amount,
		Description: r.Description,
		Date:        r.Date,
	}
}

// ListTransactionsParams defines the optional query parameters for listing
// transactions. When any of them is supplied the response carries the
// derived view metadata.
type ListTransactionsParams struct {
	Q        string `form:"q"`
	From     string `form:"from" binding:"omitempty,txdate"`
	To       string `form:"to" binding:"omitempty,txdate"`
	Kind     string `form:"kind" binding:"omitempty,oneof=all deposits withdrawals"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"pageSize,default=10"`
}

// TransactionResponse is the wire form of a transaction.
type TransactionResponse struct {
	ID          int64   `json:"id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(tx *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID,
		Amount:      tx.Amount,
		Description: tx.Description,
		Date:        tx.Date,
	}
}

// ListTransactionsResponse wraps the full collection.
type ListTransactionsResponse struct {
	Items []TransactionResponse `json:"items"`
	Total int                   `json:"total"`
}

// FilteredTransactionsResponse wraps one derived page of the collection.
type FilteredTransactionsResponse struct {
	Items         []TransactionResponse `json:"items"`
	Total         int                   `json:"total"`
	FilteredCount int                   `json:"filteredCount"`
	TotalPages    int                   `json:"totalPages"`
	Page          int                   `json:"page"`
	PageSize      int                   `json:"pageSize"`
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(txs []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txs))
	for i := range txs {
		out[i] = ToTransactionResponse(&txs[i])
	}
	return out
}

// SummaryResponse is the wire form of the dashboard summary.
type SummaryResponse struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// ToSummaryResponse converts a domain.Summary to its response DTO.
func ToSummaryResponse(s domain.Summary) SummaryResponse {
	return SummaryResponse{Income: s.Income, Expense: s.Expense, Balance: s.Balance}
}

// DeleteTransactionResponse acknowledges a deletion.
type DeleteTransactionResponse struct {
	Success bool `json:"success"`
}

// ImportTransactionsResponse reports the outcome of a CSV import.
type ImportTransactionsResponse struct {
	Created        int      `json:"created"`
	DuplicateCount int      `json:"duplicateCount"`
	Errors         []string `json:"errors,omitempty"`
}
