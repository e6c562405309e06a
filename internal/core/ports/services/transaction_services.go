package services

import (
	"context"

	"github.com/hodamousavipour/banking-dashboard-front/internal/core/domain"
)

// TransactionReaderSvc defines read operations against the collection.
type TransactionReaderSvc interface {
	// ListTransactions returns a snapshot of the full collection and its size.
	ListTransactions(ctx context.Context) ([]domain.Transaction, int, error)

	// GetSummary returns the derived income/expense/balance summary. It is
	// recomputed from the collection on every call.
	GetSummary(ctx context.Context) (domain.Summary, error)
}

// TransactionWriterSvc defines mutations. Every successful mutation is
// durably persisted before the call returns.
type TransactionWriterSvc interface {
	// CreateTransaction validates the input and appends a new transaction.
	// Returns apperrors.ErrValidation for rejected input.
	CreateTransaction(ctx context.Context, input domain.NewTransaction) (*domain.Transaction, error)

	// UpdateTransaction applies a partial update to an existing transaction.
	// Returns apperrors.ErrNotFound when the id is absent.
	UpdateTransaction(ctx context.Context, id int64, patch domain.TransactionPatch) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction.
	// Returns apperrors.ErrNotFound when the id is absent.
	DeleteTransaction(ctx context.Context, id int64) error
}

// TransactionSvcFacade combines all transaction service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
