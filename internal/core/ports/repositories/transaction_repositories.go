package repositories

import (
	"context"

	"github.com/hodamousavipour/banking-dashboard-front/internal/core/domain"
)

// TransactionRepositoryFacade persists the transaction collection as one
// document. The store reads it once at startup and rewrites it after every
// successful mutation, so the interface is whole-collection, not per-row.
type TransactionRepositoryFacade interface {
	// LoadAll returns the persisted collection, or an empty slice when
	// nothing has been stored yet.
	LoadAll(ctx context.Context) ([]domain.Transaction, error)

	// ReplaceAll overwrites the persisted collection.
	ReplaceAll(ctx context.Context, transactions []domain.Transaction) error
}
