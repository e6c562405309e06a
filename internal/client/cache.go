package client

import (
	"context"
	"sync"

	"github.com/hodamousavipour/banking-dashboard-front/internal/core/domain"
	"github.com/hodamousavipour/banking-dashboard-front/internal/utils/listview"
)

// Session keeps the client-side mirror of the transaction collection and
// applies mutations speculatively: the local view changes immediately, the
// request settles in the background of the caller's flow, and a failed
// settlement restores the pre-mutation snapshot. After any settlement the
// session refetches so the mirror converges on server state.
type Session struct {
	api *Client

	mu      sync.Mutex
	items   []domain.Transaction
	total   int
	summary domain.Summary

	// tempID hands out placeholder ids for speculative creates. It only
	// decrements, so placeholders never collide with the store's positive
	// sequential ids.
	tempID int64
}

// NewSession creates an empty session over the given API client. Call
// Refresh to populate it.
func NewSession(api *Client) *Session {
	return &Session{api: api, items: []domain.Transaction{}}
}

// Refresh replaces the mirror with the server's current collection and
// summary. A read failure leaves the previous mirror in place so the caller
// can surface a retry affordance over stale data.
func (s *Session) Refresh(ctx context.Context) error {
	list, err := s.api.List(ctx)
	if err != nil {
		return err
	}
	summary, err := s.api.Summary(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = list.Items
	s.total = list.Total
	s.summary = summary
	return nil
}

// Transactions returns a snapshot of the mirrored collection.
func (s *Session) Transactions() []domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTransactions(s.items)
}

// Total returns the mirrored collection size.
func (s *Session) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Summary returns the mirrored dashboard summary.
func (s *Session) Summary() domain.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary
}

// View derives the filtered, sorted, paginated list page from the mirror.
func (s *Session) View(f listview.Filters, page, pageSize int) listview.View {
	return listview.Derive(s.Transactions(), f, page, pageSize)
}

// speculate is the single primitive behind every optimistic mutation:
// snapshot the mirror, apply the local patch, run the settlement, and on
// failure restore the snapshot. On success the mirror is refetched so
// placeholder records are replaced by authoritative ones; the refetch error,
// if any, is swallowed because the mutation itself already settled.
func (s *Session) speculate(ctx context.Context, patch func(items []domain.Transaction, total int) ([]domain.Transaction, int), settle func(ctx context.Context) error) error {
	s.mu.Lock()
	snapshotItems := s.items
	snapshotTotal := s.total
	s.items, s.total = patch(cloneTransactions(s.items), s.total)
	s.mu.Unlock()

	if err := settle(ctx); err != nil {
		s.mu.Lock()
		s.items = snapshotItems
		s.total = snapshotTotal
		s.mu.Unlock()
		return err
	}

	_ = s.Refresh(ctx)
	return nil
}

// Create speculatively prepends a placeholder record, then settles through
// the API. The returned transaction carries the store-assigned id.
func (s *Session) Create(ctx context.Context, input domain.NewTransaction) (*domain.Transaction, error) {
	s.mu.Lock()
	s.tempID--
	placeholder := domain.Transaction{
		ID:          s.tempID,
		Amount:      input.Amount,
		Description: input.Description,
		Date:        input.Date,
	}
	s.mu.Unlock()

	var created *domain.Transaction
	err := s.speculate(ctx,
		func(items []domain.Transaction, total int) ([]domain.Transaction, int) {
			return append([]domain.Transaction{placeholder}, items...), total + 1
		},
		func(ctx context.Context) error {
			tx, err := s.api.Create(ctx, input)
			if err != nil {
				return err
			}
			created = tx
			return nil
		},
	)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update speculatively patches the mirrored record, then settles through
// the API.
func (s *Session) Update(ctx context.Context, id int64, patch domain.TransactionPatch) (*domain.Transaction, error) {
	var updated *domain.Transaction
	err := s.speculate(ctx,
		func(items []domain.Transaction, total int) ([]domain.Transaction, int) {
			for i := range items {
				if items[i].ID == id {
					applyPatch(&items[i], patch)
					break
				}
			}
			return items, total
		},
		func(ctx context.Context) error {
			tx, err := s.api.Update(ctx, id, patch)
			if err != nil {
				return err
			}
			updated = tx
			return nil
		},
	)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete speculatively removes the mirrored record, then settles through
// the API.
func (s *Session) Delete(ctx context.Context, id int64) error {
	return s.speculate(ctx,
		func(items []domain.Transaction, total int) ([]domain.Transaction, int) {
			for i := range items {
				if items[i].ID == id {
					return append(items[:i], items[i+1:]...), total - 1
				}
			}
			return items, total
		},
		func(ctx context.Context) error {
			return s.api.Delete(ctx, id)
		},
	)
}

func applyPatch(tx *domain.Transaction, patch domain.TransactionPatch) {
	if patch.Amount != nil {
		tx.Amount = *patch.Amount
	}
	if patch.Description != nil {
		tx.Description = *patch.Description
	}
	if patch.Date != nil {
		tx.Date = *patch.Date
	}
}

func cloneTransactions(items []domain.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(items))
	copy(out, items)
	return out
}
