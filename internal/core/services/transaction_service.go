package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hodamousavipour/banking-dashboard-front/internal/apperrors"
	"github.com/hodamousavipour/banking-dashboard-front/internal/core/domain"
	portsrepo "github.com/hodamousavipour/banking-dashboard-front/internal/core/ports/repositories"
	portssvc "github.com/hodamousavipour/banking-dashboard-front/internal/core/ports/services"
	"github.com/hodamousavipour/banking-dashboard-front/internal/utils/datevalid"
)

const (
	maxAbsAmount         = 1_000_000_000
	maxDescriptionLength = 120
)

// transactionService owns the authoritative in-memory collection. It loads
// the persisted copy once at construction and rewrites it synchronously
// after every successful mutation, so the summary is always consistent with
// the collection on the very next read.
type transactionService struct {
	repo portsrepo.TransactionRepositoryFacade

	mu     sync.Mutex
	txs    []domain.Transaction
	nextID int64
}

// NewTransactionService builds the service and loads the persisted
// collection. The id counter resumes from the max persisted id.
func NewTransactionService(ctx context.Context, repo portsrepo.TransactionRepositoryFacade) (portssvc.TransactionSvcFacade, error) {
	txs, err := repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load persisted transactions: %w", err)
	}

	var maxID int64
	for _, tx := range txs {
		if tx.ID > maxID {
			maxID = tx.ID
		}
	}

	return &transactionService{
		repo:   repo,
		txs:    txs,
		nextID: maxID + 1,
	}, nil
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]domain.Transaction, len(s.txs))
	copy(snapshot, s.txs)
	return snapshot, len(snapshot), nil
}

func (s *transactionService) GetSummary(ctx context.Context) (domain.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.Summarize(s.txs), nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, input domain.NewTransaction) (*domain.Transaction, error) {
	if err := validateNewTransaction(input); err != nil {
		return nil, err
	}

	date := input.Date
	if date == "" {
		date = time.Now().UTC().Format(time.RFC3339)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := domain.Transaction{
		ID:          s.nextID,
		Amount:      input.Amount,
		Description: input.Description,
		Date:        date,
	}

	updated := append([]domain.Transaction{tx}, s.txs...)
	if err := s.repo.ReplaceAll(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to persist created transaction: %w", err)
	}

	s.txs = updated
	s.nextID++
	return &tx, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, id int64, patch domain.TransactionPatch) (*domain.Transaction, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("transaction %d: %w", id, apperrors.ErrNotFound)
	}

	updated := make([]domain.Transaction, len(s.txs))
	copy(updated, s.txs)

	tx := updated[idx]
	if patch.Amount != nil {
		tx.Amount = *patch.Amount
	}
	if patch.Description != nil {
		tx.Description = *patch.Description
	}
	if patch.Date != nil {
		tx.Date = *patch.Date
	}
	updated[idx] = tx

	if err := s.repo.ReplaceAll(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to persist updated transaction: %w", err)
	}

	s.txs = updated
	return &tx, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("transaction %d: %w", id, apperrors.ErrNotFound)
	}

	updated := make([]domain.Transaction, 0, len(s.txs)-1)
	updated = append(updated, s.txs[:idx]...)
	updated = append(updated, s.txs[idx+1:]...)

	if err := s.repo.ReplaceAll(ctx, updated); err != nil {
		return fmt.Errorf("failed to persist deletion: %w", err)
	}

	s.txs = updated
	return nil
}

// indexOf must be called with the mutex held.
func (s *transactionService) indexOf(id int64) int {
	for i, tx := range s.txs {
		if tx.ID == id {
			return i
		}
	}
	return -1
}

func validateNewTransaction(input domain.NewTransaction) error {
	if err := validateAmount(input.Amount); err != nil {
		return err
	}
	if err := validateDescription(input.Description); err != nil {
		return err
	}
	if input.Date != "" && !datevalid.IsValidCalendarDate(dateOnly(input.Date)) {
		return fmt.Errorf("invalid date %q: %w", input.Date, apperrors.ErrValidation)
	}
	return nil
}

func validatePatch(patch domain.TransactionPatch) error {
	if patch.Amount != nil {
		if err := validateAmount(*patch.Amount); err != nil {
			return err
		}
	}
	if patch.Description != nil {
		if err := validateDescription(*patch.Description); err != nil {
			return err
		}
	}
	if patch.Date != nil && !datevalid.IsValidCalendarDate(dateOnly(*patch.Date)) {
		return fmt.Errorf("invalid date %q: %w", *patch.Date, apperrors.ErrValidation)
	}
	return nil
}

func validateAmount(amount float64) error {
	if amount == 0 {
		return fmt.Errorf("amount cannot be 0: %w", apperrors.ErrValidation)
	}
	if amount > maxAbsAmount || amount < -maxAbsAmount {
		return fmt.Errorf("amount cannot exceed %d: %w", maxAbsAmount, apperrors.ErrValidation)
	}
	return nil
}

func validateDescription(description string) error {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return fmt.Errorf("description is required: %w", apperrors.ErrValidation)
	}
	if len(trimmed) > maxDescriptionLength {
		return fmt.Errorf("description must be at most %d characters: %w", maxDescriptionLength, apperrors.ErrValidation)
	}
	return nil
}

func dateOnly(date string) string {
	if len(date) > 10 {
		return date[:10]
	}
	return date
}
