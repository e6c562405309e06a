package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hodamousavipour/banking-dashboard-front/internal/apperrors"
	"github.com/hodamousavipour/banking-dashboard-front/internal/core/domain"
	"github.com/hodamousavipour/banking-dashboard-front/internal/core/services"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) LoadAll(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	var txs []domain.Transaction
	if args.Get(0) != nil {
		txs = args.Get(0).([]domain.Transaction)
	}
	return txs, args.Error(1)
}

func (m *MockTransactionRepository) ReplaceAll(ctx context.Context, txs []domain.Transaction) error {
	args := m.Called(ctx, txs)
	return args.Error(0)
}

func TestNewTransactionService_LoadFailure(t *testing.T) {
	repo := new(MockTransactionRepository)
	repo.On("LoadAll", mock.Anything).Return(nil, errors.New("disk gone")).Once()

	svc, err := services.NewTransactionService(context.Background(), repo)

	assert.Nil(t, svc)
	assert.Error(t, err)
	repo.AssertExpectations(t)
}

func TestCreateTransaction_AssignsSequentialIDs(t *testing.T) {
	repo := new(MockTransactionRepository)
	seed := []domain.Transaction{{ID: 7, Amount: 100, Description: "Seed", Date: "2024-01-01"}}
	repo.On("LoadAll", mock.Anything).Return(seed, nil).Once()
	repo.On("ReplaceAll", mock.Anything, mock.Anything).Return(nil)

	svc, err := services.NewTransactionService(context.Background(), repo)
	require.NoError(t, err)

	first, err := svc.CreateTransaction(context.Background(), domain.NewTransaction{Amount: 10, Description: "Coffee", Date: "2024-02-01"})
	require.NoError(t, err)
	second, err := svc.CreateTransaction(context.Background(), domain.NewTransaction{Amount: -5, Description: "Snack", Date: "2024-02-02"})
	require.NoError(t, err)

	assert.Equal(t, int64(8), first.ID)
	assert.Equal(t, int64(9), second.ID)
}

func TestCreateTransaction_PrependsNewest(t *testing.T) {
	repo := new(MockTransactionRepository)
	repo.On("LoadAll", mock.Anything).Return([]domain.Transaction{}, nil).Once()
	repo.On("ReplaceAll", mock.Anything, mock.Anything).Return(nil)

	svc, err := services.NewTransactionService(context.Background(), repo)
	require.NoError(t, err)

	_, err = svc.CreateTransaction(context.Background(), domain.NewTransaction{Amount: 10, Description: "First", Date: "2024-02-01"})
	require.NoError(t, err)
	_, err = svc.CreateTransaction(context.Background(), domain.NewTransaction{Amount: 20, Description: "Second", Date: "2024-02-02"})
	require.NoError(t, err)

	txs, total, err := svc.ListTransactions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, "Second", txs[0].Description)
}

func TestCreateTransaction_DefaultsDateToToday(t *testing.T) {
	repo := new(MockTransactionRepository)
	repo.On("LoadAll", mock.Anything).Return([]domain.Transaction{}, nil).Once()
	repo.On("ReplaceAll", mock.Anything, mock.Anything).Return(nil)

	svc, err := services.NewTransactionService(context.Background(), repo)
	require.NoError(t, err)

	tx, err := svc.CreateTransaction(context.Background(), domain.NewTransaction{Amount: 10, Description: "No date"})
	require.NoError(t, err)
	assert.NotEmpty(t, tx.Date)
	assert.Len(t, tx.DateOnly(), 10)
}

func TestCreateTransaction_ValidationFailures(t *testing.T) {
	repo := new(MockTransactionRepository)
	repo.On("LoadAll", mock.Anything).Return([]domain.Transaction{}, nil).Once()

	svc, err := services.NewTransactionService(context.Background(), repo)
	require.NoError(t, err)

	tests := []struct {
		name  string
		input domain.NewTransaction
	}{
		{"zero amount", domain.NewTransaction{Amount: 0, Description: "x y"}},
		{"amount above bound", domain.NewTransaction{Amount: 1_000_000_001, Description: "x y"}},
		{"amount below bound", domain.NewTransaction{Amount: -1_000_000_001, Description: "x y"}},
		{"blank description", domain.NewTransaction{Amount: 10, Description: "   "}},
		{"invalid date", domain.NewTransaction{Amount: 10, Description: "x y", Date: "2024-02-30"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateTransaction(context.Background(), tt.input)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}

	// Nothing valid was created, so nothing was persisted.
	repo.AssertNotCalled(t, "ReplaceAll", mock.Anything, mock.Anything)
}

func TestCreateTransaction_PersistFailureLeavesStateUntouched(t *testing.T) {
	repo := new(MockTransactionRepository)
	repo.On("LoadAll", mock.Anything).Return([]domain.Transaction{}, nil).Once()
	repo.On("ReplaceAll", mock.Anything, mock.Anything).Return(errors.New("write failed")).Once()

	svc, err := services.NewTransactionService(context.Background(), repo)
	require.NoError(t, err)

	_, err = svc.CreateTransaction(context.Background(), domain.NewTransaction{Amount: 10, Description: "Coffee", Date: "2024-02-01"})
	assert.Error(t, err)

	_, total, err := svc.ListTransactions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestUpdateTransaction_PartialPatch(t *testing.T) {
	repo := new(MockTransactionRepository)
	seed := []domain.Transaction{{ID: 1, Amount: 100, Description: "Rent", Date: "2024-01-01"}}
	repo.On("LoadAll", mock.Anything).Return(seed, nil).Once()
	repo.On("ReplaceAll", mock.Anything, mock.Anything).Return(nil)

	svc, err := services.NewTransactionService(context.Background(), repo)
	require.NoError(t, err)

	amount := -120.0
	tx, err := svc.UpdateTransaction(context.Background(), 1, domain.TransactionPatch{Amount: &amount})
	require.NoError(t, err)

	assert.Equal(t, -120.0, tx.Amount)
	assert.Equal(t, "Rent", tx.Description)
	assert.Equal(t, "2024-01-01", tx.Date)
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	repo := new(MockTransactionRepository)
	repo.On("LoadAll", mock.Anything).Return([]domain.Transaction{}, nil).Once()

	svc, err := services.NewTransactionService(context.Background(), repo)
	require.NoError(t, err)

	desc := "nope"
	_, err = svc.UpdateTransaction(context.Background(), 42, domain.TransactionPatch{Description: &desc})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteTransaction(t *testing.T) {
	repo := new(MockTransactionRepository)
	seed := []domain.Transaction{
		{ID: 1, Amount: 100, Description: "Keep", Date: "2024-01-01"},
		{ID: 2, Amount: -50, Description: "Drop", Date: "2024-01-02"},
	}
	repo.On("LoadAll", mock.Anything).Return(seed, nil).Once()
	repo.On("ReplaceAll", mock.Anything, mock.Anything).Return(nil)

	svc, err := services.NewTransactionService(context.Background(), repo)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTransaction(context.Background(), 2))

	txs, total, err := svc.ListTransactions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, int64(1), txs[0].ID)

	assert.ErrorIs(t, svc.DeleteTransaction(context.Background(), 2), apperrors.ErrNotFound)
}

func TestGetSummary_TracksMutations(t *testing.T) {
	repo := new(MockTransactionRepository)
	repo.On("LoadAll", mock.Anything).Return([]domain.Transaction{}, nil).Once()
	repo.On("ReplaceAll", mock.Anything, mock.Anything).Return(nil)

	svc, err := services.NewTransactionService(context.Background(), repo)
	require.NoError(t, err)

	_, err = svc.CreateTransaction(context.Background(), domain.NewTransaction{Amount: 1000, Description: "Salary", Date: "2024-02-01"})
	require.NoError(t, err)
	_, err = svc.CreateTransaction(context.Background(), domain.NewTransaction{Amount: -250, Description: "Groceries", Date: "2024-02-02"})
	require.NoError(t, err)

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1000.0, summary.Income)
	assert.Equal(t, -250.0, summary.Expense)
	assert.Equal(t, 750.0, summary.Balance)
}

func TestListTransactions_ReturnsSnapshot(t *testing.T) {
	repo := new(MockTransactionRepository)
	seed := []domain.Transaction{{ID: 1, Amount: 100, Description: "Seed", Date: "2024-01-01"}}
	repo.On("LoadAll", mock.Anything).Return(seed, nil).Once()

	svc, err := services.NewTransactionService(context.Background(), repo)
	require.NoError(t, err)

	txs, _, err := svc.ListTransactions(context.Background())
	require.NoError(t, err)
	txs[0].Description = "mutated"

	again, _, err := svc.ListTransactions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Seed", again[0].Description)
}
