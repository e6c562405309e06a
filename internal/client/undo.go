package client

import (
	"context"
	"sync"

	"github.com/hodamousavipour/banking-dashboard-front/internal/core/domain"
)

// mutator is the slice of Session the undo coordinator drives.
type mutator interface {
	Create(ctx context.Context, input domain.NewTransaction) (*domain.Transaction, error)
	Update(ctx context.Context, id int64, patch domain.TransactionPatch) (*domain.Transaction, error)
	Delete(ctx context.Context, id int64) error
}

var _ mutator = (*Session)(nil)

// UndoAction is a one-shot inverse of a completed mutation. Invoking it more
// than once is a no-op.
type UndoAction struct {
	once sync.Once
	run  func(ctx context.Context)
}

// Invoke runs the inverse mutation and reports its outcome through the
// coordinator's notifier. Repeated invocations do nothing.
func (a *UndoAction) Invoke(ctx context.Context) {
	a.once.Do(func() { a.run(ctx) })
}

// UndoCoordinator builds inverse actions for settled mutations. Each
// register call returns a fresh action; attaching it to a toast in a
// single-slot Toaster gives the "only the latest mutation is undoable"
// behavior, since showing the next toast discards the previous action.
type UndoCoordinator struct {
	session  mutator
	notifier Notifier
}

// NewUndoCoordinator wires the coordinator to a session and a notifier.
func NewUndoCoordinator(session mutator, notifier Notifier) *UndoCoordinator {
	return &UndoCoordinator{session: session, notifier: notifier}
}

// RegisterCreated returns an action that deletes the just-created record.
func (u *UndoCoordinator) RegisterCreated(created domain.Transaction) *UndoAction {
	return &UndoAction{run: func(ctx context.Context) {
		if err := u.session.Delete(ctx, created.ID); err != nil {
			u.notifier.Error("Failed to undo creation")
			return
		}
		u.notifier.Info("Last creation undone")
	}}
}

// RegisterDeleted returns an action that re-creates the just-deleted record.
// The re-created record receives a fresh id from the store.
func (u *UndoCoordinator) RegisterDeleted(deleted domain.Transaction) *UndoAction {
	return &UndoAction{run: func(ctx context.Context) {
		input := domain.NewTransaction{
			Amount:      deleted.Amount,
			Description: deleted.Description,
			Date:        deleted.Date,
		}
		if _, err := u.session.Create(ctx, input); err != nil {
			u.notifier.Error("Failed to undo deletion")
			return
		}
		u.notifier.Success("Deletion undone")
	}}
}

// RegisterUpdated returns an action that restores the record's previous
// field values.
func (u *UndoCoordinator) RegisterUpdated(previous domain.Transaction) *UndoAction {
	return &UndoAction{run: func(ctx context.Context) {
		patch := domain.TransactionPatch{
			Amount:      &previous.Amount,
			Description: &previous.Description,
			Date:        &previous.Date,
		}
		if _, err := u.session.Update(ctx, previous.ID, patch); err != nil {
			u.notifier.Error("Failed to undo update")
			return
		}
		u.notifier.Success("Update undone")
	}}
}
