// Package localstore is the durable client-side storage adapter: a SQLite
// key/value table holding the full transaction collection as one JSON
// document under a single well-known key.
package localstore

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"

	"github.com/hodamousavipour/banking-dashboard-front/internal/core/domain"
	portsrepo "github.com/hodamousavipour/banking-dashboard-front/internal/core/ports/repositories"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// TransactionsKey is the storage key the collection is persisted under.
const TransactionsKey = "transactions"

// Open opens the sqlite database with sensible defaults for a single-caller
// local store.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}
	db.SetMaxOpenConns(1) // sqlite
	return db, nil
}

// Migrate applies all pending schema migrations.
func Migrate(db *sql.DB) error {
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create sqlite driver instance for migrations: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("could not create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// TransactionRepository persists the collection under TransactionsKey.
type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Ensure TransactionRepository implements the repository facade.
var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

func (r *TransactionRepository) LoadAll(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT value FROM local_storage WHERE key = ?;`

	var raw string
	err := r.db.QueryRowContext(ctx, query, TransactionsKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return []domain.Transaction{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read stored transactions: %w", err)
	}

	var txs []domain.Transaction
	if err := json.Unmarshal([]byte(raw), &txs); err != nil {
		return nil, fmt.Errorf("failed to decode stored transactions: %w", err)
	}
	if txs == nil {
		txs = []domain.Transaction{}
	}
	return txs, nil
}

func (r *TransactionRepository) ReplaceAll(ctx context.Context, transactions []domain.Transaction) error {
	raw, err := json.Marshal(transactions)
	if err != nil {
		return fmt.Errorf("failed to encode transactions: %w", err)
	}

	query := `
        INSERT INTO local_storage (key, value)
        VALUES (?, ?)
        ON CONFLICT (key) DO UPDATE SET value = excluded.value;
    `
	if _, err := r.db.ExecContext(ctx, query, TransactionsKey, string(raw)); err != nil {
		return fmt.Errorf("failed to write stored transactions: %w", err)
	}
	return nil
}
