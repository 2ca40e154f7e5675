// Package store persists the canonical ledger produced by the import core.
// It exposes small interfaces so the importer can be exercised against the
// in-memory implementations in tests, with pgx-backed implementations used
// in production.
package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ysmz/kakeibo/internal/ledger"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Query(context.Context, string, ...any) (pgx.Rows, error)
	QueryRow(context.Context, string, ...any) pgx.Row
}

// TransactionStore persists canonical transactions.
type TransactionStore interface {
	// ReplacePeriod atomically deletes every transaction for (year, month)
	// and bulk-inserts rows in its place. This is the period-replacement
	// idempotency strategy: re-importing the same file leaves the table
	// unchanged.
	ReplacePeriod(ctx context.Context, year, month int, rows []ledger.Transaction) (int64, error)

	// DeleteSyntheticTransfers removes transfer rows carrying the asset-report
	// sentinel memo for (year, month), returning the count deleted.
	DeleteSyntheticTransfers(ctx context.Context, year, month int) (int64, error)

	// HasMatchingTransfer reports whether a user-entered transfer with the
	// same natural key (date, account, amount) already exists. Sentinel-memo
	// rows do not count as matches.
	HasMatchingTransfer(ctx context.Context, date, accountName string, amount int) (bool, error)

	// Insert adds a single transaction.
	Insert(ctx context.Context, row ledger.Transaction) error

	// ListPeriod returns all transactions for (year, month) in date order.
	ListPeriod(ctx context.Context, year, month int) ([]ledger.Transaction, error)
}

// SnapshotStore persists monthly per-account balance snapshots.
type SnapshotStore interface {
	// Upsert inserts or overwrites the snapshot keyed by (account, year, month).
	Upsert(ctx context.Context, snap ledger.MonthlyAssetSnapshot) error

	// ListPeriod returns all snapshots for (year, month) ordered by account.
	ListPeriod(ctx context.Context, year, month int) ([]ledger.MonthlyAssetSnapshot, error)
}
