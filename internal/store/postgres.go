package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ysmz/kakeibo/internal/ledger"
)

// transactionColumns lists database columns in the order copyRow emits values.
var transactionColumns = []string{
	"date", "year", "month", "kind", "category", "item_name",
	"expense_amount", "income_amount", "amount",
	"account_name", "tag", "memo", "exclude_from_pl",
}

// PostgresTransactionStore is the pgx-backed TransactionStore.
type PostgresTransactionStore struct {
	pool *pgxpool.Pool
}

// NewPostgresTransactionStore creates a transaction store over a pool.
func NewPostgresTransactionStore(pool *pgxpool.Pool) *PostgresTransactionStore {
	return &PostgresTransactionStore{pool: pool}
}

// ReplacePeriod deletes the period's rows and bulk-inserts the replacement
// batch inside one database transaction, so an interrupted import never
// leaves a period deleted but not re-inserted. COPY is used for the insert.
func (s *PostgresTransactionStore) ReplacePeriod(ctx context.Context, year, month int, rows []ledger.Transaction) (int64, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin replace period %d-%02d: %w", year, month, err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `DELETE FROM transactions WHERE year = $1 AND month = $2`, year, month)
	if err != nil {
		return 0, fmt.Errorf("delete period %d-%02d: %w", year, month, err)
	}

	inserted, err := tx.CopyFrom(ctx,
		pgx.Identifier{"transactions"},
		transactionColumns,
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			return copyRow(rows[i]), nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("bulk insert period %d-%02d: %w", year, month, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit replace period %d-%02d: %w", year, month, err)
	}
	return inserted, nil
}

// DeleteSyntheticTransfers removes sentinel-memo transfer rows for the period.
func (s *PostgresTransactionStore) DeleteSyntheticTransfers(ctx context.Context, year, month int) (int64, error) {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM transactions WHERE year = $1 AND month = $2 AND kind = $3 AND memo = $4`,
		year, month, string(ledger.KindTransfer), ledger.AssetReportMemo,
	)
	if err != nil {
		return 0, fmt.Errorf("delete synthetic transfers %d-%02d: %w", year, month, err)
	}
	return tag.RowsAffected(), nil
}

// HasMatchingTransfer checks for a user-entered transfer with the same
// natural key. The match is exact on (date, account, amount); near-duplicate
// amounts from rounding are not treated as matches.
func (s *PostgresTransactionStore) HasMatchingTransfer(ctx context.Context, date, accountName string, amount int) (bool, error) {
	var one int
	err := s.pool.QueryRow(ctx,
		`SELECT 1 FROM transactions
		  WHERE date = $1 AND account_name = $2 AND amount = $3
		    AND category = $4 AND memo <> $5
		  LIMIT 1`,
		toPgDate(date), accountName, amount, string(ledger.KindTransfer), ledger.AssetReportMemo,
	).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("match transfer %s/%s: %w", date, accountName, err)
	}
	return true, nil
}

// Insert adds a single transaction row.
func (s *PostgresTransactionStore) Insert(ctx context.Context, row ledger.Transaction) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO transactions
		  (date, year, month, kind, category, item_name,
		   expense_amount, income_amount, amount,
		   account_name, tag, memo, exclude_from_pl)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		copyRow(row)...,
	)
	if err != nil {
		return fmt.Errorf("insert transaction %s: %w", row.Date, err)
	}
	return nil
}

// ListPeriod returns the period's transactions in date order.
func (s *PostgresTransactionStore) ListPeriod(ctx context.Context, year, month int) ([]ledger.Transaction, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT date, year, month, kind, category, item_name,
		        expense_amount, income_amount, amount,
		        account_name, tag, memo, exclude_from_pl
		   FROM transactions
		  WHERE year = $1 AND month = $2
		  ORDER BY date, id`,
		year, month,
	)
	if err != nil {
		return nil, fmt.Errorf("list period %d-%02d: %w", year, month, err)
	}
	defer rows.Close()

	var txs []ledger.Transaction
	for rows.Next() {
		var tx ledger.Transaction
		var date pgtype.Date
		var kind string
		if err := rows.Scan(&date, &tx.Year, &tx.Month, &kind, &tx.Category, &tx.ItemName,
			&tx.ExpenseAmount, &tx.IncomeAmount, &tx.Amount,
			&tx.AccountName, &tx.Tag, &tx.Memo, &tx.ExcludeFromPL); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		tx.Date = date.Time.Format("2006-01-02")
		tx.Kind = ledger.Kind(kind)
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

// PostgresSnapshotStore is the pgx-backed SnapshotStore.
type PostgresSnapshotStore struct {
	pool *pgxpool.Pool
}

// NewPostgresSnapshotStore creates a snapshot store over a pool.
func NewPostgresSnapshotStore(pool *pgxpool.Pool) *PostgresSnapshotStore {
	return &PostgresSnapshotStore{pool: pool}
}

// Upsert inserts or overwrites the snapshot keyed by (account, year, month).
func (s *PostgresSnapshotStore) Upsert(ctx context.Context, snap ledger.MonthlyAssetSnapshot) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO asset_snapshots
		  (account_name, year, month, opening_balance, closing_balance, asset_type)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 ON CONFLICT (account_name, year, month) DO UPDATE SET
		   opening_balance = EXCLUDED.opening_balance,
		   closing_balance = EXCLUDED.closing_balance,
		   asset_type      = EXCLUDED.asset_type`,
		snap.AccountName, snap.Year, snap.Month,
		snap.OpeningBalance, snap.ClosingBalance, string(snap.AssetType),
	)
	if err != nil {
		return fmt.Errorf("upsert snapshot %s %d-%02d: %w", snap.AccountName, snap.Year, snap.Month, err)
	}
	return nil
}

// ListPeriod returns the period's snapshots ordered by account name.
func (s *PostgresSnapshotStore) ListPeriod(ctx context.Context, year, month int) ([]ledger.MonthlyAssetSnapshot, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT account_name, year, month, opening_balance, closing_balance, asset_type
		   FROM asset_snapshots
		  WHERE year = $1 AND month = $2
		  ORDER BY account_name`,
		year, month,
	)
	if err != nil {
		return nil, fmt.Errorf("list snapshots %d-%02d: %w", year, month, err)
	}
	defer rows.Close()

	var snaps []ledger.MonthlyAssetSnapshot
	for rows.Next() {
		var snap ledger.MonthlyAssetSnapshot
		var assetType string
		if err := rows.Scan(&snap.AccountName, &snap.Year, &snap.Month,
			&snap.OpeningBalance, &snap.ClosingBalance, &assetType); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		snap.AssetType = ledger.AssetType(assetType)
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

// copyRow converts a transaction to column values in transactionColumns order.
func copyRow(tx ledger.Transaction) []any {
	return []any{
		toPgDate(tx.Date), tx.Year, tx.Month, string(tx.Kind), tx.Category, tx.ItemName,
		tx.ExpenseAmount, tx.IncomeAmount, tx.Amount,
		tx.AccountName, tx.Tag, tx.Memo, tx.ExcludeFromPL,
	}
}

// toPgDate parses an ISO calendar date into a pgtype.Date.
// Parser output is always well-formed, so an invalid date becomes NULL
// rather than an error.
func toPgDate(s string) pgtype.Date {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: t, Valid: true}
}
