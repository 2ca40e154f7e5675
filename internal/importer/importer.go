// Package importer coordinates a full ledger import: parse the uploaded
// exports, replace the affected periods in the transaction table, upsert
// monthly snapshots, and reconcile asset-ledger transfers against the
// combined ledger.
package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/ysmz/kakeibo/internal/ledger"
	"github.com/ysmz/kakeibo/internal/store"
)

// Validation errors surfaced to the caller with a descriptive message.
// Anything else the importer returns is a persistence failure.
var (
	ErrNoFiles       = errors.New("no ledger file supplied")
	ErrEmptyCombined = errors.New("combined ledger contained no usable rows")
)

// Importer runs the import pipeline against the two stores.
type Importer struct {
	transactions store.TransactionStore
	snapshots    store.SnapshotStore
	minYear      int
	investments  map[string]string
}

// New creates an Importer. minYear is the cutoff year below which rows are
// ignored; zero means the parser default.
func New(transactions store.TransactionStore, snapshots store.SnapshotStore, minYear int) *Importer {
	return &Importer{
		transactions: transactions,
		snapshots:    snapshots,
		minYear:      minYear,
		investments:  ledger.InvestmentAccounts,
	}
}

// TransactionCounts reports transaction-level import results.
type TransactionCounts struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}

// AssetCounts reports snapshot-level import results.
type AssetCounts struct {
	Inserted int `json:"inserted"`
}

// Result is the structured outcome of one import run.
type Result struct {
	ImportID     string            `json:"importId"`
	Success      bool              `json:"success"`
	Transactions TransactionCounts `json:"transactions"`
	Assets       AssetCounts       `json:"assets"`
}

// Import processes an upload of zero, one, or two files. combined and asset
// may each be nil; at least one must be present. The two files are parsed
// concurrently (they share no state before the database phase), then written
// sequentially per period so an interruption never leaves a period deleted
// without its replacement.
func (im *Importer) Import(ctx context.Context, combined, asset []byte) (*Result, error) {
	if len(combined) == 0 && len(asset) == 0 {
		return nil, ErrNoFiles
	}

	importID := uuid.New().String()
	logger := slog.Default().With("import_id", importID)

	var (
		txs       []ledger.Transaction
		entries   []ledger.AssetLedgerEntry
		transfers []ledger.Transaction
		wg        sync.WaitGroup
	)
	if len(combined) > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			txs = ledger.ParseCombined(string(combined), im.minYear)
		}()
	}
	if len(asset) > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			text := string(asset)
			entries = ledger.ParseAssetLedger(text, im.minYear)
			transfers = ledger.ExtractTransfers(text, im.minYear, im.investments)
		}()
	}
	wg.Wait()

	if len(combined) > 0 && len(txs) == 0 {
		return nil, ErrEmptyCombined
	}

	result := &Result{ImportID: importID}

	if len(txs) > 0 {
		inserted, err := im.replaceTransactions(ctx, txs)
		if err != nil {
			return nil, err
		}
		result.Transactions.Inserted = inserted
		logger.Info("combined ledger imported", "transactions", inserted)
	}

	if len(entries) > 0 {
		inserted, err := im.upsertSnapshots(ctx, entries)
		if err != nil {
			return nil, err
		}
		result.Assets.Inserted = inserted
		logger.Info("asset ledger imported", "snapshots", inserted)
	}

	if len(transfers) > 0 {
		inserted, skipped, err := im.reconcileTransfers(ctx, transfers)
		if err != nil {
			return nil, err
		}
		result.Transactions.Inserted += inserted
		result.Transactions.Skipped += skipped
		logger.Info("transfers reconciled", "inserted", inserted, "skipped", skipped)
	}

	result.Success = true
	return result, nil
}

// replaceTransactions applies period-replacement semantics: every distinct
// (year, month) in the batch is deleted and re-inserted wholesale, making a
// re-import of the same file a no-op state-wise.
func (im *Importer) replaceTransactions(ctx context.Context, txs []ledger.Transaction) (int, error) {
	byPeriod := make(map[int][]ledger.Transaction)
	for _, tx := range txs {
		key := ledger.PeriodKey(tx.Year, tx.Month)
		byPeriod[key] = append(byPeriod[key], tx)
	}

	total := 0
	for _, key := range sortedKeys(byPeriod) {
		rows := byPeriod[key]
		year, month := key/100, key%100
		inserted, err := im.transactions.ReplacePeriod(ctx, year, month, rows)
		if err != nil {
			return 0, fmt.Errorf("replace period %d-%02d: %w", year, month, err)
		}
		total += int(inserted)
	}
	return total, nil
}

// upsertSnapshots aggregates asset-ledger entries to monthly snapshots and
// upserts each one, overwriting whatever a previous import produced.
func (im *Importer) upsertSnapshots(ctx context.Context, entries []ledger.AssetLedgerEntry) (int, error) {
	snaps := ledger.AggregateSnapshots(entries)
	for _, snap := range snaps {
		if err := im.snapshots.Upsert(ctx, snap); err != nil {
			return 0, fmt.Errorf("upsert snapshot %s %d-%02d: %w", snap.AccountName, snap.Year, snap.Month, err)
		}
	}
	return len(snaps), nil
}

// reconcileTransfers replaces the sentinel-memo transfer rows for every
// touched period, then inserts each extracted transfer unless an equivalent
// user-entered transfer already exists (best-effort dedup by natural key:
// date, account, amount). Near-duplicate amounts are not matched.
func (im *Importer) reconcileTransfers(ctx context.Context, transfers []ledger.Transaction) (inserted, skipped int, err error) {
	byPeriod := make(map[int][]ledger.Transaction)
	for _, tx := range transfers {
		key := ledger.PeriodKey(tx.Year, tx.Month)
		byPeriod[key] = append(byPeriod[key], tx)
	}

	for _, key := range sortedKeys(byPeriod) {
		year, month := key/100, key%100
		if _, err := im.transactions.DeleteSyntheticTransfers(ctx, year, month); err != nil {
			return 0, 0, fmt.Errorf("clear synthetic transfers %d-%02d: %w", year, month, err)
		}
		for _, tx := range byPeriod[key] {
			exists, err := im.transactions.HasMatchingTransfer(ctx, tx.Date, tx.AccountName, tx.Amount)
			if err != nil {
				return 0, 0, err
			}
			if exists {
				skipped++
				continue
			}
			if err := im.transactions.Insert(ctx, tx); err != nil {
				return 0, 0, fmt.Errorf("insert transfer %s: %w", tx.Date, err)
			}
			inserted++
		}
	}
	return inserted, skipped, nil
}

func sortedKeys(m map[int][]ledger.Transaction) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
