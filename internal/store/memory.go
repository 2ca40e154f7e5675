package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/ysmz/kakeibo/internal/ledger"
)

// MemoryTransactionStore is an in-memory TransactionStore used by tests and
// by local runs without a database. Safe for concurrent use.
type MemoryTransactionStore struct {
	mu   sync.Mutex
	rows []ledger.Transaction
}

// NewMemoryTransactionStore creates an empty in-memory transaction store.
func NewMemoryTransactionStore() *MemoryTransactionStore {
	return &MemoryTransactionStore{}
}

func (m *MemoryTransactionStore) ReplacePeriod(ctx context.Context, year, month int, rows []ledger.Transaction) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.rows[:0]
	for _, r := range m.rows {
		if r.Year != year || r.Month != month {
			kept = append(kept, r)
		}
	}
	m.rows = append(kept, rows...)
	return int64(len(rows)), nil
}

func (m *MemoryTransactionStore) DeleteSyntheticTransfers(ctx context.Context, year, month int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var deleted int64
	kept := m.rows[:0]
	for _, r := range m.rows {
		if r.Year == year && r.Month == month && r.Kind == ledger.KindTransfer && r.Memo == ledger.AssetReportMemo {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	m.rows = kept
	return deleted, nil
}

func (m *MemoryTransactionStore) HasMatchingTransfer(ctx context.Context, date, accountName string, amount int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.rows {
		if r.Date == date && r.AccountName == accountName && r.Amount == amount &&
			r.Category == string(ledger.KindTransfer) && r.Memo != ledger.AssetReportMemo {
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryTransactionStore) Insert(ctx context.Context, row ledger.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rows = append(m.rows, row)
	return nil
}

func (m *MemoryTransactionStore) ListPeriod(ctx context.Context, year, month int) ([]ledger.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []ledger.Transaction
	for _, r := range m.rows {
		if r.Year == year && r.Month == month {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// All returns a copy of every stored transaction, for test assertions.
func (m *MemoryTransactionStore) All() []ledger.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]ledger.Transaction, len(m.rows))
	copy(out, m.rows)
	return out
}

// MemorySnapshotStore is an in-memory SnapshotStore. Safe for concurrent use.
type MemorySnapshotStore struct {
	mu    sync.Mutex
	snaps map[string]ledger.MonthlyAssetSnapshot
}

// NewMemorySnapshotStore creates an empty in-memory snapshot store.
func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{snaps: make(map[string]ledger.MonthlyAssetSnapshot)}
}

func snapshotKey(account string, year, month int) string {
	return fmt.Sprintf("%s/%d", account, ledger.PeriodKey(year, month))
}

func (m *MemorySnapshotStore) Upsert(ctx context.Context, snap ledger.MonthlyAssetSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.snaps[snapshotKey(snap.AccountName, snap.Year, snap.Month)] = snap
	return nil
}

func (m *MemorySnapshotStore) ListPeriod(ctx context.Context, year, month int) ([]ledger.MonthlyAssetSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []ledger.MonthlyAssetSnapshot
	for _, s := range m.snaps {
		if s.Year == year && s.Month == month {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountName < out[j].AccountName })
	return out, nil
}

// All returns a copy of every stored snapshot, for test assertions.
func (m *MemorySnapshotStore) All() []ledger.MonthlyAssetSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]ledger.MonthlyAssetSnapshot, 0, len(m.snaps))
	for _, s := range m.snaps {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AccountName != out[j].AccountName {
			return out[i].AccountName < out[j].AccountName
		}
		return ledger.PeriodKey(out[i].Year, out[i].Month) < ledger.PeriodKey(out[j].Year, out[j].Month)
	})
	return out
}
