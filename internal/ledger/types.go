// Package ledger implements the import core: parsers for the two CSV exports
// produced by the aggregation service, normalization into canonical
// transaction records, and monthly balance aggregation. Everything in this
// package is pure; persistence lives in internal/store.
package ledger

// Kind is the transaction kind as recorded by the aggregation service.
type Kind string

const (
	KindExpense  Kind = "支出"
	KindIncome   Kind = "収入"
	KindTransfer Kind = "振替"
)

// AssetReportMemo marks synthetic transfer rows backfilled from the asset
// ledger. Rows carrying this memo are owned by the transfer extractor and are
// replaced wholesale on every asset-ledger import; user-entered transfers
// never carry it.
const AssetReportMemo = "__asset_report__"

// Transaction is one canonical ledger row.
// For non-transfer kinds exactly one of ExpenseAmount/IncomeAmount is
// non-zero, and Amount carries whichever one it is. Amounts are whole yen.
type Transaction struct {
	Date          string `json:"date"` // YYYY-MM-DD
	Year          int    `json:"year"`
	Month         int    `json:"month"`
	Kind          Kind   `json:"kind"`
	Category      string `json:"category"`
	ItemName      string `json:"itemName"`
	ExpenseAmount int    `json:"expenseAmount"`
	IncomeAmount  int    `json:"incomeAmount"`
	Amount        int    `json:"amount"`
	AccountName   string `json:"accountName"`
	Tag           string `json:"tag"`
	Memo          string `json:"memo"`
	ExcludeFromPL bool   `json:"excludeFromPl"`
}

// AssetLedgerEntry is one row of the per-account export, scoped to the
// account block it appeared under. The initial-balance marker for an account
// has Initial set and an empty Date. Entries are produced in file order;
// the snapshot aggregator depends on that order.
type AssetLedgerEntry struct {
	AccountName string
	Date        string // empty for the initial-balance marker
	Year        int
	Month       int
	Kind        Kind
	Category    string
	ItemName    string
	Amount      int
	Balance     int // balance after this transaction
	Initial     bool
}

// MonthlyAssetSnapshot is one account's balance position for one calendar
// month. At most one snapshot exists per (account, year, month).
type MonthlyAssetSnapshot struct {
	AccountName    string    `json:"accountName"`
	Year           int       `json:"year"`
	Month          int       `json:"month"`
	OpeningBalance int       `json:"openingBalance"`
	ClosingBalance int       `json:"closingBalance"`
	AssetType      AssetType `json:"assetType"`
}

// PeriodKey returns a sortable (year, month) key, e.g. 202403 for 2024-03.
func PeriodKey(year, month int) int {
	return year*100 + month
}
