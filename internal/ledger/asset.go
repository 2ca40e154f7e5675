package ledger

import "github.com/ysmz/kakeibo/internal/csvutil"

// Column layout of a row inside an account block of the asset-ledger export.
// The account itself is implicit: it comes from the most recent header row.
const (
	assetColAccount = iota // non-empty only on account-header rows
	assetColDate
	assetColKind
	assetColCategory
	assetColItemName
	assetColAmount
	assetColBalance

	assetMinCols = assetColBalance + 1
)

// ParseAssetLedger parses the per-account export. The file is a concatenation
// of account blocks with no delimiter other than a header row whose first
// column holds the account's display name, so the scan carries a current-
// account cursor: header rows move the cursor, every following row belongs to
// that account until the next header.
//
// A row whose date and kind columns are both the literal "-" is the account's
// initial-balance marker (balance recorded, no date). A single row may be
// both header and marker. Dated rows before minYear are skipped. Entries are
// returned in file order, which preserves per-account chronology.
func ParseAssetLedger(text string, minYear int) []AssetLedgerEntry {
	if minYear <= 0 {
		minYear = DefaultMinYear
	}

	var entries []AssetLedgerEntry
	account := ""
	for _, row := range csvutil.Rows(text) {
		if len(row) < assetMinCols {
			continue
		}
		if row[assetColAccount] != "" && !isDateField(row[assetColAccount]) {
			account = row[assetColAccount]
		}
		if account == "" {
			continue
		}

		if row[assetColDate] == "-" && row[assetColKind] == "-" {
			entries = append(entries, AssetLedgerEntry{
				AccountName: account,
				Balance:     parseAmount(row[assetColBalance]),
				Initial:     true,
			})
			continue
		}

		date, year, month := NormalizeDate(row[assetColDate])
		if date == "" || year < minYear {
			continue
		}
		entries = append(entries, AssetLedgerEntry{
			AccountName: account,
			Date:        date,
			Year:        year,
			Month:       month,
			Kind:        Kind(row[assetColKind]),
			Category:    row[assetColCategory],
			ItemName:    row[assetColItemName],
			Amount:      parseAmount(row[assetColAmount]),
			Balance:     parseAmount(row[assetColBalance]),
		})
	}
	return entries
}
