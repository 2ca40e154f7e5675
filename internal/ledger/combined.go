package ledger

import "github.com/ysmz/kakeibo/internal/csvutil"

// Column layout of the combined-ledger export.
const (
	combinedColDate = iota
	combinedColKind
	combinedColCategory
	combinedColItemName
	combinedColAmount // unused; derived from expense/income instead
	combinedColExpense
	combinedColIncome
	combinedColAccount
	combinedColTag
	combinedColMemo
	combinedColExclude

	combinedMinCols = combinedColExclude + 1
)

// DefaultMinYear is the historical cutoff applied when none is configured.
const DefaultMinYear = 2019

// ParseCombined parses the full-transaction export into canonical
// transactions. Rows whose first column is not a year-prefixed date (headers,
// blank lines) and rows dated before minYear are skipped silently.
//
// The exclude column uses an inverted convention: the literal "-" means the
// row IS included in profit/loss, and any other value — including blank —
// means excluded. Do not "fix" this; it is how the service exports the flag.
func ParseCombined(text string, minYear int) []Transaction {
	if minYear <= 0 {
		minYear = DefaultMinYear
	}

	var txs []Transaction
	for _, row := range csvutil.Rows(text) {
		if len(row) < combinedMinCols {
			continue
		}
		date, year, month := NormalizeDate(row[combinedColDate])
		if date == "" || year < minYear {
			continue
		}

		expense := parseAmount(row[combinedColExpense])
		income := parseAmount(row[combinedColIncome])
		amount := expense
		if amount == 0 {
			amount = income
		}

		txs = append(txs, Transaction{
			Date:          date,
			Year:          year,
			Month:         month,
			Kind:          Kind(row[combinedColKind]),
			Category:      row[combinedColCategory],
			ItemName:      row[combinedColItemName],
			ExpenseAmount: expense,
			IncomeAmount:  income,
			Amount:        amount,
			AccountName:   row[combinedColAccount],
			Tag:           row[combinedColTag],
			Memo:          row[combinedColMemo],
			ExcludeFromPL: row[combinedColExclude] != "-",
		})
	}
	return txs
}
