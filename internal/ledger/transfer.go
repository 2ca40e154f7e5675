package ledger

// InvestmentAccounts maps an investment product key to the display name its
// movements appear under in the asset ledger. The combined ledger predates
// transfer tracking for these products, so cost-basis history is backfilled
// from the asset ledger instead.
var InvestmentAccounts = map[string]string{
	"mutual_fund": "楽天証券",
	"ideco":       "iDeCo口座",
}

// ExtractTransfers re-scans the asset-ledger text for transfer-kind movements
// into the given investment accounts and emits them as synthetic transfer
// transactions, dated and amounted exactly as recorded. Every emitted row
// carries AssetReportMemo so the orchestrator can tell them apart from
// user-entered transfers and replace them idempotently.
func ExtractTransfers(text string, minYear int, accounts map[string]string) []Transaction {
	wanted := make(map[string]bool, len(accounts))
	for _, name := range accounts {
		wanted[name] = true
	}

	var txs []Transaction
	for _, e := range ParseAssetLedger(text, minYear) {
		if e.Initial || e.Kind != KindTransfer || !wanted[e.AccountName] {
			continue
		}
		txs = append(txs, Transaction{
			Date:        e.Date,
			Year:        e.Year,
			Month:       e.Month,
			Kind:        KindTransfer,
			Category:    string(KindTransfer),
			ItemName:    e.ItemName,
			Amount:      e.Amount,
			AccountName: e.AccountName,
			Memo:        AssetReportMemo,
		})
	}
	return txs
}
