package ledger

import "sort"

// AggregateSnapshots folds asset-ledger entries into one snapshot per
// (account, year, month). The closing balance of a month is whatever balance
// was on the books after the last transaction dated in that month; initial-
// balance markers carry no date and are excluded. Each month's opening
// balance is chained from the previous produced snapshot for the same
// account; the first snapshot opens at its own closing balance.
//
// Months with no activity produce no snapshot — point-in-time queries are
// expected to use the most recent snapshot at or before the month asked for.
func AggregateSnapshots(entries []AssetLedgerEntry) []MonthlyAssetSnapshot {
	type monthBalance struct {
		year, month int
		closing     int
	}

	// Group per account, preserving first-appearance order for stable output.
	var accounts []string
	closings := make(map[string]map[int]monthBalance)
	for _, e := range entries {
		if e.Initial || e.Date == "" {
			continue
		}
		byMonth, ok := closings[e.AccountName]
		if !ok {
			byMonth = make(map[int]monthBalance)
			closings[e.AccountName] = byMonth
			accounts = append(accounts, e.AccountName)
		}
		// Later entries in file order overwrite earlier ones, so the map
		// ends up holding the last recorded balance of each month.
		byMonth[PeriodKey(e.Year, e.Month)] = monthBalance{e.Year, e.Month, e.Balance}
	}

	var snaps []MonthlyAssetSnapshot
	for _, account := range accounts {
		byMonth := closings[account]
		keys := make([]int, 0, len(byMonth))
		for k := range byMonth {
			keys = append(keys, k)
		}
		sort.Ints(keys)

		assetType := ClassifyAsset(account)
		prevClosing := 0
		for i, k := range keys {
			mb := byMonth[k]
			opening := prevClosing
			if i == 0 {
				opening = mb.closing
			}
			snaps = append(snaps, MonthlyAssetSnapshot{
				AccountName:    account,
				Year:           mb.year,
				Month:          mb.month,
				OpeningBalance: opening,
				ClosingBalance: mb.closing,
				AssetType:      assetType,
			})
			prevClosing = mb.closing
		}
	}
	return snaps
}
