package ledger

import "testing"

func TestAggregateSnapshots(t *testing.T) {
	entries := ParseAssetLedger(assetFixture, 2019)
	snaps := AggregateSnapshots(entries)

	// 三菱UFJ銀行: 2024-03, 2024-04; 楽天証券: 2024-03, 2024-04.
	if len(snaps) != 4 {
		t.Fatalf("got %d snapshots, want 4", len(snaps))
	}

	bank := snapshotsFor(snaps, "三菱UFJ銀行")
	if len(bank) != 2 {
		t.Fatalf("got %d bank snapshots, want 2", len(bank))
	}

	march := bank[0]
	if march.Year != 2024 || march.Month != 3 {
		t.Fatalf("first bank snapshot is %d-%02d, want 2024-03", march.Year, march.Month)
	}
	// Closing balance is the balance after the LAST March transaction, not the first.
	if march.ClosingBalance != 480000 {
		t.Errorf("March closing = %d, want 480000", march.ClosingBalance)
	}
	// First recorded month opens at its own closing balance.
	if march.OpeningBalance != march.ClosingBalance {
		t.Errorf("March opening = %d, want %d", march.OpeningBalance, march.ClosingBalance)
	}
	if march.AssetType != AssetTypeBank {
		t.Errorf("March asset type = %q, want %q", march.AssetType, AssetTypeBank)
	}

	april := bank[1]
	if april.OpeningBalance != march.ClosingBalance {
		t.Errorf("April opening = %d, want March closing %d", april.OpeningBalance, march.ClosingBalance)
	}
	if april.ClosingBalance != 760000 {
		t.Errorf("April closing = %d, want 760000", april.ClosingBalance)
	}
}

func TestAggregateSnapshots_OpeningChainInvariant(t *testing.T) {
	snaps := AggregateSnapshots(ParseAssetLedger(assetFixture, 2019))

	byAccount := make(map[string][]MonthlyAssetSnapshot)
	for _, s := range snaps {
		byAccount[s.AccountName] = append(byAccount[s.AccountName], s)
	}
	for account, list := range byAccount {
		for i := 1; i < len(list); i++ {
			prev, cur := list[i-1], list[i]
			if PeriodKey(cur.Year, cur.Month) <= PeriodKey(prev.Year, prev.Month) {
				t.Errorf("%s: snapshots out of chronological order", account)
			}
			if cur.OpeningBalance != prev.ClosingBalance {
				t.Errorf("%s %d-%02d: opening %d != previous closing %d",
					account, cur.Year, cur.Month, cur.OpeningBalance, prev.ClosingBalance)
			}
		}
	}
}

func TestAggregateSnapshots_InitialMarkersExcluded(t *testing.T) {
	entries := []AssetLedgerEntry{
		{AccountName: "現金", Balance: 99999, Initial: true},
	}
	if snaps := AggregateSnapshots(entries); len(snaps) != 0 {
		t.Errorf("initial-only account produced %d snapshots, want 0", len(snaps))
	}
}

func TestAggregateSnapshots_GapMonthsProduceNoSnapshot(t *testing.T) {
	entries := []AssetLedgerEntry{
		{AccountName: "現金", Date: "2024-01-10", Year: 2024, Month: 1, Balance: 1000},
		{AccountName: "現金", Date: "2024-04-10", Year: 2024, Month: 4, Balance: 400},
	}
	snaps := AggregateSnapshots(entries)
	if len(snaps) != 2 {
		t.Fatalf("got %d snapshots, want 2 (no interpolation for empty months)", len(snaps))
	}
	if snaps[1].OpeningBalance != 1000 {
		t.Errorf("April opening = %d, want January closing 1000 carried across the gap", snaps[1].OpeningBalance)
	}
}

func TestAggregateSnapshots_NegativeBalances(t *testing.T) {
	entries := []AssetLedgerEntry{
		{AccountName: "楽天カード", Date: "2024-02-27", Year: 2024, Month: 2, Balance: -52340},
	}
	snaps := AggregateSnapshots(entries)
	if len(snaps) != 1 || snaps[0].ClosingBalance != -52340 {
		t.Fatalf("credit account snapshot = %+v, want closing -52340", snaps)
	}
	if snaps[0].AssetType != AssetTypeCredit {
		t.Errorf("asset type = %q, want %q", snaps[0].AssetType, AssetTypeCredit)
	}
}

func snapshotsFor(snaps []MonthlyAssetSnapshot, account string) []MonthlyAssetSnapshot {
	var out []MonthlyAssetSnapshot
	for _, s := range snaps {
		if s.AccountName == account {
			out = append(out, s)
		}
	}
	return out
}
