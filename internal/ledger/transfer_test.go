package ledger

import "testing"

func TestExtractTransfers(t *testing.T) {
	accounts := map[string]string{"mutual_fund": "楽天証券"}
	txs := ExtractTransfers(assetFixture, 2019, accounts)

	if len(txs) != 2 {
		t.Fatalf("got %d transfers, want 2", len(txs))
	}

	first := txs[0]
	if first.Date != "2024-03-01" || first.Amount != 30000 {
		t.Errorf("first transfer = %+v, want 2024-03-01 / 30000", first)
	}
	for _, tx := range txs {
		if tx.Kind != KindTransfer {
			t.Errorf("transfer kind = %q, want %q", tx.Kind, KindTransfer)
		}
		if tx.Memo != AssetReportMemo {
			t.Errorf("transfer memo = %q, want sentinel %q", tx.Memo, AssetReportMemo)
		}
		if tx.AccountName != "楽天証券" {
			t.Errorf("transfer account = %q, want 楽天証券", tx.AccountName)
		}
	}
}

func TestExtractTransfers_IgnoresOtherAccountsAndKinds(t *testing.T) {
	// The bank account has expense/income rows and no mapping entry; the
	// brokerage rows are transfers. Only mapped transfer rows come out.
	accounts := map[string]string{"bank": "三菱UFJ銀行"}
	txs := ExtractTransfers(assetFixture, 2019, accounts)
	if len(txs) != 0 {
		t.Errorf("got %d transfers for a non-transfer account, want 0", len(txs))
	}

	if txs := ExtractTransfers(assetFixture, 2019, nil); len(txs) != 0 {
		t.Errorf("got %d transfers with an empty mapping, want 0", len(txs))
	}
}
