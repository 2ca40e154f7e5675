package ledger

import (
	"strings"
	"testing"
)

const assetFixture = "三菱UFJ銀行,-,-,-,-,-,500000\n" +
	",2024年03月05日(火),支出,食費,ランチ,1200,498800\n" +
	",2024年03月20日(水),支出,日用品,洗剤,800,480000\n" +
	",2024年04月02日(火),収入,給与,4月分,280000,760000\n" +
	"楽天証券,-,-,-,-,-,0\n" +
	",2024年03月01日(金),振替,振替,投信積立,30000,30000\n" +
	",2024年04月01日(月),振替,振替,投信積立,30000,60000\n"

func TestParseAssetLedger(t *testing.T) {
	entries := ParseAssetLedger(assetFixture, 2019)

	if len(entries) != 7 {
		t.Fatalf("got %d entries, want 7", len(entries))
	}

	// Header row doubling as initial-balance marker.
	first := entries[0]
	if !first.Initial || first.AccountName != "三菱UFJ銀行" || first.Balance != 500000 || first.Date != "" {
		t.Errorf("initial marker = %+v, want initial entry for 三菱UFJ銀行 with balance 500000", first)
	}

	// Rows inherit the current account from the most recent header.
	for _, e := range entries[1:4] {
		if e.AccountName != "三菱UFJ銀行" {
			t.Errorf("entry %s attributed to %q, want 三菱UFJ銀行", e.Date, e.AccountName)
		}
	}
	for _, e := range entries[4:] {
		if e.AccountName != "楽天証券" {
			t.Errorf("entry %+v attributed to %q, want 楽天証券", e, e.AccountName)
		}
	}

	second := entries[1]
	if second.Date != "2024-03-05" || second.Kind != KindExpense || second.Amount != 1200 || second.Balance != 498800 {
		t.Errorf("first transaction entry = %+v", second)
	}
}

func TestParseAssetLedger_SeparateHeaderAndMarker(t *testing.T) {
	input := strings.Join([]string{
		"ゆうちょ銀行,,,,,,",
		",-,-,-,-,-,120000",
		",2024年05月10日(金),支出,食費,外食,3000,117000",
	}, "\n")

	entries := ParseAssetLedger(input, 2019)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if !entries[0].Initial || entries[0].AccountName != "ゆうちょ銀行" || entries[0].Balance != 120000 {
		t.Errorf("marker entry = %+v", entries[0])
	}
	if entries[1].AccountName != "ゆうちょ銀行" || entries[1].Balance != 117000 {
		t.Errorf("transaction entry = %+v", entries[1])
	}
}

func TestParseAssetLedger_CutoffAndNoise(t *testing.T) {
	input := strings.Join([]string{
		"短い行",
		"現金,-,-,-,-,-,10000",
		",2018年01月01日(月),支出,食費,昔の記録,500,9500",
		",2024年01月01日(月),支出,食費,初売り,500,9500",
	}, "\n")

	entries := ParseAssetLedger(input, 2019)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[1].Date != "2024-01-01" {
		t.Errorf("surviving dated entry = %+v, want the 2024 row", entries[1])
	}
}

func TestParseAssetLedger_RowsBeforeFirstHeaderDropped(t *testing.T) {
	input := ",2024年01月01日(月),支出,食費,口座不明,500,9500\n"
	if entries := ParseAssetLedger(input, 2019); len(entries) != 0 {
		t.Errorf("got %d entries before any account header, want 0", len(entries))
	}
}
