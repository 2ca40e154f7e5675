package ledger

import (
	"reflect"
	"strings"
	"testing"
)

const combinedFixture = "\ufeff日付,方法,カテゴリ,内容,金額,支出,収入,口座,タグ,メモ,計算対象\r\n" +
	"2024年03月05日(火),支出,食費,ランチ,1200,1200,0,楽天カード,,,-\r\n" +
	"2024年03月10日(日),収入,給与,3月分,280000,0,\"280,000\",三菱UFJ銀行,,,-\r\n" +
	"2024年03月15日(金),支出,日用品,洗剤,800,800,0,現金,,貯め買い,対象外\r\n" +
	"2018年01月05日(金),支出,食費,古いデータ,500,500,0,現金,,,-\r\n"

func TestParseCombined(t *testing.T) {
	txs := ParseCombined(combinedFixture, 2019)

	if len(txs) != 3 {
		t.Fatalf("ParseCombined returned %d transactions, want 3", len(txs))
	}

	want := Transaction{
		Date:          "2024-03-05",
		Year:          2024,
		Month:         3,
		Kind:          KindExpense,
		Category:      "食費",
		ItemName:      "ランチ",
		ExpenseAmount: 1200,
		IncomeAmount:  0,
		Amount:        1200,
		AccountName:   "楽天カード",
	}
	if !reflect.DeepEqual(txs[0], want) {
		t.Errorf("first transaction = %+v, want %+v", txs[0], want)
	}

	if txs[1].Kind != KindIncome || txs[1].IncomeAmount != 280000 || txs[1].Amount != 280000 {
		t.Errorf("income row = %+v, want income amount 280000", txs[1])
	}
	if txs[1].ExpenseAmount != 0 {
		t.Errorf("income row carries expense amount %d, want 0", txs[1].ExpenseAmount)
	}
}

func TestParseCombined_ExcludeFlagInversion(t *testing.T) {
	tests := []struct {
		name    string
		exclude string
		want    bool
	}{
		{"hyphen means included", "-", false},
		{"blank means excluded", "", true},
		{"label means excluded", "対象外", true},
		{"unicode minus means excluded", "−", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := "2024年03月05日(火),支出,食費,ランチ,1200,1200,0,楽天カード,,," + tt.exclude
			txs := ParseCombined(row, 2019)
			if len(txs) != 1 {
				t.Fatalf("got %d transactions, want 1", len(txs))
			}
			if txs[0].ExcludeFromPL != tt.want {
				t.Errorf("ExcludeFromPL = %v for flag %q, want %v", txs[0].ExcludeFromPL, tt.exclude, tt.want)
			}
		})
	}
}

func TestParseCombined_CutoffYear(t *testing.T) {
	txs := ParseCombined(combinedFixture, 2025)
	if len(txs) != 0 {
		t.Errorf("cutoff 2025 returned %d transactions, want 0", len(txs))
	}

	// Zero cutoff falls back to the default historical year.
	txs = ParseCombined(combinedFixture, 0)
	for _, tx := range txs {
		if tx.Year < DefaultMinYear {
			t.Errorf("transaction dated %s survived the default cutoff", tx.Date)
		}
	}
}

func TestParseCombined_SkipsMalformedRows(t *testing.T) {
	input := strings.Join([]string{
		"集計期間: 2024年",                     // free-text preamble
		"日付,方法,カテゴリ,内容,金額,支出,収入,口座,タグ,メモ,計算対象", // header
		"2024年03月05日(火),支出,食費",            // too few columns
		"",                                 // blank
		"2024年03月05日(火),支出,食費,ランチ,1200,1200,0,楽天カード,,,-",
	}, "\n")

	txs := ParseCombined(input, 2019)
	if len(txs) != 1 {
		t.Fatalf("got %d transactions, want 1", len(txs))
	}
}

func TestParseCombined_Deterministic(t *testing.T) {
	first := ParseCombined(combinedFixture, 2019)
	second := ParseCombined(combinedFixture, 2019)
	if !reflect.DeepEqual(first, second) {
		t.Error("re-parsing identical input produced different records")
	}
}

func TestParseCombined_AmountInvariant(t *testing.T) {
	for _, tx := range ParseCombined(combinedFixture, 2019) {
		if tx.Kind == KindTransfer {
			continue
		}
		if (tx.ExpenseAmount == 0) == (tx.IncomeAmount == 0) {
			t.Errorf("row %s: expense=%d income=%d, want exactly one non-zero",
				tx.Date, tx.ExpenseAmount, tx.IncomeAmount)
		}
	}
}
