package ledger

import "testing"

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantISO   string
		wantYear  int
		wantMonth int
	}{
		{"with weekday", "2024年03月05日(火)", "2024-03-05", 2024, 3},
		{"without weekday", "2021年12月31日", "2021-12-31", 2021, 12},
		{"header text", "日付", "", 0, 0},
		{"empty", "", "", 0, 0},
		{"iso date not accepted", "2024-03-05", "", 0, 0},
		{"single digit month rejected", "2024年3月5日(火)", "", 0, 0},
		{"placeholder", "-", "", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iso, year, month := NormalizeDate(tt.input)
			if iso != tt.wantISO || year != tt.wantYear || month != tt.wantMonth {
				t.Errorf("NormalizeDate(%q) = (%q, %d, %d), want (%q, %d, %d)",
					tt.input, iso, year, month, tt.wantISO, tt.wantYear, tt.wantMonth)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"1200", 1200},
		{"1,200", 1200},
		{"¥500,000", 500000},
		{"-3,000", -3000},
		{"", 0},
		{"-", 0},
		{"abc", 0},
	}

	for _, tt := range tests {
		if got := parseAmount(tt.input); got != tt.want {
			t.Errorf("parseAmount(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
