package schwabkest

import (
	"testing"

	"schwabkest/date"
)

func testTable() *RateTable {
	return NewRateTable(map[string]string{
		"2025-06-02": "0.9223",
		"2025-06-04": "0.9198",
		"2025-06-15": "0.9245",
	})
}

func TestRateTable_ExactMatch(t *testing.T) {
	rates := testTable()
	if got := rates.Rate(date.MustParse("2025-06-04")); got.String() != "0.9198" {
		t.Errorf("Rate(2025-06-04) = %s, want 0.9198", got)
	}
}

func TestRateTable_Nearest(t *testing.T) {
	rates := testTable()
	tests := []struct {
		on   string
		want string
	}{
		{on: "2025-06-05", want: "0.9198"}, // 1 day to 06-04, 10 to 06-15
		{on: "2025-06-12", want: "0.9245"}, // 3 days to 06-15, 8 to 06-04
		{on: "2025-01-01", want: "0.9223"}, // before the table: first entry
		{on: "2025-12-31", want: "0.9245"}, // after the table: last entry
	}
	for _, tt := range tests {
		if got := rates.Rate(date.MustParse(tt.on)); got.String() != tt.want {
			t.Errorf("Rate(%s) = %s, want %s", tt.on, got, tt.want)
		}
	}
}

func TestRateTable_TieBreaksToEarlierDate(t *testing.T) {
	rates := testTable()
	// 2025-06-03 is one day from both 06-02 and 06-04.
	on := date.MustParse("2025-06-03")
	chosen, rate := rates.Resolve(on)
	if chosen != date.MustParse("2025-06-02") {
		t.Errorf("Resolve(%s) chose %s, want the earlier 2025-06-02", on, chosen)
	}
	if rate.String() != "0.9223" {
		t.Errorf("Resolve(%s) rate = %s, want 0.9223", on, rate)
	}
}

func TestRateTable_UnparseableDateFallsBackToDefault(t *testing.T) {
	rates := testTable()
	for _, in := range []string{"", "not-a-date", "06/02/25"} {
		if got := rates.RateFor(in); !got.Equal(DefaultRate) {
			t.Errorf("RateFor(%q) = %s, want default %s", in, got, DefaultRate)
		}
	}
	// a parseable date still resolves through the table
	if got := rates.RateFor("2025-06-04"); got.String() != "0.9198" {
		t.Errorf("RateFor(2025-06-04) = %s, want 0.9198", got)
	}
}

func TestECBRates2025(t *testing.T) {
	rates := ECBRates2025()
	if rates.Len() != 20 {
		t.Fatalf("bundled table has %d observations, want 20", rates.Len())
	}
	if got := rates.Rate(date.MustParse("2025-01-15")); got.String() != "0.9234" {
		t.Errorf("Rate(2025-01-15) = %s, want 0.9234", got)
	}
}
