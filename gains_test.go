package schwabkest

import (
	"testing"

	"schwabkest/date"
)

func rawTx(acquired, sold string, qty, proceeds, cost float64) RawTransaction {
	p := USD(proceeds)
	c := USD(cost)
	return RawTransaction{
		DateAcquired: date.MustParse(acquired),
		DateSold:     date.MustParse(sold),
		Quantity:     Q(qty),
		ProceedsUSD:  p,
		CostBasisUSD: c,
		GainLossUSD:  p.Sub(c),
	}
}

func TestEnrich_MovingAveragePrecision(t *testing.T) {
	rates := ECBRates2025()
	tx := rawTx("2025-01-15", "2025-06-02", 7.00, 79.65, 82.88)

	enriched := Enrich([]RawTransaction{tx}, rates)
	if len(enriched) != 1 {
		t.Fatalf("Enrich() = %d records, want 1", len(enriched))
	}
	e := enriched[0]

	if got := e.RatePurchase.String(); got != "0.9234" {
		t.Errorf("RatePurchase = %s, want 0.9234 (2025-01-15)", got)
	}
	if got := e.RateSale.String(); got != "0.9223" {
		t.Errorf("RateSale = %s, want 0.9223 (2025-06-02)", got)
	}

	// decimal arithmetic all the way: 82.88/7.00 is exactly 11.84
	if got := e.AvgCostUSD.Amount().String(); got != "11.84" {
		t.Errorf("AvgCostUSD = %s, want 11.84", got)
	}
	if got := e.AvgCostEUR.Amount().String(); got != "10.933056" {
		t.Errorf("AvgCostEUR = %s, want 10.933056 (11.84 * 0.9234)", got)
	}

	// EUR totals come from the native totals, not from per-share prices
	if got := e.ProceedsEUR.Amount().String(); got != "73.461195" {
		t.Errorf("ProceedsEUR = %s, want 73.461195 (79.65 * 0.9223)", got)
	}
	if got := e.CostEUR.Amount().String(); got != "76.531392" {
		t.Errorf("CostEUR = %s, want 76.531392 (82.88 * 0.9234)", got)
	}
	if got := e.GainLossEUR.Amount().String(); got != "-3.070197" {
		t.Errorf("GainLossEUR = %s, want -3.070197", got)
	}
}

func TestEnrich_TotalsNotRebuiltFromPerShare(t *testing.T) {
	rates := ECBRates2025()
	// 100.00/3 has no finite decimal form; the EUR total must still be the
	// exact native total times the rate
	tx := rawTx("2025-06-02", "2025-06-02", 3.00, 100.00, 50.00)

	e := Enrich([]RawTransaction{tx}, rates)[0]
	if got := e.ProceedsEUR.Amount().String(); got != "92.23" {
		t.Errorf("ProceedsEUR = %s, want exactly 92.23 (100.00 * 0.9223)", got)
	}
}

func TestEnrich_SortsBySaleDateAscending(t *testing.T) {
	rates := ECBRates2025()
	txs := []RawTransaction{
		rawTx("2025-01-15", "2025-12-08", 1, 10, 5),
		rawTx("2025-01-15", "2025-02-07", 1, 10, 5),
		rawTx("2025-01-15", "2025-06-02", 1, 10, 5),
	}

	enriched := Enrich(txs, rates)
	want := []string{"2025-02-07", "2025-06-02", "2025-12-08"}
	for i, w := range want {
		if enriched[i].DateSold.String() != w {
			t.Errorf("enriched[%d].DateSold = %s, want %s", i, enriched[i].DateSold, w)
		}
	}
	// input order is untouched
	if txs[0].DateSold.String() != "2025-12-08" {
		t.Errorf("Enrich must not reorder its input, got %s first", txs[0].DateSold)
	}
}

func TestEnrich_GainRecomputedInReportingCurrency(t *testing.T) {
	rates := ECBRates2025()
	// the native gain can carry an explicit statement override; the EUR gain
	// must still be EUR proceeds minus EUR cost, independent of it
	tx := rawTx("2025-01-15", "2025-06-02", 7.00, 79.65, 82.88)
	tx.GainLossUSD = USD(-999.99)

	e := Enrich([]RawTransaction{tx}, rates)[0]
	if got := e.GainLossEUR.Amount().String(); got != "-3.070197" {
		t.Errorf("GainLossEUR = %s, want -3.070197 regardless of the native figure", got)
	}
	if got := e.GainLossUSD.Amount().String(); got != "-999.99" {
		t.Errorf("GainLossUSD = %s, the native figure must be carried through", got)
	}
}
