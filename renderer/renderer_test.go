package renderer

import (
	"strings"
	"testing"

	"schwabkest"
)

func TestSummaryMarkdown(t *testing.T) {
	g := schwabkest.DefaultGrammar()
	txs, stats := g.Extract("83304A106 7.00 01/15/2506/02/25$ 79.65 $ 82.88 -- $ (3.23)")
	enriched := schwabkest.Enrich(txs, schwabkest.ECBRates2025())
	report := &schwabkest.Report{
		Grammar:      g.Version,
		Transactions: enriched,
		Summary:      schwabkest.Summarize(enriched),
		Stats:        stats,
	}

	md := SummaryMarkdown(report)
	for _, want := range []string{"KESt Summary", "Gesamterlös", "Nettogewinn nach Steuer", "1 transactions"} {
		if !strings.Contains(md, want) {
			t.Errorf("SummaryMarkdown() misses %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "Extraction warnings") {
		t.Errorf("no warnings expected for a clean extraction:\n%s", md)
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	g := schwabkest.DefaultGrammar()
	txs, _ := g.Extract("83304A106 7.00 01/15/2506/02/25$ 79.65 $ 82.88 -- $ (3.23)")
	enriched := schwabkest.Enrich(txs, schwabkest.ECBRates2025())

	md := TransactionsMarkdown(enriched)
	for _, want := range []string{"2025-06-02", "2025-01-15", "0.9223"} {
		if !strings.Contains(md, want) {
			t.Errorf("TransactionsMarkdown() misses %q:\n%s", want, md)
		}
	}
}

func TestRawTransactionsMarkdown(t *testing.T) {
	g := schwabkest.DefaultGrammar()
	txs, _ := g.Extract("83304A106 7.00 01/15/2506/02/25$ 79.65 $ 82.88 -- $ (3.23)")

	md := RawTransactionsMarkdown(txs)
	if !strings.Contains(md, "Extracted records (1)") {
		t.Errorf("RawTransactionsMarkdown() misses the count header:\n%s", md)
	}
}
