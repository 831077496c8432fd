package schwabkest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func testReport(t *testing.T) *Report {
	t.Helper()
	g := DefaultGrammar()
	txs, stats := g.Extract("83304A106 7.00 01/15/2506/02/25$ 79.65 $ 82.88 -- $ (3.23)")
	if len(txs) != 1 {
		t.Fatalf("fixture extraction failed: %d records", len(txs))
	}
	enriched := Enrich(txs, ECBRates2025())
	return &Report{
		Grammar:      g.Version,
		Transactions: enriched,
		Summary:      Summarize(enriched),
		Stats:        stats,
	}
}

func TestWriteJSON(t *testing.T) {
	r := testReport(t)
	path := filepath.Join(t.TempDir(), "report.json")
	if err := WriteJSON(path, r); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}

	// summary must come first, transactions second
	text := string(raw)
	if !strings.Contains(text, `"summary"`) || !strings.Contains(text, `"transactions"`) {
		t.Fatalf("artifact misses summary or transactions:\n%s", text)
	}
	if strings.Index(text, `"summary"`) > strings.Index(text, `"transactions"`) {
		t.Errorf("summary must precede transactions in the artifact")
	}

	var parsed struct {
		Summary struct {
			TransactionCount int    `json:"transaction_count"`
			Kest             string `json:"kest_27_5_percent"`
		} `json:"summary"`
		Transactions []map[string]any `json:"transactions"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}
	if parsed.Summary.TransactionCount != 1 {
		t.Errorf("transaction_count = %d, want 1", parsed.Summary.TransactionCount)
	}
	if len(parsed.Transactions) != 1 {
		t.Fatalf("transactions = %d entries, want 1", len(parsed.Transactions))
	}
	if _, ok := parsed.Transactions[0]["exchange_rate_sale"]; !ok {
		t.Errorf("transaction entry misses exchange_rate_sale: %v", parsed.Transactions[0])
	}
}

func TestWriteXLSX(t *testing.T) {
	r := testReport(t)
	path := filepath.Join(t.TempDir(), "report.xlsx")
	if err := WriteXLSX(path, r); err != nil {
		t.Fatalf("WriteXLSX() error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("opening spreadsheet: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	wantSheets := map[string]bool{summarySheet: false, transactionsSheet: false}
	for _, s := range sheets {
		if _, ok := wantSheets[s]; ok {
			wantSheets[s] = true
		}
	}
	for name, found := range wantSheets {
		if !found {
			t.Errorf("sheet %q missing, got %v", name, sheets)
		}
	}

	// header row of the detail sheet
	got, err := f.GetCellValue(transactionsSheet, "A1")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if got != "date_sold" {
		t.Errorf("Transaktionen!A1 = %q, want date_sold", got)
	}

	// one data row
	sold, err := f.GetCellValue(transactionsSheet, "A2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if sold != "2025-06-02" {
		t.Errorf("Transaktionen!A2 = %q, want 2025-06-02", sold)
	}
}
