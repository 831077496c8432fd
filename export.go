package schwabkest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet      = "Zusammenfassung"
	transactionsSheet = "Transaktionen"
	maxColumnWidth    = 50
)

// transactionColumns defines the detail-sheet layout: header and a value
// accessor per column. Monetary cells carry plain rounded numbers so the
// spreadsheet stays computable.
var transactionColumns = []struct {
	header string
	value  func(tx EnrichedTransaction) any
}{
	{"date_sold", func(tx EnrichedTransaction) any { return tx.DateSold.String() }},
	{"date_acquired", func(tx EnrichedTransaction) any { return tx.DateAcquired.String() }},
	{"quantity", func(tx EnrichedTransaction) any { return tx.Quantity.Amount().InexactFloat64() }},
	{"avg_cost_usd", func(tx EnrichedTransaction) any { return cell(tx.AvgCostUSD) }},
	{"avg_cost_eur", func(tx EnrichedTransaction) any { return cell(tx.AvgCostEUR) }},
	{"sale_price_usd", func(tx EnrichedTransaction) any { return cell(tx.SalePriceUSD) }},
	{"sale_price_eur", func(tx EnrichedTransaction) any { return cell(tx.SalePriceEUR) }},
	{"proceeds_usd", func(tx EnrichedTransaction) any { return cell(tx.ProceedsUSD) }},
	{"proceeds_eur", func(tx EnrichedTransaction) any { return cell(tx.ProceedsEUR) }},
	{"cost_basis_usd", func(tx EnrichedTransaction) any { return cell(tx.CostBasisUSD) }},
	{"cost_eur", func(tx EnrichedTransaction) any { return cell(tx.CostEUR) }},
	{"gain_loss_usd", func(tx EnrichedTransaction) any { return cell(tx.GainLossUSD) }},
	{"gain_loss_eur", func(tx EnrichedTransaction) any { return cell(tx.GainLossEUR) }},
	{"exchange_rate_sale", func(tx EnrichedTransaction) any { return tx.RateSale.InexactFloat64() }},
	{"exchange_rate_purchase", func(tx EnrichedTransaction) any { return tx.RatePurchase.InexactFloat64() }},
}

func cell(m Money) float64 { return m.Amount().Round(2).InexactFloat64() }

// WriteXLSX writes the summary and transaction detail as a spreadsheet.
func WriteXLSX(path string, r *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}
	if err := writeSummarySheet(f, r.Summary); err != nil {
		return err
	}

	if _, err := f.NewSheet(transactionsSheet); err != nil {
		return err
	}
	if err := writeTransactionsSheet(f, r.Transactions); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("cannot write spreadsheet %q: %w", path, err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, s TaxSummary) error {
	rows := [][2]string{
		{"Schwab Österreich Steuerrechner", ""},
		{"", ""},
		{"Gesamterlös (EUR)", s.ProceedsEUR.String()},
		{"Anschaffungskosten (EUR)", s.CostEUR.String()},
		{"Gewinn/Verlust (EUR)", s.GainLossEUR.String()},
		{"KESt 27,5% (EUR)", s.KestEUR.String()},
		{"Nettogewinn nach Steuer (EUR)", s.NetGainEUR.String()},
		{"", ""},
		{"Anzahl Transaktionen", fmt.Sprint(s.Count)},
		{"Verkaufte Aktien", s.TotalShares.String()},
	}
	widths := make([]int, 2)
	for i, row := range rows {
		for j, v := range row {
			cellName, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(summarySheet, cellName, v); err != nil {
				return err
			}
			widths[j] = max(widths[j], len([]rune(v)))
		}
	}
	return autosize(f, summarySheet, widths)
}

func writeTransactionsSheet(f *excelize.File, txs []EnrichedTransaction) error {
	widths := make([]int, len(transactionColumns))
	for j, col := range transactionColumns {
		cellName, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(transactionsSheet, cellName, col.header); err != nil {
			return err
		}
		widths[j] = len(col.header)
	}
	for i, tx := range txs {
		for j, col := range transactionColumns {
			cellName, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			v := col.value(tx)
			if err := f.SetCellValue(transactionsSheet, cellName, v); err != nil {
				return err
			}
			widths[j] = max(widths[j], len(fmt.Sprint(v)))
		}
	}
	return autosize(f, transactionsSheet, widths)
}

// autosize grows each column to its longest cell, capped to keep the sheet readable.
func autosize(f *excelize.File, sheet string, widths []int) error {
	for j, w := range widths {
		name, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, float64(min(w+2, maxColumnWidth))); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes the report as an indented JSON artifact with summary first.
func WriteJSON(path string, r *Report) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return err
	}
	var indented bytes.Buffer
	if err := json.Indent(&indented, raw, "", "  "); err != nil {
		return err
	}
	indented.WriteByte('\n')
	if err := os.WriteFile(path, indented.Bytes(), 0644); err != nil {
		return fmt.Errorf("cannot write report %q: %w", path, err)
	}
	return nil
}
