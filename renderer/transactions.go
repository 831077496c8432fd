package renderer

import (
	"bytes"
	"fmt"

	"schwabkest"

	md "github.com/nao1215/markdown"
)

// TransactionsMarkdown renders the enriched transaction detail as a table,
// in sale-date order.
func TransactionsMarkdown(txs []schwabkest.EnrichedTransaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Transactions (%d)", len(txs)))

	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, []string{
			tx.DateSold.String(),
			tx.DateAcquired.String(),
			tx.Quantity.String(),
			tx.ProceedsUSD.String(),
			tx.CostBasisUSD.String(),
			tx.GainLossUSD.SignedString(),
			tx.GainLossEUR.SignedString(),
			tx.RateSale.StringFixed(4),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Sold", "Acquired", "Qty", "Proceeds", "Cost", "Gain/Loss $", "Gain/Loss €", "Rate"},
		Rows:   rows,
	})

	return doc.String()
}

// RawTransactionsMarkdown renders extraction output before enrichment.
func RawTransactionsMarkdown(txs []schwabkest.RawTransaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Extracted records (%d)", len(txs)))

	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, []string{
			tx.DateSold.String(),
			tx.DateAcquired.String(),
			tx.Quantity.String(),
			tx.ProceedsUSD.String(),
			tx.CostBasisUSD.String(),
			tx.GainLossUSD.SignedString(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Sold", "Acquired", "Qty", "Proceeds", "Cost", "Gain/Loss"},
		Rows:   rows,
	})

	return doc.String()
}
