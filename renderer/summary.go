// Package renderer builds markdown views of extraction and tax results.
package renderer

import (
	"bytes"
	"fmt"

	"schwabkest"

	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the tax summary of a processed statement.
func SummaryMarkdown(r *schwabkest.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Schwab Österreich Steuerrechner")
	doc.PlainText(fmt.Sprintf("Statement layout %s, %d transactions over %s shares.",
		r.Grammar, r.Summary.Count, r.Summary.TotalShares))

	doc.H2("KESt Summary")
	doc.Table(md.TableSet{
		Header: []string{"Position", "EUR"},
		Rows: [][]string{
			{"Gesamterlös", r.Summary.ProceedsEUR.String()},
			{"Anschaffungskosten", r.Summary.CostEUR.String()},
			{"Gewinn/Verlust", r.Summary.GainLossEUR.SignedString()},
			{"KESt 27,5%", r.Summary.KestEUR.String()},
			{"Nettogewinn nach Steuer", r.Summary.NetGainEUR.SignedString()},
		},
	})

	if r.Stats.Malformed > 0 || r.Stats.UnreadablePages > 0 {
		doc.H2("Extraction warnings")
		doc.PlainText(fmt.Sprintf("%d malformed row(s) dropped, %d unreadable page(s) skipped.",
			r.Stats.Malformed, r.Stats.UnreadablePages))
	}

	return doc.String()
}
