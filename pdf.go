package schwabkest

import (
	"fmt"

	"github.com/dslipak/pdf"
)

// ReadPages extracts the text of every readable page of a PDF document.
// A page whose text cannot be extracted is skipped and counted, so a single
// damaged page does not lose the rest of the statement.
func ReadPages(path string) (pages []string, unreadable int, err error) {
	r, err := pdf.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("cannot open statement %q: %w", path, err)
	}
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			unreadable++
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil || text == "" {
			unreadable++
			continue
		}
		pages = append(pages, text)
	}
	return pages, unreadable, nil
}

// ExtractFile runs the grammar over every page of a statement file.
func ExtractFile(path string, g Grammar) ([]RawTransaction, ExtractStats, error) {
	pages, unreadable, err := ReadPages(path)
	if err != nil {
		return nil, ExtractStats{}, err
	}
	var txs []RawTransaction
	stats := ExtractStats{UnreadablePages: unreadable}
	for _, page := range pages {
		pageTxs, pageStats := g.Extract(page)
		txs = append(txs, pageTxs...)
		stats.Merge(pageStats)
	}
	return txs, stats, nil
}
