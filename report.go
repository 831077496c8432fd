package schwabkest

import "fmt"

// Report is the full outcome of processing one statement.
type Report struct {
	Grammar      string
	Transactions []EnrichedTransaction
	Summary      TaxSummary
	Stats        ExtractStats
}

// Process runs the whole pipeline over one statement file: extract, enrich,
// aggregate. A statement with no recognizable transaction is a terminal
// condition reported as ErrNoTransactions, not an empty report.
func Process(path string, g Grammar, rates *RateTable) (*Report, error) {
	txs, stats, err := ExtractFile(path, g)
	if err != nil {
		return nil, err
	}
	if len(txs) == 0 {
		return nil, fmt.Errorf("%w (grammar %s, %d candidate lines, %d malformed)",
			ErrNoTransactions, g.Version, stats.Candidates, stats.Malformed)
	}
	enriched := Enrich(txs, rates)
	return &Report{
		Grammar:      g.Version,
		Transactions: enriched,
		Summary:      Summarize(enriched),
		Stats:        stats,
	}, nil
}

func (r *Report) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("summary", r.Summary)
	w.Append("transactions", r.Transactions)
	return w.MarshalJSON()
}
