package schwabkest

import (
	"errors"
	"regexp"
	"strings"

	"schwabkest/date"
)

// ErrNoTransactions is returned when a whole statement yields no records.
// Zero matches is a valid extraction outcome but a terminal one for the
// pipeline, so it is surfaced as a distinguishable error rather than an
// empty report.
var ErrNoTransactions = errors.New("no transactions found in statement")

// RawTransaction is one stock sale exactly as recovered from the statement
// text, amounts still in the native currency. It is immutable once emitted.
type RawTransaction struct {
	DateAcquired date.Date
	DateSold     date.Date
	Quantity     Quantity
	ProceedsUSD  Money
	CostBasisUSD Money
	// GainLossUSD is proceeds minus cost basis, unless the statement prints
	// an explicit figure, in which case the printed one wins (the broker's
	// own number carries adjustments the subtraction cannot know about).
	GainLossUSD Money
}

// ExtractStats counts what happened to the scanned text. Dropped contexts are
// not recorded individually, but a malformed match (row pattern hit, field
// parsing failed) is kept distinguishable from a plain non-match.
type ExtractStats struct {
	Candidates      int // lines holding the issuer or CUSIP anchor
	Matched         int // contexts that produced a record
	Malformed       int // contexts that matched the row pattern but failed parsing
	UnreadablePages int
}

// Merge adds the counters of o into s.
func (s *ExtractStats) Merge(o ExtractStats) {
	s.Candidates += o.Candidates
	s.Matched += o.Matched
	s.Malformed += o.Malformed
	s.UnreadablePages += o.UnreadablePages
}

// Grammar carries every layout assumption made about the statement text, so
// that a format change stays isolated here. Text extraction visually wraps a
// statement row over several lines; the grammar therefore matches over a
// context window of a candidate line plus the few lines after it.
type Grammar struct {
	Version string
	Issuer  string // issuer name anchor, e.g. "SNAP INC"
	CUSIP   string // security identifier anchor
	Window  int    // lines appended to a candidate line to form the context

	row  *regexp.Regexp // CUSIP qty MM/DD/YYMM/DD/YY $proceeds $cost
	gain *regexp.Regexp // explicit gain/loss after the "--" separator
}

// NewGrammar compiles a statement grammar for one security.
func NewGrammar(version, issuer, cusip string) Grammar {
	return Grammar{
		Version: version,
		Issuer:  issuer,
		CUSIP:   cusip,
		Window:  3,
		// The two sale dates are juxtaposed with no separator, and the
		// proceeds column follows the second one without whitespace.
		row: regexp.MustCompile(regexp.QuoteMeta(cusip) +
			`\s+(\d+\.\d{2})\s+(\d{2}/\d{2}/\d{2})(\d{2}/\d{2}/\d{2})\$\s*([\d,]+\.\d{2})\s*\$\s*([\d,]+\.\d{2})`),
		gain: regexp.MustCompile(`--\s*\$\s*\(?([\d,]+\.\d{2})\)?`),
	}
}

// DefaultGrammar returns the grammar for the Schwab year-end summary layout.
func DefaultGrammar() Grammar {
	return NewGrammar("schwab-year-end/1", "SNAP INC", "83304A106")
}

// Extract scans one page of statement text and returns every transaction the
// grammar recognizes. Contexts that fail the row pattern are skipped; contexts
// that match it but do not parse cleanly are dropped and counted. Repeated
// identical rows are deliberately kept: same-day vesting lots are real.
func (g Grammar) Extract(pageText string) ([]RawTransaction, ExtractStats) {
	var txs []RawTransaction
	var stats ExtractStats

	lines := strings.Split(pageText, "\n")
	for i, line := range lines {
		if !strings.Contains(line, g.Issuer) && !strings.Contains(line, g.CUSIP) {
			continue
		}
		stats.Candidates++

		context := line
		for j := 1; j <= g.Window && i+j < len(lines); j++ {
			context += " " + lines[i+j]
		}

		m := g.row.FindStringSubmatch(context)
		if m == nil {
			continue
		}

		tx, ok := g.parseRow(m, context)
		if !ok {
			stats.Malformed++
			continue
		}
		stats.Matched++
		txs = append(txs, tx)
	}
	return txs, stats
}

// parseRow converts the row-pattern groups into a typed record. The explicit
// gain/loss figure, when printed after the "--" separator, overrides the
// computed proceeds minus cost.
func (g Grammar) parseRow(m []string, context string) (RawTransaction, bool) {
	quantity, err := ParseAmount(m[1])
	if err != nil || !quantity.IsPositive() {
		return RawTransaction{}, false
	}
	acquired, err := date.ParseStatement(m[2])
	if err != nil {
		return RawTransaction{}, false
	}
	sold, err := date.ParseStatement(m[3])
	if err != nil {
		return RawTransaction{}, false
	}
	if acquired.After(sold) {
		return RawTransaction{}, false
	}
	proceeds, err := ParseAmount(m[4])
	if err != nil {
		return RawTransaction{}, false
	}
	cost, err := ParseAmount(m[5])
	if err != nil {
		return RawTransaction{}, false
	}

	gainLoss := proceeds.Sub(cost)
	if loc := g.gain.FindStringSubmatchIndex(context); loc != nil {
		if v, err := ParseAmount(context[loc[2]:loc[3]]); err == nil {
			// a parenthesis shortly after the figure marks it negative
			end := min(loc[1]+5, len(context))
			if strings.Contains(context[loc[0]:end], "(") {
				gainLoss = v.Neg()
			} else {
				gainLoss = v
			}
		}
	}

	return RawTransaction{
		DateAcquired: acquired,
		DateSold:     sold,
		Quantity:     Q(quantity),
		ProceedsUSD:  USD(proceeds),
		CostBasisUSD: USD(cost),
		GainLossUSD:  USD(gainLoss),
	}, true
}

func (tx RawTransaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date_acquired", tx.DateAcquired)
	w.Append("date_sold", tx.DateSold)
	w.Append("quantity", tx.Quantity)
	w.Append("proceeds_usd", tx.ProceedsUSD.Amount().Round(2))
	w.Append("cost_basis_usd", tx.CostBasisUSD.Amount().Round(2))
	w.Append("gain_loss_usd", tx.GainLossUSD.Amount().Round(2))
	return w.MarshalJSON()
}
