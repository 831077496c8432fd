package schwabkest

import (
	"fmt"
	"sort"

	"schwabkest/date"

	"github.com/shopspring/decimal"
)

// DefaultRate is applied when a date cannot be parsed at all and no table
// entry can therefore be chosen.
var DefaultRate = decimal.RequireFromString("0.9300")

// rateEntry is one observation of the USD to EUR conversion factor.
type rateEntry struct {
	on   date.Date
	rate decimal.Decimal
}

// RateTable is a sorted association from dates to exchange rates. It supports
// nearest-neighbour lookup so that a statement date falling between two
// observations still resolves deterministically.
type RateTable struct {
	entries []rateEntry
	def     decimal.Decimal
}

// NewRateTable builds a table from ISO date to decimal rate strings.
// It panics on invalid input, since tables are compiled-in data.
func NewRateTable(rates map[string]string) *RateTable {
	t := &RateTable{def: DefaultRate}
	for on, rate := range rates {
		t.entries = append(t.entries, rateEntry{on: date.MustParse(on), rate: decimal.RequireFromString(rate)})
	}
	sort.Slice(t.entries, func(i, j int) bool { return t.entries[i].on.Before(t.entries[j].on) })
	for i := 1; i < len(t.entries); i++ {
		if t.entries[i].on == t.entries[i-1].on {
			panic(fmt.Sprintf("duplicate rate entry for %s", t.entries[i].on))
		}
	}
	return t
}

// Len returns the number of observations in the table.
func (t *RateTable) Len() int { return len(t.entries) }

// Rate returns the exchange rate for a date: the exact observation when one
// exists, otherwise the observation with the smallest day distance.
// When two observations are equidistant, the earlier one wins.
func (t *RateTable) Rate(on date.Date) decimal.Decimal {
	_, rate := t.Resolve(on)
	return rate
}

// Resolve returns the observation chosen for a date together with its own
// date, so callers can tell an exact hit from a nearest-neighbour fallback.
func (t *RateTable) Resolve(on date.Date) (date.Date, decimal.Decimal) {
	if len(t.entries) == 0 {
		return date.Date{}, t.def
	}
	// first entry not before `on`
	i := sort.Search(len(t.entries), func(i int) bool { return !t.entries[i].on.Before(on) })
	if i == len(t.entries) {
		last := t.entries[len(t.entries)-1]
		return last.on, last.rate
	}
	if t.entries[i].on == on || i == 0 {
		return t.entries[i].on, t.entries[i].rate
	}
	// candidates are the neighbours at i-1 (before) and i (after); on a tie
	// the earlier date wins, hence the strict comparison.
	before, after := t.entries[i-1], t.entries[i]
	if date.DaysBetween(after.on, on) < date.DaysBetween(before.on, on) {
		return after.on, after.rate
	}
	return before.on, before.rate
}

// RateFor resolves a rate from a raw date string. An unparseable string
// resolves to the default rate, never to an error.
func (t *RateTable) RateFor(s string) decimal.Decimal {
	on, err := date.Parse(s)
	if err != nil {
		return t.def
	}
	return t.Rate(on)
}

// ECBRates2025 holds the ECB USD/EUR reference rates bundled with the tool.
func ECBRates2025() *RateTable {
	return NewRateTable(map[string]string{
		"2025-01-15": "0.9234",
		"2025-02-07": "0.9189",
		"2025-02-15": "0.9245",
		"2025-03-07": "0.9312",
		"2025-03-15": "0.9278",
		"2025-04-15": "0.9156",
		"2025-05-07": "0.9087",
		"2025-05-12": "0.9134",
		"2025-05-15": "0.9167",
		"2025-06-02": "0.9223",
		"2025-06-04": "0.9198",
		"2025-06-15": "0.9245",
		"2025-07-15": "0.9289",
		"2025-08-15": "0.9356",
		"2025-09-15": "0.9412",
		"2025-10-15": "0.9378",
		"2025-11-10": "0.9501",
		"2025-11-15": "0.9489",
		"2025-12-08": "0.9534",
		"2025-12-15": "0.9512",
	})
}
