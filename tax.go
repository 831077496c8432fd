package schwabkest

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// KestRate is the flat Austrian capital-gains tax rate (KESt, 27.5%).
var KestRate = decimal.RequireFromString("0.275")

// TaxSummary aggregates a full enriched set in the reporting currency.
// It is computed once; there are no partial updates.
type TaxSummary struct {
	ProceedsEUR Money
	CostEUR     Money
	GainLossEUR Money
	KestEUR     Money // never negative: losses owe zero tax
	NetGainEUR  Money // gain minus tax, negative on an aggregate loss
	TotalShares Quantity
	Count       int
}

// Summarize sums the enriched records and applies the KESt rate.
// Tax owed is floored at zero, but the net figure is gain minus tax, so an
// aggregate loss stays visible as a negative net.
func Summarize(txs []EnrichedTransaction) TaxSummary {
	s := TaxSummary{
		ProceedsEUR: EUR(0),
		CostEUR:     EUR(0),
		GainLossEUR: EUR(0),
		Count:       len(txs),
	}
	for _, tx := range txs {
		s.ProceedsEUR = s.ProceedsEUR.Add(tx.ProceedsEUR)
		s.CostEUR = s.CostEUR.Add(tx.CostEUR)
		s.GainLossEUR = s.GainLossEUR.Add(tx.GainLossEUR)
		s.TotalShares = s.TotalShares.Add(tx.Quantity)
	}

	kest := s.GainLossEUR.Amount().Mul(KestRate)
	if kest.IsNegative() {
		kest = decimal.Zero
	}
	s.KestEUR = M(kest, money.EUR)
	s.NetGainEUR = s.GainLossEUR.Sub(s.KestEUR)
	return s
}

func (s TaxSummary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("total_proceeds_eur", s.ProceedsEUR.Amount().Round(2))
	w.Append("total_cost_eur", s.CostEUR.Amount().Round(2))
	w.Append("total_gain_loss_eur", s.GainLossEUR.Amount().Round(2))
	w.Append("kest_27_5_percent", s.KestEUR.Amount().Round(2))
	w.Append("net_gain_after_tax", s.NetGainEUR.Amount().Round(2))
	w.Append("total_shares", s.TotalShares)
	w.Append("transaction_count", s.Count)
	return w.MarshalJSON()
}
