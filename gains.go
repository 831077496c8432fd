package schwabkest

import (
	"sort"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// EnrichedTransaction is a RawTransaction fully priced in both currencies
// under the moving-average cost method, together with the two exchange rates
// that were actually applied. Immutable once computed.
type EnrichedTransaction struct {
	RawTransaction

	AvgCostUSD   Money // cost basis per share
	AvgCostEUR   Money
	SalePriceUSD Money // proceeds per share
	SalePriceEUR Money

	ProceedsEUR Money
	CostEUR     Money
	GainLossEUR Money // recomputed in EUR, independent of the native figure

	RateSale     decimal.Decimal // rate applied on the sale date
	RatePurchase decimal.Decimal // rate applied on the acquisition date
}

// Enrich converts every raw transaction into a fully-priced record, sorted by
// sale date ascending. EUR totals are converted from the native totals, not
// rebuilt from per-share prices, so per-share rounding never compounds.
// There is no failure path: the extractor only emits fully-parsed records and
// the rate table always resolves.
func Enrich(txs []RawTransaction, rates *RateTable) []EnrichedTransaction {
	sorted := make([]RawTransaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].DateSold.Before(sorted[j].DateSold) })

	enriched := make([]EnrichedTransaction, 0, len(sorted))
	for _, tx := range sorted {
		saleRate := rates.Rate(tx.DateSold)
		purchaseRate := rates.Rate(tx.DateAcquired)

		avgCost := tx.CostBasisUSD.Div(tx.Quantity)
		salePrice := tx.ProceedsUSD.Div(tx.Quantity)

		proceedsEUR := tx.ProceedsUSD.Convert(saleRate, money.EUR)
		costEUR := tx.CostBasisUSD.Convert(purchaseRate, money.EUR)

		enriched = append(enriched, EnrichedTransaction{
			RawTransaction: tx,
			AvgCostUSD:     avgCost,
			AvgCostEUR:     avgCost.Convert(purchaseRate, money.EUR),
			SalePriceUSD:   salePrice,
			SalePriceEUR:   salePrice.Convert(saleRate, money.EUR),
			ProceedsEUR:    proceedsEUR,
			CostEUR:        costEUR,
			GainLossEUR:    proceedsEUR.Sub(costEUR),
			RateSale:       saleRate,
			RatePurchase:   purchaseRate,
		})
	}
	return enriched
}

func (tx EnrichedTransaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date_sold", tx.DateSold)
	w.Append("date_acquired", tx.DateAcquired)
	w.Append("quantity", tx.Quantity)
	w.Append("avg_cost_usd", tx.AvgCostUSD.Amount().Round(2))
	w.Append("avg_cost_eur", tx.AvgCostEUR.Amount().Round(2))
	w.Append("sale_price_usd", tx.SalePriceUSD.Amount().Round(2))
	w.Append("sale_price_eur", tx.SalePriceEUR.Amount().Round(2))
	w.Append("proceeds_usd", tx.ProceedsUSD.Amount().Round(2))
	w.Append("proceeds_eur", tx.ProceedsEUR.Amount().Round(2))
	w.Append("cost_basis_usd", tx.CostBasisUSD.Amount().Round(2))
	w.Append("cost_eur", tx.CostEUR.Amount().Round(2))
	w.Append("gain_loss_usd", tx.GainLossUSD.Amount().Round(2))
	w.Append("gain_loss_eur", tx.GainLossEUR.Amount().Round(2))
	w.Append("exchange_rate_sale", tx.RateSale)
	w.Append("exchange_rate_purchase", tx.RatePurchase)
	return w.MarshalJSON()
}
