package pricing

import (
	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/mtg-price-tracker/pkg/types"
)

// LowestPrices tracks the minimum observed price per condition for one
// vendor. Ties keep the first observed value.
type LowestPrices struct {
	prices map[domain.Condition]decimal.Decimal
}

// NewLowestPrices returns an empty aggregator.
func NewLowestPrices() *LowestPrices {
	return &LowestPrices{prices: make(map[domain.Condition]decimal.Decimal)}
}

// Observe records one qualifying listing.
func (l *LowestPrices) Observe(cond domain.Condition, price decimal.Decimal) {
	cur, ok := l.prices[cond]
	if !ok || price.LessThan(cur) {
		l.prices[cond] = price
	}
}

// Len returns the number of conditions with at least one listing.
func (l *LowestPrices) Len() int {
	return len(l.prices)
}

// Result returns a copy of the aggregated minima.
func (l *LowestPrices) Result() map[domain.Condition]decimal.Decimal {
	out := make(map[domain.Condition]decimal.Decimal, len(l.prices))
	for k, v := range l.prices {
		out[k] = v
	}
	return out
}
