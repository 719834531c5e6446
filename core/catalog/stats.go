// Package catalog - Price statistics
package catalog

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// OperatorStats summarises one operator's price range
type OperatorStats struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Tariffs  int             `json:"tariffs"`
	Cheapest Tariff          `json:"cheapest"`
	Priciest Tariff          `json:"priciest"`
	Mean     decimal.Decimal `json:"mean"`
}

// CatalogStats holds catalog-wide price statistics
type CatalogStats struct {
	Operators        int             `json:"operators"`
	Tariffs          int             `json:"tariffs"`
	Cheapest         Tariff          `json:"cheapest"`
	CheapestOperator string          `json:"cheapest_operator"`
	ByOperator       []OperatorStats `json:"by_operator"`
}

// Stats returns price statistics in registration order.
// Means are rounded to kopecks.
func (c *Catalog) Stats() CatalogStats {
	stats := CatalogStats{
		Operators:  c.Len(),
		ByOperator: make([]OperatorStats, 0, c.Len()),
	}

	for _, op := range c.List() {
		if len(op.tariffs) == 0 {
			stats.ByOperator = append(stats.ByOperator, OperatorStats{ID: op.ID, Name: op.Name, Mean: decimal.Zero})
			continue
		}

		cheapest := lo.MinBy(op.tariffs, func(a, b Tariff) bool { return a.Price < b.Price })
		priciest := lo.MaxBy(op.tariffs, func(a, b Tariff) bool { return a.Price > b.Price })
		sum := lo.SumBy(op.tariffs, func(t Tariff) int64 { return t.Price })

		stats.ByOperator = append(stats.ByOperator, OperatorStats{
			ID:       op.ID,
			Name:     op.Name,
			Tariffs:  len(op.tariffs),
			Cheapest: cheapest,
			Priciest: priciest,
			Mean:     decimal.NewFromInt(sum).Div(decimal.NewFromInt(int64(len(op.tariffs)))).Round(2),
		})

		if stats.Tariffs == 0 || cheapest.Price < stats.Cheapest.Price {
			stats.Cheapest = cheapest
			stats.CheapestOperator = op.Name
		}
		stats.Tariffs += len(op.tariffs)
	}

	return stats
}
