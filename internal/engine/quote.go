package engine

import (
	"time"

	"github.com/piwi3910/mixcalc/internal/model"
)

// EstimateSummary is an estimate together with its material cost and price.
type EstimateSummary struct {
	Estimate model.Estimate
	Cost     model.CostResult
	Price    model.PriceResult
}

// Quote runs the full estimate pipeline: coverage lookups and material cost,
// then pricing on that cost.
func Quote(est model.Estimate, costs *CostEngine) EstimateSummary {
	cost := costs.ComputeMaterialCost(est.Items, est.Additives)
	return EstimateSummary{
		Estimate: est,
		Cost:     cost,
		Price:    ComputeTotalPrice(est, cost.MaterialCost),
	}
}

// Snapshot freezes the summary for invoicing at approval time.
func (s EstimateSummary) Snapshot(at time.Time) model.PriceSnapshot {
	return model.PriceSnapshot{
		EstimateID:    s.Estimate.ID,
		EstimateName:  s.Estimate.Name,
		ApprovedAt:    at.UTC().Format(time.RFC3339),
		PricingModel:  s.Price.Model,
		SquareFootage: s.Estimate.TotalSquareFootage(),
		Gallons:       s.Cost.TotalGallonsNeeded,
		MaterialCost:  s.Cost.MaterialCost,
		TotalPrice:    s.Price.TotalPrice,
		Profit:        s.Price.Profit,
		MarginPercent: s.Price.MarginPercent,
	}
}

// ItemLines joins each item with its cost and price, in estimate order.
// Joins are by position so duplicate or empty item IDs stay separate.
// Items whose surface was unpriced carry a zero cost.
func (s EstimateSummary) ItemLines() []ItemLine {
	lines := make([]ItemLine, len(s.Estimate.Items))
	for i, it := range s.Estimate.Items {
		lines[i].Item = it
		if i < len(s.Price.Items) {
			lines[i].Price = s.Price.Items[i].Price
		}
	}
	for _, c := range s.Cost.Items {
		if c.Index >= 0 && c.Index < len(lines) {
			lines[c.Index].Cost = c
		}
	}
	return lines
}

// ItemLine is one row of an itemized estimate.
type ItemLine struct {
	Item  model.EstimateItem
	Cost  model.ItemCost
	Price float64
}
