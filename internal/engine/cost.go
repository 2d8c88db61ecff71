package engine

import (
	"sort"

	"github.com/piwi3910/mixcalc/internal/model"
)

// CostEngine converts job surfaces into gallons of mix and material cost.
type CostEngine struct {
	Table model.CoverageTable
	Rates model.MaterialRates
}

// NewCostEngine returns a cost engine over the given coverage table and rates.
func NewCostEngine(table model.CoverageTable, rates model.MaterialRates) *CostEngine {
	return &CostEngine{Table: table, Rates: rates}
}

// ItemCost prices a single item. The second return is false when the item's
// surface is not in the coverage table.
//
// Preconditions (not checked): the surface's BaseCoverageRate is positive.
func (c *CostEngine) ItemCost(it model.EstimateItem) (model.ItemCost, bool) {
	surface, ok := c.Table.Lookup(it.Surface)
	if !ok {
		return model.ItemCost{ItemID: it.ID, Surface: it.Surface}, false
	}

	gallons := it.SquareFootage / (surface.BaseCoverageRate * it.Condition.Multiplier())
	shRatio := c.Rates.SHRatioFor(surface.Group)
	shCost := gallons * shRatio * c.Rates.PricePerGallonSH
	surfactantCost := gallons * (c.Rates.SurfactantOzPerGallon / model.OzPerGallonUS) * c.Rates.PricePerGallonSurfactant

	return model.ItemCost{
		ItemID:         it.ID,
		Surface:        it.Surface,
		GallonsNeeded:  gallons,
		SHRatio:        shRatio,
		SHCost:         shCost,
		SurfactantCost: surfactantCost,
		Cost:           shCost + surfactantCost,
	}, true
}

// ComputeMaterialCost totals gallons and material cost for a job. Each
// distinct additive ID adds a flat fee regardless of area. Totals do not
// depend on item order. An empty job costs nothing.
func (c *CostEngine) ComputeMaterialCost(items []model.EstimateItem, additives []string) model.CostResult {
	result := model.CostResult{
		Items: make([]model.ItemCost, 0, len(items)),
	}

	gallons := make([]float64, 0, len(items))
	costs := make([]float64, 0, len(items))
	for i, it := range items {
		ic, ok := c.ItemCost(it)
		if !ok {
			result.Unpriced = append(result.Unpriced, it.ID)
			continue
		}
		ic.Index = i
		result.Items = append(result.Items, ic)
		gallons = append(gallons, ic.GallonsNeeded)
		costs = append(costs, ic.Cost)
	}

	result.AdditiveCount = countDistinct(additives)
	result.AdditiveCost = float64(result.AdditiveCount) * c.Rates.AdditiveFee
	result.TotalGallonsNeeded = canonicalSum(gallons)
	result.MaterialCost = canonicalSum(costs) + result.AdditiveCost
	return result
}

// canonicalSum adds values in ascending order so the float result is the
// same for any permutation of the input. The input slice is reordered.
func canonicalSum(values []float64) float64 {
	sort.Float64s(values)
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

func countDistinct(ids []string) int {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		seen[id] = struct{}{}
	}
	return len(seen)
}
