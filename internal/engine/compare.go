package engine

import (
	"fmt"

	"github.com/piwi3910/mixcalc/internal/model"
)

// ComparisonScenario is a named variation of an estimate.
type ComparisonScenario struct {
	Name     string
	Estimate model.Estimate
}

// ComparisonResult holds the quote and headline figures for one scenario.
type ComparisonResult struct {
	Scenario      ComparisonScenario
	Summary       EstimateSummary
	Gallons       float64
	MaterialCost  float64
	TotalPrice    float64
	Profit        float64
	MarginPercent float64
}

// CompareScenarios quotes each scenario in order, for side-by-side display
// of what-if alternatives (other pricing model, worse conditions, etc.).
func CompareScenarios(scenarios []ComparisonScenario, costs *CostEngine) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		summary := Quote(scenario.Estimate, costs)
		results = append(results, ComparisonResult{
			Scenario:      scenario,
			Summary:       summary,
			Gallons:       summary.Cost.TotalGallonsNeeded,
			MaterialCost:  summary.Cost.MaterialCost,
			TotalPrice:    summary.Price.TotalPrice,
			Profit:        summary.Price.Profit,
			MarginPercent: summary.Price.MarginPercent,
		})
	}

	return results
}

// BuildDefaultScenarios derives what-if variations from an estimate: the
// other pricing model, every surface at light and at heavy condition, and
// the job without additives.
func BuildDefaultScenarios(base model.Estimate) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name:     "Current Estimate",
			Estimate: base,
		},
	}

	// Scenario: the other pricing model
	alt := cloneEstimate(base)
	if base.PricingModel == model.PricingCostPlus {
		alt.PricingModel = model.PricingPerSquareFoot
	} else {
		alt.PricingModel = model.PricingCostPlus
	}
	scenarios = append(scenarios, ComparisonScenario{
		Name:     fmt.Sprintf("%s Pricing", alt.PricingModel),
		Estimate: alt,
	})

	// Scenarios: uniform condition across the job
	for _, cond := range []model.SurfaceCondition{model.ConditionLight, model.ConditionHeavy} {
		if len(base.Items) == 0 {
			break
		}
		e := cloneEstimate(base)
		for i := range e.Items {
			e.Items[i].Condition = cond
		}
		scenarios = append(scenarios, ComparisonScenario{
			Name:     fmt.Sprintf("All Surfaces %s", conditionLabel(cond)),
			Estimate: e,
		})
	}

	// Scenario: drop additives
	if len(base.Additives) > 0 {
		e := cloneEstimate(base)
		e.Additives = []string{}
		scenarios = append(scenarios, ComparisonScenario{
			Name:     "No Additives",
			Estimate: e,
		})
	}

	return scenarios
}

func cloneEstimate(e model.Estimate) model.Estimate {
	cp := e
	cp.Items = append([]model.EstimateItem(nil), e.Items...)
	cp.Additives = append([]string(nil), e.Additives...)
	return cp
}

func conditionLabel(c model.SurfaceCondition) string {
	switch c {
	case model.ConditionLight:
		return "Light"
	case model.ConditionHeavy:
		return "Heavy"
	default:
		return "Average"
	}
}
