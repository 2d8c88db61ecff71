package engine

import "github.com/piwi3910/mixcalc/internal/model"

// ComputeTotalPrice prices an estimate under its pricing model and allocates
// the total across items. Rates are used as given; unusual values such as a
// markup below 1 simply produce unusual prices.
func ComputeTotalPrice(est model.Estimate, materialCost float64) model.PriceResult {
	totalSqFt := est.TotalSquareFootage()
	result := model.PriceResult{
		Model: est.PricingModel,
		Items: make([]model.ItemPrice, len(est.Items)),
	}

	switch est.PricingModel {
	case model.PricingCostPlus:
		result.TotalPrice = (est.LaborHours * est.HourlyRate) + (materialCost * est.MaterialMarkup)
		for i, it := range est.Items {
			result.Items[i] = model.ItemPrice{
				ItemID: it.ID,
				Price:  result.TotalPrice * areaShare(it.SquareFootage, totalSqFt),
			}
		}
	default:
		result.Model = model.PricingPerSquareFoot
		result.TotalPrice = totalSqFt * est.PricePerSqFt
		for i, it := range est.Items {
			result.Items[i] = model.ItemPrice{
				ItemID: it.ID,
				Price:  it.SquareFootage * est.PricePerSqFt,
			}
		}
	}

	result.Profit = result.TotalPrice - materialCost
	result.MarginPercent = marginPercent(result.Profit, result.TotalPrice)
	return result
}

// areaShare is the item's fraction of the job area, 0 for an empty job.
func areaShare(sqft, total float64) float64 {
	if total == 0 {
		return 0
	}
	return sqft / total
}

func marginPercent(profit, total float64) float64 {
	if total == 0 {
		return 0
	}
	return (profit / total) * 100
}
