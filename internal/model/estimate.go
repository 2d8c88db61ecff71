package model

import (
	"time"

	"github.com/google/uuid"
)

// PricingModel selects how an estimate's customer price is derived.
type PricingModel string

const (
	PricingPerSquareFoot PricingModel = "per_sq_ft" // Flat rate times total area
	PricingCostPlus      PricingModel = "cost_plus" // Labor plus marked-up materials
)

func (p PricingModel) String() string {
	switch p {
	case PricingCostPlus:
		return "Cost Plus"
	default:
		return "Per Sq Ft"
	}
}

// EstimateItem is one surface on a job.
type EstimateItem struct {
	ID            string           `json:"id"`
	Surface       string           `json:"surface"`        // SurfaceType ID
	SquareFootage float64          `json:"square_footage"` // sq ft, > 0
	Condition     SurfaceCondition `json:"condition"`
}

// NewEstimateItem creates an item with a generated ID.
func NewEstimateItem(surface string, sqft float64, condition SurfaceCondition) EstimateItem {
	return EstimateItem{
		ID:            uuid.New().String()[:8],
		Surface:       surface,
		SquareFootage: sqft,
		Condition:     condition,
	}
}

// Estimate is a job being priced.
type Estimate struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	CreatedAt string         `json:"created_at"`
	Items     []EstimateItem `json:"items"`
	Additives []string       `json:"additives"` // selected chemical IDs, no duplicates

	PricingModel   PricingModel `json:"pricing_model"`
	PricePerSqFt   float64      `json:"price_per_sq_ft"`  // $ per sq ft
	LaborHours     float64      `json:"labor_hours"`      // hours
	HourlyRate     float64      `json:"hourly_rate"`      // $ per hour
	MaterialMarkup float64      `json:"material_markup"`  // multiplier, expected >= 1
}

// NewEstimate creates an empty estimate priced per square foot.
func NewEstimate(name string) Estimate {
	return Estimate{
		ID:             uuid.New().String()[:8],
		Name:           name,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
		Items:          []EstimateItem{},
		Additives:      []string{},
		PricingModel:   PricingPerSquareFoot,
		MaterialMarkup: 1.0,
	}
}

// TotalSquareFootage sums the area of every item.
func (e Estimate) TotalSquareFootage() float64 {
	var total float64
	for _, it := range e.Items {
		total += it.SquareFootage
	}
	return total
}

// AddItem appends an item.
func (e *Estimate) AddItem(it EstimateItem) {
	e.Items = append(e.Items, it)
}

// UpdateItem replaces the item with the same ID. Returns false if not found.
func (e *Estimate) UpdateItem(it EstimateItem) bool {
	for i := range e.Items {
		if e.Items[i].ID == it.ID {
			e.Items[i] = it
			return true
		}
	}
	return false
}

// RemoveItem removes an item by ID. Returns true if found and removed.
func (e *Estimate) RemoveItem(id string) bool {
	for i, it := range e.Items {
		if it.ID == id {
			e.Items = append(e.Items[:i], e.Items[i+1:]...)
			return true
		}
	}
	return false
}

// FindItemByID returns a pointer to the item with the given ID, or nil.
func (e *Estimate) FindItemByID(id string) *EstimateItem {
	for i := range e.Items {
		if e.Items[i].ID == id {
			return &e.Items[i]
		}
	}
	return nil
}

// HasAdditive reports whether the chemical ID is selected.
func (e Estimate) HasAdditive(id string) bool {
	for _, a := range e.Additives {
		if a == id {
			return true
		}
	}
	return false
}

// SelectAdditive adds a chemical ID to the selection if not already present.
func (e *Estimate) SelectAdditive(id string) {
	if id == "" || e.HasAdditive(id) {
		return
	}
	e.Additives = append(e.Additives, id)
}

// DeselectAdditive removes a chemical ID. Returns true if it was selected.
func (e *Estimate) DeselectAdditive(id string) bool {
	for i, a := range e.Additives {
		if a == id {
			e.Additives = append(e.Additives[:i], e.Additives[i+1:]...)
			return true
		}
	}
	return false
}

// ItemCost is the material cost breakdown of one estimate item.
type ItemCost struct {
	ItemID         string  `json:"item_id"`
	Index          int     `json:"index"` // position of the item in the estimate
	Surface        string  `json:"surface"`
	GallonsNeeded  float64 `json:"gallons_needed"`  // gal of ready-to-use mix
	SHRatio        float64 `json:"sh_ratio"`        // share of the mix that is SH
	SHCost         float64 `json:"sh_cost"`         // $
	SurfactantCost float64 `json:"surfactant_cost"` // $
	Cost           float64 `json:"cost"`            // $, SHCost + SurfactantCost
}

// CostResult is the output of the material cost engine.
type CostResult struct {
	TotalGallonsNeeded float64    `json:"total_gallons_needed"`
	MaterialCost       float64    `json:"material_cost"` // $, items plus additive fees
	Items              []ItemCost `json:"items"`
	AdditiveCount      int        `json:"additive_count"`
	AdditiveCost       float64    `json:"additive_cost"`
	Unpriced           []string   `json:"unpriced,omitempty"` // item IDs whose surface is not in the coverage table
}

// ItemPrice is one item's share of the customer price.
type ItemPrice struct {
	ItemID string  `json:"item_id"`
	Price  float64 `json:"price"`
}

// PriceResult is the output of the pricing engine.
type PriceResult struct {
	Model         PricingModel `json:"model"`
	TotalPrice    float64      `json:"total_price"`
	Profit        float64      `json:"profit"`
	MarginPercent float64      `json:"margin_percent"`
	Items         []ItemPrice  `json:"items"`
}

// PriceSnapshot freezes an estimate's numbers at approval time so an invoice
// can be raised from them later without recomputing.
type PriceSnapshot struct {
	EstimateID    string       `json:"estimate_id"`
	EstimateName  string       `json:"estimate_name"`
	ApprovedAt    string       `json:"approved_at"`
	PricingModel  PricingModel `json:"pricing_model"`
	SquareFootage float64      `json:"square_footage"`
	Gallons       float64      `json:"gallons"`
	MaterialCost  float64      `json:"material_cost"`
	TotalPrice    float64      `json:"total_price"`
	Profit        float64      `json:"profit"`
	MarginPercent float64      `json:"margin_percent"`
}
