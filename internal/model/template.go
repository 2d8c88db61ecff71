package model

import (
	"time"

	"github.com/google/uuid"
)

// EstimateTemplate is a reusable job layout: surfaces, additives and pricing
// parameters. It never carries computed totals.
type EstimateTemplate struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
	Items       []EstimateItem `json:"items"`
	Additives   []string       `json:"additives"`

	PricingModel   PricingModel `json:"pricing_model"`
	PricePerSqFt   float64      `json:"price_per_sq_ft"`
	LaborHours     float64      `json:"labor_hours"`
	HourlyRate     float64      `json:"hourly_rate"`
	MaterialMarkup float64      `json:"material_markup"`
}

// NewEstimateTemplate captures an estimate as a template.
func NewEstimateTemplate(name, description string, e Estimate) EstimateTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return EstimateTemplate{
		ID:             uuid.New().String()[:8],
		Name:           name,
		Description:    description,
		CreatedAt:      now,
		UpdatedAt:      now,
		Items:          copyItems(e.Items),
		Additives:      copyStrings(e.Additives),
		PricingModel:   e.PricingModel,
		PricePerSqFt:   e.PricePerSqFt,
		LaborHours:     e.LaborHours,
		HourlyRate:     e.HourlyRate,
		MaterialMarkup: e.MaterialMarkup,
	}
}

// ToEstimate creates a new Estimate from this template. Items get fresh IDs
// so they are independent of the template.
func (t EstimateTemplate) ToEstimate(name string) Estimate {
	e := NewEstimate(name)
	for _, it := range t.Items {
		e.AddItem(NewEstimateItem(it.Surface, it.SquareFootage, it.Condition))
	}
	for _, a := range t.Additives {
		e.SelectAdditive(a)
	}
	e.PricingModel = t.PricingModel
	e.PricePerSqFt = t.PricePerSqFt
	e.LaborHours = t.LaborHours
	e.HourlyRate = t.HourlyRate
	e.MaterialMarkup = t.MaterialMarkup
	return e
}

// TemplateStore holds a collection of estimate templates.
type TemplateStore struct {
	Templates []EstimateTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []EstimateTemplate{},
	}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t EstimateTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *EstimateTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns a list of template names.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *EstimateTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

func copyItems(items []EstimateItem) []EstimateItem {
	if items == nil {
		return []EstimateItem{}
	}
	cp := make([]EstimateItem, len(items))
	copy(cp, items)
	return cp
}

func copyStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	cp := make([]string, len(s))
	copy(cp, s)
	return cp
}
