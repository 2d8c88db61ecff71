package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Pricing defaults applied to new estimates
	DefaultPricingModel   PricingModel `json:"default_pricing_model"`
	DefaultPricePerSqFt   float64      `json:"default_price_per_sq_ft"`
	DefaultLaborHours     float64      `json:"default_labor_hours"`
	DefaultHourlyRate     float64      `json:"default_hourly_rate"`
	DefaultMaterialMarkup float64      `json:"default_material_markup"`

	// Mixing defaults applied to new calculations
	DefaultTankSize      float64 `json:"default_tank_size"`      // gal
	DefaultInjectorRatio float64 `json:"default_injector_ratio"` // water:chemical at the tip
	DefaultSourcePercent float64 `json:"default_source_percent"` // % SH as purchased
	DefaultTargetPercent float64 `json:"default_target_percent"` // % SH on the surface

	// Material cost model
	Rates MaterialRates `json:"rates"`

	RecentEstimates []string `json:"recent_estimates"`
}

// DefaultAppConfig returns an AppConfig populated with the reference values.
func DefaultAppConfig() AppConfig {
	mix := DefaultMixInputs(TargetPercentage{})
	return AppConfig{
		DefaultPricingModel:   PricingPerSquareFoot,
		DefaultPricePerSqFt:   0.15,
		DefaultLaborHours:     4,
		DefaultHourlyRate:     150,
		DefaultMaterialMarkup: 1.3,
		DefaultTankSize:       mix.TankSize,
		DefaultInjectorRatio:  mix.InjectorRatio,
		DefaultSourcePercent:  mix.SourcePercent,
		DefaultTargetPercent:  mix.TargetPercent,
		Rates:                 DefaultMaterialRates(),
		RecentEstimates:       []string{},
	}
}

// ApplyToEstimate copies the pricing defaults into an estimate.
func (c AppConfig) ApplyToEstimate(e *Estimate) {
	e.PricingModel = c.DefaultPricingModel
	e.PricePerSqFt = c.DefaultPricePerSqFt
	e.LaborHours = c.DefaultLaborHours
	e.HourlyRate = c.DefaultHourlyRate
	e.MaterialMarkup = c.DefaultMaterialMarkup
}

// MixInputsFor returns starting mix inputs for a strategy using the
// configured tank, injector and strength defaults.
func (c AppConfig) MixInputsFor(s MixingStrategy) MixInputs {
	in := DefaultMixInputs(s)
	in.TankSize = c.DefaultTankSize
	in.InjectorRatio = c.DefaultInjectorRatio
	in.SourcePercent = c.DefaultSourcePercent
	in.TargetPercent = c.DefaultTargetPercent
	return in
}

// AddRecent records an estimate path at the front of the recent list,
// keeping at most ten entries.
func (c *AppConfig) AddRecent(path string) {
	list := []string{path}
	for _, p := range c.RecentEstimates {
		if p != path {
			list = append(list, p)
		}
	}
	if len(list) > 10 {
		list = list[:10]
	}
	c.RecentEstimates = list
}
