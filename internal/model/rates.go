package model

// Reference unit prices used by the material cost model.
const (
	DefaultPricePerGallonSH         = 5.00  // $ per gallon of SH
	DefaultPricePerGallonSurfactant = 40.00 // $ per gallon of surfactant concentrate
	DefaultAdditiveFee              = 20.00 // $ flat per selected additive chemical
	DefaultHouseWashSHRatio         = 0.1   // SH share of mix on house-wash surfaces
	DefaultHeavySHRatio             = 0.3   // SH share of mix on every other surface
	DefaultSurfactantOzPerGallon    = 1.0   // oz of surfactant per gallon of mix
)

// MaterialRates are the unit economics behind material cost. The defaults
// are the reference constants above; shops may tune them through AppConfig.
type MaterialRates struct {
	PricePerGallonSH         float64 `json:"price_per_gallon_sh"`
	PricePerGallonSurfactant float64 `json:"price_per_gallon_surfactant"`
	AdditiveFee              float64 `json:"additive_fee"`
	HouseWashSHRatio         float64 `json:"house_wash_sh_ratio"`
	HeavySHRatio             float64 `json:"heavy_sh_ratio"`
	SurfactantOzPerGallon    float64 `json:"surfactant_oz_per_gallon"`
}

// DefaultMaterialRates returns the reference rates.
func DefaultMaterialRates() MaterialRates {
	return MaterialRates{
		PricePerGallonSH:         DefaultPricePerGallonSH,
		PricePerGallonSurfactant: DefaultPricePerGallonSurfactant,
		AdditiveFee:              DefaultAdditiveFee,
		HouseWashSHRatio:         DefaultHouseWashSHRatio,
		HeavySHRatio:             DefaultHeavySHRatio,
		SurfactantOzPerGallon:    DefaultSurfactantOzPerGallon,
	}
}

// SHRatioFor returns the SH share of the mix for a service group.
func (r MaterialRates) SHRatioFor(g ServiceGroup) float64 {
	if g.IsHouseWash() {
		return r.HouseWashSHRatio
	}
	return r.HeavySHRatio
}
