package model

import "strings"

// ServiceGroup classifies surfaces by the kind of wash they get. House-wash
// surfaces are cleaned with weaker SH blends than roofs and flatwork.
type ServiceGroup string

const (
	GroupHouseWash  ServiceGroup = "house_wash"
	GroupRoofWash   ServiceGroup = "roof_wash"
	GroupFlatwork   ServiceGroup = "flatwork"
	GroupWood       ServiceGroup = "wood"
	GroupCommercial ServiceGroup = "commercial"
)

func (g ServiceGroup) String() string {
	switch g {
	case GroupHouseWash:
		return "House Wash"
	case GroupRoofWash:
		return "Roof Wash"
	case GroupFlatwork:
		return "Flatwork"
	case GroupWood:
		return "Wood Restoration"
	case GroupCommercial:
		return "Commercial"
	default:
		return string(g)
	}
}

// IsHouseWash reports whether the group uses the light house-wash blend.
func (g ServiceGroup) IsHouseWash() bool {
	return g == GroupHouseWash
}

// SurfaceCondition describes how soiled a surface is.
type SurfaceCondition string

const (
	ConditionLight   SurfaceCondition = "light"
	ConditionAverage SurfaceCondition = "average"
	ConditionHeavy   SurfaceCondition = "heavy"
)

// Conditions lists the three conditions in display order.
var Conditions = []SurfaceCondition{ConditionLight, ConditionAverage, ConditionHeavy}

// Multiplier returns the coverage multiplier for the condition. Heavier
// soiling lowers effective coverage. Unknown values are treated as average.
func (c SurfaceCondition) Multiplier() float64 {
	switch c {
	case ConditionLight:
		return 1.2
	case ConditionHeavy:
		return 0.7
	default:
		return 1.0
	}
}

// Valid reports whether c is one of the three known conditions.
func (c SurfaceCondition) Valid() bool {
	switch c {
	case ConditionLight, ConditionAverage, ConditionHeavy:
		return true
	}
	return false
}

// ParseCondition maps loose user text onto a condition.
func ParseCondition(s string) (SurfaceCondition, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light", "l":
		return ConditionLight, true
	case "average", "avg", "a", "medium", "normal", "":
		return ConditionAverage, true
	case "heavy", "h":
		return ConditionHeavy, true
	default:
		return ConditionAverage, false
	}
}

// SurfaceType is one row of the coverage table.
type SurfaceType struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Group            ServiceGroup `json:"group"`
	BaseCoverageRate float64      `json:"base_coverage_rate"` // sq ft per gallon of ready-to-use mix, average condition
}

// CoverageTable maps surfaces to coverage rates. It is read-only after load.
type CoverageTable struct {
	Surfaces []SurfaceType `json:"surfaces"`
}

// DefaultCoverageTable returns the built-in surface coverage rates.
func DefaultCoverageTable() CoverageTable {
	return CoverageTable{
		Surfaces: []SurfaceType{
			{ID: "vinyl-siding", Name: "Vinyl Siding", Group: GroupHouseWash, BaseCoverageRate: 250},
			{ID: "brick", Name: "Brick", Group: GroupHouseWash, BaseCoverageRate: 150},
			{ID: "stucco", Name: "Stucco", Group: GroupHouseWash, BaseCoverageRate: 125},
			{ID: "hardie", Name: "Fiber Cement Siding", Group: GroupHouseWash, BaseCoverageRate: 225},
			{ID: "asphalt-roof", Name: "Asphalt Shingle Roof", Group: GroupRoofWash, BaseCoverageRate: 100},
			{ID: "tile-roof", Name: "Tile Roof", Group: GroupRoofWash, BaseCoverageRate: 80},
			{ID: "metal-roof", Name: "Metal Roof", Group: GroupRoofWash, BaseCoverageRate: 160},
			{ID: "concrete", Name: "Concrete Driveway", Group: GroupFlatwork, BaseCoverageRate: 200},
			{ID: "pavers", Name: "Pavers", Group: GroupFlatwork, BaseCoverageRate: 175},
			{ID: "wood-deck", Name: "Wood Deck", Group: GroupWood, BaseCoverageRate: 150},
			{ID: "wood-fence", Name: "Wood Fence", Group: GroupWood, BaseCoverageRate: 175},
			{ID: "storefront", Name: "Commercial Storefront", Group: GroupCommercial, BaseCoverageRate: 200},
			{ID: "dumpster-pad", Name: "Dumpster Pad", Group: GroupCommercial, BaseCoverageRate: 90},
		},
	}
}

// Lookup returns the surface with the given ID.
func (t CoverageTable) Lookup(id string) (SurfaceType, bool) {
	for _, s := range t.Surfaces {
		if s.ID == id {
			return s, true
		}
	}
	return SurfaceType{}, false
}

// FindByName returns the first surface whose ID or display name matches,
// ignoring case.
func (t CoverageTable) FindByName(name string) (SurfaceType, bool) {
	for _, s := range t.Surfaces {
		if strings.EqualFold(s.Name, name) || strings.EqualFold(s.ID, name) {
			return s, true
		}
	}
	return SurfaceType{}, false
}

// EffectiveCoverage returns sq ft per gallon after the condition multiplier.
func (s SurfaceType) EffectiveCoverage(c SurfaceCondition) float64 {
	return s.BaseCoverageRate * c.Multiplier()
}
