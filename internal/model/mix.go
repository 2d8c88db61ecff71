package model

// ApplicationMode is how the mixed chemical reaches the surface. It is
// orthogonal to the chemical's MixingStrategy.
type ApplicationMode string

const (
	ModeBatch      ApplicationMode = "batch"      // Pre-mix a fixed-size tank
	ModeDownstream ApplicationMode = "downstream" // Fixed injector draw at the wand tip
	ModeManifold   ApplicationMode = "manifold"   // Proportioning dial on a 0-10 scale
)

// Modes lists the application modes in display order.
var Modes = []ApplicationMode{ModeBatch, ModeDownstream, ModeManifold}

func (m ApplicationMode) String() string {
	switch m {
	case ModeBatch:
		return "Batch"
	case ModeDownstream:
		return "Downstream"
	case ModeManifold:
		return "Manifold"
	default:
		return string(m)
	}
}

// OzPerGallonUS is the number of fluid ounces in one US gallon.
const OzPerGallonUS = 128.0

// DialMax is the top of the abstract manifold dial scale.
const DialMax = 10.0

// MixInputs carries the operator-adjusted values for one calculation. Only
// the fields relevant to the chosen mode and strategy are read.
type MixInputs struct {
	TankSize      float64 `json:"tank_size"`      // gal, batch mode
	InjectorRatio float64 `json:"injector_ratio"` // water parts per chemical part at the tip, downstream mode
	TargetPercent float64 `json:"target_percent"` // TargetPercentage strategy
	SourcePercent float64 `json:"source_percent"` // labeled strength of the source chemical
	Ratio         float64 `json:"ratio"`          // water parts per chemical part, DilutionRatio strategy
	OzPerGal      float64 `json:"oz_per_gal"`     // OzPerGallon strategy
}

// Range is an inclusive numeric bound.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// MixRanges are the bounds the calculator's preconditions are stated in.
// Callers keep operator inputs inside them; the calculator itself does not
// check, so a zero ratio or a -1 injector ratio divides by zero.
var MixRanges = struct {
	TankSize      Range
	InjectorRatio Range
	TargetPercent Range
	SourcePercent Range
	Ratio         Range
	OzPerGal      Range
}{
	TankSize:      Range{Min: 1, Max: 1000},
	InjectorRatio: Range{Min: 4, Max: 20},
	TargetPercent: Range{Min: 0.5, Max: 6},
	SourcePercent: Range{Min: 10, Max: 15},
	Ratio:         Range{Min: 1, Max: 20},
	OzPerGal:      Range{Min: 0.25, Max: 10},
}

// DefaultMixInputs returns starting inputs for a strategy, seeding the ratio
// or dose from the strategy's suggested default.
func DefaultMixInputs(s MixingStrategy) MixInputs {
	in := MixInputs{
		TankSize:      100,
		InjectorRatio: 10,
		TargetPercent: 1,
		SourcePercent: 12.5,
		Ratio:         4,
		OzPerGal:      1,
	}
	switch st := s.(type) {
	case DilutionRatio:
		if st.DefaultRatio > 0 {
			in.Ratio = st.DefaultRatio
		}
	case OzPerGallon:
		if st.DefaultOz > 0 {
			in.OzPerGal = st.DefaultOz
		}
	}
	return in
}

// DoseLevel is the qualitative manifold reading for ounce-dosed chemicals.
type DoseLevel string

const (
	DoseLight    DoseLevel = "light"
	DoseStandard DoseLevel = "standard"
	DoseHeavy    DoseLevel = "heavy"
)

// MixResult is the outcome of one strategy/mode calculation. Fields not
// meaningful for the combination are left at zero.
type MixResult struct {
	Strategy StrategyKind    `json:"strategy"`
	Mode     ApplicationMode `json:"mode"`

	// Batch
	ChemicalGallons float64 `json:"chemical_gallons"` // TargetPercentage, DilutionRatio
	WaterGallons    float64 `json:"water_gallons"`    // TargetPercentage, DilutionRatio
	TotalOz         float64 `json:"total_oz"`         // OzPerGallon

	// Downstream
	TipPercent  float64 `json:"tip_percent"`  // TargetPercentage: strength at the tip; DilutionRatio: chemical share in percent
	TipRatio    float64 `json:"tip_ratio"`    // DilutionRatio
	OzAtTip     float64 `json:"oz_at_tip"`    // OzPerGallon: oz of product per gallon sprayed
	Unreachable bool    `json:"unreachable"`  // TargetPercentage: target exceeds what the injector can deliver

	// Manifold
	ChemicalDial float64   `json:"chemical_dial"` // raw dial position, may exceed the scale
	DisplayDial  float64   `json:"display_dial"`  // ChemicalDial clamped to 0-10
	WaterDial    float64   `json:"water_dial"`
	DoseFraction float64   `json:"dose_fraction"` // OzPerGallon: dose relative to 128 oz/gal
	DoseLevel    DoseLevel `json:"dose_level,omitempty"`
}

// HasDial reports whether the result carries numeric dial settings.
func (r MixResult) HasDial() bool {
	return r.Mode == ModeManifold && r.Strategy != KindOzPerGallon
}
