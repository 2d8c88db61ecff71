package model

import (
	"encoding/json"
	"fmt"
)

// StrategyKind names one of the three mixing strategy variants.
type StrategyKind string

const (
	KindTargetPercentage StrategyKind = "target_percentage"
	KindDilutionRatio    StrategyKind = "dilution_ratio"
	KindOzPerGallon      StrategyKind = "oz_per_gallon"
)

func (k StrategyKind) String() string {
	switch k {
	case KindTargetPercentage:
		return "Target %"
	case KindDilutionRatio:
		return "Dilution Ratio"
	case KindOzPerGallon:
		return "Oz per Gallon"
	default:
		return "Unknown"
	}
}

// MixingStrategy describes how a chemical is diluted. The set of
// implementations is closed: TargetPercentage, DilutionRatio and OzPerGallon.
type MixingStrategy interface {
	Kind() StrategyKind
	mixingStrategy()
}

// TargetPercentage dilutes a chemical to a target percent concentration.
// The source strength is supplied at calculation time.
type TargetPercentage struct{}

// DilutionRatio mixes a chemical at water:chemical parts, e.g. 4 for 4:1.
type DilutionRatio struct {
	DefaultRatio float64 `json:"default_ratio"`
}

// OzPerGallon doses a chemical in fluid ounces per gallon of carrier.
type OzPerGallon struct {
	DefaultOz float64 `json:"default_oz"`
}

func (TargetPercentage) Kind() StrategyKind { return KindTargetPercentage }
func (DilutionRatio) Kind() StrategyKind    { return KindDilutionRatio }
func (OzPerGallon) Kind() StrategyKind      { return KindOzPerGallon }

func (TargetPercentage) mixingStrategy() {}
func (DilutionRatio) mixingStrategy()    {}
func (OzPerGallon) mixingStrategy()      {}

// Category groups chemicals for display.
type Category string

const (
	CategorySanitizer   Category = "Sanitizer"
	CategorySurfactant  Category = "Surfactant"
	CategoryDegreaser   Category = "Degreaser"
	CategoryRestoration Category = "Restoration"
	CategoryAdditive    Category = "Additive"
	CategorySealer      Category = "Sealer"
)

// Chemical is a reference-data entry. A nil Strategy marks the chemical as
// unmixable (sealers, kits, pods); such chemicals never reach the calculator.
type Chemical struct {
	ID       string
	Name     string
	Category Category
	Brand    bool
	Strategy MixingStrategy
}

// Mixable reports whether the chemical has a mixing strategy.
func (c Chemical) Mixable() bool {
	return c.Strategy != nil
}

// chemicalJSON is the on-disk form of a Chemical. The strategy variant is
// flattened into a kind tag plus its optional payload.
type chemicalJSON struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Category     Category     `json:"category"`
	Brand        bool         `json:"brand"`
	StrategyKind StrategyKind `json:"strategy,omitempty"`
	DefaultRatio float64      `json:"default_ratio,omitempty"`
	DefaultOz    float64      `json:"default_oz,omitempty"`
}

func (c Chemical) MarshalJSON() ([]byte, error) {
	out := chemicalJSON{
		ID:       c.ID,
		Name:     c.Name,
		Category: c.Category,
		Brand:    c.Brand,
	}
	switch s := c.Strategy.(type) {
	case nil:
	case TargetPercentage:
		out.StrategyKind = KindTargetPercentage
	case DilutionRatio:
		out.StrategyKind = KindDilutionRatio
		out.DefaultRatio = s.DefaultRatio
	case OzPerGallon:
		out.StrategyKind = KindOzPerGallon
		out.DefaultOz = s.DefaultOz
	}
	return json.Marshal(out)
}

func (c *Chemical) UnmarshalJSON(data []byte) error {
	var in chemicalJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	strategy, err := strategyFromKind(in.StrategyKind, in.DefaultRatio, in.DefaultOz)
	if err != nil {
		return fmt.Errorf("chemical %q: %w", in.ID, err)
	}
	*c = Chemical{
		ID:       in.ID,
		Name:     in.Name,
		Category: in.Category,
		Brand:    in.Brand,
		Strategy: strategy,
	}
	return nil
}

func strategyFromKind(kind StrategyKind, ratio, oz float64) (MixingStrategy, error) {
	switch kind {
	case "":
		return nil, nil
	case KindTargetPercentage:
		return TargetPercentage{}, nil
	case KindDilutionRatio:
		return DilutionRatio{DefaultRatio: ratio}, nil
	case KindOzPerGallon:
		return OzPerGallon{DefaultOz: oz}, nil
	default:
		return nil, fmt.Errorf("unknown mixing strategy %q", kind)
	}
}

// Catalog is the read-only chemical reference list. It is loaded once and
// passed to whatever needs it.
type Catalog struct {
	Chemicals []Chemical `json:"chemicals"`
}

// DefaultCatalog returns the built-in chemical list.
func DefaultCatalog() Catalog {
	return Catalog{
		Chemicals: []Chemical{
			{ID: "sh-12", Name: "Sodium Hypochlorite 12.5%", Category: CategorySanitizer, Strategy: TargetPercentage{}},
			{ID: "sh-10", Name: "Pool Chlorine 10%", Category: CategorySanitizer, Strategy: TargetPercentage{}},
			{ID: "elemonator", Name: "Elemonator", Category: CategorySurfactant, Brand: true, Strategy: OzPerGallon{DefaultOz: 1}},
			{ID: "slo-mo", Name: "Slo-Mo", Category: CategorySurfactant, Brand: true, Strategy: OzPerGallon{DefaultOz: 2}},
			{ID: "f9-barc", Name: "F9 BARC", Category: CategoryRestoration, Brand: true, Strategy: DilutionRatio{DefaultRatio: 4}},
			{ID: "f9-efflo", Name: "F9 Efflo", Category: CategoryRestoration, Brand: true, Strategy: DilutionRatio{DefaultRatio: 3}},
			{ID: "oxalic", Name: "Oxalic Acid Brightener", Category: CategoryRestoration, Strategy: DilutionRatio{DefaultRatio: 10}},
			{ID: "degreaser", Name: "Concrete Degreaser", Category: CategoryDegreaser, Strategy: DilutionRatio{DefaultRatio: 5}},
			{ID: "odor-ex", Name: "Odor Neutralizer", Category: CategoryAdditive, Strategy: OzPerGallon{DefaultOz: 4}},
			{ID: "gutter-butter", Name: "Gutter Butter", Category: CategoryAdditive, Brand: true, Strategy: DilutionRatio{DefaultRatio: 8}},
			{ID: "seal-wb", Name: "Water-Based Paver Sealer", Category: CategorySealer},
			{ID: "rust-kit", Name: "Rust Removal Kit", Category: CategoryAdditive, Brand: true},
		},
	}
}

// FindByID returns a pointer to the chemical with the given ID, or nil.
func (c *Catalog) FindByID(id string) *Chemical {
	for i := range c.Chemicals {
		if c.Chemicals[i].ID == id {
			return &c.Chemicals[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first chemical with the given name, or nil.
func (c *Catalog) FindByName(name string) *Chemical {
	for i := range c.Chemicals {
		if c.Chemicals[i].Name == name {
			return &c.Chemicals[i]
		}
	}
	return nil
}

// Mixable returns the chemicals that carry a mixing strategy, in catalog order.
func (c *Catalog) Mixable() []Chemical {
	var out []Chemical
	for _, chem := range c.Chemicals {
		if chem.Mixable() {
			out = append(out, chem)
		}
	}
	return out
}

// Names returns chemical names for pickers.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Chemicals))
	for i, chem := range c.Chemicals {
		names[i] = chem.Name
	}
	return names
}
