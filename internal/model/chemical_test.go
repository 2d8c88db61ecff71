package model

import (
	"encoding/json"
	"testing"
)

func TestDefaultCatalogStrategies(t *testing.T) {
	cat := DefaultCatalog()

	sh := cat.FindByID("sh-12")
	if sh == nil {
		t.Fatal("expected sh-12 in default catalog")
	}
	if sh.Strategy.Kind() != KindTargetPercentage {
		t.Errorf("expected SH to use target percentage, got %s", sh.Strategy.Kind())
	}

	barc := cat.FindByID("f9-barc")
	if barc == nil {
		t.Fatal("expected f9-barc in default catalog")
	}
	dr, ok := barc.Strategy.(DilutionRatio)
	if !ok {
		t.Fatalf("expected DilutionRatio, got %T", barc.Strategy)
	}
	if dr.DefaultRatio != 4 {
		t.Errorf("expected default ratio 4, got %f", dr.DefaultRatio)
	}
}

func TestCatalogMixableExcludesUnmixable(t *testing.T) {
	cat := DefaultCatalog()
	mixable := cat.Mixable()

	if len(mixable) == 0 || len(mixable) >= len(cat.Chemicals) {
		t.Fatalf("expected a strict subset of mixable chemicals, got %d of %d", len(mixable), len(cat.Chemicals))
	}
	for _, c := range mixable {
		if c.Strategy == nil {
			t.Errorf("chemical %s has no strategy but was listed as mixable", c.ID)
		}
	}
	if cat.FindByID("seal-wb").Mixable() {
		t.Error("sealer should not be mixable")
	}
}

func TestCatalogIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range DefaultCatalog().Chemicals {
		if seen[c.ID] {
			t.Errorf("duplicate chemical ID %q", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestChemicalJSONKeepsStrategyVariant(t *testing.T) {
	in := []Chemical{
		{ID: "a", Name: "A", Strategy: TargetPercentage{}},
		{ID: "b", Name: "B", Strategy: DilutionRatio{DefaultRatio: 6}},
		{ID: "c", Name: "C", Strategy: OzPerGallon{DefaultOz: 2.5}},
		{ID: "d", Name: "D"},
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out []Chemical
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for i := range in {
		if out[i].Strategy != in[i].Strategy {
			t.Errorf("chemical %s: expected strategy %#v, got %#v", in[i].ID, in[i].Strategy, out[i].Strategy)
		}
	}
}

func TestChemicalJSONUnknownStrategy(t *testing.T) {
	var c Chemical
	err := json.Unmarshal([]byte(`{"id":"x","strategy":"by_feel"}`), &c)
	if err == nil {
		t.Fatal("expected error for unknown strategy kind")
	}
}

func TestStrategyKindString(t *testing.T) {
	if KindOzPerGallon.String() != "Oz per Gallon" {
		t.Errorf("unexpected label %q", KindOzPerGallon.String())
	}
	if StrategyKind("x").String() != "Unknown" {
		t.Errorf("expected Unknown for unrecognized kind")
	}
}
