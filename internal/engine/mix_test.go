package engine

import (
	"testing"

	"github.com/piwi3910/mixcalc/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

var strategies = []model.MixingStrategy{
	model.TargetPercentage{},
	model.DilutionRatio{DefaultRatio: 4},
	model.OzPerGallon{DefaultOz: 1},
}

func testInputs() model.MixInputs {
	return model.MixInputs{
		TankSize:      100,
		InjectorRatio: 9,
		TargetPercent: 1,
		SourcePercent: 12.5,
		Ratio:         4,
		OzPerGal:      2,
	}
}

// Every strategy/mode pair is re-derived from first principles here.
func TestComputeMix_FullMatrix(t *testing.T) {
	in := testInputs()

	for _, s := range strategies {
		for _, mode := range model.Modes {
			t.Run(string(s.Kind())+"/"+string(mode), func(t *testing.T) {
				r := ComputeMix(s, mode, in)
				assert.Equal(t, s.Kind(), r.Strategy)
				assert.Equal(t, mode, r.Mode)

				switch mode {
				case model.ModeBatch:
					switch s.(type) {
					case model.TargetPercentage:
						assert.InDelta(t, 8.0, r.ChemicalGallons, epsilon)
						assert.InDelta(t, 92.0, r.WaterGallons, epsilon)
					case model.DilutionRatio:
						assert.InDelta(t, 20.0, r.ChemicalGallons, epsilon)
						assert.InDelta(t, 80.0, r.WaterGallons, epsilon)
					case model.OzPerGallon:
						assert.InDelta(t, 200.0, r.TotalOz, epsilon)
					}
				case model.ModeDownstream:
					switch s.(type) {
					case model.TargetPercentage:
						assert.InDelta(t, 1.25, r.TipPercent, epsilon)
						assert.False(t, r.Unreachable)
					case model.DilutionRatio:
						assert.InDelta(t, 9.0, r.TipRatio, epsilon)
						assert.InDelta(t, 10.0, r.TipPercent, epsilon)
					case model.OzPerGallon:
						assert.InDelta(t, 12.8, r.OzAtTip, epsilon)
					}
				case model.ModeManifold:
					switch s.(type) {
					case model.TargetPercentage:
						assert.InDelta(t, 0.8, r.ChemicalDial, epsilon)
						assert.InDelta(t, 0.8, r.DisplayDial, epsilon)
						assert.Equal(t, 10.0, r.WaterDial)
					case model.DilutionRatio:
						assert.InDelta(t, 2.5, r.ChemicalDial, epsilon)
						assert.Equal(t, 10.0, r.WaterDial)
					case model.OzPerGallon:
						assert.InDelta(t, 2.0/128, r.DoseFraction, epsilon)
						assert.Equal(t, model.DoseStandard, r.DoseLevel)
						assert.Zero(t, r.ChemicalDial)
						assert.False(t, r.HasDial())
					}
				}
			})
		}
	}
}

func TestComputeMix_MatchesFormulasExactly(t *testing.T) {
	in := model.MixInputs{TankSize: 37.3, InjectorRatio: 13.7, TargetPercent: 2.3, SourcePercent: 11.9, Ratio: 6.1, OzPerGal: 0.75}

	r := ComputeMix(model.TargetPercentage{}, model.ModeBatch, in)
	sh := (in.TargetPercent / in.SourcePercent) * in.TankSize
	assert.Equal(t, sh, r.ChemicalGallons)
	assert.Equal(t, in.TankSize-sh, r.WaterGallons)

	r = ComputeMix(model.DilutionRatio{}, model.ModeBatch, in)
	chem := in.TankSize / (in.Ratio + 1)
	assert.Equal(t, chem, r.ChemicalGallons)
	assert.Equal(t, in.TankSize-chem, r.WaterGallons)

	r = ComputeMix(model.OzPerGallon{}, model.ModeBatch, in)
	assert.Equal(t, in.TankSize*in.OzPerGal, r.TotalOz)

	r = ComputeMix(model.TargetPercentage{}, model.ModeDownstream, in)
	assert.Equal(t, in.SourcePercent/(in.InjectorRatio+1), r.TipPercent)

	r = ComputeMix(model.DilutionRatio{}, model.ModeDownstream, in)
	assert.Equal(t, in.InjectorRatio, r.TipRatio)
	assert.Equal(t, 1/(in.InjectorRatio+1)*100, r.TipPercent)

	r = ComputeMix(model.OzPerGallon{}, model.ModeDownstream, in)
	assert.Equal(t, 128/(in.InjectorRatio+1), r.OzAtTip)

	r = ComputeMix(model.TargetPercentage{}, model.ModeManifold, in)
	assert.Equal(t, (in.TargetPercent/in.SourcePercent)*10, r.ChemicalDial)

	r = ComputeMix(model.DilutionRatio{}, model.ModeManifold, in)
	assert.Equal(t, 10/in.Ratio, r.ChemicalDial)
}

func TestComputeMix_BatchVolumeConservation(t *testing.T) {
	for _, tank := range []float64{1, 5, 17.5, 50, 100, 250, 525, 1000} {
		for ratio := 1.0; ratio <= 20; ratio++ {
			in := model.MixInputs{TankSize: tank, Ratio: ratio}
			r := ComputeMix(model.DilutionRatio{}, model.ModeBatch, in)
			assert.InDelta(t, tank, r.ChemicalGallons+r.WaterGallons, epsilon, "tank=%v ratio=%v", tank, ratio)
		}
		for target := 0.5; target <= 6.0; target += 0.5 {
			in := model.MixInputs{TankSize: tank, TargetPercent: target, SourcePercent: 12.5}
			r := ComputeMix(model.TargetPercentage{}, model.ModeBatch, in)
			assert.InDelta(t, tank, r.ChemicalGallons+r.WaterGallons, epsilon, "tank=%v target=%v", tank, target)
		}
	}
}

func TestComputeMix_DownstreamFeasibilityGrid(t *testing.T) {
	for target := 0.5; target <= 6.0; target += 0.25 {
		for source := 10.0; source <= 15.0; source += 0.5 {
			for inj := 4.0; inj <= 20.0; inj++ {
				in := model.MixInputs{TargetPercent: target, SourcePercent: source, InjectorRatio: inj}
				r := ComputeMix(model.TargetPercentage{}, model.ModeDownstream, in)

				want := target > source/(inj+1)
				require.Equal(t, want, r.Unreachable, "target=%v source=%v inj=%v", target, source, inj)
				// The tip strength is reported as-is, never clamped to the target
				require.Equal(t, source/(inj+1), r.TipPercent)
			}
		}
	}
}

func TestComputeMix_UnreachableExample(t *testing.T) {
	// 12.5% through a 10:1 injector reaches at most ~1.14% at the tip
	in := model.MixInputs{TargetPercent: 3, SourcePercent: 12.5, InjectorRatio: 10}
	r := ComputeMix(model.TargetPercentage{}, model.ModeDownstream, in)

	assert.True(t, r.Unreachable)
	assert.InDelta(t, 12.5/11, r.TipPercent, epsilon)
}

func TestComputeMix_ManifoldDilutionRatio(t *testing.T) {
	r := ComputeMix(model.DilutionRatio{}, model.ModeManifold, model.MixInputs{Ratio: 4})
	assert.Equal(t, 2.5, r.ChemicalDial)
	assert.Equal(t, 10.0, r.WaterDial)
	assert.True(t, r.HasDial())
}

func TestComputeMix_ManifoldDialClampsForDisplayOnly(t *testing.T) {
	// Ratio below 1 is out of range but must not be hidden by the clamp
	r := ComputeMix(model.DilutionRatio{}, model.ModeManifold, model.MixInputs{Ratio: 0.5})
	assert.Equal(t, 20.0, r.ChemicalDial)
	assert.Equal(t, 10.0, r.DisplayDial)

	in := model.MixInputs{TargetPercent: 15, SourcePercent: 10}
	r = ComputeMix(model.TargetPercentage{}, model.ModeManifold, in)
	assert.InDelta(t, 15.0, r.ChemicalDial, epsilon)
	assert.Equal(t, 10.0, r.DisplayDial)
}

func TestComputeMix_ManifoldDoseLevels(t *testing.T) {
	tests := []struct {
		oz   float64
		want model.DoseLevel
	}{
		{0.5, model.DoseLight},
		{1, model.DoseStandard},
		{4, model.DoseStandard},
		{6, model.DoseHeavy},
	}
	for _, tt := range tests {
		r := ComputeMix(model.OzPerGallon{}, model.ModeManifold, model.MixInputs{OzPerGal: tt.oz})
		assert.Equal(t, tt.want, r.DoseLevel, "oz=%v", tt.oz)
		assert.Equal(t, tt.oz/128, r.DoseFraction)
	}
}

func TestComputeMix_OutOfRangeDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		ComputeMix(model.DilutionRatio{}, model.ModeManifold, model.MixInputs{Ratio: 0})
		ComputeMix(model.TargetPercentage{}, model.ModeBatch, model.MixInputs{TankSize: 10})
		ComputeMix(model.OzPerGallon{}, model.ModeDownstream, model.MixInputs{InjectorRatio: -1})
	})
}

func TestComputeMix_UnknownModePanics(t *testing.T) {
	assert.Panics(t, func() {
		ComputeMix(model.TargetPercentage{}, model.ApplicationMode("bucket"), testInputs())
	})
}

func TestComputeChemicalMix(t *testing.T) {
	cat := model.DefaultCatalog()

	barc := cat.FindByID("f9-barc")
	require.NotNil(t, barc)
	r, ok := ComputeChemicalMix(*barc, model.ModeBatch, model.MixInputs{TankSize: 50, Ratio: 4})
	require.True(t, ok)
	assert.InDelta(t, 10.0, r.ChemicalGallons, epsilon)

	sealer := cat.FindByID("seal-wb")
	require.NotNil(t, sealer)
	_, ok = ComputeChemicalMix(*sealer, model.ModeBatch, testInputs())
	assert.False(t, ok, "unmixable chemicals produce no result")
}

func TestComputeMix_Deterministic(t *testing.T) {
	in := testInputs()
	for _, s := range strategies {
		for _, mode := range model.Modes {
			assert.Equal(t, ComputeMix(s, mode, in), ComputeMix(s, mode, in))
		}
	}
}
