// Package engine implements the mixing calculator and the estimate cost and
// pricing engines. Every function is a pure computation over its arguments;
// reference data is passed in and never modified.
package engine

import (
	"fmt"

	"github.com/piwi3910/mixcalc/internal/model"
)

// Dose thresholds, in oz per gallon, for the qualitative manifold reading.
const (
	lightDoseMaxOz    = 1.0
	standardDoseMaxOz = 4.0
)

// ComputeMix returns mixing instructions for a strategy and application mode.
//
// Preconditions (not checked): inputs lie within model.MixRanges. In
// particular Ratio != 0, InjectorRatio != -1 and SourcePercent != 0; values
// outside that produce Inf or NaN fields rather than an error.
//
// The only infeasible outcome is Downstream with TargetPercentage when the
// target exceeds the tip strength; it is reported through Unreachable.
func ComputeMix(strategy model.MixingStrategy, mode model.ApplicationMode, in model.MixInputs) model.MixResult {
	r := model.MixResult{Mode: mode}
	if strategy != nil {
		r.Strategy = strategy.Kind()
	}

	switch mode {
	case model.ModeBatch:
		switch strategy.(type) {
		case model.TargetPercentage:
			r.ChemicalGallons = (in.TargetPercent / in.SourcePercent) * in.TankSize
			r.WaterGallons = in.TankSize - r.ChemicalGallons
		case model.DilutionRatio:
			r.ChemicalGallons = in.TankSize / (in.Ratio + 1)
			r.WaterGallons = in.TankSize - r.ChemicalGallons
		case model.OzPerGallon:
			r.TotalOz = in.TankSize * in.OzPerGal
		default:
			panic(unknownStrategy(strategy))
		}

	case model.ModeDownstream:
		switch strategy.(type) {
		case model.TargetPercentage:
			r.TipPercent = in.SourcePercent / (in.InjectorRatio + 1)
			r.Unreachable = in.TargetPercent > r.TipPercent
		case model.DilutionRatio:
			r.TipRatio = in.InjectorRatio
			r.TipPercent = 1 / (in.InjectorRatio + 1) * 100
		case model.OzPerGallon:
			r.OzAtTip = model.OzPerGallonUS / (in.InjectorRatio + 1)
		default:
			panic(unknownStrategy(strategy))
		}

	case model.ModeManifold:
		switch strategy.(type) {
		case model.TargetPercentage:
			r.ChemicalDial = (in.TargetPercent / in.SourcePercent) * model.DialMax
			r.DisplayDial = clampDial(r.ChemicalDial)
			r.WaterDial = model.DialMax
		case model.DilutionRatio:
			r.ChemicalDial = model.DialMax / in.Ratio
			r.DisplayDial = clampDial(r.ChemicalDial)
			r.WaterDial = model.DialMax
		case model.OzPerGallon:
			// Injector mechanics vary too much by product for a numeric dial.
			r.DoseFraction = in.OzPerGal / model.OzPerGallonUS
			r.DoseLevel = doseLevel(in.OzPerGal)
		default:
			panic(unknownStrategy(strategy))
		}

	default:
		panic(fmt.Sprintf("engine: unknown application mode %q", mode))
	}

	return r
}

// ComputeChemicalMix runs ComputeMix with the chemical's own strategy. The
// second return is false for unmixable chemicals, which get no result.
func ComputeChemicalMix(chem model.Chemical, mode model.ApplicationMode, in model.MixInputs) (model.MixResult, bool) {
	if !chem.Mixable() {
		return model.MixResult{}, false
	}
	return ComputeMix(chem.Strategy, mode, in), true
}

func clampDial(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > model.DialMax {
		return model.DialMax
	}
	return v
}

func doseLevel(ozPerGal float64) model.DoseLevel {
	switch {
	case ozPerGal < lightDoseMaxOz:
		return model.DoseLight
	case ozPerGal <= standardDoseMaxOz:
		return model.DoseStandard
	default:
		return model.DoseHeavy
	}
}

func unknownStrategy(s model.MixingStrategy) string {
	return fmt.Sprintf("engine: unknown mixing strategy %T", s)
}
