package export

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/piwi3910/mixcalc/internal/model"
)

// FormatMoney formats a dollar amount with thousands separators and exactly
// two decimals, e.g. $1,234.50 or -$25.00.
func FormatMoney(amount float64) string {
	if amount < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", -amount)
	}
	return "$" + humanize.FormatFloat("#,###.##", amount)
}

// FormatArea formats square footage with thousands separators.
func FormatArea(sqft float64) string {
	return humanize.CommafWithDigits(sqft, 1) + " sq ft"
}

// FormatGallons formats a volume to two decimals.
func FormatGallons(gal float64) string {
	return fmt.Sprintf("%.2f gal", gal)
}

// MixInstructions renders a calculator result as a one-line operator
// instruction. The inputs supply context the result does not carry.
func MixInstructions(r model.MixResult, in model.MixInputs) string {
	switch r.Mode {
	case model.ModeBatch:
		if r.Strategy == model.KindOzPerGallon {
			return fmt.Sprintf("Add %.1f oz of product to a %g gal tank", r.TotalOz, in.TankSize)
		}
		return fmt.Sprintf("Mix %.2f gal chemical with %.2f gal water", r.ChemicalGallons, r.WaterGallons)

	case model.ModeDownstream:
		switch r.Strategy {
		case model.KindTargetPercentage:
			s := fmt.Sprintf("Tip strength %.2f%%", r.TipPercent)
			if r.Unreachable {
				s += fmt.Sprintf(" (target %g%% unreachable)", in.TargetPercent)
			}
			return s
		case model.KindDilutionRatio:
			return fmt.Sprintf("Tip ratio %g:1 (%.2f%% chemical)", r.TipRatio, r.TipPercent)
		default:
			return fmt.Sprintf("%.2f oz of product per gallon sprayed", r.OzAtTip)
		}

	case model.ModeManifold:
		if !r.HasDial() {
			return fmt.Sprintf("%s dose (%.2f%% of a gallon)", r.DoseLevel, r.DoseFraction*100)
		}
		s := fmt.Sprintf("Chemical dial %.1f, water dial %g", r.DisplayDial, r.WaterDial)
		if r.DisplayDial != r.ChemicalDial && !math.IsNaN(r.ChemicalDial) {
			s += fmt.Sprintf(" (off scale: %.1f)", r.ChemicalDial)
		}
		return s
	}
	return ""
}
