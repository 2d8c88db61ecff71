package model

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// The engine assumes its inputs are in range and does not check them.
// These validators are for callers that accept operator input.

// ErrNotMixable is returned when a chemical without a strategy is validated.
var ErrNotMixable = errors.New("chemical has no mixing strategy")

func inRange(field *float64, r Range) *validation.FieldRules {
	return validation.Field(field,
		validation.Required,
		validation.Min(r.Min),
		validation.Max(r.Max),
	)
}

// ValidateMixInputs checks the inputs the given strategy and mode will read
// against MixRanges. Unread fields are ignored.
func ValidateMixInputs(s MixingStrategy, mode ApplicationMode, in MixInputs) error {
	var rules []*validation.FieldRules

	switch mode {
	case ModeBatch:
		rules = append(rules, inRange(&in.TankSize, MixRanges.TankSize))
	case ModeDownstream:
		rules = append(rules, inRange(&in.InjectorRatio, MixRanges.InjectorRatio))
	case ModeManifold:
	default:
		return fmt.Errorf("unknown application mode %q", mode)
	}

	switch s.(type) {
	case nil:
		return ErrNotMixable
	case TargetPercentage:
		rules = append(rules,
			inRange(&in.TargetPercent, MixRanges.TargetPercent),
			inRange(&in.SourcePercent, MixRanges.SourcePercent),
		)
	case DilutionRatio:
		rules = append(rules, inRange(&in.Ratio, MixRanges.Ratio))
	case OzPerGallon:
		rules = append(rules, inRange(&in.OzPerGal, MixRanges.OzPerGal))
	}

	return validation.ValidateStruct(&in, rules...)
}

// ValidateItem checks an estimate item against the coverage table.
func ValidateItem(it EstimateItem, table CoverageTable) error {
	return validation.ValidateStruct(&it,
		validation.Field(&it.Surface, validation.Required, validation.By(func(v interface{}) error {
			id, _ := v.(string)
			if _, ok := table.Lookup(id); !ok {
				return fmt.Errorf("unknown surface %q", id)
			}
			return nil
		})),
		validation.Field(&it.SquareFootage, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&it.Condition, validation.Required, validation.In(ConditionLight, ConditionAverage, ConditionHeavy)),
	)
}

// ValidateEstimate checks pricing parameters and every item. A markup
// below 1 is rejected here even though the engine would price it.
func ValidateEstimate(e Estimate, table CoverageTable) error {
	errs := validation.Errors{}

	err := validation.ValidateStruct(&e,
		validation.Field(&e.PricingModel, validation.Required, validation.In(PricingPerSquareFoot, PricingCostPlus)),
		validation.Field(&e.PricePerSqFt, validation.Min(0.0)),
		validation.Field(&e.LaborHours, validation.Min(0.0)),
		validation.Field(&e.HourlyRate, validation.Min(0.0)),
		validation.Field(&e.MaterialMarkup, validation.Required, validation.Min(1.0)),
	)
	if err != nil {
		var fieldErrs validation.Errors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for k, v := range fieldErrs {
			errs[k] = v
		}
	}

	for i, it := range e.Items {
		if err := ValidateItem(it, table); err != nil {
			errs[fmt.Sprintf("items[%d]", i)] = err
		}
	}

	return errs.Filter()
}
