package main

import (
	"fmt"
	"strings"

	"github.com/piwi3910/mixcalc/internal/engine"
	"github.com/piwi3910/mixcalc/internal/export"
	"github.com/piwi3910/mixcalc/internal/model"
	"github.com/spf13/cobra"
)

// mixFlags are the operator overrides for a calculation. Only flags the
// user set replace the configured defaults.
type mixFlags struct {
	tank, injector, target, source, ratio, oz float64
}

func (f *mixFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.Float64Var(&f.tank, "tank", 0, "tank size in gallons (batch)")
	fs.Float64Var(&f.injector, "injector", 0, "injector ratio, water parts per chemical part (downstream)")
	fs.Float64Var(&f.target, "target", 0, "target strength in percent")
	fs.Float64Var(&f.source, "source", 0, "source strength in percent")
	fs.Float64Var(&f.ratio, "ratio", 0, "dilution ratio, water parts per chemical part")
	fs.Float64Var(&f.oz, "oz", 0, "ounces of product per gallon")
}

func (f *mixFlags) apply(cmd *cobra.Command, in *model.MixInputs) {
	fs := cmd.Flags()
	set := func(name string, dst *float64, v float64) {
		if fs.Changed(name) {
			*dst = v
		}
	}
	set("tank", &in.TankSize, f.tank)
	set("injector", &in.InjectorRatio, f.injector)
	set("target", &in.TargetPercent, f.target)
	set("source", &in.SourcePercent, f.source)
	set("ratio", &in.Ratio, f.ratio)
	set("oz", &in.OzPerGal, f.oz)
}

func (a *app) newMixCmd() *cobra.Command {
	var (
		flags mixFlags
		mode  string
	)

	cmd := &cobra.Command{
		Use:   "mix <chemical>",
		Short: "Show mixing instructions for a chemical",
		Long: "Show mixing instructions for a chemical in one or all application modes.\n" +
			"The chemical may be given by catalog ID or exact name.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chem, err := a.findChemical(args[0])
			if err != nil {
				return err
			}
			if !chem.Mixable() {
				return fmt.Errorf("%s: %w", chem.Name, model.ErrNotMixable)
			}

			modes, err := parseModes(mode)
			if err != nil {
				return err
			}

			in := a.cfg.MixInputsFor(chem.Strategy)
			flags.apply(cmd, &in)

			w := cmd.OutOrStdout()
			headColor.Fprintf(w, "%s (%s)\n", chem.Name, chem.Strategy.Kind())
			for _, m := range modes {
				if err := model.ValidateMixInputs(chem.Strategy, m, in); err != nil {
					return fmt.Errorf("%s mode: %w", m, err)
				}
				r, _ := engine.ComputeChemicalMix(*chem, m, in)
				a.log.Debug("computed mix", "chemical", chem.ID, "mode", m, "result", r)

				line := fmt.Sprintf("  %-11s %s\n", m.String()+":", export.MixInstructions(r, in))
				if r.Unreachable {
					warnColor.Fprint(w, line)
					continue
				}
				fmt.Fprint(w, line)
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&mode, "mode", "all", "batch, downstream, manifold or all")
	return cmd
}

func (a *app) findChemical(ref string) (*model.Chemical, error) {
	cat := a.lib.Catalog()
	if c := cat.FindByID(ref); c != nil {
		return c, nil
	}
	if c := cat.FindByName(ref); c != nil {
		return c, nil
	}
	return nil, fmt.Errorf("unknown chemical %q", ref)
}

func parseModes(s string) ([]model.ApplicationMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "all" {
		return model.Modes, nil
	}
	for _, m := range model.Modes {
		if string(m) == s {
			return []model.ApplicationMode{m}, nil
		}
	}
	return nil, fmt.Errorf("unknown mode %q (want batch, downstream, manifold or all)", s)
}
