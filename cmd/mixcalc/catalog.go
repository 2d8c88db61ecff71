package main

import (
	"fmt"

	"github.com/piwi3910/mixcalc/internal/model"
	"github.com/spf13/cobra"
)

func (a *app) newChemicalsCmd() *cobra.Command {
	var mixableOnly bool

	cmd := &cobra.Command{
		Use:   "chemicals",
		Short: "List the chemical catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := a.lib.Catalog()
			chems := cat.Chemicals
			if mixableOnly {
				chems = cat.Mixable()
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tSTRATEGY\tDEFAULT")
			for _, c := range chems {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Category, strategyLabel(c), strategyDefault(c))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&mixableOnly, "mixable", false, "only list chemicals with a mixing strategy")
	return cmd
}

func (a *app) newSurfacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "surfaces",
		Short: "List the surface coverage table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tNAME\tGROUP\tSQ FT/GAL")
			for _, s := range a.lib.Surfaces {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%g\n", s.ID, s.Name, s.Group, s.BaseCoverageRate)
			}
			return tw.Flush()
		},
	}
}

func strategyLabel(c model.Chemical) string {
	if !c.Mixable() {
		return "-"
	}
	return c.Strategy.Kind().String()
}

func strategyDefault(c model.Chemical) string {
	switch s := c.Strategy.(type) {
	case model.DilutionRatio:
		return fmt.Sprintf("%g:1", s.DefaultRatio)
	case model.OzPerGallon:
		return fmt.Sprintf("%g oz/gal", s.DefaultOz)
	default:
		return ""
	}
}
