package main

import (
	"fmt"

	"github.com/piwi3910/mixcalc/internal/engine"
	"github.com/piwi3910/mixcalc/internal/export"
	"github.com/piwi3910/mixcalc/internal/project"
	"github.com/spf13/cobra"
)

func (a *app) newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <file>",
		Short: "Compare what-if scenarios for an estimate",
		Long: "Quote an estimate alongside variations: the other pricing model,\n" +
			"every surface at light and heavy condition, and no additives.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			est, err := project.LoadEstimate(args[0])
			if err != nil {
				return err
			}

			results := engine.CompareScenarios(engine.BuildDefaultScenarios(est), a.costEngine())

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "SCENARIO\tGALLONS\tMATERIAL\tPRICE\tPROFIT\tMARGIN")
			for _, r := range results {
				fmt.Fprintf(tw, "%s\t%.2f\t%s\t%s\t%s\t%.1f%%\n",
					r.Scenario.Name, r.Gallons,
					export.FormatMoney(r.MaterialCost), export.FormatMoney(r.TotalPrice),
					export.FormatMoney(r.Profit), r.MarginPercent)
			}
			return tw.Flush()
		},
	}
}
