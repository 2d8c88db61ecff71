package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/piwi3910/mixcalc/internal/engine"
	"github.com/piwi3910/mixcalc/internal/export"
	"github.com/piwi3910/mixcalc/internal/importer"
	"github.com/piwi3910/mixcalc/internal/model"
	"github.com/piwi3910/mixcalc/internal/project"
	"github.com/spf13/cobra"
)

func (a *app) newEstimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Create, edit and quote job estimates",
	}
	cmd.AddCommand(
		a.newEstimateNewCmd(),
		a.newEstimateAddCmd(),
		a.newEstimateRemoveCmd(),
		a.newEstimateImportCmd(),
		a.newEstimateSetCmd(),
		a.newEstimateQuoteCmd(),
	)
	return cmd
}

func (a *app) newEstimateNewCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "new <file>",
		Short: "Create an empty estimate with the configured pricing defaults",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if name == "" {
				name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			}
			est := model.NewEstimate(name)
			a.cfg.ApplyToEstimate(&est)

			if err := project.SaveEstimate(path, est); err != nil {
				return err
			}
			a.rememberEstimate(path)
			fmt.Fprintf(cmd.OutOrStdout(), "Created estimate %s (%s) at %s\n", est.Name, est.ID, path)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "estimate name (default: file name)")
	return cmd
}

func (a *app) newEstimateAddCmd() *cobra.Command {
	var (
		surface   string
		sqft      float64
		condition string
	)

	cmd := &cobra.Command{
		Use:   "add <file>",
		Short: "Add a surface to an estimate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			est, err := project.LoadEstimate(args[0])
			if err != nil {
				return err
			}

			table := a.lib.CoverageTable()
			surfaceID := surface
			if s, ok := table.FindByName(surface); ok {
				surfaceID = s.ID
			}
			cond, ok := model.ParseCondition(condition)
			if !ok {
				return fmt.Errorf("unknown condition %q (want light, average or heavy)", condition)
			}

			it := model.NewEstimateItem(surfaceID, sqft, cond)
			if err := model.ValidateItem(it, table); err != nil {
				return fmt.Errorf("invalid item: %w", err)
			}
			est.AddItem(it)

			if err := project.SaveEstimate(args[0], est); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", it.ID, export.FormatArea(sqft))
			return nil
		},
	}
	cmd.Flags().StringVar(&surface, "surface", "", "surface ID or name")
	cmd.Flags().Float64Var(&sqft, "sqft", 0, "area in square feet")
	cmd.Flags().StringVar(&condition, "condition", "average", "light, average or heavy")
	_ = cmd.MarkFlagRequired("surface")
	_ = cmd.MarkFlagRequired("sqft")
	return cmd
}

func (a *app) newEstimateRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <file> <item-id>",
		Short: "Remove a surface from an estimate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			est, err := project.LoadEstimate(args[0])
			if err != nil {
				return err
			}
			if !est.RemoveItem(args[1]) {
				return fmt.Errorf("no item %q in %s", args[1], args[0])
			}
			return project.SaveEstimate(args[0], est)
		},
	}
}

func (a *app) newEstimateImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file> <csv-or-xlsx>",
		Short: "Append surfaces from a CSV or Excel sheet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			est, err := project.LoadEstimate(args[0])
			if err != nil {
				return err
			}

			result := importer.ImportFile(args[1], a.lib.CoverageTable())
			for _, w := range result.Warnings {
				a.log.Info("import", "warning", w)
			}
			for _, e := range result.Errors {
				noteColor.Fprintln(cmd.ErrOrStderr(), e)
			}
			if len(result.Items) == 0 {
				return fmt.Errorf("no items imported from %s", args[1])
			}

			for _, it := range result.Items {
				est.AddItem(it)
			}
			if err := project.SaveEstimate(args[0], est); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d items (%d rows skipped)\n", len(result.Items), len(result.Errors))
			return nil
		},
	}
}

func (a *app) newEstimateSetCmd() *cobra.Command {
	var (
		pricing      string
		pricePerSqFt float64
		laborHours   float64
		hourlyRate   float64
		markup       float64
		additives    []string
		dropped      []string
	)

	cmd := &cobra.Command{
		Use:   "set <file>",
		Short: "Change pricing parameters and additive selection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			est, err := project.LoadEstimate(args[0])
			if err != nil {
				return err
			}

			fs := cmd.Flags()
			if fs.Changed("pricing") {
				est.PricingModel = model.PricingModel(pricing)
			}
			if fs.Changed("price-per-sqft") {
				est.PricePerSqFt = pricePerSqFt
			}
			if fs.Changed("labor-hours") {
				est.LaborHours = laborHours
			}
			if fs.Changed("hourly-rate") {
				est.HourlyRate = hourlyRate
			}
			if fs.Changed("markup") {
				est.MaterialMarkup = markup
			}
			for _, id := range additives {
				chem, err := a.findChemical(id)
				if err != nil {
					return err
				}
				est.SelectAdditive(chem.ID)
			}
			for _, id := range dropped {
				est.DeselectAdditive(id)
			}

			if err := model.ValidateEstimate(est, a.lib.CoverageTable()); err != nil {
				return fmt.Errorf("invalid estimate: %w", err)
			}
			return project.SaveEstimate(args[0], est)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&pricing, "pricing", "", "per_sq_ft or cost_plus")
	fs.Float64Var(&pricePerSqFt, "price-per-sqft", 0, "price per square foot")
	fs.Float64Var(&laborHours, "labor-hours", 0, "labor hours (cost plus)")
	fs.Float64Var(&hourlyRate, "hourly-rate", 0, "hourly labor rate (cost plus)")
	fs.Float64Var(&markup, "markup", 0, "material markup multiplier (cost plus)")
	fs.StringSliceVar(&additives, "additive", nil, "select additive chemicals by ID or name")
	fs.StringSliceVar(&dropped, "drop-additive", nil, "deselect additive chemicals by ID")
	return cmd
}

func (a *app) newEstimateQuoteCmd() *cobra.Command {
	var (
		xlsxPath    string
		approvePath string
		mixMode     string
	)

	cmd := &cobra.Command{
		Use:   "quote <file>",
		Short: "Compute material cost and price for an estimate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			est, err := project.LoadEstimate(args[0])
			if err != nil {
				return err
			}
			table := a.lib.CoverageTable()
			if err := model.ValidateEstimate(est, table); err != nil {
				a.log.Warn("estimate has invalid fields", "file", args[0], "err", err)
			}

			summary := engine.Quote(est, a.costEngine())
			w := cmd.OutOrStdout()
			printQuote(w, summary, table)
			for _, id := range summary.Cost.Unpriced {
				noteColor.Fprintf(w, "Item %s has an unknown surface and was not priced\n", id)
			}

			if xlsxPath != "" {
				var mix []export.MixLine
				if mixMode != "" {
					if mix, err = a.additiveMix(est, model.ApplicationMode(mixMode)); err != nil {
						return err
					}
				}
				if err := export.WriteEstimateWorkbook(xlsxPath, summary, table, mix); err != nil {
					return err
				}
				fmt.Fprintf(w, "Wrote %s\n", xlsxPath)
			}

			if approvePath != "" {
				if err := project.SaveSnapshot(approvePath, summary.Snapshot(time.Now())); err != nil {
					return err
				}
				fmt.Fprintf(w, "Approved price saved to %s\n", approvePath)
			}

			a.rememberEstimate(args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "also write an Excel workbook to this path")
	cmd.Flags().StringVar(&approvePath, "approve", "", "freeze the quoted price to this JSON file")
	cmd.Flags().StringVar(&mixMode, "mix-mode", "", "add a Mix sheet for the selected additives in this mode")
	return cmd
}

// additiveMix computes default mixing instructions for each mixable
// additive on the estimate.
func (a *app) additiveMix(est model.Estimate, mode model.ApplicationMode) ([]export.MixLine, error) {
	modes, err := parseModes(string(mode))
	if err != nil {
		return nil, err
	}

	var lines []export.MixLine
	for _, id := range est.Additives {
		chem, err := a.findChemical(id)
		if err != nil || !chem.Mixable() {
			continue
		}
		in := a.cfg.MixInputsFor(chem.Strategy)
		for _, m := range modes {
			r, _ := engine.ComputeChemicalMix(*chem, m, in)
			lines = append(lines, export.MixLine{Chemical: chem.Name, Inputs: in, Result: r})
		}
	}
	return lines, nil
}

func printQuote(w io.Writer, s engine.EstimateSummary, table model.CoverageTable) {
	headColor.Fprintf(w, "%s (%s)\n", s.Estimate.Name, s.Price.Model)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "ITEM\tSURFACE\tCONDITION\tSQ FT\tGALLONS\tMATERIAL\tPRICE\t")
	for _, line := range s.ItemLines() {
		name := line.Item.Surface
		if st, ok := table.Lookup(name); ok {
			name = st.Name
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%g\t%.2f\t%s\t%s\t\n",
			line.Item.ID, name, line.Item.Condition, line.Item.SquareFootage,
			line.Cost.GallonsNeeded, export.FormatMoney(line.Cost.Cost), export.FormatMoney(line.Price))
	}
	tw.Flush()

	fmt.Fprintf(w, "Area:      %s\n", export.FormatArea(s.Estimate.TotalSquareFootage()))
	fmt.Fprintf(w, "Mix:       %s\n", export.FormatGallons(s.Cost.TotalGallonsNeeded))
	if s.Cost.AdditiveCount > 0 {
		fmt.Fprintf(w, "Additives: %d (%s)\n", s.Cost.AdditiveCount, export.FormatMoney(s.Cost.AdditiveCost))
	}
	fmt.Fprintf(w, "Material:  %s\n", export.FormatMoney(s.Cost.MaterialCost))
	fmt.Fprintf(w, "Price:     %s\n", export.FormatMoney(s.Price.TotalPrice))
	fmt.Fprintf(w, "Profit:    %s (%.1f%%)\n", export.FormatMoney(s.Price.Profit), s.Price.MarginPercent)
}
