package main

import (
	"fmt"

	"github.com/piwi3910/mixcalc/internal/model"
	"github.com/piwi3910/mixcalc/internal/project"
	"github.com/spf13/cobra"
)

func (a *app) newTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage reusable estimate templates",
	}
	cmd.AddCommand(
		a.newTemplateSaveCmd(),
		a.newTemplateListCmd(),
		a.newTemplateApplyCmd(),
		a.newTemplateDeleteCmd(),
	)
	return cmd
}

func (a *app) newTemplateSaveCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "save <estimate-file> <name>",
		Short: "Save an estimate's surfaces and pricing as a template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			est, err := project.LoadEstimate(args[0])
			if err != nil {
				return err
			}
			store, err := project.LoadDefaultTemplates()
			if err != nil {
				return err
			}
			if store.FindByName(args[1]) != nil {
				return fmt.Errorf("template %q already exists", args[1])
			}

			tmpl := model.NewEstimateTemplate(args[1], description, est)
			store.Add(tmpl)
			if err := project.SaveDefaultTemplates(store); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved template %s (%s)\n", tmpl.Name, tmpl.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&description, "description", "", "template description")
	return cmd
}

func (a *app) newTemplateListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := project.LoadDefaultTemplates()
			if err != nil {
				return err
			}
			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tNAME\tITEMS\tPRICING\tDESCRIPTION")
			for _, t := range store.Templates {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", t.ID, t.Name, len(t.Items), t.PricingModel, t.Description)
			}
			return tw.Flush()
		},
	}
}

func (a *app) newTemplateApplyCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "apply <template> <estimate-file>",
		Short: "Create a new estimate from a template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := project.LoadDefaultTemplates()
			if err != nil {
				return err
			}
			tmpl := store.FindByName(args[0])
			if tmpl == nil {
				tmpl = store.FindByID(args[0])
			}
			if tmpl == nil {
				return fmt.Errorf("unknown template %q", args[0])
			}

			if name == "" {
				name = tmpl.Name
			}
			est := tmpl.ToEstimate(name)
			if err := project.SaveEstimate(args[1], est); err != nil {
				return err
			}
			a.rememberEstimate(args[1])
			fmt.Fprintf(cmd.OutOrStdout(), "Created estimate %s (%s) from %s\n", est.Name, est.ID, tmpl.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "estimate name (default: template name)")
	return cmd
}

func (a *app) newTemplateDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <template>",
		Short: "Delete a template by name or ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := project.LoadDefaultTemplates()
			if err != nil {
				return err
			}
			tmpl := store.FindByName(args[0])
			if tmpl == nil {
				tmpl = store.FindByID(args[0])
			}
			if tmpl == nil || !store.Remove(tmpl.ID) {
				return fmt.Errorf("unknown template %q", args[0])
			}
			return project.SaveDefaultTemplates(store)
		},
	}
}
