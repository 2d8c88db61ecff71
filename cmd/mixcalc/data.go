package main

import (
	"fmt"

	"github.com/piwi3910/mixcalc/internal/project"
	"github.com/spf13/cobra"
)

func (a *app) newLibraryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Manage the chemical catalog and coverage table",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "import <file>",
		Short: "Merge chemicals and surfaces from a JSON file; existing IDs are kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			before := len(a.lib.Chemicals) + len(a.lib.Surfaces)
			merged, err := project.ImportLibrary(args[0], a.lib)
			if err != nil {
				return fmt.Errorf("failed to import library: %w", err)
			}
			if err := project.SaveLibrary(project.DefaultLibraryPath(), merged); err != nil {
				return err
			}
			a.lib = merged
			added := len(merged.Chemicals) + len(merged.Surfaces) - before
			fmt.Fprintf(cmd.OutOrStdout(), "Added %d entries\n", added)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "export <file>",
		Short: "Write the current library to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return project.SaveLibrary(args[0], a.lib)
		},
	})
	return cmd
}

func (a *app) newBackupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or restore config, library and templates",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "export <file>",
		Short: "Write all application data to a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			templates, err := project.LoadDefaultTemplates()
			if err != nil {
				return err
			}
			if err := project.ExportAllData(args[0], a.cfg, a.lib, templates); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Backup written to %s\n", args[0])
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "import <file>",
		Short: "Replace config, library and templates from a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backup, err := project.ImportAllData(args[0])
			if err != nil {
				return err
			}
			if err := project.SaveAppConfig(a.cfgPath, backup.Config); err != nil {
				return err
			}
			if len(backup.Library.Chemicals)+len(backup.Library.Surfaces) > 0 {
				if err := project.SaveLibrary(project.DefaultLibraryPath(), backup.Library); err != nil {
					return err
				}
			}
			if err := project.SaveDefaultTemplates(backup.Templates); err != nil {
				return err
			}
			a.log.Info("restored backup", "file", args[0], "version", backup.Version, "created", backup.CreatedAt)
			fmt.Fprintf(cmd.OutOrStdout(), "Restored backup from %s\n", backup.CreatedAt)
			return nil
		},
	})
	return cmd
}
