package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/piwi3910/mixcalc/internal/engine"
	"github.com/piwi3910/mixcalc/internal/model"
	"github.com/piwi3910/mixcalc/internal/project"
	"github.com/spf13/cobra"
)

var (
	warnColor = color.New(color.FgRed, color.Bold)
	noteColor = color.New(color.FgYellow)
	headColor = color.New(color.Bold)
)

// app carries the state shared by every command: the loaded config and
// reference library.
type app struct {
	log  *slog.Logger
	home string

	cfg     model.AppConfig
	cfgPath string
	lib     model.Library
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	a := &app{log: logger}

	root := &cobra.Command{
		Use:           "mixcalc",
		Short:         "Chemical mixing and job estimation calculator",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}
	root.PersistentFlags().StringVar(&a.home, "home", "", "data directory (default $MIXCALC_HOME or ~/.mixcalc)")

	root.AddCommand(
		a.newChemicalsCmd(),
		a.newSurfacesCmd(),
		a.newMixCmd(),
		a.newEstimateCmd(),
		a.newCompareCmd(),
		a.newTemplateCmd(),
		a.newLibraryCmd(),
		a.newBackupCmd(),
	)
	return root
}

func (a *app) load() error {
	if a.home != "" {
		if err := os.Setenv(project.HomeEnv, a.home); err != nil {
			return err
		}
	}

	a.cfgPath = project.DefaultConfigPath()
	cfg, err := project.LoadAppConfig(a.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	lib, libPath, err := project.LoadOrCreateLibrary()
	if err != nil {
		return fmt.Errorf("failed to load library: %w", err)
	}
	a.lib = lib

	a.log.Debug("loaded data",
		"config", a.cfgPath,
		"library", libPath,
		"chemicals", len(lib.Chemicals),
		"surfaces", len(lib.Surfaces),
	)
	return nil
}

func (a *app) costEngine() *engine.CostEngine {
	return engine.NewCostEngine(a.lib.CoverageTable(), a.cfg.Rates)
}

// rememberEstimate pushes path onto the recent list and saves the config.
// Failure is logged, not returned.
func (a *app) rememberEstimate(path string) {
	a.cfg.AddRecent(path)
	if err := project.SaveAppConfig(a.cfgPath, a.cfg); err != nil {
		a.log.Warn("could not update recent estimates", "err", err)
	}
}
