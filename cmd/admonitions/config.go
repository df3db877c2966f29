package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/admonitions/internal/config"
)

// newConfigCmd creates the config command.
func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the effective configuration and where it came from.

Resolution order, later wins:
  built-in defaults
  ` + "<config dir>/config.yml" + `
  ./` + config.ProjectFile + ` (or --config)
  ADMONITIONS_* environment variables (.env.local and .env are loaded first)
  command-line flags`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}
}

func runConfig(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd)

	rt, err := loadRuntime(cmd, false)
	if err != nil {
		printer.Error(err)
		return err
	}
	cfg := rt.cfg

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"backend":    cfg.Backend,
			"target":     cfg.Target,
			"src_dir":    cfg.Src,
			"extensions": cfg.Extensions,
			"log":        map[string]string{"level": cfg.Log.Level, "format": cfg.Log.Format},
			"sources":    rt.sources,
			"config_dir": config.Dir(),
		})
	}

	printer.Section("Configuration")
	printer.KeyValue("Backend", cfg.Backend)
	printer.KeyValue("Target", cfg.Target)
	printer.KeyValue("Source dir", cfg.Src)
	printer.KeyValue("Extensions", strings.Join(cfg.Extensions, ", "))
	printer.KeyValue("Log level", cfg.Log.Level)
	printer.KeyValue("Log format", cfg.Log.Format)

	printer.Section("Sources")
	printer.KeyValue("Config dir", config.Dir())
	printer.KeyValue("Loaded", strings.Join(rt.sources, ", "))
	return nil
}
