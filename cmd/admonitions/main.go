// Package main provides the entry point for the admonitions CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/admonitions/internal/config"
	"github.com/gorewood/admonitions/internal/envfile"
	"github.com/gorewood/admonitions/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	return stringFlag(cmd, "json") == "true"
}

// stringFlag returns a flag value, falling back to the root's persistent
// flags for commands built outside the tree (tests).
func stringFlag(cmd *cobra.Command, name string) string {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// newPrinter builds a Printer for cmd honoring --json and --color.
func newPrinter(cmd *cobra.Command) *output.Printer {
	out := cmd.OutOrStdout()
	return output.NewPrinter(out, isJSONMode(cmd), output.UseColor(stringFlag(cmd, "color"), out)).
		WithStderr(cmd.ErrOrStderr())
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	os.Exit(run())
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the admonitions CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admonitions",
		Short: "Convert !!! / ??? admonition blocks for pandoc, slate or hugo",
		Long: `Admonitions - convert call-out blocks in Markdown for a publishing backend.

Blocks look like this:

  !!! warning "Be careful"
      Indented body text.

  ??? note       collapsible
  ???+ tip       collapsible, open by default

Supported backends:
  pandoc   blockquote with a bold header line
  slate    <aside> element with a slate class
  hugo     {{% admonition %}} shortcode

A backend outside that list turns every command into a no-op pass.
All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				err := output.NewUserError("no command specified. Run 'admonitions --help' for usage")
				newPrinter(cmd).Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	// Environment variables always take precedence over file values.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		loadEnvFiles()
		return nil
	}

	flags := cmd.PersistentFlags()
	flags.Bool("json", false, "Output in JSON format")
	flags.String("color", "auto", "Color output: auto, always, never")
	flags.String("config", "", "Config file (default ./"+config.ProjectFile+")")
	flags.String("log-level", "", "Log level: trace, debug, info, warn, error")
	flags.String("log-format", "", "Log format: console, json, pretty")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// loadEnvFiles loads .env.local, .env, then the global env file. First match
// for each variable wins.
func loadEnvFiles() {
	files := append([]string{}, envfile.DefaultFiles...)
	if dir := config.Dir(); dir != "" {
		files = append(files, filepath.Join(dir, "env"))
	}
	_, _ = envfile.Load(files...)
}

func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "convert", Title: "Convert Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "inspect", Title: "Inspect Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
}

func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newApplyCmd(), "convert")
	addGroupedCommand(cmd, newRenderCmd(), "convert")
	addGroupedCommand(cmd, newPreviewCmd(), "convert")

	addGroupedCommand(cmd, newScanCmd(), "inspect")
	addGroupedCommand(cmd, newBackendsCmd(), "inspect")
	addGroupedCommand(cmd, newConfigCmd(), "inspect")

	addGroupedCommand(cmd, newServeCmd(), "agent")
}

func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
