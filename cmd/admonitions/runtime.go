package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/admonitions/internal/admonition"
	"github.com/gorewood/admonitions/internal/config"
	"github.com/gorewood/admonitions/internal/logging"
	"github.com/gorewood/admonitions/internal/output"
)

// runtime is the resolved configuration and logging for one command.
type runtime struct {
	cfg      config.Config
	sources  []string
	provider logging.Provider
}

// loadRuntime resolves config files, env and global flags. When stdout
// carries a document, JSON or the MCP stream, logs go to stderr.
func loadRuntime(cmd *cobra.Command, stdoutBusy bool) (*runtime, error) {
	loaded, err := config.Load(config.LoadOptions{Path: stringFlag(cmd, "config")})
	if err != nil {
		return nil, output.NewUserError("%v", err)
	}

	cfg := loaded.Config
	if v := stringFlag(cmd, "log-level"); v != "" {
		cfg.Log.Level = v
	}
	if v := stringFlag(cmd, "log-format"); v != "" {
		cfg.Log.Format = v
	}

	rt := &runtime{cfg: cfg, sources: loaded.Sources}
	if stdoutBusy || isJSONMode(cmd) {
		provider, err := logging.NewSlogLogger(cmd.ErrOrStderr(), cfg.Log)
		if err != nil {
			return nil, output.NewUserError("%v", err)
		}
		rt.provider = provider
	} else {
		provider, err := logging.NewGoLogger(cfg.Log)
		if err != nil {
			return nil, output.NewUserError("%v", err)
		}
		rt.provider = provider
	}
	return rt, nil
}

func (r *runtime) logger(module string) logging.Logger {
	return logging.ModuleLogger(r.provider, module)
}

// backend picks the --backend flag over the configured backend. A backend
// named on the command line must be supported; the configured one may not
// be, which makes the run a no-op.
func (r *runtime) backend(flagValue string) (string, error) {
	flagValue = strings.TrimSpace(flagValue)
	if flagValue == "" {
		return r.cfg.Backend, nil
	}
	if _, ok := admonition.RendererFor(flagValue); !ok {
		return "", output.NewUserError("unknown backend %q (want one of %s)", flagValue, backendList())
	}
	return flagValue, nil
}

func (r *runtime) processor(backend string) *admonition.Processor {
	return admonition.NewProcessor(backend, admonition.WithLogger(r.logger(logging.ModuleCore)))
}

func backendList() string {
	names := make([]string, 0, len(admonition.Backends()))
	for _, b := range admonition.Backends() {
		names = append(names, string(b))
	}
	return strings.Join(names, ", ")
}

// readInput returns the document named by args, or stdin for none or "-".
func readInput(cmd *cobra.Command, args []string) (name, text string, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", output.NewSystemError("failed to read stdin", err)
		}
		return "stdin", string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", "", output.NewUserError("file %s does not exist", args[0])
		}
		return "", "", output.NewSystemError(fmt.Sprintf("failed to read %s", args[0]), err)
	}
	return args[0], string(data), nil
}
