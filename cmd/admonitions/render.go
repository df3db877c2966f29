package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/admonitions/internal/output"
)

type renderOptions struct {
	backend string
	strict  bool
}

// newRenderCmd creates the render command.
func newRenderCmd() *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Convert admonitions in one document and print the result",
		Long: `Convert admonitions in one document and print the result to stdout.

Reads stdin when no file (or "-") is given. With --json the converted text
is returned together with block counts.

Examples:
  admonitions render README.md --backend hugo
  cat page.md | admonitions render --backend slate > page.out.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.backend, "backend", "b", "", "Backend: pandoc, slate, hugo (default from config)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Exit with code 3 when any block fails to convert")
	return cmd
}

func runRender(cmd *cobra.Command, args []string, opts renderOptions) error {
	printer := newPrinter(cmd)

	rt, err := loadRuntime(cmd, true)
	if err != nil {
		printer.Error(err)
		return err
	}
	backend, err := rt.backend(opts.backend)
	if err != nil {
		printer.Error(err)
		return err
	}
	name, text, err := readInput(cmd, args)
	if err != nil {
		printer.Error(err)
		return err
	}

	proc := rt.processor(backend)
	out, result := proc.Process(text)

	if printer.IsJSON() {
		err = printer.WriteJSON(map[string]any{
			"source":   name,
			"backend":  proc.Backend(),
			"active":   proc.Active(),
			"found":    result.Found,
			"rendered": result.Rendered,
			"failed":   result.Failed,
			"output":   out,
		})
		if err != nil {
			return err
		}
	} else {
		printer.Print("%s", out)
	}

	if opts.strict && result.Failed > 0 {
		err := output.NewPartialError(result.Failed)
		if !printer.IsJSON() {
			printer.Error(err)
		}
		return err
	}
	return nil
}
