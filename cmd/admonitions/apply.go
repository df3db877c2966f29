package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/admonitions/internal/config"
	"github.com/gorewood/admonitions/internal/corpus"
	"github.com/gorewood/admonitions/internal/logging"
	"github.com/gorewood/admonitions/internal/output"
)

type applyOptions struct {
	backend string
	outDir  string
	dryRun  bool
	exts    []string
	strict  bool
}

// newApplyCmd creates the apply command.
func newApplyCmd() *cobra.Command {
	var opts applyOptions
	cmd := &cobra.Command{
		Use:   "apply [dir]",
		Short: "Convert admonitions in every document under a directory",
		Long: `Convert admonitions in every document under a directory.

Documents are rewritten in place unless --out is given, in which case the
whole tree is mirrored there and the sources are left alone. A block that
cannot be converted is logged and kept as written.

The directory defaults to src_dir from the config (src).

Examples:
  admonitions apply --backend pandoc            # rewrite ./src in place
  admonitions apply docs --out build/docs       # mirror docs/ into build/docs
  admonitions apply --dry-run --json            # report what would change`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, args, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.backend, "backend", "b", "", "Backend: pandoc, slate, hugo (default from config)")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "Write converted documents under this directory")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Process documents without writing")
	cmd.Flags().StringSliceVar(&opts.exts, "ext", nil, "Document extensions (default from config, .md)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Exit with code 3 when any block fails to convert")
	return cmd
}

func runApply(cmd *cobra.Command, args []string, opts applyOptions) error {
	printer := newPrinter(cmd)

	rt, err := loadRuntime(cmd, false)
	if err != nil {
		printer.Error(err)
		return err
	}

	backend, err := rt.backend(opts.backend)
	if err != nil {
		printer.Error(err)
		return err
	}

	root := rt.cfg.Src
	if len(args) == 1 {
		root = args[0]
	}
	exts := rt.cfg.Extensions
	if len(opts.exts) > 0 {
		exts = config.NormalizeExtensions(opts.exts)
	}

	files, err := corpus.Discover(root, exts)
	if err != nil {
		printer.Error(err)
		return err
	}

	runner := &corpus.Runner{
		Processor: rt.processor(backend),
		Logger:    rt.logger(logging.ModuleCorpus),
		OutDir:    opts.outDir,
		DryRun:    opts.dryRun,
	}
	report, err := runner.Run(cmd.Context(), root, files)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			err = output.NewSystemError("apply interrupted", err)
		}
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		if err := printer.WriteJSON(report); err != nil {
			return err
		}
	} else {
		printApplyReport(printer, report, root)
	}

	if opts.strict && report.Failed > 0 {
		err := output.NewPartialError(report.Failed)
		if !printer.IsJSON() {
			printer.Error(err)
		}
		return err
	}
	return nil
}

func printApplyReport(printer *output.Printer, report corpus.Report, root string) {
	if report.Skipped {
		if report.Backend == "" {
			printer.Warn("no backend configured; documents left unchanged")
		} else {
			printer.Warn("backend %q is not supported; documents left unchanged", report.Backend)
		}
		return
	}

	var rows [][]string
	for _, doc := range report.Documents {
		if doc.Found == 0 {
			continue
		}
		rows = append(rows, []string{
			doc.Path,
			strconv.Itoa(doc.Found),
			strconv.Itoa(doc.Rendered),
			strconv.Itoa(doc.Failed),
		})
	}
	if len(rows) > 0 {
		printer.Section("Documents in " + root)
		printer.Table([]string{"PATH", "BLOCKS", "RENDERED", "FAILED"}, rows)
		printer.Println()
	}

	verb := "Rewrote"
	if report.DryRun {
		verb = "Would rewrite"
	}
	msg := fmt.Sprintf("%s %d of %d documents for %s (%d blocks converted",
		verb, report.Changed, report.Files, report.Backend, report.Rendered)
	if report.Failed > 0 {
		msg += fmt.Sprintf(", %d left as-is", report.Failed)
	}
	_ = printer.Success(msg+")", nil)
}
