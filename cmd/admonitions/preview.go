package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/admonitions/internal/output"
	"github.com/gorewood/admonitions/internal/preview"
)

type previewOptions struct {
	backend    string
	outFile    string
	standalone bool
	safe       bool
	title      string
}

// newPreviewCmd creates the preview command.
func newPreviewCmd() *cobra.Command {
	var opts previewOptions
	cmd := &cobra.Command{
		Use:   "preview [file|-]",
		Short: "Convert a document and render it to HTML",
		Long: `Convert admonitions for a backend, then render the document to HTML.

The HTML is a quick look at the converted Markdown, not the output of the
backend's own toolchain. Hugo shortcodes show up as literal text.

Examples:
  admonitions preview page.md --backend slate --standalone -o page.html
  admonitions preview page.md --backend pandoc --safe`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.backend, "backend", "b", "", "Backend: pandoc, slate, hugo (default from config)")
	cmd.Flags().StringVarP(&opts.outFile, "out", "o", "", "Write HTML to this file instead of stdout")
	cmd.Flags().BoolVar(&opts.standalone, "standalone", false, "Wrap the HTML in a full page")
	cmd.Flags().BoolVar(&opts.safe, "safe", false, "Drop raw HTML (hides slate asides)")
	cmd.Flags().StringVar(&opts.title, "title", "", "Page title for --standalone (default: file name)")
	return cmd
}

func runPreview(cmd *cobra.Command, args []string, opts previewOptions) error {
	printer := newPrinter(cmd)

	rt, err := loadRuntime(cmd, opts.outFile == "")
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

	processed, result := rt.processor(backend).Process(text)

	title := opts.title
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}
	renderer := preview.New(preview.Options{Safe: opts.safe, Standalone: opts.standalone, Title: title})

	var html bytes.Buffer
	if err := renderer.Render(&html, []byte(processed)); err != nil {
		err = output.NewSystemError("failed to render preview", err)
		printer.Error(err)
		return err
	}

	if opts.outFile == "" {
		if printer.IsJSON() {
			return printer.WriteJSON(map[string]any{
				"source":  name,
				"backend": backend,
				"blocks":  result.Found,
				"html":    html.String(),
			})
		}
		printer.Print("%s", html.String())
		return nil
	}

	if err := os.WriteFile(opts.outFile, html.Bytes(), 0o644); err != nil {
		err = output.NewSystemError("failed to write "+opts.outFile, err)
		printer.Error(err)
		return err
	}
	return printer.Success("Wrote "+opts.outFile, map[string]any{
		"path":    opts.outFile,
		"backend": backend,
		"blocks":  result.Found,
	})
}
