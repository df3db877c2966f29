// Package corpus drives the admonition processor over a documentation tree:
// it finds documents, feeds each one through the processor and writes the
// result back in place or into a mirror directory.
package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gorewood/admonitions/internal/admonition"
	"github.com/gorewood/admonitions/internal/logging"
	"github.com/gorewood/admonitions/internal/output"
)

// Document is the outcome for one file.
type Document struct {
	Path    string `json:"path"`
	Changed bool   `json:"changed"`
	admonition.Result
}

// Report summarises a run.
type Report struct {
	Backend   string     `json:"backend"`
	Skipped   bool       `json:"skipped"`
	DryRun    bool       `json:"dry_run,omitempty"`
	Files     int        `json:"files"`
	Changed   int        `json:"changed"`
	Blocks    int        `json:"blocks"`
	Rendered  int        `json:"rendered"`
	Failed    int        `json:"failed"`
	Documents []Document `json:"documents,omitempty"`
}

// Runner applies a Processor to documents on disk.
type Runner struct {
	Processor *admonition.Processor
	Logger    logging.Logger
	// OutDir, when set, receives every document at its path relative to the
	// run root. Sources are left untouched.
	OutDir string
	// DryRun processes documents without writing anything.
	DryRun bool
}

// Run processes files, which must live under root. Cancellation is checked
// between documents. Read and write failures abort the run; block failures
// never do.
func (r *Runner) Run(ctx context.Context, root string, files []string) (Report, error) {
	logger := r.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	report := Report{Backend: r.Processor.Backend(), DryRun: r.DryRun}
	if !r.Processor.Active() {
		logger.Debug("backend inactive, nothing to do", "backend", report.Backend)
		report.Skipped = true
		return report, nil
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		doc, err := r.runFile(root, path, logger)
		if err != nil {
			return report, err
		}

		report.Files++
		report.Blocks += doc.Found
		report.Rendered += doc.Rendered
		report.Failed += doc.Failed
		if doc.Changed {
			report.Changed++
		}
		report.Documents = append(report.Documents, doc)
	}

	logger.Info("preprocessor applied",
		"backend", report.Backend,
		"files", report.Files,
		"changed", report.Changed,
		"blocks", report.Blocks,
		"failed", report.Failed,
	)
	return report, nil
}

func (r *Runner) runFile(root, path string, logger logging.Logger) (Document, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		rel = filepath.Base(path)
	}
	doc := Document{Path: rel}

	info, err := os.Stat(path)
	if err != nil {
		return doc, output.NewSystemError("failed to stat "+path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return doc, output.NewSystemError("failed to read "+path, err)
	}

	text := string(data)
	processed, result := r.Processor.Process(text)
	doc.Result = result
	doc.Changed = processed != text

	logging.WithFields(logger, map[string]any{"path": rel}).Debug("document processed",
		"found", result.Found,
		"rendered", result.Rendered,
		"failed", result.Failed,
	)

	if r.DryRun {
		return doc, nil
	}

	dest := path
	if r.OutDir != "" {
		dest = filepath.Join(r.OutDir, rel)
	} else if !doc.Changed {
		return doc, nil
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return doc, output.NewSystemError("failed to create "+filepath.Dir(dest), err)
	}
	if err := atomicWrite(dest, []byte(processed), info.Mode().Perm()); err != nil {
		return doc, output.NewSystemError("failed to write "+dest, err)
	}
	return doc, nil
}

// atomicWrite replaces path through a temp file in the same directory.
func atomicWrite(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".admonitions-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write data: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	return os.Rename(tmpPath, path)
}
