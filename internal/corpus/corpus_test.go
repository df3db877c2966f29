package corpus

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gorewood/admonitions/internal/admonition"
	"github.com/gorewood/admonitions/internal/output"
)

const (
	warningDoc = "# Intro\n\n!!! warning \"Be careful\"\n    Do not push the red button.\n\nDone.\n"
	plainDoc   = "# Plain\n\nNothing to see.\n"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestDiscover(t *testing.T) {
	root := writeTree(t, map[string]string{
		"index.md":          plainDoc,
		"guide/setup.MD":    plainDoc,
		"guide/notes.txt":   plainDoc,
		"api/ref.markdown":  plainDoc,
		".cache/hidden.md":  plainDoc,
		"guide/.draft/x.md": plainDoc,
	})

	got, err := Discover(root, []string{".md", ".markdown"})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	want := []string{
		filepath.Join(root, "api/ref.markdown"),
		filepath.Join(root, "guide/setup.MD"),
		filepath.Join(root, "index.md"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Discover() mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscover_DefaultExtension(t *testing.T) {
	root := writeTree(t, map[string]string{"a.md": plainDoc, "b.rst": plainDoc})

	got, err := Discover(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || filepath.Base(got[0]) != "a.md" {
		t.Errorf("Discover() = %v, want only a.md", got)
	}
}

func TestDiscover_MissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"), nil)
	if output.GetExitCode(err) != output.ExitUserError {
		t.Errorf("error = %v, want user error", err)
	}
}

func TestDiscover_SingleFile(t *testing.T) {
	root := writeTree(t, map[string]string{"one.md": plainDoc})
	path := filepath.Join(root, "one.md")

	got, err := Discover(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{path}, got); diff != "" {
		t.Errorf("Discover() mismatch (-want +got):\n%s", diff)
	}
}

func TestRunner_InPlace(t *testing.T) {
	root := writeTree(t, map[string]string{"a.md": warningDoc, "b.md": plainDoc})
	files, err := Discover(root, nil)
	if err != nil {
		t.Fatal(err)
	}

	plainPath := filepath.Join(root, "b.md")
	before, err := os.Stat(plainPath)
	if err != nil {
		t.Fatal(err)
	}

	runner := &Runner{Processor: admonition.NewProcessor("pandoc")}
	report, err := runner.Run(context.Background(), root, files)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := "# Intro\n\n> **Be careful**\n>\n> Do not push the red button.\n\nDone.\n"
	if got := readFile(t, filepath.Join(root, "a.md")); got != want {
		t.Errorf("a.md =\n%q\nwant\n%q", got, want)
	}

	after, err := os.Stat(plainPath)
	if err != nil {
		t.Fatal(err)
	}
	if !after.ModTime().Equal(before.ModTime()) {
		t.Error("unchanged document was rewritten")
	}

	if report.Files != 2 || report.Changed != 1 || report.Blocks != 1 || report.Rendered != 1 {
		t.Errorf("report = %+v", report)
	}
	if report.Backend != "pandoc" || report.Skipped {
		t.Errorf("report backend/skipped = %q/%v", report.Backend, report.Skipped)
	}
}

func TestRunner_OutDirMirrors(t *testing.T) {
	root := writeTree(t, map[string]string{"guide/a.md": warningDoc, "b.md": plainDoc})
	out := filepath.Join(t.TempDir(), "build")
	files, err := Discover(root, nil)
	if err != nil {
		t.Fatal(err)
	}

	runner := &Runner{Processor: admonition.NewProcessor("slate"), OutDir: out}
	if _, err := runner.Run(context.Background(), root, files); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := readFile(t, filepath.Join(root, "guide/a.md")); got != warningDoc {
		t.Error("source document was modified")
	}
	wantA := "# Intro\n\n<aside class=\"warning\">Do not push the red button.</aside>\n\nDone.\n"
	if got := readFile(t, filepath.Join(out, "guide/a.md")); got != wantA {
		t.Errorf("out/guide/a.md = %q, want %q", got, wantA)
	}
	if got := readFile(t, filepath.Join(out, "b.md")); got != plainDoc {
		t.Errorf("out/b.md = %q, want copy of source", got)
	}
}

func TestRunner_DryRun(t *testing.T) {
	root := writeTree(t, map[string]string{"a.md": warningDoc})
	files := []string{filepath.Join(root, "a.md")}

	runner := &Runner{Processor: admonition.NewProcessor("hugo"), DryRun: true}
	report, err := runner.Run(context.Background(), root, files)
	if err != nil {
		t.Fatal(err)
	}
	if got := readFile(t, files[0]); got != warningDoc {
		t.Error("dry run modified the document")
	}
	if report.Changed != 1 || !report.DryRun {
		t.Errorf("report = %+v, want one would-be change", report)
	}
}

func TestRunner_InactiveBackendSkips(t *testing.T) {
	root := writeTree(t, map[string]string{"a.md": warningDoc})
	files := []string{filepath.Join(root, "a.md")}

	runner := &Runner{Processor: admonition.NewProcessor("mkdocs")}
	report, err := runner.Run(context.Background(), root, files)
	if err != nil {
		t.Fatal(err)
	}
	if !report.Skipped || report.Files != 0 {
		t.Errorf("report = %+v, want skipped", report)
	}
	if got := readFile(t, files[0]); got != warningDoc {
		t.Error("inactive backend modified the document")
	}
}

func TestRunner_Cancelled(t *testing.T) {
	root := writeTree(t, map[string]string{"a.md": warningDoc})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := &Runner{Processor: admonition.NewProcessor("pandoc")}
	_, err := runner.Run(ctx, root, []string{filepath.Join(root, "a.md")})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if got := readFile(t, filepath.Join(root, "a.md")); got != warningDoc {
		t.Error("cancelled run modified the document")
	}
}

func TestRunner_ReadFailureAborts(t *testing.T) {
	root := t.TempDir()
	runner := &Runner{Processor: admonition.NewProcessor("pandoc")}

	_, err := runner.Run(context.Background(), root, []string{filepath.Join(root, "missing.md")})
	if output.GetExitCode(err) != output.ExitSystemError {
		t.Errorf("Run() error = %v, want system error", err)
	}
}
