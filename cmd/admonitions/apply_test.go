package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/admonitions/internal/output"
)

const applyDoc = "# Guide\n\n!!! warning \"Be careful\"\n    Do not push the red button.\n\nEnd.\n"

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestApply_DefaultSourceDir(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "src", "guide.md"), applyDoc)
	writeFile(t, filepath.Join(dir, "src", "plain.md"), "Nothing.\n")

	out, _, err := execute(t, "", "apply", "--backend", "pandoc")
	if err != nil {
		t.Fatalf("apply error = %v", err)
	}

	want := "# Guide\n\n> **Be careful**\n>\n> Do not push the red button.\n\nEnd.\n"
	if got := readFile(t, filepath.Join(dir, "src", "guide.md")); got != want {
		t.Errorf("guide.md =\n%q\nwant\n%q", got, want)
	}
	if !strings.Contains(out, "Rewrote 1 of 2 documents for pandoc") {
		t.Errorf("summary missing:\n%s", out)
	}
}

func TestApply_OutDirJSON(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "docs", "a.md"), applyDoc)
	writeFile(t, filepath.Join(dir, "admonitions.yml"), "backend: hugo\n")
	outDir := filepath.Join(dir, "build")

	out, _, err := execute(t, "", "apply", "docs", "--out", outDir, "--json")
	if err != nil {
		t.Fatalf("apply error = %v", err)
	}

	got := decodeJSON(t, out)
	if got["backend"] != "hugo" || got["files"] != float64(1) || got["blocks"] != float64(1) {
		t.Errorf("report = %v", got)
	}
	if readFile(t, filepath.Join(dir, "docs", "a.md")) != applyDoc {
		t.Error("source was modified despite --out")
	}
	if !strings.Contains(readFile(t, filepath.Join(outDir, "a.md")), `{{% admonition form="standard" type="warning" title="Be careful" %}}`) {
		t.Error("mirrored document not converted")
	}
}

func TestApply_DryRun(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "src", "a.md")
	writeFile(t, path, applyDoc)

	out, _, err := execute(t, "", "apply", "--backend", "slate", "--dry-run")
	if err != nil {
		t.Fatal(err)
	}
	if readFile(t, path) != applyDoc {
		t.Error("dry run modified the document")
	}
	if !strings.Contains(out, "Would rewrite 1 of 1") {
		t.Errorf("summary missing:\n%s", out)
	}
}

func TestApply_NoBackendIsNoop(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "src", "a.md")
	writeFile(t, path, applyDoc)

	_, stderr, err := execute(t, "", "apply")
	if err != nil {
		t.Fatalf("apply error = %v", err)
	}
	if readFile(t, path) != applyDoc {
		t.Error("unconfigured run modified the document")
	}
	if !strings.Contains(stderr, "no backend configured") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestApply_ExtensionFlag(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "src", "a.markdown"), applyDoc)
	writeFile(t, filepath.Join(dir, "src", "b.md"), applyDoc)

	if _, _, err := execute(t, "", "apply", "-b", "pandoc", "--ext", "markdown"); err != nil {
		t.Fatal(err)
	}
	if readFile(t, filepath.Join(dir, "src", "a.markdown")) == applyDoc {
		t.Error(".markdown document was not converted")
	}
	if readFile(t, filepath.Join(dir, "src", "b.md")) != applyDoc {
		t.Error(".md document converted despite --ext markdown")
	}
}

func TestApply_MissingDir(t *testing.T) {
	isolate(t)
	_, _, err := execute(t, "", "apply", "nowhere", "-b", "pandoc")
	if output.GetExitCode(err) != output.ExitUserError {
		t.Errorf("error = %v, want user error", err)
	}
}
