package preview

import (
	"strings"
	"testing"

	"github.com/gorewood/admonitions/internal/admonition"
)

func render(t *testing.T, opts Options, backend, doc string) string {
	t.Helper()
	processed, _ := admonition.NewProcessor(backend).Process(doc)
	out, err := New(opts).String(processed)
	if err != nil {
		t.Fatalf("String() error = %v", err)
	}
	return out
}

func TestRender_Backends(t *testing.T) {
	doc := "!!! warning \"Be careful\"\n    Do not push the red button.\n"

	tests := []struct {
		backend string
		want    []string
	}{
		{"pandoc", []string{"<blockquote>", "<strong>Be careful</strong>", "Do not push the red button."}},
		{"slate", []string{`<aside class="warning">Do not push the red button.</aside>`}},
		{"hugo", []string{"{{% admonition form=", "Do not push the red button.", "{{% /admonition %}}"}},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			got := render(t, Options{}, tt.backend, doc)
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
		})
	}
}

func TestRender_SafeDropsRawHTML(t *testing.T) {
	got := render(t, Options{Safe: true}, "slate", "!!! tip\n    Hidden.\n")
	if strings.Contains(got, "<aside") {
		t.Errorf("safe mode emitted raw HTML:\n%s", got)
	}
}

func TestRender_Standalone(t *testing.T) {
	got := render(t, Options{Standalone: true, Title: "A & B"}, "pandoc", "# Hi\n")

	if !strings.HasPrefix(got, "<!DOCTYPE html>") {
		t.Errorf("missing doctype:\n%s", got)
	}
	if !strings.Contains(got, "<title>A &amp; B</title>") {
		t.Errorf("title not escaped:\n%s", got)
	}
	if !strings.Contains(got, `<h1 id="hi">Hi</h1>`) {
		t.Errorf("body missing heading:\n%s", got)
	}
}
