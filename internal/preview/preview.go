// Package preview renders processed documents to HTML with goldmark, so the
// output of a backend can be eyeballed without running the real toolchain.
package preview

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Options controls HTML rendering.
type Options struct {
	// Safe drops raw HTML, which hides slate asides.
	Safe bool
	// Standalone wraps the fragment in a minimal HTML page.
	Standalone bool
	// Title is the page title for standalone output.
	Title string
}

// Renderer converts Markdown to HTML. It is stateless and safe to share.
type Renderer struct {
	engine     goldmark.Markdown
	standalone bool
	title      string
}

// New builds a Renderer with GFM enabled.
func New(opts Options) *Renderer {
	var rendererOptions []goldmark.Option
	if !opts.Safe {
		rendererOptions = append(rendererOptions, goldmark.WithRendererOptions(gmhtml.WithUnsafe()))
	}

	engine := goldmark.New(append(rendererOptions,
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithExtensions(extension.GFM, extension.Footnote),
	)...)

	return &Renderer{engine: engine, standalone: opts.Standalone, title: opts.Title}
}

// Render writes the HTML for markdown to w.
func (r *Renderer) Render(w io.Writer, markdown []byte) error {
	var body bytes.Buffer
	if err := r.engine.Convert(markdown, &body); err != nil {
		return fmt.Errorf("markdown render: %w", err)
	}

	if !r.standalone {
		_, err := w.Write(body.Bytes())
		return err
	}

	title := r.title
	if title == "" {
		title = "Preview"
	}
	_, err := fmt.Fprintf(w, pageTemplate, html.EscapeString(title), body.Bytes())
	return err
}

// String is Render into a string.
func (r *Renderer) String(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, []byte(markdown)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
aside { border-left: 4px solid #888; padding: .5em 1em; margin: 1em 0; }
aside.notice { border-color: #3b82f6; }
aside.success { border-color: #22c55e; }
aside.warning { border-color: #f59e0b; }
aside.error { border-color: #ef4444; }
</style>
</head>
<body>
%s</body>
</html>
`
