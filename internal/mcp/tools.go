package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/admonitions/internal/admonition"
	"github.com/gorewood/admonitions/internal/logging"
	"github.com/gorewood/admonitions/internal/preview"
)

// --- Render tool ---

// RenderInput is the input for the render tool.
type RenderInput struct {
	Text    string `json:"text"              jsonschema:"Markdown document containing admonitions"`
	Backend string `json:"backend,omitempty" jsonschema:"pandoc, slate or hugo (defaults to the configured backend)"`
}

// RenderOutput is the output for the render tool.
type RenderOutput struct {
	Output   string `json:"output"   jsonschema:"the converted document"`
	Backend  string `json:"backend"  jsonschema:"backend used"`
	Active   bool   `json:"active"   jsonschema:"false when the backend is unsupported and the text was returned unchanged"`
	Found    int    `json:"found"    jsonschema:"admonition blocks found"`
	Rendered int    `json:"rendered" jsonschema:"blocks converted"`
	Failed   int    `json:"failed"   jsonschema:"blocks left unchanged after a failure"`
}

func handleRender(opts Options) mcp.ToolHandlerFor[RenderInput, RenderOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RenderInput) (*mcp.CallToolResult, RenderOutput, error) {
		proc, err := processorFor(input.Backend, opts)
		if err != nil {
			return nil, RenderOutput{}, err
		}

		out, result := proc.Process(input.Text)
		return nil, RenderOutput{
			Output:   out,
			Backend:  proc.Backend(),
			Active:   proc.Active(),
			Found:    result.Found,
			Rendered: result.Rendered,
			Failed:   result.Failed,
		}, nil
	}
}

// --- Scan tool ---

// ScanInput is the input for the scan tool.
type ScanInput struct {
	Text string `json:"text" jsonschema:"Markdown document to inspect"`
}

// BlockInfo describes one admonition block.
type BlockInfo struct {
	Form     string   `json:"form"            jsonschema:"standard, collapsible or collapsible-open"`
	Type     string   `json:"type"            jsonschema:"lowercased admonition type"`
	Title    string   `json:"title,omitempty" jsonschema:"quoted title if present"`
	HasTitle bool     `json:"has_title"       jsonschema:"whether a quoted title was written, even an empty one"`
	Lines    []string `json:"lines"           jsonschema:"body lines with one indentation level removed"`
	Start    int      `json:"start"           jsonschema:"byte offset of the block"`
	End      int      `json:"end"             jsonschema:"byte offset just past the block"`
}

// ScanOutput is the output for the scan tool.
type ScanOutput struct {
	Count  int         `json:"count"  jsonschema:"number of blocks"`
	Blocks []BlockInfo `json:"blocks" jsonschema:"blocks in document order"`
}

func handleScan() mcp.ToolHandlerFor[ScanInput, ScanOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ScanInput) (*mcp.CallToolResult, ScanOutput, error) {
		out := ScanOutput{Blocks: []BlockInfo{}}
		for m := range admonition.Scan(input.Text) {
			block, err := admonition.BlockFromMatch(m)
			if err != nil {
				return nil, ScanOutput{}, fmt.Errorf("block at offset %d: %w", m.Start, err)
			}
			out.Blocks = append(out.Blocks, BlockInfo{
				Form:     block.Form.String(),
				Type:     block.Type,
				Title:    block.Title,
				HasTitle: block.HasTitle,
				Lines:    block.Lines,
				Start:    m.Start,
				End:      m.End,
			})
		}
		out.Count = len(out.Blocks)
		return nil, out, nil
	}
}

// --- Preview tool ---

// PreviewInput is the input for the preview tool.
type PreviewInput struct {
	Text    string `json:"text"              jsonschema:"Markdown document containing admonitions"`
	Backend string `json:"backend,omitempty" jsonschema:"pandoc, slate or hugo (defaults to the configured backend)"`
	Safe    bool   `json:"safe,omitempty"    jsonschema:"drop raw HTML from the result"`
}

// PreviewOutput is the output for the preview tool.
type PreviewOutput struct {
	HTML    string `json:"html"    jsonschema:"HTML fragment"`
	Backend string `json:"backend" jsonschema:"backend used"`
}

func handlePreview(opts Options) mcp.ToolHandlerFor[PreviewInput, PreviewOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input PreviewInput) (*mcp.CallToolResult, PreviewOutput, error) {
		proc, err := processorFor(input.Backend, opts)
		if err != nil {
			return nil, PreviewOutput{}, err
		}

		processed, _ := proc.Process(input.Text)
		html, err := preview.New(preview.Options{Safe: input.Safe}).String(processed)
		if err != nil {
			return nil, PreviewOutput{}, err
		}
		return nil, PreviewOutput{HTML: html, Backend: proc.Backend()}, nil
	}
}

// --- Backends tool ---

// BackendsInput is the input for the backends tool (no parameters).
type BackendsInput struct{}

// BackendsOutput is the output for the backends tool.
type BackendsOutput struct {
	Backends []string `json:"backends" jsonschema:"supported backend identifiers"`
	Default  string   `json:"default"  jsonschema:"backend used when a call names none"`
}

func handleBackends(opts Options) mcp.ToolHandlerFor[BackendsInput, BackendsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ BackendsInput) (*mcp.CallToolResult, BackendsOutput, error) {
		out := BackendsOutput{Default: opts.DefaultBackend}
		for _, b := range admonition.Backends() {
			out.Backends = append(out.Backends, string(b))
		}
		return nil, out, nil
	}
}

// processorFor resolves the backend for a tool call. An explicitly requested
// backend must be supported; the configured default may be inactive.
func processorFor(requested string, opts Options) (*admonition.Processor, error) {
	backend := strings.TrimSpace(requested)
	if backend == "" {
		backend = opts.DefaultBackend
	} else if _, ok := admonition.RendererFor(backend); !ok {
		return nil, errors.New("unknown backend " + backend + ": want one of pandoc, slate, hugo")
	}
	logger := logging.WithFields(opts.Logger, map[string]any{"backend": backend})
	return admonition.NewProcessor(backend, admonition.WithLogger(logger)), nil
}
