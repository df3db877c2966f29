// Package mcp serves the admonition converter over the Model Context Protocol
// so agents can render and inspect admonition markup without shelling out.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/admonitions/internal/logging"
)

// Options configures the server.
type Options struct {
	// DefaultBackend is used when a render call names no backend.
	DefaultBackend string
	Logger         logging.Logger
}

// NewServer creates an MCP server with every admonitions tool registered.
func NewServer(version string, opts Options) *mcp.Server {
	if opts.Logger == nil {
		opts.Logger = logging.NoOp()
	}
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "admonitions",
		Version: version,
	}, nil)
	registerTools(server, opts)
	return server
}

func boolPtr(b bool) *bool {
	return &b
}

// All tools are pure functions of their input.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

func registerTools(server *mcp.Server, opts Options) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "render",
		Description: "Convert !!!, ??? and ???+ admonition blocks in a Markdown document for the pandoc, slate or hugo backend. Blocks that fail are left unchanged.",
		Annotations: readOnlyAnnotations(),
	}, handleRender(opts))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "scan",
		Description: "List the admonition blocks found in a Markdown document with their form, type, title, body lines and byte offsets.",
		Annotations: readOnlyAnnotations(),
	}, handleScan())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "preview",
		Description: "Convert admonitions for a backend and render the result to HTML.",
		Annotations: readOnlyAnnotations(),
	}, handlePreview(opts))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "backends",
		Description: "List the supported backend identifiers.",
		Annotations: readOnlyAnnotations(),
	}, handleBackends(opts))
}
