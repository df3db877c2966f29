package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/admonitions/internal/logging"
	admonitionsmcp "github.com/gorewood/admonitions/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	var backendFlag string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run admonitions as a Model Context Protocol (MCP) server over stdio.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "admonitions": {
        "command": "admonitions",
        "args": ["serve", "--backend", "hugo"]
      }
    }
  }

Available tools: render, scan, preview, backends. Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := loadRuntime(cmd, true)
			if err != nil {
				return err
			}
			backend, err := rt.backend(backendFlag)
			if err != nil {
				return err
			}
			server := admonitionsmcp.NewServer(buildVersion(), admonitionsmcp.Options{
				DefaultBackend: backend,
				Logger:         rt.logger(logging.ModuleMCP),
			})
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
	cmd.Flags().StringVarP(&backendFlag, "backend", "b", "", "Default backend for render calls (default from config)")
	return cmd
}
