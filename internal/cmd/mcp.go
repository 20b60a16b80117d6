package cmd

import (
	"github.com/spf13/cobra"

	"github.com/salmonumbrella/notion-query/internal/mcpserver"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the query and update operations over MCP",
		Long: `Run a Model Context Protocol (MCP) server on stdin/stdout.

The server exposes two tools: query_database and update_page. Point an
MCP-capable agent at 'nq mcp' to let it query and update Notion
databases using the configured token.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := clientFromContext(ctx)
			if err != nil {
				return err
			}

			app := appFromContext(ctx)
			version := "dev"
			if app != nil {
				version = app.Version
			}

			return mcpserver.New(client, version).ServeStdio()
		},
	}
}
