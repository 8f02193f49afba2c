package main

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/metalagman/recordkit/mcpserver"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the record commands as MCP tools on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}

			a.logger.Info().Strs("tools", a.dispatcher.Commands()).Msg("serving MCP on stdio")

			return server.ServeStdio(mcpserver.NewServer(version, a.dispatcher))
		},
	}
}
