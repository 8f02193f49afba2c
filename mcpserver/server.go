// Package mcpserver serves the record commands as MCP tools over stdio.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/metalagman/recordkit/host"
)

// NewServer creates an MCP server with the record tools bound to d.
func NewServer(version string, d *host.Dispatcher) *server.MCPServer {
	s := server.NewMCPServer(
		"recordkit",
		version,
		server.WithToolCapabilities(true),
	)

	s.AddTool(
		mcp.NewTool(host.CommandGreet,
			mcp.WithDescription("Return a greeting for the given name"),
			mcp.WithString("name", mcp.Required(), mcp.Description("Name to greet")),
		),
		Dispatch(d, host.CommandGreet),
	)

	s.AddTool(
		mcp.NewTool(host.CommandSaveJSONFile,
			mcp.WithDescription("Save a record as pretty-printed JSON, overwriting the file"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Destination file; its directory must exist")),
			mcp.WithObject("data",
				mcp.Required(),
				mcp.Description("Record to save"),
				mcp.Properties(map[string]any{
					"name":  map[string]any{"type": "string"},
					"value": map[string]any{"type": "integer"},
				}),
			),
		),
		Dispatch(d, host.CommandSaveJSONFile),
	)

	s.AddTool(
		mcp.NewTool(host.CommandLoadJSONFile,
			mcp.WithDescription("Load a record from a JSON file"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Record file to read")),
		),
		Dispatch(d, host.CommandLoadJSONFile),
	)

	return s
}
