package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/metalagman/recordkit/host"
)

// Dispatch returns a tool handler that forwards calls to command on d.
func Dispatch(d *host.Dispatcher, command string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return HandleCommand(ctx, d, command, req)
	}
}

// HandleCommand runs command with the request arguments.
// Command failures are reported as error results, never as a protocol error.
func HandleCommand(ctx context.Context, d *host.Dispatcher, command string, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := json.Marshal(req.GetArguments())
	if err != nil {
		return errorResult(fmt.Sprintf("marshal arguments: %v", err)), nil
	}

	out, err := d.Invoke(ctx, command, args)
	if err != nil {
		return errorResult(err.Error()), nil
	}

	return textResult(indentJSON(out)), nil
}

func indentJSON(data []byte) string {
	var b bytes.Buffer
	if err := json.Indent(&b, data, "", "  "); err != nil {
		return string(data)
	}

	return b.String()
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(msg),
		},
		IsError: true,
	}
}
