package mcpserver

import (
	"context"

	"github.com/erraggy/wordcase/hostapi"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type codesInput struct{}

func handleCodes(_ context.Context, _ *mcp.CallToolRequest, _ codesInput) (*mcp.CallToolResult, hostapi.CodeTable, error) {
	return nil, hostapi.Codes(), nil
}
