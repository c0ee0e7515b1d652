package mcpserver

import (
	"context"

	"github.com/erraggy/wordcase/casing"
	"github.com/erraggy/wordcase/hostapi"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type listFromInput struct {
	Input string `json:"input" jsonschema:"The string to inspect"`
}

type listFromOutput struct {
	Codes []int    `json:"codes"`
	Names []string `json:"names"`
}

func handleListFrom(_ context.Context, _ *mcp.CallToolRequest, input listFromInput) (*mcp.CallToolResult, listFromOutput, error) {
	if err := checkInputSize(input.Input); err != nil {
		return errResult(err), listFromOutput{}, nil
	}
	codes := hostapi.ListFrom(input.Input)
	output := listFromOutput{
		Codes: codes,
		Names: make([]string, 0, len(codes)),
	}
	for _, code := range codes {
		b, _ := casing.BoundaryFromCode(code)
		output.Names = append(output.Names, b.String())
	}
	return nil, output, nil
}
