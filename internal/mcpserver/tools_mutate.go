package mcpserver

import (
	"context"

	"github.com/erraggy/wordcase/hostapi"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type mutateInput struct {
	Input   string         `json:"input"             jsonschema:"The string to split and re-join"`
	Options map[string]any `json:"options,omitempty" jsonschema:"Overrides: delim (string)\\, pattern (integer code)\\, boundaries (array of integer codes)\\, delimiters (array of strings)"`
}

type mutateOutput struct {
	Output string `json:"output"`
}

func handleMutate(_ context.Context, _ *mcp.CallToolRequest, input mutateInput) (*mcp.CallToolResult, mutateOutput, error) {
	if err := checkInputSize(input.Input); err != nil {
		return errResult(err), mutateOutput{}, nil
	}
	opts, err := hostapi.DecodeMutateOptions(input.Options)
	if err != nil {
		return errResult(err), mutateOutput{}, nil
	}
	out, err := hostapi.Mutate(input.Input, opts, converterOptions()...)
	if err != nil {
		return errResult(err), mutateOutput{}, nil
	}
	return nil, mutateOutput{Output: out}, nil
}
