package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutateTool(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		options map[string]any
		want    string
	}{
		{"delim and pattern", "fooBar", map[string]any{"delim": ".", "pattern": float64(1)}, "FOO.BAR"},
		{"no options", "foo_Bar", nil, "fooBar"},
		{"boundaries replace defaults", "fooBar_baz", map[string]any{"delim": " ", "boundaries": []any{float64(1)}}, "fooBar baz"},
		{"extra delimiters", "a.b.c", map[string]any{"delim": "/", "delimiters": []any{"."}}, "a/b/c"},
		{"wrong types ignored", "fooBar", map[string]any{"delim": 3, "pattern": "upper"}, "fooBar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, output, err := handleMutate(context.Background(), &mcp.CallToolRequest{}, mutateInput{
				Input:   tt.input,
				Options: tt.options,
			})
			require.NoError(t, err)
			assert.Nil(t, result)
			assert.Equal(t, tt.want, output.Output)
		})
	}
}

func TestMutateTool_InvalidCodes(t *testing.T) {
	for name, options := range map[string]map[string]any{
		"pattern out of range":  {"pattern": float64(9)},
		"pattern non-integral":  {"pattern": 1.5},
		"boundary out of range": {"boundaries": []any{float64(10)}},
		"boundary not a number": {"boundaries": []any{"hyphen"}},
	} {
		t.Run(name, func(t *testing.T) {
			result, _, err := handleMutate(context.Background(), &mcp.CallToolRequest{}, mutateInput{
				Input:   "fooBar",
				Options: options,
			})
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
		})
	}
}

func TestListFromTool(t *testing.T) {
	_, output, err := handleListFrom(context.Background(), &mcp.CallToolRequest{}, listFromInput{Input: "foo-bar_baz"})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, output.Codes)
	assert.Equal(t, []string{"hyphen", "underscore"}, output.Names)

	_, output, err = handleListFrom(context.Background(), &mcp.CallToolRequest{}, listFromInput{Input: "plain"})
	require.NoError(t, err)
	assert.Empty(t, output.Codes)
	assert.NotNil(t, output.Codes)
}

func TestCodesTool(t *testing.T) {
	result, output, err := handleCodes(context.Background(), &mcp.CallToolRequest{}, codesInput{})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Len(t, output.Cases, 18)
	assert.Len(t, output.Patterns, 9)
	assert.Len(t, output.Boundaries, 10)
	assert.Equal(t, "snake", output.Cases[7].Name)
}
