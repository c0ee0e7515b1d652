package mcpserver

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/erraggy/wordcase/caseerrors"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCaseTool_ByName(t *testing.T) {
	tests := []struct {
		name  string
		input toCaseInput
		want  string
	}{
		{"snake", toCaseInput{Input: "fooBarBaz", Case: "snake"}, "foo_bar_baz"},
		{"pascal from snake_case name", toCaseInput{Input: "foo_bar_baz", Case: "PascalCase"}, "FooBarBaz"},
		{"camel no-op", toCaseInput{Input: "fooBarBaz", Case: "camel"}, "fooBarBaz"},
		{"with from", toCaseInput{Input: "fooBar_baz", Case: "kebab", From: "snake"}, "foobar-baz"},
		{"empty input", toCaseInput{Input: "", Case: "title"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, output, err := handleToCase(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			assert.Nil(t, result)
			assert.Equal(t, tt.want, output.Output)
		})
	}
}

func TestToCaseTool_ByCode(t *testing.T) {
	_, output, err := handleToCase(context.Background(), &mcp.CallToolRequest{}, toCaseInput{
		Input:    "fooBarBaz",
		CaseCode: float64(7),
	})
	require.NoError(t, err)
	assert.Equal(t, "foo_bar_baz", output.Output)
	assert.Equal(t, "snake", output.Case)
	assert.Empty(t, output.From)

	_, output, err = handleToCase(context.Background(), &mcp.CallToolRequest{}, toCaseInput{
		Input:    "foo-bar",
		CaseCode: float64(2),
		FromCode: float64(10),
	})
	require.NoError(t, err)
	assert.Equal(t, "Foo Bar", output.Output)
	assert.Equal(t, "title", output.Case)
	assert.Equal(t, "kebab", output.From)
}

func TestToCaseTool_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    toCaseInput
		contains string
	}{
		{"no case", toCaseInput{Input: "foo"}, "exactly one of case or case_code"},
		{"both", toCaseInput{Input: "foo", Case: "snake", CaseCode: float64(7)}, "only one of case or case_code"},
		{"both from", toCaseInput{Input: "foo", Case: "snake", From: "camel", FromCode: float64(4)}, "only one of from or from_code"},
		{"unknown name", toCaseInput{Input: "foo", Case: "spongebob"}, "unknown case"},
		{"out of range", toCaseInput{Input: "foo", CaseCode: float64(18)}, `invalid case code 18 for argument "targetCase"`},
		{"negative from", toCaseInput{Input: "foo", Case: "snake", FromCode: float64(-1)}, `for argument "fromCase"`},
		{"non-integral", toCaseInput{Input: "foo", CaseCode: 2.5}, `invalid case code 2.5 for argument "case_code"`},
		{"not a number", toCaseInput{Input: "foo", CaseCode: "7"}, "invalid case code 7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := handleToCase(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
			text, ok := result.Content[0].(*mcp.TextContent)
			require.True(t, ok)
			assert.Contains(t, text.Text, tt.contains)
		})
	}
}

func TestToCaseTool_InputSizeLimit(t *testing.T) {
	withConfig(t, &serverConfig{MaxInputSize: 8})

	result, _, err := handleToCase(context.Background(), &mcp.CallToolRequest{}, toCaseInput{
		Input: strings.Repeat("a", 9),
		Case:  "snake",
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.True(t, errors.Is(checkInputSize(strings.Repeat("a", 9)), caseerrors.ErrResourceLimit))
	assert.NoError(t, checkInputSize("aaaaaaaa"))
}

func TestToCaseTool_NFC(t *testing.T) {
	withConfig(t, &serverConfig{MaxInputSize: 1024, NFC: true})

	_, output, err := handleToCase(context.Background(), &mcp.CallToolRequest{}, toCaseInput{
		Input: "cafe\u0301",
		Case:  "upper",
	})
	require.NoError(t, err)
	assert.Equal(t, "CAF\u00c9", output.Output)
}

func TestIsCaseTool(t *testing.T) {
	tests := []struct {
		name  string
		input isCaseInput
		want  bool
	}{
		{"snake true", isCaseInput{Input: "foo_bar", Case: "snake"}, true},
		{"snake false", isCaseInput{Input: "fooBar", Case: "snake"}, false},
		{"by code", isCaseInput{Input: "FooBar", CaseCode: float64(5)}, true},
		{"empty", isCaseInput{Input: "", Case: "camel"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, output, err := handleIsCase(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			assert.Nil(t, result)
			assert.Equal(t, tt.want, output.IsCase)
		})
	}

	result, _, err := handleIsCase(context.Background(), &mcp.CallToolRequest{}, isCaseInput{Input: "foo", CaseCode: float64(99)})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
