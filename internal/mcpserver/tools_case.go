package mcpserver

import (
	"context"

	"github.com/erraggy/wordcase/hostapi"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type toCaseInput struct {
	Input    string `json:"input"               jsonschema:"The string to convert"`
	Case     string `json:"case,omitempty"      jsonschema:"Target case name\\, e.g. snake\\, camel\\, kebab\\, title"`
	CaseCode any    `json:"case_code,omitempty" jsonschema:"Target case as an integer code (see the codes tool)"`
	From     string `json:"from,omitempty"      jsonschema:"Source case name. The input is split on this case's boundaries instead of the default set."`
	FromCode any    `json:"from_code,omitempty" jsonschema:"Source case as an integer code"`
}

type toCaseOutput struct {
	Output string `json:"output"`
	Case   string `json:"case"`
	From   string `json:"from,omitempty"`
}

func handleToCase(_ context.Context, _ *mcp.CallToolRequest, input toCaseInput) (*mcp.CallToolResult, toCaseOutput, error) {
	if err := checkInputSize(input.Input); err != nil {
		return errResult(err), toCaseOutput{}, nil
	}
	target, err := caseSelector{
		Name: input.Case, Code: input.CaseCode,
		NameArg: "case", CodeArg: "case_code",
		Required: true,
	}.resolve()
	if err != nil {
		return errResult(err), toCaseOutput{}, nil
	}
	from, err := caseSelector{
		Name: input.From, Code: input.FromCode,
		NameArg: "from", CodeArg: "from_code",
	}.resolve()
	if err != nil {
		return errResult(err), toCaseOutput{}, nil
	}

	out, err := hostapi.ToCase(input.Input, *target, from, converterOptions()...)
	if err != nil {
		return errResult(err), toCaseOutput{}, nil
	}

	output := toCaseOutput{Output: out, Case: caseName(*target)}
	if from != nil {
		output.From = caseName(*from)
	}
	return nil, output, nil
}

type isCaseInput struct {
	Input    string `json:"input"               jsonschema:"The string to check"`
	Case     string `json:"case,omitempty"      jsonschema:"Case name\\, e.g. snake\\, camel\\, kebab\\, title"`
	CaseCode any    `json:"case_code,omitempty" jsonschema:"Case as an integer code (see the codes tool)"`
}

type isCaseOutput struct {
	IsCase bool   `json:"is_case"`
	Case   string `json:"case"`
}

func handleIsCase(_ context.Context, _ *mcp.CallToolRequest, input isCaseInput) (*mcp.CallToolResult, isCaseOutput, error) {
	if err := checkInputSize(input.Input); err != nil {
		return errResult(err), isCaseOutput{}, nil
	}
	target, err := caseSelector{
		Name: input.Case, Code: input.CaseCode,
		NameArg: "case", CodeArg: "case_code",
		Required: true,
	}.resolve()
	if err != nil {
		return errResult(err), isCaseOutput{}, nil
	}

	ok, err := hostapi.IsCase(input.Input, *target)
	if err != nil {
		return errResult(err), isCaseOutput{}, nil
	}
	return nil, isCaseOutput{IsCase: ok, Case: caseName(*target)}, nil
}
