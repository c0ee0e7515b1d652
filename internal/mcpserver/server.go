// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes wordcase conversions as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/erraggy/wordcase"
	"github.com/erraggy/wordcase/casing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `wordcase MCP server: converts strings between word cases (camel, snake, kebab, title, ...), checks whether a string is already in a case, re-joins words with custom delimiters and patterns, and lists the word boundaries present in a string.

Cases can be named ("snake", "UpperCamel", "screaming_snake_case") or given as integer codes. Call the codes tool for the full code tables.

Configuration: defaults are configurable via WORDCASE_* environment variables set in your MCP client config.

Key settings:
- WORDCASE_MAX_INPUT_SIZE (default: 1048576): largest accepted input string in bytes
- WORDCASE_NFC (default: false): normalize input to Unicode NFC before splitting
- WORDCASE_SEED (default: 0, time-seeded): seed for the random and pseudo-random patterns`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "wordcase", Version: wordcase.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "to_case",
		Description: "Convert a string to a word case. Set exactly one of case (a name such as snake, camel, kebab, title) or case_code (an integer code). Optionally set from or from_code to split the input on that case's boundaries instead of the default set, e.g. from=snake keeps camel humps inside a word.",
	}, handleToCase)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "is_case",
		Description: "Check whether a string is already in a word case, i.e. converting it from that case to that case would not change it. Set exactly one of case or case_code. The empty string is in every case.",
	}, handleIsCase)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "mutate",
		Description: "Split a string and re-join it with raw overrides. options may hold delim (string), pattern (integer pattern code), boundaries (array of integer boundary codes; replaces the default set) and delimiters (array of extra literal delimiters). Fields of the wrong type are ignored. Without a pattern the words keep their case.",
	}, handleMutate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_from",
		Description: "List the built-in word boundaries whose trigger occurs in a string (delimiters, case shifts, digit transitions, acronyms), as codes and names in ascending code order. Useful to pick boundaries for mutate.",
	}, handleListFrom)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "codes",
		Description: "Return the integer code tables for cases, patterns and boundaries. Codes are stable; any other integer is rejected.",
	}, handleCodes)
}

// converterOptions returns the casing options implied by the server config.
func converterOptions() []casing.Option {
	var opts []casing.Option
	if cfg.NFC {
		opts = append(opts, casing.WithNFC())
	}
	if cfg.Seed != 0 {
		opts = append(opts, casing.WithSeed(cfg.Seed))
	}
	return opts
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
