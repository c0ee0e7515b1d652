package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/erraggy/wordcase"
	"github.com/erraggy/wordcase/cmd/wordcase/commands"
)

// commandNames lists every command accepted by main, for suggestions.
var commandNames = []string{
	"to", "is", "mutate", "split", "boundaries", "codes", "mcp", "version", "help",
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("wordcase v%s\n", wordcase.Version())
		if len(args) > 0 && (args[0] == "-a" || args[0] == "--all") {
			fmt.Println(wordcase.BuildInfo())
		}
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "to":
		err = commands.HandleTo(args)
	case "is":
		err = commands.HandleIs(args)
	case "mutate":
		err = commands.HandleMutate(args)
	case "split":
		err = commands.HandleSplit(args)
	case "boundaries":
		err = commands.HandleBoundaries(args)
	case "codes":
		err = commands.HandleCodes(args)
	case "mcp":
		err = commands.HandleMCP(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if s := suggestCommand(command); s != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", s)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		if !errors.Is(err, commands.ErrNotInCase) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// suggestCommand returns the known command closest to input, or "" when
// none is within an edit distance of 2.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`wordcase - Word case conversion tools

Usage:
  wordcase <command> [options]

Commands:
  to          Convert inputs to a word case
  is          Check whether inputs are already in a word case
  mutate      Re-join inputs with a custom delimiter, pattern or boundary set
  split       Print the words inputs split into
  boundaries  List the boundaries that occur in inputs
  codes       Print the integer codes of cases, patterns and boundaries
  mcp         Serve the tools over the Model Context Protocol on stdio
  version     Show version information (--all for build details)
  help        Show this help message

Examples:
  wordcase to snake fooBarBaz
  wordcase to --from snake kebab fooBar_baz
  wordcase is camel fooBar
  wordcase mutate --delim . --pattern uppercase fooBar
  wordcase split XMLHttpRequest
  cat names.txt | wordcase to pascal

Run 'wordcase <command> --help' for more information on a command.`)
}
