// Package commands provides CLI command handlers for wordcase.
package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/erraggy/wordcase/caseerrors"
	"github.com/erraggy/wordcase/casing"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinInput is the special argument used to indicate reading inputs from stdin.
const StdinInput = "-"

// stdin is the reader inputs are read from; tests replace it.
var stdin io.Reader = os.Stdin

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(strings.TrimRight(string(bytes), "\n"))
	return nil
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil { //nolint:gosec // G705 - CLI tool, not a web server
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// ReadInputs returns the strings a command operates on. With no arguments,
// or a single "-", inputs are read from stdin one per line.
func ReadInputs(args []string) ([]string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == StdinInput) {
		return args, nil
	}
	var inputs []string
	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		inputs = append(inputs, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return inputs, nil
}

// ParseCaseArg resolves a case given by name ("snake", "UpperCamel") or by
// integer code ("7").
func ParseCaseArg(s string) (casing.Case, error) {
	if code, err := strconv.Atoi(s); err == nil {
		c, ok := casing.CaseFromCode(code)
		if !ok {
			return 0, &caseerrors.InvalidCodeError{Argument: "case", Kind: "case", Code: code, Max: casing.MaxCaseCode}
		}
		return c, nil
	}
	return casing.ParseCase(s)
}

// ParsePatternArg resolves a pattern given by name or integer code.
func ParsePatternArg(s string) (casing.Pattern, error) {
	if code, err := strconv.Atoi(s); err == nil {
		p, ok := casing.PatternFromCode(code)
		if !ok {
			return 0, &caseerrors.InvalidCodeError{Argument: "pattern", Kind: "pattern", Code: code, Max: casing.MaxPatternCode}
		}
		return p, nil
	}
	return casing.ParsePattern(s)
}

// ParseBoundaryList resolves a comma-separated list of boundary names or
// integer codes. An empty string is an empty list.
func ParseBoundaryList(s string) ([]casing.Boundary, error) {
	bs := []casing.Boundary{}
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if code, err := strconv.Atoi(item); err == nil {
			b, ok := casing.BoundaryFromCode(code)
			if !ok {
				return nil, &caseerrors.InvalidCodeError{Argument: "boundaries", Kind: "boundary", Code: code, Max: casing.MaxBoundaryCode}
			}
			bs = append(bs, b)
			continue
		}
		b, err := casing.ParseBoundary(item)
		if err != nil {
			return nil, err
		}
		bs = append(bs, b)
	}
	return bs, nil
}

// engineFlags are the converter settings shared by commands that convert.
type engineFlags struct {
	NFC     bool
	Seed    uint
	Verbose bool
}

// options returns the casing options for f. Verbose output goes to stderr
// as slog text at debug level.
func (f engineFlags) options() ([]casing.Option, error) {
	var opts []casing.Option
	if f.NFC {
		opts = append(opts, casing.WithNFC())
	}
	if f.Seed > 0 {
		if uint64(f.Seed) > math.MaxUint32 {
			return nil, &caseerrors.ConfigError{Option: "seed", Value: f.Seed, Message: "must fit in 32 bits"}
		}
		opts = append(opts, casing.WithSeed(uint32(f.Seed)))
	}
	if f.Verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, casing.WithLogger(casing.NewSlogAdapter(slog.New(handler))))
	}
	return opts, nil
}
