package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/wordcase/casing"
)

// ErrNotInCase is returned by HandleIs when at least one input is not in
// the requested case. The CLI maps it to exit status 1 without an error
// message.
var ErrNotInCase = errors.New("input is not in the requested case")

// IsFlags contains flags for the is command
type IsFlags struct {
	Quiet  bool
	Format string
}

// CheckResult is one classified input in structured output.
type CheckResult struct {
	Input  string `json:"input" yaml:"input"`
	IsCase bool   `json:"is_case" yaml:"is_case"`
}

// SetupIsFlags creates and configures a FlagSet for the is command.
// Returns the FlagSet and an IsFlags struct with bound flag variables.
func SetupIsFlags() (*flag.FlagSet, *IsFlags) {
	fs := flag.NewFlagSet("is", flag.ContinueOnError)
	flags := &IsFlags{}

	fs.BoolVar(&flags.Quiet, "quiet", false, "print nothing; report only through the exit status")
	fs.BoolVar(&flags.Quiet, "q", false, "print nothing; report only through the exit status")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: wordcase is [flags] <case> [input...]\n\n")
		Writef(fs.Output(), "Check whether each input is already in a word case, that is whether\n")
		Writef(fs.Output(), "converting it from that case to that case leaves it unchanged.\n")
		Writef(fs.Output(), "With no inputs, or '-', inputs are read from stdin one per line.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  wordcase is snake foo_bar\n")
		Writef(fs.Output(), "  wordcase is -q camel fooBar && echo ok\n")
		Writef(fs.Output(), "\nExit Status:\n")
		Writef(fs.Output(), "  0    Every input is in the case\n")
		Writef(fs.Output(), "  1    At least one input is not, or an error occurred\n")
	}

	return fs, flags
}

// HandleIs executes the is command
func HandleIs(args []string) error {
	fs, flags := SetupIsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("is command requires a case")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	target, err := ParseCaseArg(fs.Arg(0))
	if err != nil {
		return err
	}
	inputs, err := ReadInputs(fs.Args()[1:])
	if err != nil {
		return err
	}

	results := make([]CheckResult, 0, len(inputs))
	all := true
	for _, input := range inputs {
		ok := casing.IsCase(input, target)
		all = all && ok
		results = append(results, CheckResult{Input: input, IsCase: ok})
	}

	switch {
	case flags.Quiet:
	case flags.Format == FormatJSON || flags.Format == FormatYAML:
		if err := OutputStructured(results, flags.Format); err != nil {
			return err
		}
	default:
		for _, r := range results {
			fmt.Printf("%s\t%t\n", r.Input, r.IsCase)
		}
	}

	if !all {
		return ErrNotInCase
	}
	return nil
}
