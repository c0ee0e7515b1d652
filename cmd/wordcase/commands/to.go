package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/wordcase/casing"
)

// ToFlags contains flags for the to command
type ToFlags struct {
	From   string
	Format string
	engineFlags
}

// ConversionResult is one converted input in structured output.
type ConversionResult struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`
}

// SetupToFlags creates and configures a FlagSet for the to command.
// Returns the FlagSet and a ToFlags struct with bound flag variables.
func SetupToFlags() (*flag.FlagSet, *ToFlags) {
	fs := flag.NewFlagSet("to", flag.ContinueOnError)
	flags := &ToFlags{}

	fs.StringVar(&flags.From, "from", "", "split inputs on this case's boundaries instead of the default set")
	fs.StringVar(&flags.From, "f", "", "split inputs on this case's boundaries instead of the default set")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.NFC, "nfc", false, "normalize inputs to Unicode NFC before splitting")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log every word cut to stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: wordcase to [flags] <case> [input...]\n\n")
		Writef(fs.Output(), "Convert each input to a word case. The case is a name (snake, camel,\n")
		Writef(fs.Output(), "kebab, title, ...) or an integer code (see 'wordcase codes').\n")
		Writef(fs.Output(), "With no inputs, or '-', inputs are read from stdin one per line.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  wordcase to snake fooBarBaz\n")
		Writef(fs.Output(), "  wordcase to pascal foo_bar_baz other_name\n")
		Writef(fs.Output(), "  wordcase to --from snake kebab fooBar_baz\n")
		Writef(fs.Output(), "  cat names.txt | wordcase to 10\n")
	}

	return fs, flags
}

// HandleTo executes the to command
func HandleTo(args []string) error {
	fs, flags := SetupToFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("to command requires a target case")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	target, err := ParseCaseArg(fs.Arg(0))
	if err != nil {
		return err
	}
	opts, err := flags.options()
	if err != nil {
		return err
	}

	var from *casing.Case
	if flags.From != "" {
		c, err := ParseCaseArg(flags.From)
		if err != nil {
			return fmt.Errorf("--from: %w", err)
		}
		from = &c
	}

	inputs, err := ReadInputs(fs.Args()[1:])
	if err != nil {
		return err
	}

	results := make([]ConversionResult, 0, len(inputs))
	for _, input := range inputs {
		conv := casing.NewConverter(opts...)
		if from != nil {
			conv.FromCase(*from)
		}
		results = append(results, ConversionResult{
			Input:  input,
			Output: conv.ToCase(target).Convert(input),
		})
	}

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		return OutputStructured(results, flags.Format)
	}
	for _, r := range results {
		fmt.Println(r.Output)
	}
	return nil
}
