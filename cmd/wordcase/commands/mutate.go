package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/wordcase/casing"
)

// MutateFlags contains flags for the mutate command
type MutateFlags struct {
	Delim      string
	Pattern    string
	Boundaries string
	Delimiters []string
	Format     string
	engineFlags
}

// SetupMutateFlags creates and configures a FlagSet for the mutate command.
// Returns the FlagSet and a MutateFlags struct with bound flag variables.
func SetupMutateFlags() (*flag.FlagSet, *MutateFlags) {
	fs := flag.NewFlagSet("mutate", flag.ContinueOnError)
	flags := &MutateFlags{}

	addDelimiter := func(s string) error {
		if s == "" {
			return fmt.Errorf("delimiter must not be empty")
		}
		flags.Delimiters = append(flags.Delimiters, s)
		return nil
	}

	fs.StringVar(&flags.Delim, "delim", "", "string that joins the output words")
	fs.StringVar(&flags.Delim, "d", "", "string that joins the output words")
	fs.StringVar(&flags.Pattern, "pattern", "", "pattern name or code applied to the words (default: keep case)")
	fs.StringVar(&flags.Pattern, "p", "", "pattern name or code applied to the words (default: keep case)")
	fs.StringVar(&flags.Boundaries, "boundaries", "", "comma-separated boundary names or codes; replaces the default set")
	fs.StringVar(&flags.Boundaries, "b", "", "comma-separated boundary names or codes; replaces the default set")
	fs.Func("delimiter", "extra literal delimiter to split on (repeatable)", addDelimiter)
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.NFC, "nfc", false, "normalize inputs to Unicode NFC before splitting")
	fs.UintVar(&flags.Seed, "seed", 0, "seed for the random and pseudo-random patterns (0: time-seeded)")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log every word cut to stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: wordcase mutate [flags] [input...]\n\n")
		Writef(fs.Output(), "Split each input and re-join it with raw overrides instead of a named case.\n")
		Writef(fs.Output(), "With no inputs, or '-', inputs are read from stdin one per line.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  wordcase mutate --delim . --pattern uppercase fooBar\n")
		Writef(fs.Output(), "  wordcase mutate -b underscore -d ' ' fooBar_baz\n")
		Writef(fs.Output(), "  wordcase mutate --delimiter :: -d / -p capital pkg::subPkg\n")
		Writef(fs.Output(), "  wordcase mutate -p pseudo-random --seed 7 'hello world'\n")
	}

	return fs, flags
}

// HandleMutate executes the mutate command
func HandleMutate(args []string) error {
	fs, flags := SetupMutateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	opts, err := flags.options()
	if err != nil {
		return err
	}
	conv := casing.NewConverter(opts...)
	if set["boundaries"] || set["b"] {
		bs, err := ParseBoundaryList(flags.Boundaries)
		if err != nil {
			return fmt.Errorf("--boundaries: %w", err)
		}
		conv.SetBoundaries(bs)
	}
	for _, d := range flags.Delimiters {
		conv.AddBoundary(casing.Delimiter(d))
	}
	if flags.Pattern != "" {
		p, err := ParsePatternArg(flags.Pattern)
		if err != nil {
			return fmt.Errorf("--pattern: %w", err)
		}
		conv.SetPattern(p)
	}
	if set["delim"] || set["d"] {
		conv.SetDelim(flags.Delim)
	}

	inputs, err := ReadInputs(fs.Args())
	if err != nil {
		return err
	}

	results := make([]ConversionResult, 0, len(inputs))
	for _, input := range inputs {
		results = append(results, ConversionResult{Input: input, Output: conv.Convert(input)})
	}

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		return OutputStructured(results, flags.Format)
	}
	for _, r := range results {
		fmt.Println(r.Output)
	}
	return nil
}
