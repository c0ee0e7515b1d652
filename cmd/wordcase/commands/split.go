package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/erraggy/wordcase/casing"
	"github.com/erraggy/wordcase/internal/options"
	"golang.org/x/text/unicode/norm"
)

// SplitFlags contains flags for the split command
type SplitFlags struct {
	From       string
	Boundaries string
	Format     string
	NFC        bool
}

// SplitResult is the word list of one input.
type SplitResult struct {
	Input string   `json:"input" yaml:"input"`
	Words []string `json:"words" yaml:"words"`
}

// SetupSplitFlags creates and configures a FlagSet for the split command.
// Returns the FlagSet and a SplitFlags struct with bound flag variables.
func SetupSplitFlags() (*flag.FlagSet, *SplitFlags) {
	fs := flag.NewFlagSet("split", flag.ContinueOnError)
	flags := &SplitFlags{}

	fs.StringVar(&flags.From, "from", "", "split on this case's boundaries")
	fs.StringVar(&flags.From, "f", "", "split on this case's boundaries")
	fs.StringVar(&flags.Boundaries, "boundaries", "", "comma-separated boundary names or codes to split on")
	fs.StringVar(&flags.Boundaries, "b", "", "comma-separated boundary names or codes to split on")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.NFC, "nfc", false, "normalize inputs to Unicode NFC before splitting")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: wordcase split [flags] [input...]\n\n")
		Writef(fs.Output(), "Print the words each input splits into, one space-separated line per input.\n")
		Writef(fs.Output(), "The default boundary set is used unless --from or --boundaries is given.\n")
		Writef(fs.Output(), "With no inputs, or '-', inputs are read from stdin one per line.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  wordcase split XMLHttpRequest\n")
		Writef(fs.Output(), "  wordcase split --from snake fooBar_baz\n")
		Writef(fs.Output(), "  wordcase split -b hyphen,lower-upper --format json foo-barBaz\n")
	}

	return fs, flags
}

// HandleSplit executes the split command
func HandleSplit(args []string) error {
	fs, flags := SetupSplitFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := options.ValidateExclusive([]string{"--from", "--boundaries"}, flags.From != "", flags.Boundaries != ""); err != nil {
		return err
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	boundaries := casing.DefaultBoundaries()
	switch {
	case flags.From != "":
		c, err := ParseCaseArg(flags.From)
		if err != nil {
			return fmt.Errorf("--from: %w", err)
		}
		boundaries = c.Boundaries()
	case flags.Boundaries != "":
		bs, err := ParseBoundaryList(flags.Boundaries)
		if err != nil {
			return fmt.Errorf("--boundaries: %w", err)
		}
		boundaries = bs
	}

	inputs, err := ReadInputs(fs.Args())
	if err != nil {
		return err
	}

	results := make([]SplitResult, 0, len(inputs))
	for _, input := range inputs {
		s := input
		if flags.NFC {
			s = norm.NFC.String(s)
		}
		words := casing.Split(s, boundaries)
		if words == nil {
			words = []string{}
		}
		results = append(results, SplitResult{Input: input, Words: words})
	}

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		return OutputStructured(results, flags.Format)
	}
	for _, r := range results {
		fmt.Println(strings.Join(r.Words, " "))
	}
	return nil
}
