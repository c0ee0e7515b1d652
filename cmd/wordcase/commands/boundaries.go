package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/erraggy/wordcase/casing"
)

// BoundariesFlags contains flags for the boundaries command
type BoundariesFlags struct {
	Format string
}

// BoundaryReport lists the boundaries found in one input.
type BoundaryReport struct {
	Input      string   `json:"input" yaml:"input"`
	Codes      []int    `json:"codes" yaml:"codes"`
	Boundaries []string `json:"boundaries" yaml:"boundaries"`
}

// SetupBoundariesFlags creates and configures a FlagSet for the boundaries command.
// Returns the FlagSet and a BoundariesFlags struct with bound flag variables.
func SetupBoundariesFlags() (*flag.FlagSet, *BoundariesFlags) {
	fs := flag.NewFlagSet("boundaries", flag.ContinueOnError)
	flags := &BoundariesFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: wordcase boundaries [flags] [input...]\n\n")
		Writef(fs.Output(), "List the built-in boundaries that occur in each input, in code order.\n")
		Writef(fs.Output(), "With no inputs, or '-', inputs are read from stdin one per line.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  wordcase boundaries HTTPServer\n")
		Writef(fs.Output(), "  wordcase boundaries --format json foo_bar-baz\n")
	}

	return fs, flags
}

// HandleBoundaries executes the boundaries command
func HandleBoundaries(args []string) error {
	fs, flags := SetupBoundariesFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	inputs, err := ReadInputs(fs.Args())
	if err != nil {
		return err
	}

	reports := make([]BoundaryReport, 0, len(inputs))
	for _, input := range inputs {
		report := BoundaryReport{Input: input, Codes: []int{}, Boundaries: []string{}}
		for _, b := range casing.ListFrom(input) {
			report.Codes = append(report.Codes, b.Code())
			report.Boundaries = append(report.Boundaries, b.String())
		}
		reports = append(reports, report)
	}

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		return OutputStructured(reports, flags.Format)
	}
	for _, r := range reports {
		fmt.Printf("%s\t%s\n", r.Input, strings.Join(r.Boundaries, ","))
	}
	return nil
}
