package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/wordcase/hostapi"
)

// CodesFlags contains flags for the codes command
type CodesFlags struct {
	Format string
}

// SetupCodesFlags creates and configures a FlagSet for the codes command.
// Returns the FlagSet and a CodesFlags struct with bound flag variables.
func SetupCodesFlags() (*flag.FlagSet, *CodesFlags) {
	fs := flag.NewFlagSet("codes", flag.ContinueOnError)
	flags := &CodesFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: wordcase codes [flags]\n\n")
		Writef(fs.Output(), "Print the integer codes of every case, pattern and boundary.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}

	return fs, flags
}

// HandleCodes executes the codes command
func HandleCodes(args []string) error {
	fs, flags := SetupCodesFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() > 0 {
		fs.Usage()
		return fmt.Errorf("codes command takes no arguments")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	table := hostapi.Codes()
	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		return OutputStructured(table, flags.Format)
	}

	printCodeSection("Cases", table.Cases)
	fmt.Println()
	printCodeSection("Patterns", table.Patterns)
	fmt.Println()
	printCodeSection("Boundaries", table.Boundaries)
	return nil
}

func printCodeSection(title string, entries []hostapi.CodeEntry) {
	fmt.Printf("%s:\n", title)
	for _, e := range entries {
		fmt.Printf("  %2d  %s\n", e.Code, e.Name)
	}
}
