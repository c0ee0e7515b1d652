package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/wordcase/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: wordcase mcp\n\n")
		Writef(fs.Output(), "Serve the word case tools over the Model Context Protocol on stdio.\n\n")
		Writef(fs.Output(), "Environment:\n")
		Writef(fs.Output(), "  WORDCASE_MAX_INPUT_SIZE    maximum input length in bytes (default 1048576)\n")
		Writef(fs.Output(), "  WORDCASE_NFC               normalize inputs to Unicode NFC (default false)\n")
		Writef(fs.Output(), "  WORDCASE_SEED              seed for the random patterns (default: time-seeded)\n")
	}

	return fs
}

// HandleMCP executes the mcp command. It blocks until the client
// disconnects or the process is interrupted.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() > 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcpserver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
