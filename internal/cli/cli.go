package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/ironsheep/pagetool/internal/deskew"
)

// Exit codes used by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Command is one pagetool subcommand.
type Command struct {
	Name    string
	Summary string
	// Run executes the subcommand with its arguments (excluding the
	// subcommand name itself).
	Run func(args []string) error
}

// usageError marks failures that should exit with ExitUsage.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, args ...interface{}) error {
	return usageError{err: fmt.Errorf(format, args...)}
}

// Commands returns all subcommands in display order.
func Commands() []Command {
	return []Command{
		{Name: "deskew", Summary: "detect the skew angle of an image and write a corrected copy", Run: runDeskew},
		{Name: "detect", Summary: "detect the skew angle of an image without correcting it", Run: runDetect},
		{Name: "profile", Summary: "build a projection profile and print or plot it", Run: runProfile},
		{Name: "info", Summary: "print image dimensions and format", Run: runInfo},
		{Name: "verify", Summary: "compare OCR readability of two images", Run: runVerify},
	}
}

// Run dispatches args[0] to the matching subcommand and returns a process
// exit code.
func Run(args []string) int {
	if len(args) == 0 {
		printUsage(os.Stderr)
		return ExitUsage
	}
	for _, cmd := range Commands() {
		if cmd.Name != args[0] {
			continue
		}
		if err := cmd.Run(args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "pagetool %s: %v\n", cmd.Name, err)
			var ue usageError
			if errors.As(err, &ue) || errors.Is(err, deskew.ErrInvalidRange) || errors.Is(err, flag.ErrHelp) {
				return ExitUsage
			}
			return ExitError
		}
		return ExitOK
	}
	fmt.Fprintf(os.Stderr, "pagetool: unknown command %q\n\n", args[0])
	printUsage(os.Stderr)
	return ExitUsage
}

func printUsage(w *os.File) {
	fmt.Fprintln(w, "Usage: pagetool <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range Commands() {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'pagetool <command> -h' for command flags.")
}
