package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/pagetool/internal/cli"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("pagetool %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("pagetool - detect and correct skew in scanned document images")
			fmt.Println()
			fmt.Println("Usage: pagetool <command> [flags]")
			fmt.Println()
			fmt.Println("Commands:")
			for _, cmd := range cli.Commands() {
				fmt.Printf("  %-10s %s\n", cmd.Name, cmd.Summary)
			}
			fmt.Println()
			fmt.Println("Run 'pagetool <command> -h' for command flags.")
			return
		}
	}

	// Results go to stdout; keep diagnostics on stderr.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	os.Exit(cli.Run(os.Args[1:]))
}
