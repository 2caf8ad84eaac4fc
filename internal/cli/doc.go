// Package cli implements the pagetool subcommands.
//
// Every subcommand is a Command with its own flag.FlagSet; Run dispatches by
// name and maps failures to exit codes (2 for usage and configuration
// problems, 1 for operation failures). Subcommands print results to stdout
// and diagnostics to stderr, so output stays scriptable.
package cli
