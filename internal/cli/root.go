// Package cli implements the cobra-based commands for pdfmark-launcher.
//
// The root command itself performs the launch: the binary is meant to be
// double-clicked or invoked with zero arguments, so there is no `run`
// subcommand to remember. The only subcommand is `check`, which probes
// the environment without launching anything.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/pdfmark-launcher/internal/model"
)

// Global flag variables bound to cobra persistent flags on the root
// command, which makes them available to every subcommand automatically.
var (
	// jsonOutput controls whether check output is formatted as JSON.
	jsonOutput bool

	// verbose enables detailed step logging to stderr.
	verbose bool
)

// Version, Commit, and Date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
//
// Running the root command with no arguments executes the launch
// sequence. Subcommands and flags are developer conveniences layered on
// top; they do not change the zero-argument contract.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pdfmark-launcher",
		Short: "Launcher for the PDF Content Bookmark Generator",
		Long: `pdfmark-launcher starts the PDF Content Bookmark Generator from the
directory containing the launcher binary.

It locates a Python interpreter on PATH (python3 first, then python),
verifies that main.py exists next to the launcher, prints the address to
open in a browser, and hands the terminal over to the application. The
launcher's exit code mirrors the application's.`,

		// The launch takes no positional arguments.
		Args: cobra.NoArgs,

		// SilenceUsage prevents cobra from printing usage on every error.
		// A precondition failure already printed its own diagnostic.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// Execute formats (or suppresses) them itself.
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runLaunch(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (check command)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewCheckCommand())

	return rootCmd
}

// Execute runs the root command and translates errors into OS exit codes.
//
// Two error shapes are recognized:
//   - model.ExitStatus exits with its code and prints nothing. It covers
//     precondition failures whose localized diagnostics were already
//     printed, and the mirrored exit code of the launched application,
//     which must pass through untouched.
//   - model.CLIError prints its message and exits with its code.
//
// Anything else prints and exits 1.
func Execute(rootCmd *cobra.Command) {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	os.Exit(exitCodeFor(err))
}

// exitCodeFor maps an error from the command tree to the process exit
// code. An ExitStatus passes its code through without printing — the
// launched application's exit code must arrive untouched, and
// precondition failures already printed their localized diagnostics.
// Everything else prints before exiting.
func exitCodeFor(err error) int {
	var status *model.ExitStatus
	if errors.As(err, &status) {
		return status.Code
	}

	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		printError(cliErr.Message, cliErr.Err)
		return int(cliErr.Code)
	}

	printError(err.Error(), nil)
	return int(model.ExitGeneralError)
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag. Errors always go to
// stderr; stdout is reserved for the banner and check reports.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		if underlying != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", message)
		}
	}
}

// VerboseLog prints a message to stderr only when verbose mode is
// enabled. The launch sequence logs each step through this.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// IsJSONOutput returns whether the --json flag is set.
func IsJSONOutput() bool {
	return jsonOutput
}
