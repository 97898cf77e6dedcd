// Package cli — check.go implements the "pdfmark-launcher check" command.
//
// check runs the same probes as the launch sequence — interpreter
// resolution and entry point presence — without starting anything, and
// adds two advisory diagnostics the launch deliberately skips: the
// interpreter version against the documented Python 3.6+ requirement,
// and whether the configured port is currently free. Advisory means
// exactly that: a busy port or an old Python never fails the launch.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/pdfmark-launcher/internal/config"
	"github.com/mmr-tortoise/pdfmark-launcher/internal/interpreter"
	"github.com/mmr-tortoise/pdfmark-launcher/internal/launcher"
	"github.com/mmr-tortoise/pdfmark-launcher/internal/model"
	"github.com/mmr-tortoise/pdfmark-launcher/internal/port"
)

// NewCheckCommand creates the "check" cobra command.
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Probe the environment without launching the application",
		Long: `Check the launch preconditions and report diagnostics.

Reports which interpreter would be used (and its version against the
Python 3.6+ requirement), whether main.py is present, and whether the
configured port is currently free. Nothing is launched.

Exit code 0 means both launch preconditions hold; 1 means the launch
would fail.

Examples:
  pdfmark-launcher check
  pdfmark-launcher check --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context())
		},
	}

	return cmd
}

// runCheck resolves the launcher directory and configuration, builds the
// report, prints it, and fails if the launch preconditions do not hold.
func runCheck(ctx context.Context) error {
	dir, err := launcher.ResolveWorkingDirectory()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError,
			"failed to resolve launcher directory", err)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	report := buildCheckReport(ctx, dir, cfg)
	printCheckReport(os.Stdout, report)

	if !report.Ready() {
		return model.NewExitStatus(int(model.ExitGeneralError))
	}
	return nil
}

// buildCheckReport runs every probe against the given directory and
// configuration. It never launches anything and never fails: probe
// outcomes, good or bad, all land in the report.
func buildCheckReport(ctx context.Context, dir string, cfg config.Config) *model.CheckReport {
	report := &model.CheckReport{
		WorkingDir: dir,
		EntryPoint: model.EntryPointReport{
			Path:    cfg.EntryPoint,
			Present: launcher.VerifyEntryPoint(dir, cfg.EntryPoint),
		},
		Port: model.PortReport{
			Number:    cfg.Port,
			Available: port.NewScanner().IsAvailable(cfg.Port),
		},
	}

	resolver := interpreter.NewResolver()
	interp, err := resolver.Resolve(cfg.Interpreters)
	if err != nil {
		return report
	}

	report.Interpreter.Found = true
	report.Interpreter.Name = interp.Name
	report.Interpreter.Path = interp.Path

	// The version probe is best-effort: an interpreter that refuses
	// --version still counts as found, just with an unknown version.
	if version, err := resolver.Version(ctx, interp); err == nil {
		report.Interpreter.Version = version
		report.Interpreter.MeetsMinimum = interpreter.MeetsMinimum(version)
	}

	return report
}

// printCheckReport outputs the report in text or JSON format. Every
// text row uses the same 19-character label column.
func printCheckReport(w io.Writer, report *model.CheckReport) {
	if IsJSONOutput() {
		data, _ := json.MarshalIndent(report, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	fmt.Fprintf(w, "Working directory: %s\n", report.WorkingDir)

	if report.Interpreter.Found {
		version := report.Interpreter.Version
		if version == "" {
			version = "unknown"
		}
		note := ""
		if report.Interpreter.Version != "" && !report.Interpreter.MeetsMinimum {
			note = "  (below required 3.6)"
		}
		fmt.Fprintf(w, "Interpreter:       %s (%s), version %s%s\n",
			report.Interpreter.Name, report.Interpreter.Path, version, note)
	} else {
		fmt.Fprintln(w, "Interpreter:       not found on PATH")
	}

	if report.EntryPoint.Present {
		fmt.Fprintf(w, "Entry point:       %s present\n", report.EntryPoint.Path)
	} else {
		fmt.Fprintf(w, "Entry point:       %s MISSING\n", report.EntryPoint.Path)
	}

	if report.Port.Available {
		fmt.Fprintf(w, "Port:              %d free\n", report.Port.Number)
	} else {
		fmt.Fprintf(w, "Port:              %d in use (the app may fail to bind)\n", report.Port.Number)
	}
}
