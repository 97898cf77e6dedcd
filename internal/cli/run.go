// Package cli — run.go implements the launch sequence behind the root
// command.
//
// The sequence is linear with no retries: resolve the working directory,
// load configuration, resolve an interpreter, verify the entry point,
// print the banner, hand off. Either precondition failure prints its
// localized diagnostic pair, blocks on the acknowledgment prompt, and
// exits 1. A successful handoff mirrors the application's exit code.
package cli

import (
	"context"
	"errors"

	"github.com/mmr-tortoise/pdfmark-launcher/internal/config"
	"github.com/mmr-tortoise/pdfmark-launcher/internal/interpreter"
	"github.com/mmr-tortoise/pdfmark-launcher/internal/launcher"
	"github.com/mmr-tortoise/pdfmark-launcher/internal/model"
)

// Production wiring for the launch sequence: a Launcher attached to the
// process's terminal, anchored at the real binary location. Package
// variables so tests can substitute a captured writer and a fixed
// directory.
var (
	newLauncher             = launcher.New
	resolveWorkingDirectory = launcher.ResolveWorkingDirectory
)

// runLaunch is the main logic function for the root command.
func runLaunch(ctx context.Context) error {
	l := newLauncher()

	// Step 1: Anchor all relative lookups to the launcher's own
	// directory, regardless of where the user invoked it from.
	dir, err := resolveWorkingDirectory()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError,
			"failed to resolve launcher directory", err)
	}
	VerboseLog("Working directory: %s", dir)

	// Step 2: Load configuration (defaults unless a launcher.yaml/jsonc
	// or PDFMARK_* variables override them).
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}
	VerboseLog("Interpreter candidates: %v, entry point: %s, port: %d",
		cfg.Interpreters, cfg.EntryPoint, cfg.Port)

	// Step 3: Resolve an interpreter. First candidate on PATH wins;
	// the entry point is not checked until this succeeds.
	interp, err := interpreter.NewResolver().Resolve(cfg.Interpreters)
	if err != nil {
		if errors.Is(err, interpreter.ErrNotFound) {
			l.ReportInterpreterMissing()
			l.PromptExit()
			return model.NewExitStatus(int(model.ExitGeneralError))
		}
		return model.WrapCLIError(model.ExitGeneralError,
			"interpreter resolution failed", err)
	}
	VerboseLog("Using interpreter %s (%s)", interp.Name, interp.Path)

	// Step 4: Verify the entry point exists next to the launcher.
	if !launcher.VerifyEntryPoint(dir, cfg.EntryPoint) {
		l.ReportEntryPointMissing(cfg.EntryPoint)
		l.PromptExit()
		return model.NewExitStatus(int(model.ExitGeneralError))
	}
	VerboseLog("Entry point %s present", cfg.EntryPoint)

	// Step 5: Banner, then handoff. The URL is advisory — no binding
	// or availability check happens here.
	l.PrintBanner(cfg.URL())

	code, err := l.Launch(ctx, interp.Path, cfg.EntryPoint)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError,
			"failed to start the application", err)
	}
	if code != 0 {
		// Mirror the application's exit code without comment.
		return model.NewExitStatus(code)
	}
	return nil
}
