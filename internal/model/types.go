package model

import (
	"fmt"
)

// ExitCode defines the CLI exit codes.
// Both precondition failures (missing interpreter, missing entry point)
// deliberately share ExitGeneralError: the launcher's contract is a simple
// zero/non-zero signal, with the diagnostic text carrying the detail.
type ExitCode int

const (
	// ExitSuccess indicates the launched application exited cleanly.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates a precondition failure (no interpreter
	// on PATH, or the entry point file is missing) or any other launcher
	// error.
	ExitGeneralError ExitCode = 1
)

// CLIError is a custom error type that carries an exit code.
// The cli layer translates it into an OS exit code and prints its
// message in the selected output format (text or JSON).
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// ExitStatus is an error that carries a bare exit code and no message.
//
// It is used on two paths where the launcher must terminate with a
// specific code but has nothing left to say:
//   - after a precondition failure, once the localized diagnostic has
//     already been printed and acknowledged, and
//   - to mirror the exit code of the launched application, which must
//     not be inspected, translated, or wrapped.
//
// The cli layer recognizes it and exits silently.
type ExitStatus struct {
	// Code is the exit code to return to the OS.
	Code int
}

// Error satisfies the error interface. The text is only ever seen if an
// ExitStatus escapes the cli layer, which would be a programming error.
func (e *ExitStatus) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewExitStatus creates an ExitStatus carrying the given code.
func NewExitStatus(code int) *ExitStatus {
	return &ExitStatus{Code: code}
}

// InterpreterReport describes the result of the interpreter probe
// performed by the check command.
type InterpreterReport struct {
	// Found indicates whether any candidate resolved on PATH.
	Found bool `json:"found"`

	// Name is the candidate command name that resolved (e.g., "python3").
	Name string `json:"name,omitempty"`

	// Path is the absolute path the command name resolved to.
	Path string `json:"path,omitempty"`

	// Version is the reported interpreter version (e.g., "3.11.2").
	// Empty if the version probe failed.
	Version string `json:"version,omitempty"`

	// MeetsMinimum indicates whether the version satisfies the
	// application's documented requirement (Python 3.6+). Advisory only.
	MeetsMinimum bool `json:"meetsMinimum"`
}

// EntryPointReport describes the entry point presence check.
type EntryPointReport struct {
	// Path is the entry point path relative to the working directory.
	Path string `json:"path"`

	// Present indicates whether the file exists and is a regular file.
	Present bool `json:"present"`
}

// PortReport describes the advisory port availability probe.
// The launch path never performs this check; the printed URL is a
// convention, not a guarantee (the application may bind or fail on its
// own terms). Only the check command populates this.
type PortReport struct {
	// Number is the port the application is expected to serve on.
	Number int `json:"number"`

	// Available indicates whether the port was free at probe time.
	Available bool `json:"available"`
}

// CheckReport aggregates all diagnostics produced by the check command.
type CheckReport struct {
	// WorkingDir is the resolved launcher directory all relative
	// lookups are based on.
	WorkingDir string `json:"workingDir"`

	// Interpreter is the interpreter probe result.
	Interpreter InterpreterReport `json:"interpreter"`

	// EntryPoint is the entry point presence result.
	EntryPoint EntryPointReport `json:"entryPoint"`

	// Port is the advisory port availability result.
	Port PortReport `json:"port"`
}

// Ready reports whether both launch preconditions hold. Port
// availability does not participate: it is advisory only.
func (r *CheckReport) Ready() bool {
	return r.Interpreter.Found && r.EntryPoint.Present
}
