// Package model defines the domain types and value objects for the
// pdfmark-launcher CLI.
//
// This package contains pure data structures with no external dependencies:
// exit codes (ExitCode), the error types the CLI layer translates into OS
// exit codes (CLIError, ExitStatus), and the report structure produced by
// the check command (CheckReport).
package model
