// Package main is the entry point for the pdfmark-launcher binary.
//
// The binary starts the PDF Content Bookmark Generator: it resolves a
// Python interpreter, verifies main.py next to the launcher, prints the
// browser address, and hands the terminal over to the application. All
// functionality lives in the internal/cli package.
package main

import (
	"github.com/mmr-tortoise/pdfmark-launcher/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
// During development they default to "dev", "none", and "unknown".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
