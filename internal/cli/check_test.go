package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/pdfmark-launcher/internal/config"
	"github.com/mmr-tortoise/pdfmark-launcher/internal/model"
)

// writeStub creates an executable interpreter stand-in that answers
// --version with a fixed banner. /bin/sh based, so these tests skip on
// Windows like the interpreter package's own.
func writeStub(t *testing.T, dir, name, banner string) {
	t.Helper()
	script := "#!/bin/sh\necho \"" + banner + "\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(script), 0o755))
}

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub interpreters require unix executable semantics")
	}
}

// TestBuildCheckReport_AllGood verifies the full report when every
// probe succeeds: interpreter resolved with version, entry point
// present, readiness true.
func TestBuildCheckReport_AllGood(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir()
	writeStub(t, dir, "python3", "Python 3.11.2")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.py"), []byte("print('hi')\n"), 0o644))
	t.Setenv("PATH", dir)

	report := buildCheckReport(context.Background(), dir, config.Default())

	assert.Equal(t, dir, report.WorkingDir)
	require.True(t, report.Interpreter.Found)
	assert.Equal(t, "python3", report.Interpreter.Name)
	assert.Equal(t, filepath.Join(dir, "python3"), report.Interpreter.Path)
	assert.Equal(t, "3.11.2", report.Interpreter.Version)
	assert.True(t, report.Interpreter.MeetsMinimum)
	assert.True(t, report.EntryPoint.Present)
	assert.Equal(t, "main.py", report.EntryPoint.Path)
	assert.Equal(t, 8083, report.Port.Number)
	assert.True(t, report.Ready())
}

// TestBuildCheckReport_NoInterpreter verifies that with nothing on PATH
// the report carries Found=false and readiness fails, while the entry
// point probe still runs independently.
func TestBuildCheckReport_NoInterpreter(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.py"), []byte(""), 0o644))
	t.Setenv("PATH", dir)

	report := buildCheckReport(context.Background(), dir, config.Default())

	assert.False(t, report.Interpreter.Found)
	assert.True(t, report.EntryPoint.Present)
	assert.False(t, report.Ready())
}

// TestBuildCheckReport_MissingEntryPoint verifies the entry point probe
// in isolation: interpreter present, main.py absent.
func TestBuildCheckReport_MissingEntryPoint(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir()
	writeStub(t, dir, "python3", "Python 3.11.2")
	t.Setenv("PATH", dir)

	report := buildCheckReport(context.Background(), dir, config.Default())

	assert.True(t, report.Interpreter.Found)
	assert.False(t, report.EntryPoint.Present)
	assert.False(t, report.Ready())
}

// TestBuildCheckReport_OldPython verifies the advisory version flag:
// a 2.7 interpreter is found (readiness holds) but flagged below 3.6.
func TestBuildCheckReport_OldPython(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir()
	writeStub(t, dir, "python", "Python 2.7.18")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.py"), []byte(""), 0o644))
	t.Setenv("PATH", dir)

	report := buildCheckReport(context.Background(), dir, config.Default())

	require.True(t, report.Interpreter.Found)
	assert.Equal(t, "python", report.Interpreter.Name)
	assert.Equal(t, "2.7.18", report.Interpreter.Version)
	assert.False(t, report.Interpreter.MeetsMinimum)
	assert.True(t, report.Ready(), "version is advisory, not a precondition")
}

// TestPrintCheckReport_LabelAlignment verifies every text row shares
// the same label column, regardless of the port number's width.
func TestPrintCheckReport_LabelAlignment(t *testing.T) {
	report := &model.CheckReport{
		WorkingDir:  "/opt/pdfmark",
		Interpreter: model.InterpreterReport{Found: true, Name: "python3", Path: "/usr/bin/python3", Version: "3.11.2", MeetsMinimum: true},
		EntryPoint:  model.EntryPointReport{Path: "main.py", Present: true},
		Port:        model.PortReport{Number: 443, Available: false},
	}

	var out bytes.Buffer
	printCheckReport(&out, report)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Working directory: /opt/pdfmark", lines[0])
	assert.Equal(t, "Port:              443 in use (the app may fail to bind)", lines[3])

	// The value column starts at the same offset on every row.
	for _, line := range lines {
		require.GreaterOrEqual(t, len(line), 20, "line %q", line)
		assert.Equal(t, byte(' '), line[18], "line %q", line)
		assert.NotEqual(t, byte(' '), line[19], "line %q", line)
	}
}

// TestNewRootCommand_Wiring verifies command registration and the
// persistent flags every subcommand inherits.
func TestNewRootCommand_Wiring(t *testing.T) {
	rootCmd := NewRootCommand()

	assert.Equal(t, "pdfmark-launcher", rootCmd.Use)
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("json"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))

	names := make([]string, 0)
	for _, sub := range rootCmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "check")
}
