package launcher

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
)

// User-facing strings. These mirror the application's locale (the
// server it launches prints Simplified Chinese) and are the complete
// error channel — there is no logging subsystem behind them.
const (
	// Interpreter-missing diagnostic pair.
	MsgNoInterpreter = "错误: 未找到Python解释器"
	MsgInstallHint   = "请安装Python 3.6或更高版本"

	// Entry-point-missing diagnostic pair. The %s is the entry file name.
	MsgNoEntryPointFmt = "错误: 未找到%s"
	MsgRunFromDirHint  = "请在程序所在目录下运行本程序"

	// Blocking acknowledgment prompt printed after either diagnostic.
	MsgPromptExit = "按回车键退出..."

	// Startup banner, printed in this order immediately before handoff.
	MsgStarting = "正在启动PDF目录书签生成器..."
	MsgURLFmt   = "请在浏览器中访问: %s"
	MsgStopHint = "按 Ctrl+C 停止应用"
)

// Launcher orchestrates the launch sequence. Out and In default to the
// process's stdout and stdin; they are fields so tests can capture the
// banner and feed the acknowledgment prompt.
type Launcher struct {
	// Out receives all banner and diagnostic text.
	Out io.Writer

	// In is read by PromptExit for the single acknowledgment line.
	In io.Reader
}

// New creates a Launcher attached to the process's stdio.
func New() *Launcher {
	return &Launcher{Out: os.Stdout, In: os.Stdin}
}

// ResolveWorkingDirectory determines the directory containing the
// launcher binary, changes the process's current directory to it, and
// returns the absolute path. Every subsequent relative lookup (entry
// point, config file) is therefore anchored to the launcher's own
// location, independent of where the user invoked it from.
//
// Symlinks are resolved first so a launcher invoked through e.g.
// /usr/local/bin/pdfmark-launcher still anchors to its real directory.
func ResolveWorkingDirectory() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate launcher binary: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolve launcher path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.Chdir(dir); err != nil {
		return "", fmt.Errorf("change to launcher directory %q: %w", dir, err)
	}
	return dir, nil
}

// VerifyEntryPoint reports whether the entry point exists as a regular
// file relative to dir. The check is performed once; nothing is cached.
func VerifyEntryPoint(dir, entry string) bool {
	info, err := os.Stat(filepath.Join(dir, entry))
	return err == nil && info.Mode().IsRegular()
}

// PrintBanner emits the startup lines in their contractual order:
// startup message, URL, stop instruction. The URL is advisory — the
// launcher does not bind or verify the port.
func (l *Launcher) PrintBanner(url string) {
	fmt.Fprintln(l.Out, MsgStarting)
	fmt.Fprintf(l.Out, MsgURLFmt+"\n", url)
	fmt.Fprintln(l.Out, MsgStopHint)
}

// ReportInterpreterMissing prints the interpreter-missing diagnostic pair.
func (l *Launcher) ReportInterpreterMissing() {
	fmt.Fprintln(l.Out, MsgNoInterpreter)
	fmt.Fprintln(l.Out, MsgInstallHint)
}

// ReportEntryPointMissing prints the entry-point-missing diagnostic pair.
func (l *Launcher) ReportEntryPointMissing(entry string) {
	fmt.Fprintf(l.Out, MsgNoEntryPointFmt+"\n", entry)
	fmt.Fprintln(l.Out, MsgRunFromDirHint)
}

// PromptExit prints the acknowledgment prompt and blocks until a line
// (or EOF) arrives on In. The indefinite block is deliberate: it keeps
// a terminal window opened by double-click readable until the user has
// seen the diagnostic.
func (l *Launcher) PromptExit() {
	fmt.Fprintln(l.Out, MsgPromptExit)
	_, _ = bufio.NewReader(l.In).ReadString('\n')
}

// Launch starts the entry point under the given interpreter with the
// launcher's stdin, stdout, and stderr handed straight to the child, and
// blocks until the child terminates.
//
// The returned code is the child's exit code and must be mirrored as
// the launcher's own exit code. A non-zero child exit is NOT an error
// from the launcher's perspective — the child's failure is its own
// business and is never inspected or wrapped. A child killed by a
// signal reports 128+signal, the way a shell would (SIGTERM → 143,
// SIGINT → 130). The error return is reserved for failures to start
// the child at all.
func (l *Launcher) Launch(ctx context.Context, interpreterPath, entry string) (int, error) {
	cmd := exec.CommandContext(ctx, interpreterPath, entry)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		// ExitCode is -1 for a signal-killed child; recover the signal
		// number so the mirrored code stays in shell convention.
		if code < 0 {
			if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
				code = 128 + int(ws.Signal())
			}
		}
		return code, nil
	}
	return -1, fmt.Errorf("start %s: %w", entry, err)
}
