package interpreter

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ErrNotFound is returned by Resolve when none of the candidate command
// names resolve on PATH.
var ErrNotFound = errors.New("no interpreter candidate found on PATH")

// Minimum version the application documents as required. Advisory: the
// launcher refuses nothing based on version, it only reports.
const (
	minMajor = 3
	minMinor = 6
)

// Interpreter identifies a resolved interpreter binary.
type Interpreter struct {
	// Name is the candidate command name that matched (e.g., "python3").
	Name string

	// Path is the absolute path LookPath resolved the name to.
	Path string
}

// Resolver locates interpreter binaries on the system PATH.
//
// The struct is stateless; it exists as a receiver so that future
// options (e.g., a custom search path) can be added without breaking
// the API.
type Resolver struct{}

// NewResolver creates a new Resolver instance.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve tries each candidate command name in order against the system
// PATH and returns the first one that resolves. Once a candidate
// matches, later candidates are not consulted, so the result is
// deterministic for a given PATH.
//
// Returns ErrNotFound when no candidate resolves.
func (r *Resolver) Resolve(candidates []string) (Interpreter, error) {
	for _, name := range candidates {
		path, err := exec.LookPath(name)
		if err != nil {
			continue
		}
		return Interpreter{Name: name, Path: path}, nil
	}
	return Interpreter{}, ErrNotFound
}

// Version runs `<interpreter> --version` and returns the reported
// version string (e.g., "3.11.2").
//
// CombinedOutput is used because Python 2 printed its version banner to
// stderr while Python 3 prints to stdout.
func (r *Resolver) Version(ctx context.Context, interp Interpreter) (string, error) {
	cmd := exec.CommandContext(ctx, interp.Path, "--version")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("version probe for %q failed: %w", interp.Name, err)
	}

	version, err := ParseVersion(string(output))
	if err != nil {
		return "", err
	}
	return version, nil
}

// ParseVersion extracts the dotted version number from an interpreter
// version banner such as "Python 3.11.2\n". It returns the bare version
// string with the leading word and surrounding whitespace removed.
func ParseVersion(banner string) (string, error) {
	fields := strings.Fields(banner)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "python") {
		return "", fmt.Errorf("unrecognized version banner %q", strings.TrimSpace(banner))
	}
	version := fields[1]
	if _, _, err := splitVersion(version); err != nil {
		return "", err
	}
	return version, nil
}

// MeetsMinimum reports whether a dotted version string satisfies the
// documented Python 3.6+ requirement. Unparsable versions report false.
func MeetsMinimum(version string) bool {
	major, minor, err := splitVersion(version)
	if err != nil {
		return false
	}
	if major != minMajor {
		return major > minMajor
	}
	return minor >= minMinor
}

// splitVersion parses the major and minor components of a dotted
// version string. Patch and any further components are ignored.
func splitVersion(version string) (major, minor int, err error) {
	parts := strings.Split(version, ".")
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("malformed version %q", version)
	}
	major, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed version %q", version)
	}
	minor, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed version %q", version)
	}
	return major, minor, nil
}
