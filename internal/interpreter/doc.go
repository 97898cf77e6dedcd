// Package interpreter resolves a Python interpreter on the system PATH.
//
// Resolution is deterministic: candidates are tried in list order via
// exec.LookPath and the first match wins, so python3 is always preferred
// over python when both are installed. The package also knows how to
// probe a resolved interpreter for its version, which the check command
// uses to advise on the application's Python 3.6+ requirement. The
// launch path itself never probes the version — presence on PATH is the
// only launch precondition.
package interpreter
