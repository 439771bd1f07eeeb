// Package dnf implements the package manager ports on top of the rpm and
// dnf command line tools.
package dnf

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"go.trai.ch/zerr"
)

// Runner executes one external command and returns its stdout. It exists
// so the query and install adapters can be tested without rpm or dnf
// present.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner is the production Runner backed by os/exec.
type ExecRunner struct{}

// Run executes the command, honoring the context. On failure the stderr
// tail is attached to the error.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // fixed command names, controlled args
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		wrapped := zerr.Wrap(err, "command failed")
		wrapped = zerr.With(wrapped, "command", name+" "+strings.Join(args, " "))
		wrapped = zerr.With(wrapped, "exit_code", exitCode)
		wrapped = zerr.With(wrapped, "stderr", stderrTail(stderr.String()))
		return stdout.Bytes(), wrapped
	}
	return stdout.Bytes(), nil
}

// stderrTail keeps error attributes readable when a tool dumps pages of
// output before failing.
func stderrTail(s string) string {
	const maxLines = 5
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return strings.Join(lines, "\n")
}
