// Package runner executes external toolchain commands.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/solanainit/cli/internal/output"
)

// CommandRunner runs an external program to completion.
// Implementations return *ExitError when the program exits non-zero
// and a plain error when it cannot be spawned.
type CommandRunner interface {
	Run(ctx context.Context, name string, args []string, dir string) error
}

// ExitError reports a command that ran but exited with a non-zero status.
type ExitError struct {
	// Code is the process exit status.
	Code int

	// Output holds the tail of captured output, if any was captured.
	// It may span several lines; Error reports only its last one.
	Output string
}

// Error implements the error interface. The message is always a single line.
func (e *ExitError) Error() string {
	if last := lastLine(e.Output); last != "" {
		return fmt.Sprintf("exit status %d: %s", e.Code, last)
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// maxCapturedTail bounds the captured output attached to an ExitError.
const maxCapturedTail = 2048

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	// Stdout and Stderr receive the child's output when not Quiet.
	// Nil defaults to the process streams.
	Stdout io.Writer
	Stderr io.Writer

	// Quiet captures child output instead of streaming it.
	Quiet bool
}

// NewExecRunner returns a runner that streams child output to the process streams.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run starts name with args in dir and waits for it to finish.
func (r *ExecRunner) Run(ctx context.Context, name string, args []string, dir string) error {
	output.Debug("running command", "cmd", CommandLine(name, args), "dir", dir)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var captured bytes.Buffer
	if r.Quiet {
		cmd.Stdout = &captured
		cmd.Stderr = &captured
	} else {
		cmd.Stdout = writerOr(r.Stdout, os.Stdout)
		cmd.Stderr = writerOr(r.Stderr, os.Stderr)
	}

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		out := tail(captured.String())
		output.Debug("command exited non-zero", "cmd", name, "code", exitErr.ExitCode(), "output", out)
		return &ExitError{Code: exitErr.ExitCode(), Output: out}
	}

	return fmt.Errorf("starting %s: %w", name, err)
}

// CommandLine renders name and args as a single display string.
func CommandLine(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}

func writerOr(w, fallback io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return fallback
}

func tail(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= maxCapturedTail {
		return s
	}
	return "..." + s[len(s)-maxCapturedTail:]
}

// lastLine returns the last non-blank line of s, trimmed.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
