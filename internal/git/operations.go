package git

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/sqve/gitfu/internal/logger"
)

// GitExecutor defines the interface for executing git commands.
type GitExecutor interface {
	// Execute runs git with colour forced on and returns trimmed stdout.
	Execute(args ...string) (string, error)

	// ExecuteRaw runs git without colour. Use it for output that gets parsed.
	ExecuteRaw(args ...string) (string, error)

	// ExecutePassthrough runs git attached to the process stdio.
	ExecutePassthrough(args ...string) error
}

// GitError represents an error from a git command execution.
type GitError struct {
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
	// Streamed is set when git wrote directly to the terminal, so its
	// diagnostics have already been shown.
	Streamed bool
}

func (e *GitError) Error() string {
	if diag := e.Diagnostic(); diag != "" {
		return diag
	}
	return fmt.Sprintf("git %s failed (exit %d)", strings.Join(e.Args, " "), e.ExitCode)
}

// Diagnostic returns what git printed about the failure. Some commands, such
// as a conflicting `stash pop`, report on stdout and leave stderr empty.
func (e *GitError) Diagnostic() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	return e.Stdout
}

// Runner implements GitExecutor by invoking the git binary.
type Runner struct {
	// Color adds `-c color.ui=always` to Execute calls.
	Color  bool
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	binary *Binary
}

// NewRunner creates a Runner attached to the process stdio.
func NewRunner(color bool) *Runner {
	return &Runner{
		Color:  color,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		binary: DefaultBinary,
	}
}

// DefaultExecutor is the default git command executor.
var DefaultExecutor GitExecutor = NewRunner(true)

func (r *Runner) Execute(args ...string) (string, error) {
	return r.capture(r.Color, args)
}

func (r *Runner) ExecuteRaw(args ...string) (string, error) {
	return r.capture(false, args)
}

func (r *Runner) ExecutePassthrough(args ...string) error {
	path, err := r.binary.Path()
	if err != nil {
		return err
	}

	start := time.Now()
	logger.GitCommand(args)

	cmd := exec.Command(path, r.withColor(r.Color, args)...) // nolint:gosec // Arguments come from the user's own git invocation
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err = cmd.Run()
	logger.GitResult(args, err == nil, time.Since(start))
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &GitError{Args: args, ExitCode: exitErr.ExitCode(), Streamed: true}
	}
	return fmt.Errorf("failed to run git: %w", err)
}

// capture runs git and collects both streams, trimming trailing whitespace.
func (r *Runner) capture(color bool, args []string) (string, error) {
	path, err := r.binary.Path()
	if err != nil {
		return "", err
	}

	start := time.Now()
	logger.GitCommand(args)

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(path, r.captureArgs(color, args)...) // nolint:gosec // Arguments are built by gitfu or passed through from the user
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	logger.GitResult(args, err == nil, time.Since(start))

	out := strings.TrimRight(stdout.String(), " \t\r\n")
	if err == nil {
		return out, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return "", fmt.Errorf("failed to run git: %w", err)
	}

	return out, &GitError{
		Args:     args,
		Stdout:   out,
		Stderr:   strings.TrimRight(stderr.String(), " \t\r\n"),
		ExitCode: exitErr.ExitCode(),
	}
}

// captureArgs forces colour on or off. Off overrides the per-command
// settings too, since a user's color.branch=always would otherwise leak
// escape codes into output that gets parsed.
func (r *Runner) captureArgs(color bool, args []string) []string {
	if color {
		return r.withColor(true, args)
	}
	return append([]string{"-c", "color.ui=never", "-c", "color.branch=never", "-c", "color.diff=never", "-c", "color.status=never"}, args...)
}

func (r *Runner) withColor(color bool, args []string) []string {
	if !color {
		return args
	}
	return append([]string{"-c", "color.ui=always"}, args...)
}
