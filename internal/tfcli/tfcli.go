// Package tfcli translates version-control operations into invocations of
// the external Team Foundation Server command-line client (tf) and captures
// their output.
//
// The package performs no interpretation of version-control semantics: tf is
// an opaque binary invoked with an argument vector, and its stdout/stderr
// come back as text. Argument construction is pure and per-operation, so the
// exact command line for any request is testable without spawning anything.
package tfcli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/google/uuid"

	"github.com/tfstool/tfsmcp/internal/redact"
	"github.com/tfstool/tfsmcp/internal/testable"
)

// DefaultTimeout is the per-command timeout when none is configured.
const DefaultTimeout = 30 * time.Second

// Sentinel errors classifying subprocess failures. A non-zero exit from a tf
// command that actually ran is not an error; it is reported through
// Result.ExitCode with stderr preserved.
var (
	// ErrExecutableNotFound means the configured tf executable could not
	// be resolved.
	ErrExecutableNotFound = errors.New("tf executable not found")

	// ErrTimeout means the subprocess exceeded the configured deadline and
	// was killed.
	ErrTimeout = errors.New("tf command timed out")
)

// Result holds the outcome of a single tf invocation.
type Result struct {
	// Args is the exact argument vector passed to the executable, kept for
	// diagnostics.
	Args []string

	// ExitCode is the subprocess exit status. Zero means success.
	ExitCode int

	// Stdout and Stderr are the captured output streams, verbatim.
	Stdout string
	Stderr string
}

// Ok reports whether the command exited cleanly.
func (r *Result) Ok() bool { return r.ExitCode == 0 }

// Command renders the invocation as a loggable string with credential
// material scrubbed.
func (r *Result) Command() string {
	return redact.CommandLine(append([]string{"tf"}, r.Args...))
}

// Options configures a Client.
type Options struct {
	// ExePath is the tf executable; a bare name is resolved against PATH.
	// Defaults to "tf".
	ExePath string

	// WorkingDir is the default directory relative paths resolve against.
	WorkingDir string

	// Timeout bounds each invocation. Defaults to DefaultTimeout.
	Timeout time.Duration

	// Executor overrides subprocess spawning, for tests.
	Executor testable.CommandExecutor
}

// Client executes tf commands with an immutable startup configuration.
// Concurrent calls are independent; the Client holds no mutable state.
type Client struct {
	exePath    string
	workingDir string
	timeout    time.Duration
	executor   testable.CommandExecutor
}

// New returns a Client, filling unset options with defaults.
func New(opts Options) *Client {
	if opts.ExePath == "" {
		opts.ExePath = "tf"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Executor == nil {
		opts.Executor = testable.DefaultExecutor()
	}
	return &Client{
		exePath:    opts.ExePath,
		workingDir: opts.WorkingDir,
		timeout:    opts.Timeout,
		executor:   opts.Executor,
	}
}

// ExePath returns the configured executable.
func (c *Client) ExePath() string { return c.exePath }

// WorkingDir returns the configured default working directory.
func (c *Client) WorkingDir() string { return c.workingDir }

// Available reports whether the configured tf executable can be resolved.
func (c *Client) Available() error {
	if _, err := c.executor.LookPath(c.exePath); err != nil {
		return fmt.Errorf("%w: %q", ErrExecutableNotFound, c.exePath)
	}
	return nil
}

// Run executes the tf executable with args in workingDir (falling back to
// the client default) and captures its output. It blocks until the
// subprocess exits, the context is cancelled, or the timeout elapses.
//
// A non-zero exit yields a Result with the exit code and stderr, not an
// error. Errors are reserved for spawn-level failures: executable not found,
// timeout, or OS-level execution errors.
func (c *Client) Run(ctx context.Context, workingDir string, args []string) (*Result, error) {
	if err := c.Available(); err != nil {
		return nil, err
	}

	wd := workingDir
	if wd == "" {
		wd = c.workingDir
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmd := c.executor.CommandContext(ctx, c.exePath, args...)
	cmd.Dir = wd
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	id := uuid.NewString()
	start := time.Now()
	slog.Debug("running tf command",
		"id", id,
		"command", redact.CommandLine(append([]string{c.exePath}, args...)),
		"working_dir", wd)

	err := cmd.Run()
	result := &Result{
		Args:   args,
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			return nil, fmt.Errorf("%w after %s", ErrTimeout, c.timeout)
		case errors.As(err, &exitErr):
			result.ExitCode = exitErr.ExitCode()
		default:
			return nil, fmt.Errorf("execute tf: %w", err)
		}
	}

	slog.Debug("tf command completed",
		"id", id,
		"exit_code", result.ExitCode,
		"duration", time.Since(start))
	return result, nil
}
