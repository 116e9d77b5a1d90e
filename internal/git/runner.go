package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/studiowebux/gitdash/internal/logging"
)

const waitDelay = 2 * time.Second

// Result is the outcome of one git invocation
type Result struct {
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// Runner abstracts executing the git binary
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (Result, error)
}

// ExecRunner runs the configured git executable as a subprocess
type ExecRunner struct {
	Binary  string
	Timeout time.Duration
	Logger  logging.Logger
}

// NewExecRunner creates an ExecRunner. An empty binary means "git";
// a zero timeout means no limit beyond ctx.
func NewExecRunner(binary string, timeout time.Duration, logger logging.Logger) *ExecRunner {
	if strings.TrimSpace(binary) == "" {
		binary = "git"
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &ExecRunner{Binary: binary, Timeout: timeout, Logger: logger}
}

// Run executes git with args in dir.
// A non-zero exit or a launch failure returns a *GitError alongside the
// partial Result, so callers always see stdout, stderr and the exit code.
func (e *ExecRunner) Run(ctx context.Context, dir string, args ...string) (Result, error) {
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, e.Binary, args...)
	if strings.TrimSpace(dir) != "" {
		cmd.Dir = dir
	}
	// The TUI owns the terminal; git must fail instead of prompting for credentials.
	// Status runs next to a publish, so it must not take index.lock to refresh the index.
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0", "GIT_OPTIONAL_LOCKS=0")
	// Helpers such as ssh may outlive a killed git and hold the pipes open
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	runErr := cmd.Run()

	res := Result{
		Args:     args,
		Stdout:   decodeOutput(stdout.Bytes()),
		Stderr:   decodeOutput(stderr.Bytes()),
		Duration: time.Since(start),
	}

	if runErr == nil {
		e.Logger.Debug("git finished", "args", args, "dir", dir, "duration", res.Duration)
		return res, nil
	}

	var exitErr *exec.ExitError
	var err *GitError
	switch {
	case errors.As(runErr, &exitErr) && ctx.Err() == nil:
		res.ExitCode = exitErr.ExitCode()
		err = NewGitError(args, res.ExitCode, fmt.Errorf("%w: %v", ErrGitOperationFailed, runErr), res.Stderr)
	case ctx.Err() != nil:
		res.ExitCode = -1
		err = NewGitError(args, res.ExitCode, fmt.Errorf("%w: %w", ErrGitOperationFailed, ctx.Err()), res.Stderr)
	case errors.Is(runErr, exec.ErrNotFound) || errors.Is(runErr, os.ErrNotExist):
		res.ExitCode = -1
		err = NewGitError(args, res.ExitCode, fmt.Errorf("%w: %s: %v", ErrGitNotFound, e.Binary, runErr), "")
	default:
		res.ExitCode = -1
		err = NewGitError(args, res.ExitCode, fmt.Errorf("%w: %v", ErrGitOperationFailed, runErr), res.Stderr)
	}

	e.Logger.Warn("git failed",
		"args", args,
		"dir", dir,
		"exit_code", res.ExitCode,
		"duration", res.Duration,
		"error", err.Error())
	return res, err
}

// decodeOutput converts raw process output to text, replacing invalid
// UTF-8 sequences with U+FFFD.
func decodeOutput(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}
