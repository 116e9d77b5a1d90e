package git

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Sentinel errors that can be used with errors.Is()
var (
	// ErrNotGitRepository indicates the target path is not inside a git repository
	ErrNotGitRepository = errors.New("not a git repository")

	// ErrGitOperationFailed indicates a git command exited non-zero or could not finish
	ErrGitOperationFailed = errors.New("git operation failed")

	// ErrGitNotFound indicates the git executable could not be started
	ErrGitNotFound = errors.New("git executable not found")

	// ErrEmptyCommitMessage is returned when publishing with a blank message
	ErrEmptyCommitMessage = errors.New("commit message is empty")
)

// GitError represents a failed git invocation.
// It keeps the subcommand, its arguments, the exit code and git's stderr.
type GitError struct {
	Operation string
	Args      []string
	ExitCode  int
	Err       error
	Output    string
}

// Error implements the error interface
func (e *GitError) Error() string {
	msg := fmt.Sprintf("git %s failed", e.Operation)
	if e.ExitCode > 0 {
		msg = fmt.Sprintf("%s (exit %d)", msg, e.ExitCode)
	}
	if e.Output != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Output)
	} else if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error for use with errors.Is and errors.As
func (e *GitError) Unwrap() error {
	return e.Err
}

// NewGitError creates a GitError. Credentials in output are redacted.
func NewGitError(args []string, exitCode int, err error, output string) *GitError {
	operation := "<no-args>"
	if len(args) > 0 {
		operation = args[0]
	}
	return &GitError{
		Operation: operation,
		Args:      args,
		ExitCode:  exitCode,
		Err:       err,
		Output:    redactTokens(strings.TrimSpace(output)),
	}
}

var (
	credentialURL = regexp.MustCompile(`(https?://)[^\s/@]+@`)
	secretParam   = regexp.MustCompile(`(?i)(token|secret|password|passwd|bearer)=[^\s]+`)
)

// redactTokens removes obvious credential substrings, e.g. from push errors
// that echo a remote URL with an embedded token.
func redactTokens(s string) string {
	s = credentialURL.ReplaceAllString(s, "${1}<redacted>@")
	s = secretParam.ReplaceAllString(s, "$1=<redacted>")
	return s
}
