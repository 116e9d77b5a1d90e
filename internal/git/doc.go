/*
Package git runs the git executable on behalf of the dashboard.

# Overview

gitdash does not implement version control itself. Every repository
operation is a git subprocess:

  - StageAll: git add -A
  - Commit:   git commit -m <message>
  - Push:     git push <remote> [<branch>]
  - Status:   git status (or git status --short --branch)

Publish chains StageAll, Commit and Push and stops at the first failure,
returning a PublishReport with one StepResult per step that ran.

# Errors

Failed invocations return *GitError, which records the subcommand, the
exit code and git's stderr (credentials redacted). GitError unwraps to
ErrGitOperationFailed, or to ErrGitNotFound when the binary cannot be
started, so callers can use errors.Is.

# Repository discovery

Discover uses go-git to find the repository root and the checked-out
branch without spawning a process. The branch becomes the default push
target when none is configured.
*/
package git
