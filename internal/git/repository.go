package git

import (
	"errors"
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// RepoInfo describes the repository gitdash operates on
type RepoInfo struct {
	// Root is the top-level working tree directory
	Root string
	// Branch is the checked-out branch, empty on a detached HEAD
	Branch string
	// Detached is true when HEAD points at a commit rather than a branch
	Detached bool
	// Unborn is true when the branch has no commits yet
	Unborn bool
}

// Discover opens the repository containing dir, walking up parent
// directories to find .git. It reads the current branch with go-git so
// the push target can default to it without another subprocess.
func Discover(dir string) (RepoInfo, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return RepoInfo{}, fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	repo, err := gogit.PlainOpenWithOptions(abs, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return RepoInfo{}, fmt.Errorf("%w: %s", ErrNotGitRepository, abs)
		}
		return RepoInfo{}, fmt.Errorf("failed to open repository at %s: %w", abs, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return RepoInfo{}, fmt.Errorf("repository at %s has no working tree: %w", abs, err)
	}
	info := RepoInfo{Root: wt.Filesystem.Root()}

	head, err := repo.Head()
	switch {
	case err == nil:
		if head.Name().IsBranch() {
			info.Branch = head.Name().Short()
		} else {
			info.Detached = true
		}
	case errors.Is(err, plumbing.ErrReferenceNotFound):
		// Fresh repository: HEAD is a symbolic ref to a branch with no commits
		ref, refErr := repo.Reference(plumbing.HEAD, false)
		if refErr != nil {
			return info, fmt.Errorf("failed to read HEAD: %w", refErr)
		}
		info.Unborn = true
		if ref.Type() == plumbing.SymbolicReference && ref.Target().IsBranch() {
			info.Branch = ref.Target().Short()
		}
	default:
		return info, fmt.Errorf("failed to read HEAD: %w", err)
	}

	return info, nil
}
