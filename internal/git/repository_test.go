package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func realPath(t *testing.T, p string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(p)
	require.NoError(t, err)
	return resolved
}

func commitFile(t *testing.T, repo *gogit.Repository, root, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(name+"\n"), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add(name)
	require.NoError(t, err)
	_, err = wt.Commit("add "+name, &gogit.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)
}

func TestDiscover_UnbornBranch(t *testing.T) {
	root := realPath(t, t.TempDir())
	_, err := gogit.PlainInit(root, false)
	require.NoError(t, err)

	info, err := Discover(root)
	require.NoError(t, err)

	assert.Equal(t, root, realPath(t, info.Root))
	assert.True(t, info.Unborn)
	assert.False(t, info.Detached)
	assert.Equal(t, "master", info.Branch)
}

func TestDiscover_FromSubdirectory(t *testing.T) {
	root := realPath(t, t.TempDir())
	repo, err := gogit.PlainInit(root, false)
	require.NoError(t, err)
	commitFile(t, repo, root, "a.txt")

	sub := filepath.Join(root, "nested", "deeper")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	info, err := Discover(sub)
	require.NoError(t, err)
	assert.Equal(t, root, realPath(t, info.Root))
	assert.Equal(t, "master", info.Branch)
	assert.False(t, info.Unborn)
}

func TestDiscover_Detached(t *testing.T) {
	root := t.TempDir()
	repo, err := gogit.PlainInit(root, false)
	require.NoError(t, err)
	commitFile(t, repo, root, "a.txt")

	head, err := repo.Head()
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, wt.Checkout(&gogit.CheckoutOptions{Hash: head.Hash()}))

	info, err := Discover(root)
	require.NoError(t, err)
	assert.True(t, info.Detached)
	assert.Empty(t, info.Branch)
}

func TestDiscover_NotARepository(t *testing.T) {
	_, err := Discover(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotGitRepository)
}
