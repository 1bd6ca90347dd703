package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// testRepo is a helper struct bundling a throwaway on-disk repository.
type testRepo struct {
	dir  string
	raw  *gogit.Repository
	wt   *gogit.Worktree
	repo *Repo
}

// setupTestRepo creates an empty repository in a temp directory.
// go-git initialises HEAD on "master", which is also shard's
// production branch.
func setupTestRepo(t *testing.T) *testRepo {
	t.Helper()

	dir := t.TempDir()

	raw, err := gogit.PlainInit(dir, false)
	require.NoError(t, err, "failed to init test repository")

	wt, err := raw.Worktree()
	require.NoError(t, err, "failed to get worktree")

	return &testRepo{
		dir:  dir,
		raw:  raw,
		wt:   wt,
		repo: newRepo(raw, log.New(os.Stderr)),
	}
}

// commitFiles writes the given files, stages them, and commits.
func (tr *testRepo) commitFiles(t *testing.T, msg string, files map[string]string) plumbing.Hash {
	t.Helper()

	for path, content := range files {
		abs := filepath.Join(tr.dir, filepath.FromSlash(path))
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
		require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))

		_, err := tr.wt.Add(path)
		require.NoError(t, err, "failed to stage %s", path)
	}

	hash, err := tr.wt.Commit(msg, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Test",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err, "failed to commit")

	return hash
}

// removeFiles stages the deletion of the given files and commits.
func (tr *testRepo) removeFiles(t *testing.T, msg string, paths ...string) {
	t.Helper()

	for _, path := range paths {
		_, err := tr.wt.Remove(path)
		require.NoError(t, err, "failed to stage removal of %s", path)
	}

	_, err := tr.wt.Commit(msg, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Test",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err, "failed to commit removal")
}

// checkoutNewBranch creates and checks out a branch at the current HEAD.
func (tr *testRepo) checkoutNewBranch(t *testing.T, name string) {
	t.Helper()

	err := tr.wt.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(name),
		Create: true,
	})
	require.NoError(t, err, "failed to checkout branch %s", name)
}

// setOrigin configures an origin remote with the given URL.
func (tr *testRepo) setOrigin(t *testing.T, url string) {
	t.Helper()

	_, err := tr.raw.CreateRemote(&config.RemoteConfig{
		Name: DefaultRemoteName,
		URLs: []string{url},
	})
	require.NoError(t, err, "failed to create origin remote")
}
