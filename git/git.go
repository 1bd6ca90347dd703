// Package git provides a high-level wrapper for go-git operations.
// This file contains repository discovery and the Repo type.
package git

import (
	"github.com/charmbracelet/log"
	gogit "github.com/go-git/go-git/v5"
)

// DefaultRemoteName is the remote consulted for the repository identifier.
const DefaultRemoteName = "origin"

// Options configures repository discovery.
type Options struct {
	// Path is the directory to open the repository from.
	// Defaults to the current directory.
	Path string

	// Logger receives non-fatal diagnostics, such as skipped diff entries.
	// Defaults to log.Default().
	Logger *log.Logger
}

func (o *Options) applyDefaults() {
	if o.Path == "" {
		o.Path = "."
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
}

// Repo represents an opened git repository and provides the read-only
// operations shard needs: branch resolution, remote parsing, and
// head-commit change detection.
type Repo struct {
	repo   *gogit.Repository
	logger *log.Logger
}

// Open discovers and opens an existing git repository.
// The .git directory is detected upward from opts.Path, matching the
// behavior of the git CLI when run inside a project subdirectory.
func Open(opts *Options) (*Repo, error) {
	if opts == nil {
		opts = &Options{}
	}
	opts.applyDefaults()

	repo, err := gogit.PlainOpenWithOptions(opts.Path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, WrapErrorf(ErrNoRepository, "failed to open repository at %q: %v", opts.Path, err)
	}

	return &Repo{
		repo:   repo,
		logger: opts.Logger,
	}, nil
}

// Root returns the absolute path of the repository's worktree root, which
// is the project root deployments are computed against.
func (r *Repo) Root() (string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return "", WrapError(err, "failed to get worktree")
	}
	return wt.Filesystem.Root(), nil
}

// newRepo wraps an already-open go-git repository. Used by tests.
func newRepo(repo *gogit.Repository, logger *log.Logger) *Repo {
	if logger == nil {
		logger = log.Default()
	}
	return &Repo{repo: repo, logger: logger}
}
