// Package git provides a high-level wrapper for go-git operations.
// This file derives the set of top-level directories touched by a commit.
package git

import (
	"sort"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// RootDir is the entry reported for files that live directly in the project
// root rather than inside a top-level subdirectory.
const RootDir = "."

// ChangedDirs returns the deduplicated, lexicographically sorted set of
// top-level directories touched by the head commit of the given branch.
// The commit is diffed against its first parent's tree, or against an empty
// tree for the initial commit.
//
// The method never fails: a change entry that cannot be inspected is logged
// and skipped, and if the commit or its diff cannot be retrieved at all the
// result degrades to an empty set so the deployment becomes a no-op.
func (r *Repo) ChangedDirs(branch string) []string {
	changes, err := r.headChanges(branch)
	if err != nil {
		r.logger.Warn("could not read head commit diff, no directories detected",
			"branch", branch, "err", err)
		return nil
	}

	var dirs []string
	for _, change := range changes {
		if _, err := change.Action(); err != nil {
			r.logger.Warn("skipping uninspectable change", "err", err)
			continue
		}

		// Pure deletions have no destination path and contribute nothing.
		name := change.To.Name
		if name == "" {
			continue
		}

		dirs = append(dirs, topLevelDir(name))
	}

	return dedupeSorted(dirs)
}

// headChanges computes the tree diff for the head commit of branch.
func (r *Repo) headChanges(branch string) (object.Changes, error) {
	ref, err := r.repo.Reference(plumbing.NewBranchReferenceName(branch), true)
	if err != nil {
		return nil, WrapErrorf(err, "failed to resolve branch %q", branch)
	}

	commit, err := r.repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, WrapError(err, "failed to get head commit")
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, WrapError(err, "failed to get commit tree")
	}

	// Diff against the first parent, or a nil (empty) tree for the
	// initial commit.
	var parentTree *object.Tree
	if commit.NumParents() > 0 {
		parent, err := commit.Parent(0)
		if err != nil {
			return nil, WrapError(err, "failed to get parent commit")
		}
		parentTree, err = parent.Tree()
		if err != nil {
			return nil, WrapError(err, "failed to get parent tree")
		}
	}

	changes, err := object.DiffTree(parentTree, tree)
	if err != nil {
		return nil, WrapError(err, "failed to compute tree diff")
	}

	return changes, nil
}

// topLevelDir returns the first path segment of a repository-relative path,
// or RootDir for files directly in the project root.
func topLevelDir(path string) string {
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return RootDir
}

// dedupeSorted sorts the input and collapses adjacent duplicates.
func dedupeSorted(dirs []string) []string {
	if len(dirs) == 0 {
		return nil
	}

	sort.Strings(dirs)

	out := dirs[:1]
	for _, d := range dirs[1:] {
		if d != out[len(out)-1] {
			out = append(out, d)
		}
	}
	return out
}
