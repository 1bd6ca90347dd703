// Package git provides a high-level wrapper for go-git operations.
// This file contains branch resolution.
package git

// CurrentBranch returns the name of the currently checked out branch.
// It returns ErrDetachedHead if HEAD is not pointing at a branch.
func (r *Repo) CurrentBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", WrapError(err, "failed to get HEAD reference")
	}

	if !head.Name().IsBranch() {
		return "", WrapError(ErrDetachedHead, "cannot resolve branch name")
	}

	return head.Name().Short(), nil
}
