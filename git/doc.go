// Package git inspects the local repository that shard deploys from.
//
// It is a thin, task-oriented facade over go-git: open the repository at a
// path, read the current branch, resolve the origin remote into a GitHub
// owner/name identifier, and derive the set of top-level directories touched
// by a branch's head commit. It performs no mutations and no network I/O.
package git
