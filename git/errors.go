// Package git provides sentinel errors for repository inspection.
// All errors can be checked using errors.Is() for programmatic handling.
package git

import (
	"errors"
	"fmt"
)

// ErrNoRepository is returned when the given path does not contain a git
// repository (directly or in any parent directory).
var ErrNoRepository = errors.New("no repository found")

// ErrDetachedHead is returned when HEAD does not point at a branch, so no
// branch name can be resolved for the deployment.
var ErrDetachedHead = errors.New("HEAD is detached")

// ErrNoOrigin is returned when the repository has no remote named "origin".
var ErrNoOrigin = errors.New("no origin remote")

// ErrUnsupportedHost is returned when the origin remote is not hosted on
// github.com. The deployment key naming scheme assumes a GitHub identifier.
var ErrUnsupportedHost = errors.New("origin is not a github.com remote")

// WrapError wraps an error with additional context while preserving
// the ability to check against sentinel errors using errors.Is().
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// WrapErrorf wraps an error with formatted additional context while preserving
// the ability to check against sentinel errors using errors.Is().
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
