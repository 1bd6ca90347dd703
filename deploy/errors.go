// Package deploy provides sentinel errors for environment resolution and
// upload orchestration. All errors can be checked using errors.Is().
package deploy

import (
	"errors"
	"fmt"
)

// ErrMissingEnv is returned when one or more required environment variables
// for the selected environment are absent or empty. The wrapped message
// names every missing variable.
var ErrMissingEnv = errors.New("missing required environment variables")

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
