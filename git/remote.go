// Package git provides a high-level wrapper for go-git operations.
// This file contains origin remote resolution and URL parsing.
package git

import (
	"strings"

	giturl "github.com/kubescape/go-git-url"
)

// GitHubHost is the only remote host the deployment naming scheme supports.
const GitHubHost = "github.com"

// Remote identifies where the repository is hosted.
type Remote struct {
	// Host is the remote's host name, e.g. "github.com".
	Host string

	// Owner is the repository owner (user or organisation).
	Owner string

	// Name is the repository name.
	Name string
}

// Slug returns the "owner/name" identifier used in deployment key prefixes.
func (rm *Remote) Slug() string {
	return rm.Owner + "/" + rm.Name
}

// Origin resolves the remote named "origin" and parses its first URL.
// It returns ErrNoOrigin when the remote is missing and ErrUnsupportedHost
// when the remote is not hosted on github.com.
func (r *Repo) Origin() (*Remote, error) {
	remote, err := r.repo.Remote(DefaultRemoteName)
	if err != nil {
		return nil, WrapError(ErrNoOrigin, "failed to resolve remote")
	}

	urls := remote.Config().URLs
	if len(urls) == 0 || urls[0] == "" {
		return nil, WrapError(ErrNoOrigin, "origin remote has no URL")
	}

	parsed, err := giturl.NewGitURL(urls[0])
	if err != nil {
		return nil, WrapErrorf(err, "failed to parse remote URL %q", urls[0])
	}

	rm := &Remote{
		Host:  parsed.GetHostName(),
		Owner: parsed.GetOwnerName(),
		Name:  strings.TrimSuffix(parsed.GetRepoName(), ".git"),
	}

	if rm.Host != GitHubHost {
		return nil, WrapErrorf(ErrUnsupportedHost, "remote host is %q", rm.Host)
	}

	return rm, nil
}
