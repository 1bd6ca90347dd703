package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrigin(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantOwner string
		wantName  string
		wantErr   error
	}{
		{
			name:      "https github URL",
			url:       "https://github.com/ft-interactive/some-project",
			wantOwner: "ft-interactive",
			wantName:  "some-project",
		},
		{
			name:      "https github URL with .git suffix",
			url:       "https://github.com/ft-interactive/some-project.git",
			wantOwner: "ft-interactive",
			wantName:  "some-project",
		},
		{
			name:      "ssh github URL",
			url:       "git@github.com:ft-interactive/some-project.git",
			wantOwner: "ft-interactive",
			wantName:  "some-project",
		},
		{
			name:    "non-github host is rejected",
			url:     "https://gitlab.com/ft-interactive/some-project",
			wantErr: ErrUnsupportedHost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := setupTestRepo(t)
			tr.setOrigin(t, tt.url)

			remote, err := tr.repo.Origin()

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, GitHubHost, remote.Host)
			assert.Equal(t, tt.wantOwner, remote.Owner)
			assert.Equal(t, tt.wantName, remote.Name)
			assert.Equal(t, tt.wantOwner+"/"+tt.wantName, remote.Slug())
		})
	}

	t.Run("missing origin remote", func(t *testing.T) {
		tr := setupTestRepo(t)

		_, err := tr.repo.Origin()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoOrigin)
	})
}
