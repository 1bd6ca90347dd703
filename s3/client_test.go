package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("creates client with static credentials", func(t *testing.T) {
		client, err := New(
			WithRegion("eu-west-1"),
			WithCredentials("AKIAEXAMPLE", "secret"),
			WithMaxConnections(50),
		)
		require.NoError(t, err)
		require.NotNil(t, client)
	})

	t.Run("rejects a lone access key", func(t *testing.T) {
		_, err := New(WithCredentials("AKIAEXAMPLE", ""))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rejects a lone secret key", func(t *testing.T) {
		_, err := New(WithCredentials("", "secret"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestOptionDefaults(t *testing.T) {
	cfg := &clientConfig{Region: DefaultRegion, MaxConnections: DefaultMaxConnections}

	// Zero and negative values must not clobber the defaults.
	WithRegion("")(cfg)
	WithMaxConnections(0)(cfg)
	WithMaxConnections(-1)(cfg)

	assert.Equal(t, DefaultRegion, cfg.Region)
	assert.Equal(t, DefaultMaxConnections, cfg.MaxConnections)
}
