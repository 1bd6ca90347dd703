package deploy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ft-interactive/shard/s3"
)

// fakeUploader records UploadDirectory calls and can fail on the nth call.
type fakeUploader struct {
	calls      []string
	failOnCall int // 1-based; 0 means never fail
	params     []s3.ParamsFunc
}

func (f *fakeUploader) UploadDirectory(
	ctx context.Context,
	dir, bucket, prefix string,
	params s3.ParamsFunc,
) (*s3.UploadResult, error) {
	f.calls = append(f.calls, dir)
	f.params = append(f.params, params)

	if f.failOnCall != 0 && len(f.calls) == f.failOnCall {
		return nil, errors.New("simulated upload failure")
	}

	return &s3.UploadResult{FilesUploaded: 2, BytesUploaded: 128}, nil
}

func TestDeploy(t *testing.T) {
	ctx := context.Background()
	target := testTarget()

	t.Run("uploads every directory in order and aggregates", func(t *testing.T) {
		plan := NewPlan(t.TempDir(), []string{"assets", "docs", "media"}, target)
		uploader := &fakeUploader{}

		result, err := Deploy(ctx, plan, uploader, nil)
		require.NoError(t, err)

		assert.Equal(t, plan.Dirs(), uploader.calls)
		assert.Equal(t, 3, result.DirsUploaded)
		assert.Equal(t, 6, result.FilesUploaded)
		assert.Equal(t, int64(384), result.BytesUploaded)
	})

	t.Run("second failure stops the third upload", func(t *testing.T) {
		plan := NewPlan(t.TempDir(), []string{"a", "b", "c"}, target)
		uploader := &fakeUploader{failOnCall: 2}

		result, err := Deploy(ctx, plan, uploader, nil)
		require.Error(t, err)
		assert.Nil(t, result)

		// The failing directory was attempted, the one after it never was.
		require.Len(t, uploader.calls, 2)
		assert.Contains(t, err.Error(), plan.Specs[1].Dir)
	})

	t.Run("empty plan is a successful no-op", func(t *testing.T) {
		plan := NewPlan(t.TempDir(), nil, target)
		uploader := &fakeUploader{}

		result, err := Deploy(ctx, plan, uploader, nil)
		require.NoError(t, err)
		assert.Empty(t, uploader.calls)
		assert.Equal(t, 0, result.DirsUploaded)
	})

	t.Run("passes the per-file parameter rule to the uploader", func(t *testing.T) {
		plan := NewPlan(t.TempDir(), []string{"docs"}, target)
		uploader := &fakeUploader{}

		_, err := Deploy(ctx, plan, uploader, nil)
		require.NoError(t, err)

		require.Len(t, uploader.params, 1)
		params := uploader.params[0]("some/extensionless")
		assert.Equal(t, IndexContentType, params.ContentType)
		assert.Equal(t, CacheControl, params.CacheControl)
	})
}
