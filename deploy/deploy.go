// Package deploy drives the sequential per-directory upload pipeline.
package deploy

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/ft-interactive/shard/s3"
)

// DirectoryUploader is the upload collaborator consumed by Deploy.
// *s3.Client satisfies it; tests substitute fakes.
type DirectoryUploader interface {
	UploadDirectory(
		ctx context.Context,
		dir, bucket, prefix string,
		params s3.ParamsFunc,
	) (*s3.UploadResult, error)
}

// Result aggregates the outcome of a full deployment run.
type Result struct {
	// DirsUploaded is the number of directories fully uploaded.
	DirsUploaded int

	// FilesUploaded is the total number of objects written.
	FilesUploaded int

	// BytesUploaded is the total bytes transferred.
	BytesUploaded int64
}

// Deploy uploads each of the plan's directories in order, one at a time,
// each awaited to completion before the next begins. The first failing
// directory aborts the remainder; there is no retry and no partial-success
// continuation at this layer.
func Deploy(ctx context.Context, plan *Plan, uploader DirectoryUploader, logger *log.Logger) (*Result, error) {
	if logger == nil {
		logger = log.Default()
	}

	result := &Result{}
	for _, spec := range plan.Specs {
		logger.Info("uploading directory",
			"dir", spec.Dir,
			"bucket", spec.Bucket,
			"prefix", spec.Prefix)

		res, err := uploader.UploadDirectory(ctx, spec.Dir, spec.Bucket, spec.Prefix, UploadParams)
		if err != nil {
			return nil, WrapErrorf(err, "failed to upload %q", spec.Dir)
		}

		result.DirsUploaded++
		result.FilesUploaded += res.FilesUploaded
		result.BytesUploaded += res.BytesUploaded
	}

	return result, nil
}
