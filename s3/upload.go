// Package s3 provides file and directory upload operations.
package s3

import (
	"context"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
)

// DefaultContentType is used when content type detection fails.
const DefaultContentType = "application/octet-stream"

// UploadResult contains statistics about a completed upload operation.
type UploadResult struct {
	// FilesUploaded is the number of objects written.
	FilesUploaded int

	// BytesUploaded is the total bytes transferred.
	BytesUploaded int64

	// Duration is how long the operation took.
	Duration time.Duration
}

// UploadFile uploads a single local file to bucket/key.
// The content type comes from params.ContentType when set, otherwise from
// content sniffing with an extension-based fallback. A non-empty
// params.CacheControl is set verbatim on the object.
func (c *Client) UploadFile(
	ctx context.Context,
	bucket, key, path string,
	params ObjectParams,
) (int64, error) {
	if bucket == "" {
		return 0, NewObjectError("upload", bucket, key, ErrInvalidInput).
			WithMessage("bucket name cannot be empty")
	}
	if key == "" {
		return 0, NewObjectError("upload", bucket, key, ErrInvalidInput).
			WithMessage("object key cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, NewObjectError("upload", bucket, key, err)
	}
	if info.IsDir() {
		return 0, NewObjectError("upload", bucket, key, ErrInvalidInput).
			WithMessage("path points to a directory, not a file")
	}

	contentType := params.ContentType
	if contentType == "" {
		contentType = detectContentType(path)
	}

	file, err := os.Open(path)
	if err != nil {
		return 0, NewObjectError("upload", bucket, key, err)
	}
	defer file.Close()

	input := &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          file,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(info.Size()),
	}
	if params.CacheControl != "" {
		input.CacheControl = aws.String(params.CacheControl)
	}

	if _, err := c.api.PutObject(ctx, input); err != nil {
		return 0, NewObjectError("upload", bucket, key, err)
	}

	return info.Size(), nil
}

// UploadDirectory uploads every regular file under dir to bucket, keyed by
// the file's dir-relative path (forward slashes) appended to prefix.
//
// Hidden entries (dot-prefixed files and directories, such as .git and .env)
// are skipped entirely, so repository internals and local configuration
// never reach the bucket even when dir is a project root.
//
// Files are uploaded one at a time in the lexical order produced by the
// directory walk, and the first failing upload aborts the remainder. The
// params callback, when non-nil, supplies per-file upload parameters.
func (c *Client) UploadDirectory(
	ctx context.Context,
	dir, bucket, prefix string,
	params ParamsFunc,
) (*UploadResult, error) {
	if dir == "" {
		return nil, NewError("uploadDirectory", ErrInvalidInput).
			WithMessage("directory cannot be empty")
	}
	if bucket == "" {
		return nil, NewError("uploadDirectory", ErrInvalidInput).
			WithMessage("bucket cannot be empty")
	}

	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	startTime := time.Now()
	result := &UploadResult{}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		key := prefix + filepath.ToSlash(rel)

		var p ObjectParams
		if params != nil {
			p = params(path)
		}

		size, err := c.UploadFile(ctx, bucket, key, path, p)
		if err != nil {
			return err
		}

		result.FilesUploaded++
		result.BytesUploaded += size
		if c.progress != nil {
			c.progress(key, size)
		}
		return nil
	})
	if err != nil {
		return nil, NewError("uploadDirectory", err)
	}

	result.Duration = time.Since(startTime)
	return result, nil
}

// detectContentType determines the content type using mimetype where
// possible, falling back to extension-based lookup.
func detectContentType(path string) string {
	file, err := os.Open(path)
	if err != nil {
		return detectContentTypeFromExtension(path)
	}
	defer file.Close()

	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	if n > 0 {
		if mt := mimetype.Detect(buf[:n]); mt != nil {
			return mt.String()
		}
	}

	return detectContentTypeFromExtension(path)
}

// detectContentTypeFromExtension looks up the content type by file extension.
func detectContentTypeFromExtension(path string) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return DefaultContentType
}
