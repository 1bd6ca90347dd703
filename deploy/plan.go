// Package deploy maps affected directories to upload specs.
package deploy

import (
	"path/filepath"

	"github.com/ft-interactive/shard/s3"
)

// CacheControl caps object freshness at one minute. Deployed content
// changes frequently, so staleness is costlier than bandwidth here.
const CacheControl = "max-age=60"

// IndexContentType is assigned to files without an extension so they
// resolve like directory-index pages.
const IndexContentType = "text/html"

// UploadSpec is the per-directory upload configuration.
type UploadSpec struct {
	// Dir is the local directory to upload.
	Dir string

	// Bucket is the destination bucket.
	Bucket string

	// Prefix is the final key prefix for this directory's objects.
	Prefix string
}

// Plan holds the ordered sequence of upload specs for one run.
type Plan struct {
	Root   string
	Target *Target
	Specs  []UploadSpec
}

// NewPlan builds one UploadSpec per affected directory, preserving the
// caller's (sorted) order.
//
// A directory gets its base name appended to the target's key prefix as a
// further path segment, except when its base name equals the project root's
// base name: the root itself maps to the bare environment prefix. The "."
// entry produced for root-level changes therefore deploys the project root
// under the bare prefix.
func NewPlan(root string, dirs []string, target *Target) *Plan {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	plan := &Plan{
		Root:   root,
		Target: target,
	}

	rootBase := filepath.Base(root)
	for _, dir := range dirs {
		local := filepath.Join(root, dir)

		prefix := target.KeyPrefix
		if base := filepath.Base(local); base != rootBase {
			prefix += base
		}

		plan.Specs = append(plan.Specs, UploadSpec{
			Dir:    local,
			Bucket: target.Bucket,
			Prefix: prefix,
		})
	}

	return plan
}

// IsEmpty reports whether the plan has nothing to upload.
func (p *Plan) IsEmpty() bool {
	return len(p.Specs) == 0
}

// Dirs returns the local directory of every spec, in upload order.
func (p *Plan) Dirs() []string {
	dirs := make([]string, 0, len(p.Specs))
	for _, spec := range p.Specs {
		dirs = append(dirs, spec.Dir)
	}
	return dirs
}

// UploadParams is the per-file parameter rule for deployed content: files
// with no extension are served as text/html, and every file gets the short
// CacheControl TTL.
func UploadParams(path string) s3.ObjectParams {
	params := s3.ObjectParams{CacheControl: CacheControl}
	if filepath.Ext(path) == "" {
		params.ContentType = IndexContentType
	}
	return params
}
