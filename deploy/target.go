// Package deploy resolves the deployment environment.
// This file maps branch name + process environment to a Target.
package deploy

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// ProductionBranch is the branch that deploys to the production bucket.
const ProductionBranch = "master"

// DefaultRegion is used when AWS_REGION is not set.
const DefaultRegion = "us-east-1"

// Environment variable names, suffixed "PROD" or "DEV" per environment.
const (
	EnvBucketName = "BUCKET_NAME_"
	EnvAccessKey  = "AWS_KEY_"
	EnvSecretKey  = "AWS_SECRET_"
	EnvRegion     = "AWS_REGION"
)

// Credentials holds the access key pair for the selected environment.
type Credentials struct {
	AccessKey string
	SecretKey string
}

// Target is the resolved deployment context. It is constructed once per run
// by ResolveTarget and immutable thereafter.
type Target struct {
	// IsProduction is true when deploying from the production branch.
	IsProduction bool

	// Bucket is the destination bucket for the selected environment.
	Bucket string

	// KeyPrefix is the environment-scoped namespace all uploads go under.
	// Always ends with "/".
	KeyPrefix string

	// Region is the bucket's AWS region.
	Region string

	// Credentials are the environment's access key pair.
	Credentials Credentials
}

// ResolveTarget maps the branch name and process environment to a Target.
//
// The master branch resolves to the production environment with key prefix
// "v1/{slug}/"; any other branch resolves to development with key prefix
// "v1/{slug}/{branch}/". An optional .env file in root is loaded first
// (existing environment variables win); root is the repository root, so the
// file is found even when the tool runs from another working directory.
//
// Every required variable for the selected environment must be present and
// non-empty; otherwise ErrMissingEnv is returned naming all missing
// variables, before any prompt or network activity happens upstream.
func ResolveTarget(root, branch, slug string) (*Target, error) {
	// .env is optional. An empty root falls back to the working directory.
	_ = godotenv.Load(filepath.Join(root, ".env"))

	isProduction := branch == ProductionBranch

	suffix := "DEV"
	if isProduction {
		suffix = "PROD"
	}

	bucketVar := EnvBucketName + suffix
	accessVar := EnvAccessKey + suffix
	secretVar := EnvSecretKey + suffix

	// Exactly the distinct set {bucket, access key, secret key} is
	// required for the selected environment.
	var missing []string
	for _, v := range []string{bucketVar, accessVar, secretVar} {
		if os.Getenv(v) == "" {
			missing = append(missing, v)
		}
	}
	if len(missing) > 0 {
		return nil, WrapErrorf(ErrMissingEnv, "%s", strings.Join(missing, ", "))
	}

	keyPrefix := fmt.Sprintf("v1/%s/", slug)
	if !isProduction {
		keyPrefix += branch + "/"
	}

	region := os.Getenv(EnvRegion)
	if region == "" {
		region = DefaultRegion
	}

	return &Target{
		IsProduction: isProduction,
		Bucket:       os.Getenv(bucketVar),
		KeyPrefix:    keyPrefix,
		Region:       region,
		Credentials: Credentials{
			AccessKey: os.Getenv(accessVar),
			SecretKey: os.Getenv(secretVar),
		},
	}, nil
}

// SiteURL returns the public URL at which the deployed content becomes
// reachable, derived from the bucket name and the key prefix.
func (t *Target) SiteURL() string {
	return "https://" + t.Bucket + "/" + t.KeyPrefix
}

// Environment returns a human-readable environment name.
func (t *Target) Environment() string {
	if t.IsProduction {
		return "production"
	}
	return "development"
}
