// Package s3 provides functional options for configuring client behavior.
// These options follow the functional options pattern for clean, composable
// configuration.
package s3

import "net/http"

// clientConfig holds the resolved configuration for a Client.
type clientConfig struct {
	Region         string
	AccessKey      string
	SecretKey      string
	Endpoint       string
	PathStyle      bool
	MaxConnections int
	HTTPClient     *http.Client
	Progress       ProgressFunc
}

// Option configures the Client.
type Option func(*clientConfig)

// ProgressFunc is called after each object is uploaded.
type ProgressFunc func(key string, size int64)

// WithRegion sets the AWS region for S3 operations.
// Defaults to DefaultRegion.
func WithRegion(region string) Option {
	return func(c *clientConfig) {
		if region != "" {
			c.Region = region
		}
	}
}

// WithCredentials sets static credentials for the client.
// If not supplied, the SDK's default credential chain is used.
func WithCredentials(accessKey, secretKey string) Option {
	return func(c *clientConfig) {
		c.AccessKey = accessKey
		c.SecretKey = secretKey
	}
}

// WithEndpoint sets a custom S3 endpoint URL.
// This is useful for S3-compatible services or local testing.
func WithEndpoint(endpoint string) Option {
	return func(c *clientConfig) {
		c.Endpoint = endpoint
	}
}

// WithPathStyle forces path-style URLs instead of virtual-hosted style.
// Required for S3-compatible services that don't support virtual hosting.
func WithPathStyle(pathStyle bool) Option {
	return func(c *clientConfig) {
		c.PathStyle = pathStyle
	}
}

// WithMaxConnections caps the HTTP connection pool used for transfers.
// Defaults to DefaultMaxConnections. Ignored when a custom HTTP client is
// supplied via WithHTTPClient.
func WithMaxConnections(n int) Option {
	return func(c *clientConfig) {
		if n > 0 {
			c.MaxConnections = n
		}
	}
}

// WithHTTPClient allows providing a custom HTTP client, giving full control
// over transport behavior including timeouts and proxies.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.HTTPClient = client
	}
}

// WithProgress sets a callback invoked after every uploaded object.
func WithProgress(fn ProgressFunc) Option {
	return func(c *clientConfig) {
		c.Progress = fn
	}
}

// ObjectParams carries per-object upload parameters.
type ObjectParams struct {
	// ContentType overrides content-type detection when non-empty.
	ContentType string

	// CacheControl is set verbatim as the object's Cache-Control header
	// when non-empty.
	CacheControl string
}

// ParamsFunc resolves upload parameters for a local file path.
// A nil ParamsFunc and a zero ObjectParams both fall back to content-type
// detection and no cache-control header.
type ParamsFunc func(path string) ObjectParams
