// Package s3 provides client initialization and configuration.
package s3

import (
	"context"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const (
	// DefaultRegion is used when no region option is supplied.
	DefaultRegion = "us-east-1"

	// DefaultMaxConnections caps the HTTP connection pool for transfers.
	DefaultMaxConnections = 20
)

// S3API defines the subset of the AWS SDK S3 client used by this package.
// It exists so tests can substitute a mock transport.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Client is a thin upload-oriented wrapper around the AWS SDK S3 service.
type Client struct {
	api      S3API
	progress ProgressFunc
}

// New creates a new S3 client with the provided options.
//
// Example:
//
//	client, err := s3.New(
//	    s3.WithRegion("eu-west-1"),
//	    s3.WithCredentials(accessKey, secretKey),
//	)
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		Region:         DefaultRegion,
		MaxConnections: DefaultMaxConnections,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}

	if cfg.AccessKey != "" || cfg.SecretKey != "" {
		if cfg.AccessKey == "" || cfg.SecretKey == "" {
			return nil, NewError("client initialization", ErrInvalidCredentials).
				WithMessage("both access key and secret key are required")
		}
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	// The connection pool cap is explicit configuration rather than a
	// tweak to the process-wide default transport.
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        cfg.MaxConnections,
				MaxIdleConnsPerHost: cfg.MaxConnections,
				MaxConnsPerHost:     cfg.MaxConnections,
			},
		}
	}
	loadOpts = append(loadOpts, config.WithHTTPClient(httpClient))

	awsCfg, err := config.LoadDefaultConfig(context.Background(), loadOpts...)
	if err != nil {
		return nil, NewError("client initialization", err)
	}

	var s3Opts []func(*s3.Options)
	if cfg.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}
	if cfg.PathStyle {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.UsePathStyle = true
		})
	}

	return &Client{
		api:      s3.NewFromConfig(awsCfg, s3Opts...),
		progress: cfg.Progress,
	}, nil
}

// NewWithAPI creates a client around a custom S3API implementation.
// This is primarily used for testing with mocked transports.
func NewWithAPI(api S3API, opts ...Option) *Client {
	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Client{
		api:      api,
		progress: cfg.Progress,
	}
}
