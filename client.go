// Package admin provides administrative helpers for managing data files
// locally and in a cloud object-storage bucket.
//
// The Client wraps one named S3 bucket and exposes the small set of batch
// operations an operator needs: upload one file, upload a directory, clear a
// prefix, and move a prefix by copy-then-delete. Batch operations are
// sequential and best-effort: the first failure aborts the remaining work
// with no rollback, and the per-item log lines already emitted are the audit
// record of what was applied.
package admin

import (
	"context"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/input-output-hk/catalyst-forge-libs/fs"
	"github.com/input-output-hk/catalyst-forge-libs/fs/billy"
	"github.com/rs/zerolog"

	adminerrors "github.com/RobertLJordan/ak-energy-admin/errors"
	"github.com/RobertLJordan/ak-energy-admin/internal/keyutil"
	"github.com/RobertLJordan/ak-energy-admin/internal/s3api"
	"github.com/RobertLJordan/ak-energy-admin/logging"
)

// Client operates on a single named S3 bucket.
//
// The underlying SDK session is created once at construction; the SDK manages
// connection lifecycle, so there is no teardown beyond letting the client be
// garbage collected.
type Client struct {
	// bucket is the name of the bucket all operations target
	bucket string

	// s3Client is the underlying AWS SDK S3 client
	s3Client s3api.S3API

	// fs is the filesystem abstraction for local file operations
	fs fs.Filesystem

	// log emits one event per unit of work
	log zerolog.Logger

	// sniff enables content-based type detection for unmapped extensions
	sniff bool
}

// New creates a Client for the named bucket. Credentials come from the
// default AWS credential chain unless a custom aws.Config is supplied.
//
// Example:
//
//	client, err := admin.New("ak-energy-data",
//	    admin.WithRegion("us-west-2"),
//	)
func New(bucket string, opts ...Option) (*Client, error) {
	if err := keyutil.ValidateBucketName(bucket); err != nil {
		return nil, err
	}

	clientCfg := &clientConfig{
		maxRetries: 3,
	}
	for _, opt := range opts {
		opt(clientCfg)
	}

	var cfg aws.Config
	var err error
	if clientCfg.customAWSConfig != nil {
		cfg = *clientCfg.customAWSConfig
	} else {
		cfg, err = config.LoadDefaultConfig(context.Background())
		if err != nil {
			return nil, adminerrors.NewError("client initialization", err).WithBucket(bucket)
		}
	}

	if clientCfg.region != "" {
		cfg.Region = clientCfg.region
	} else if cfg.Region == "" {
		cfg.Region = "us-east-1" // AWS default region
	}
	if clientCfg.maxRetries > 0 {
		cfg.RetryMaxAttempts = clientCfg.maxRetries
	}

	var s3Opts []func(*s3.Options)
	if clientCfg.endpoint != "" {
		endpoint := clientCfg.endpoint
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		})
	}
	if clientCfg.forcePathStyle {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.UsePathStyle = true
		})
	}
	if clientCfg.timeout > 0 {
		httpClient := &http.Client{
			Timeout: clientCfg.timeout,
		}
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.HTTPClient = httpClient
		})
	}

	filesystem := clientCfg.filesystem
	if filesystem == nil {
		filesystem = billy.NewOSFS("/")
	}

	log := logging.Nop()
	if clientCfg.logger != nil {
		log = *clientCfg.logger
	}

	return &Client{
		bucket:   bucket,
		s3Client: s3.NewFromConfig(cfg, s3Opts...),
		fs:       filesystem,
		log:      log,
		sniff:    clientCfg.sniff,
	}, nil
}

// NewWithClient creates a Client with a custom S3API implementation.
// This is primarily used for testing with mocked clients.
func NewWithClient(bucket string, s3Client s3api.S3API, opts ...Option) *Client {
	clientCfg := &clientConfig{}
	for _, opt := range opts {
		opt(clientCfg)
	}

	filesystem := clientCfg.filesystem
	if filesystem == nil {
		filesystem = billy.NewOSFS("/")
	}
	log := logging.Nop()
	if clientCfg.logger != nil {
		log = *clientCfg.logger
	}

	return &Client{
		bucket:   bucket,
		s3Client: s3Client,
		fs:       filesystem,
		log:      log,
		sniff:    clientCfg.sniff,
	}
}

// Bucket returns the name of the bucket this client operates on.
func (c *Client) Bucket() string {
	return c.bucket
}

// SetFilesystem replaces the filesystem used for local file operations.
// Useful for tests that run against an in-memory filesystem.
func (c *Client) SetFilesystem(filesystem fs.Filesystem) {
	c.fs = filesystem
}
