package admin

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/input-output-hk/catalyst-forge-libs/fs"
	"github.com/rs/zerolog"
)

// clientConfig collects the settings applied by Options before the SDK
// client is constructed.
type clientConfig struct {
	region          string
	endpoint        string
	forcePathStyle  bool
	maxRetries      int
	timeout         time.Duration
	customAWSConfig *aws.Config
	filesystem      fs.Filesystem
	logger          *zerolog.Logger
	sniff           bool
}

// Option configures a Client.
type Option func(*clientConfig)

// WithRegion sets the AWS region for bucket operations.
// If not specified, uses the default region from the credential chain.
func WithRegion(region string) Option {
	return func(c *clientConfig) {
		c.region = region
	}
}

// WithEndpoint sets a custom S3 endpoint URL.
// Useful for S3-compatible services or local testing with MinIO/LocalStack.
func WithEndpoint(endpoint string) Option {
	return func(c *clientConfig) {
		c.endpoint = endpoint
	}
}

// WithForcePathStyle forces path-style URLs instead of virtual-hosted style.
// Required for most S3-compatible services.
func WithForcePathStyle(forcePathStyle bool) Option {
	return func(c *clientConfig) {
		c.forcePathStyle = forcePathStyle
	}
}

// WithMaxRetries sets the maximum number of retry attempts for failed
// operations. Default is 3.
func WithMaxRetries(maxRetries int) Option {
	return func(c *clientConfig) {
		c.maxRetries = maxRetries
	}
}

// WithTimeout sets the timeout for individual remote operations.
// Default is no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithAWSConfig provides a custom AWS configuration, overriding the default
// credential chain loading.
func WithAWSConfig(config *aws.Config) Option {
	return func(c *clientConfig) {
		c.customAWSConfig = config
	}
}

// WithFilesystem sets a custom filesystem implementation for local file
// operations. If not specified, defaults to the OS filesystem.
func WithFilesystem(filesystem fs.Filesystem) Option {
	return func(c *clientConfig) {
		c.filesystem = filesystem
	}
}

// WithLogger sets the logger used for per-item progress output.
// Without it the client is silent.
func WithLogger(log zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = &log
	}
}

// WithContentSniffing enables content-based type detection for files whose
// extension has no entry in the fixed content-type table. Off by default:
// unmapped extensions upload as application/octet-stream.
func WithContentSniffing(enabled bool) Option {
	return func(c *clientConfig) {
		c.sniff = enabled
	}
}
