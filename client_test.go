package admin

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adminerrors "github.com/RobertLJordan/ak-energy-admin/errors"
	"github.com/RobertLJordan/ak-energy-admin/internal/testutil"
)

func TestNewValidatesBucketName(t *testing.T) {
	tests := []struct {
		name   string
		bucket string
	}{
		{name: "empty", bucket: ""},
		{name: "too short", bucket: "ab"},
		{name: "uppercase", bucket: "My-Bucket"},
		{name: "leading hyphen", bucket: "-bucket"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.bucket)
			require.Error(t, err)
			assert.ErrorIs(t, err, adminerrors.ErrInvalidBucketName)
		})
	}
}

func TestNewWithCustomAWSConfig(t *testing.T) {
	// A custom config bypasses the default credential chain, so this works
	// without any AWS environment.
	client, err := New("my-test-bucket",
		WithAWSConfig(&aws.Config{Region: "eu-west-1"}),
		WithEndpoint("http://localhost:9000"),
		WithForcePathStyle(true),
	)
	require.NoError(t, err)
	assert.Equal(t, "my-test-bucket", client.Bucket())
}

func TestNewWithClientDefaults(t *testing.T) {
	client := NewWithClient("any-bucket", &testutil.MockS3Client{})

	assert.Equal(t, "any-bucket", client.Bucket())
	assert.NotNil(t, client.fs)
	assert.False(t, client.sniff)
}

func TestOptionsApply(t *testing.T) {
	cfg := &clientConfig{}
	for _, opt := range []Option{
		WithRegion("us-west-2"),
		WithEndpoint("http://localhost:9000"),
		WithForcePathStyle(true),
		WithMaxRetries(7),
		WithContentSniffing(true),
	} {
		opt(cfg)
	}

	assert.Equal(t, "us-west-2", cfg.region)
	assert.Equal(t, "http://localhost:9000", cfg.endpoint)
	assert.True(t, cfg.forcePathStyle)
	assert.Equal(t, 7, cfg.maxRetries)
	assert.True(t, cfg.sniff)
}
