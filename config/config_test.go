package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, cfg.Bucket)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadMissingFileIsSkipped(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Bucket)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admin.yaml")
	content := `bucket: ak-energy-data
region: us-west-2
endpoint: http://localhost:9000
force_path_style: true
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ak-energy-data", cfg.Bucket)
	assert.Equal(t, "us-west-2", cfg.Region)
	assert.Equal(t, "http://localhost:9000", cfg.Endpoint)
	assert.True(t, cfg.ForcePathStyle)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admin.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bucket: from-file\nregion: us-east-2\n"), 0o644))

	t.Setenv("AK_ADMIN_BUCKET", "from-env")
	t.Setenv("AK_ADMIN_FORCE_PATH_STYLE", "true")
	t.Setenv("AK_ADMIN_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Bucket)
	assert.Equal(t, "us-east-2", cfg.Region)
	assert.True(t, cfg.ForcePathStyle)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admin.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bucket: [unterminated"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
