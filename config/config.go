// Package config loads settings for the bucketadmin command line tool.
//
// Settings come from an optional YAML file and may be overridden by
// AK_ADMIN_* environment variables. AWS credentials themselves are not
// handled here; the SDK's default credential chain provides them.
package config

import (
	"fmt"
	"os"
	"strconv"

	"go.yaml.in/yaml/v3"
)

// Config holds all settings for the admin tool.
type Config struct {
	// Bucket is the name of the bucket operated on.
	Bucket string `yaml:"bucket"`

	// Region is the AWS region. Empty uses the credential chain's default.
	Region string `yaml:"region"`

	// Endpoint is an optional custom endpoint for S3-compatible stores.
	Endpoint string `yaml:"endpoint"`

	// ForcePathStyle switches to path-style addressing, required by most
	// S3-compatible services.
	ForcePathStyle bool `yaml:"force_path_style"`

	// Log configures progress output.
	Log LogConfig `yaml:"log"`
}

// LogConfig configures the progress logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the YAML file at path (skipped when path is empty or the file
// does not exist) and then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("config: read %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides fields from AK_ADMIN_* environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("AK_ADMIN_BUCKET"); v != "" {
		c.Bucket = v
	}
	if v := os.Getenv("AK_ADMIN_REGION"); v != "" {
		c.Region = v
	}
	if v := os.Getenv("AK_ADMIN_ENDPOINT"); v != "" {
		c.Endpoint = v
	}
	if v := os.Getenv("AK_ADMIN_FORCE_PATH_STYLE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.ForcePathStyle = b
		}
	}
	if v := os.Getenv("AK_ADMIN_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("AK_ADMIN_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
}
