package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, `{
		"port": 9090,
		"output_dir": "out",
		"concurrency": 8,
		"use_browser": true,
		"fetch_timeout_seconds": 45,
		"verbose": true,
		"max_body_bytes": 2048
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, Config{
		Port:                9090,
		OutputDir:           "out",
		Concurrency:         8,
		UseBrowser:          true,
		FetchTimeoutSeconds: 45,
		Verbose:             true,
		MaxBodyBytes:        2048,
	}, *cfg)
	assert.Equal(t, 45*time.Second, cfg.FetchTimeout())
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{ invalid json }`))
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "invalid config file")
}

func TestLoadConfig_SchemaViolation(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{"port": "eighty", "api_key": "x"}`))
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestLoadConfig_RelativePath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rel.json"), []byte(`{"concurrency": 2}`), 0644))
	t.Chdir(dir)

	cfg, err := LoadConfig("rel.json")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Concurrency)
}

func TestValidate(t *testing.T) {
	fileAsDir := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(fileAsDir, nil, 0644))

	tests := []struct {
		name    string
		cfg     Config
		message string
	}{
		{name: "defaults", cfg: Defaults()},
		{name: "zero value", cfg: Config{}},
		{name: "missing output dir is allowed", cfg: Config{OutputDir: filepath.Join(t.TempDir(), "later")}},
		{name: "port too large", cfg: Config{Port: 70000}, message: "'port'"},
		{name: "negative port", cfg: Config{Port: -1}, message: "'port'"},
		{name: "negative concurrency", cfg: Config{Concurrency: -2}, message: "'concurrency'"},
		{name: "negative timeout", cfg: Config{FetchTimeoutSeconds: -1}, message: "'fetch_timeout_seconds'"},
		{name: "negative body limit", cfg: Config{MaxBodyBytes: -1}, message: "'max_body_bytes'"},
		{name: "output dir is a file", cfg: Config{OutputDir: fileAsDir}, message: "not a directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.message == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{
		Port:    9000,
		Verbose: true,
	}

	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, 9000, merged.Port)
	assert.Equal(t, DefaultOutputDir, merged.OutputDir)
	assert.Equal(t, DefaultConcurrency, merged.Concurrency)
	assert.Equal(t, DefaultFetchTimeoutSeconds, merged.FetchTimeoutSeconds)
	assert.Equal(t, int64(DefaultMaxBodyBytes), merged.MaxBodyBytes)
	assert.True(t, merged.Verbose)
	assert.False(t, merged.UseBrowser)

	// the receiver is not modified
	assert.Equal(t, 0, cfg.Concurrency)
}

func TestMergeWithDefaults_BoolsFromEitherSide(t *testing.T) {
	cfg := Config{}
	merged := cfg.MergeWithDefaults(Config{UseBrowser: true})
	assert.True(t, merged.UseBrowser)
	assert.False(t, merged.Verbose)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{Port: 8080, OutputDir: "docs"}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, cfg, merged)
}
