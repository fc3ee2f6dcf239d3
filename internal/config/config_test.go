package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"VENDORCTL_API_BASE_URL", "VENDORCTL_PAGE_SIZE", "VENDORCTL_REQUEST_TIMEOUT",
		"VENDORCTL_SEARCH_DEBOUNCE", "VENDORCTL_LOG_LEVEL", "VENDORCTL_LOG_FILE",
		"VENDORCTL_STUB_ADDR",
	} {
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, 50, cfg.PageSize)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 300*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":8000", cfg.StubAddr)
}

func TestLoadYAMLFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api_base_url: https://vendors.internal:9443
page_size: 25
search_debounce: 150ms
log_level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://vendors.internal:9443", cfg.APIBaseURL)
	assert.Equal(t, 25, cfg.PageSize)
	assert.Equal(t, 150*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, "debug", cfg.LogLevel)
	// untouched keys keep their defaults
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_base_url: http://from-file:8000\n"), 0o644))

	os.Setenv("VENDORCTL_API_BASE_URL", "http://from-env:8000")
	os.Setenv("VENDORCTL_PAGE_SIZE", "100")
	defer clearEnv(t)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:8000", cfg.APIBaseURL)
	assert.Equal(t, 100, cfg.PageSize)
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty base url", func(c *Config) { c.APIBaseURL = "" }},
		{"zero page size", func(c *Config) { c.PageSize = 0 }},
		{"negative page size", func(c *Config) { c.PageSize = -1 }},
		{"zero timeout", func(c *Config) { c.RequestTimeout = 0 }},
		{"zero debounce", func(c *Config) { c.SearchDebounce = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, Default().Validate())
}
