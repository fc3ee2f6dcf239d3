// Package config loads vendorctl configuration: built-in defaults, then an
// optional YAML file, then VENDORCTL_* environment variables, each layer
// overriding the previous one.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const envPrefix = "vendorctl"

// Config holds everything the client and the contract stub need.
type Config struct {
	// APIBaseURL is the vendor backend the client talks to.
	APIBaseURL string `yaml:"api_base_url" envconfig:"API_BASE_URL"`
	// PageSize is the fixed table page length.
	PageSize int `yaml:"page_size" envconfig:"PAGE_SIZE"`
	// RequestTimeout bounds every API call.
	RequestTimeout time.Duration `yaml:"request_timeout" envconfig:"REQUEST_TIMEOUT"`
	// SearchDebounce is the quiet period before typed search takes effect.
	SearchDebounce time.Duration `yaml:"search_debounce" envconfig:"SEARCH_DEBOUNCE"`
	// LogLevel is debug, info, warn or error.
	LogLevel string `yaml:"log_level" envconfig:"LOG_LEVEL"`
	// LogFile receives client logs; empty discards them (the interactive
	// UI owns the terminal).
	LogFile string `yaml:"log_file" envconfig:"LOG_FILE"`
	// StubAddr is the listen address of `vendorctl stub`.
	StubAddr string `yaml:"stub_addr" envconfig:"STUB_ADDR"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		APIBaseURL:     "http://localhost:8000",
		PageSize:       50,
		RequestTimeout: 10 * time.Second,
		SearchDebounce: 300 * time.Millisecond,
		LogLevel:       "info",
		StubAddr:       ":8000",
	}
}

// Load builds the configuration. path may be empty, in which case only
// defaults and environment apply; a non-empty path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate rejects values the rest of the program cannot work with.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("api_base_url must not be empty")
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page_size must be positive, got %d", c.PageSize)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %v", c.RequestTimeout)
	}
	if c.SearchDebounce <= 0 {
		return fmt.Errorf("search_debounce must be positive, got %v", c.SearchDebounce)
	}
	return nil
}
