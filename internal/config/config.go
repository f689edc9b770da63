// Package config loads and validates the polisearch configuration.
// Values come from built-in defaults, an optional YAML file, and
// POLISEARCH_* environment variables, in increasing priority.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tsim-imai/polisearch/internal/backend"
	"github.com/tsim-imai/polisearch/internal/cache"
)

// Config is the complete polisearch configuration.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Scraper ScraperConfig `yaml:"scraper"`
	Log     LogConfig     `yaml:"log"`
}

// SearchConfig configures the search pipeline.
type SearchConfig struct {
	// Engine is the backend engine name ("bing", "duckduckgo").
	Engine string `yaml:"engine"`

	// MaxResults is the default result limit per search.
	MaxResults int `yaml:"max_results"`

	// CacheSize is the query-result cache capacity (entries).
	CacheSize int `yaml:"cache_size"`

	// CacheTTL is how long cached results stay valid.
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

// ScraperConfig configures the HTTP scraping transport.
type ScraperConfig struct {
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	RetryAttempts     int           `yaml:"retry_attempts"`
	RetryDelay        time.Duration `yaml:"retry_delay"`
	UserAgents        []string      `yaml:"user_agents"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `yaml:"level"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Search: SearchConfig{
			Engine:     backend.DefaultEngine,
			MaxResults: 10,
			CacheSize:  cache.DefaultSize,
			CacheTTL:   cache.DefaultTTL,
		},
		Scraper: ScraperConfig{
			RequestTimeout:    backend.DefaultRequestTimeout,
			RequestsPerSecond: backend.DefaultRequestsPerSecond,
			RetryAttempts:     backend.DefaultRetryAttempts,
			RetryDelay:        backend.DefaultRetryDelay,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from path (optional) and the environment.
// An empty path skips the file; a missing file at an explicit path is an
// error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overrides config values from POLISEARCH_* environment
// variables. Unparsable values are ignored in favor of the current value.
func (c *Config) applyEnv() {
	if v := os.Getenv("POLISEARCH_ENGINE"); v != "" {
		c.Search.Engine = v
	}
	if v := os.Getenv("POLISEARCH_MAX_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Search.MaxResults = n
		}
	}
	if v := os.Getenv("POLISEARCH_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Search.CacheTTL = d
		}
	}
	if v := os.Getenv("POLISEARCH_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// Validate checks the configuration for values the pipeline cannot run
// with.
func (c *Config) Validate() error {
	if c.Search.MaxResults <= 0 {
		return fmt.Errorf("search.max_results must be positive, got %d", c.Search.MaxResults)
	}
	if c.Search.CacheSize <= 0 {
		return fmt.Errorf("search.cache_size must be positive, got %d", c.Search.CacheSize)
	}
	if c.Scraper.RequestsPerSecond <= 0 {
		return fmt.Errorf("scraper.requests_per_second must be positive, got %g", c.Scraper.RequestsPerSecond)
	}
	if c.Scraper.RetryAttempts <= 0 {
		return fmt.Errorf("scraper.retry_attempts must be positive, got %d", c.Scraper.RetryAttempts)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug/info/warn/error, got %q", c.Log.Level)
	}
	return nil
}

// TransportConfig converts the scraper section into backend transport
// tuning.
func (c *Config) TransportConfig() backend.TransportConfig {
	return backend.TransportConfig{
		RequestTimeout:    c.Scraper.RequestTimeout,
		RequestsPerSecond: c.Scraper.RequestsPerSecond,
		RetryAttempts:     c.Scraper.RetryAttempts,
		RetryDelay:        c.Scraper.RetryDelay,
		UserAgents:        c.Scraper.UserAgents,
	}
}
