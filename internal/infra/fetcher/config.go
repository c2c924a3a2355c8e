package fetcher

import (
	"fmt"
	"time"

	"ai-toolkit/pkg/config"
)

// Config holds configuration for URL ingestion.
type Config struct {
	// Enabled turns URL summarization on or off.
	// Env: CONTENT_FETCH_ENABLED (default: true)
	Enabled bool

	// Timeout bounds one HTTP request including redirects.
	// Env: CONTENT_FETCH_TIMEOUT (default: 10s, range: 1s-2m)
	Timeout time.Duration

	// MaxBodySize is the largest response body read, in bytes.
	// Env: CONTENT_FETCH_MAX_BODY_SIZE (default: 10MB, range: 1KB-100MB)
	MaxBodySize int64

	// MaxRedirects is the longest redirect chain followed.
	// Env: CONTENT_FETCH_MAX_REDIRECTS (default: 5, range: 0-10)
	MaxRedirects int

	// DenyPrivateIPs rejects URLs resolving to loopback, private or link-local addresses.
	// Env: CONTENT_FETCH_DENY_PRIVATE_IPS (default: true)
	DenyPrivateIPs bool

	// UserAgent is sent with every request.
	// Env: CONTENT_FETCH_USER_AGENT
	UserAgent string
}

// DefaultConfig returns the default fetch configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:        true,
		Timeout:        10 * time.Second,
		MaxBodySize:    10 * 1024 * 1024, // 10MB
		MaxRedirects:   5,
		DenyPrivateIPs: true,
		UserAgent:      "AIToolkitBot/1.0",
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c Config) Validate() error {
	// A user is waiting on the summary, so long fetches are refused outright.
	if err := config.ValidateDurationRange(c.Timeout, time.Second, 2*time.Minute); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}

	minBodySize := int64(1024)              // 1KB
	maxBodySize := int64(100 * 1024 * 1024) // 100MB
	if c.MaxBodySize < minBodySize || c.MaxBodySize > maxBodySize {
		return fmt.Errorf("max body size must be between %d and %d bytes, got %d", minBodySize, maxBodySize, c.MaxBodySize)
	}

	if c.MaxRedirects < 0 || c.MaxRedirects > 10 {
		return fmt.Errorf("max redirects must be between 0 and 10, got %d", c.MaxRedirects)
	}

	return nil
}

// LoadConfigFromEnv loads the fetch configuration from environment variables,
// falling back to defaults for unset or malformed values.
func LoadConfigFromEnv() (Config, error) {
	def := DefaultConfig()
	cfg := Config{
		Enabled:        config.GetEnvBool("CONTENT_FETCH_ENABLED", def.Enabled),
		Timeout:        config.GetEnvDuration("CONTENT_FETCH_TIMEOUT", def.Timeout),
		MaxBodySize:    int64(config.GetEnvInt("CONTENT_FETCH_MAX_BODY_SIZE", int(def.MaxBodySize))),
		MaxRedirects:   config.GetEnvInt("CONTENT_FETCH_MAX_REDIRECTS", def.MaxRedirects),
		DenyPrivateIPs: config.GetEnvBool("CONTENT_FETCH_DENY_PRIVATE_IPS", def.DenyPrivateIPs),
		UserAgent:      config.GetEnvString("CONTENT_FETCH_USER_AGENT", def.UserAgent),
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}
