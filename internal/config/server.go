// Package config loads the API server configuration from environment
// variables and the optional YAML key point vocabulary file.
package config

import (
	"errors"
	"fmt"
	"net/netip"
	"time"

	"github.com/robfig/cron/v3"

	"ai-toolkit/internal/usecase/assistant"
	"ai-toolkit/internal/usecase/summarize"
	envconfig "ai-toolkit/pkg/config"
)

// ServerConfig holds configuration for the API server.
type ServerConfig struct {
	// Addr is the listen address.
	// Env: API_ADDR (default: ":8080")
	Addr string

	// Version is reported by /health.
	// Env: VERSION (default: "dev")
	Version string

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SHUTDOWN_TIMEOUT (default: 10s)
	ShutdownTimeout time.Duration

	// RequestTimeout bounds a single request. It must leave room for a
	// remote assistant call.
	// Env: REQUEST_TIMEOUT (default: 90s)
	RequestTimeout time.Duration

	// MaxBodyBytes limits request bodies.
	// Env: MAX_REQUEST_BODY_BYTES (default: 1MB)
	MaxBodyBytes int64

	// CORSAllowedOrigins lists origins allowed to call the API from a browser.
	// Env: CORS_ALLOWED_ORIGINS (comma separated, default: "*")
	CORSAllowedOrigins []string

	RateLimit RateLimitConfig

	// TraceSampleRatio is the fraction of new traces that are sampled.
	// Env: TRACE_SAMPLE_RATIO (default: 1.0)
	TraceSampleRatio float64

	// MaxSessions bounds the summarizer's latest-request table.
	// Env: SUMMARIZE_MAX_SESSIONS (default: 10000)
	MaxSessions int

	Summarize summarize.Config
	Assistant assistant.Config

	// KeyPointFile is an optional YAML file overriding the key point vocabulary.
	// Env: KEYPOINT_CONFIG_FILE
	KeyPointFile string

	// KeyPointReloadSchedule is a cron expression for re-reading KeyPointFile.
	// Empty disables reloading.
	// Env: KEYPOINT_CONFIG_RELOAD
	KeyPointReloadSchedule string
}

// RateLimitConfig configures the per-IP token bucket limiter.
type RateLimitConfig struct {
	// Env: RATE_LIMIT_ENABLED (default: true)
	Enabled bool
	// RequestsPerMinute is the sustained rate per client IP.
	// Env: RATE_LIMIT_PER_MINUTE (default: 60)
	RequestsPerMinute int
	// Burst is the bucket size.
	// Env: RATE_LIMIT_BURST (default: 10)
	Burst int
	// MaxClients bounds the number of tracked IPs; the least recently seen are evicted.
	// Env: RATE_LIMIT_MAX_CLIENTS (default: 10000)
	MaxClients int
	// TrustedProxies lists proxy IPs or CIDRs whose X-Forwarded-For header is
	// honored when identifying the client.
	// Env: RATE_LIMIT_TRUSTED_PROXIES (comma separated, default: none)
	TrustedProxies []string
}

// DefaultServerConfig returns the configuration used when no environment
// variables are set.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:               ":8080",
		Version:            "dev",
		ShutdownTimeout:    10 * time.Second,
		RequestTimeout:     90 * time.Second,
		MaxBodyBytes:       1 << 20,
		CORSAllowedOrigins: []string{"*"},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerMinute: 60,
			Burst:             10,
			MaxClients:        10000,
		},
		TraceSampleRatio: 1,
		MaxSessions:      summarize.DefaultMaxSessions,
		Summarize:        summarize.DefaultConfig(),
		Assistant:        assistant.DefaultConfig(),
	}
}

// LoadServerConfig reads the server configuration from the environment.
func LoadServerConfig() (*ServerConfig, error) {
	def := DefaultServerConfig()
	cfg := &ServerConfig{
		Addr:               envconfig.GetEnvString("API_ADDR", def.Addr),
		Version:            envconfig.GetEnvString("VERSION", def.Version),
		ShutdownTimeout:    envconfig.GetEnvDuration("SHUTDOWN_TIMEOUT", def.ShutdownTimeout),
		RequestTimeout:     envconfig.GetEnvDuration("REQUEST_TIMEOUT", def.RequestTimeout),
		MaxBodyBytes:       int64(envconfig.GetEnvInt("MAX_REQUEST_BODY_BYTES", int(def.MaxBodyBytes))),
		CORSAllowedOrigins: envconfig.GetEnvStringList("CORS_ALLOWED_ORIGINS", def.CORSAllowedOrigins),
		RateLimit: RateLimitConfig{
			Enabled:           envconfig.GetEnvBool("RATE_LIMIT_ENABLED", def.RateLimit.Enabled),
			RequestsPerMinute: envconfig.GetEnvInt("RATE_LIMIT_PER_MINUTE", def.RateLimit.RequestsPerMinute),
			Burst:             envconfig.GetEnvInt("RATE_LIMIT_BURST", def.RateLimit.Burst),
			MaxClients:        envconfig.GetEnvInt("RATE_LIMIT_MAX_CLIENTS", def.RateLimit.MaxClients),
			TrustedProxies:    envconfig.GetEnvStringList("RATE_LIMIT_TRUSTED_PROXIES", nil),
		},
		TraceSampleRatio: envconfig.GetEnvFloat("TRACE_SAMPLE_RATIO", def.TraceSampleRatio),
		MaxSessions:      envconfig.GetEnvInt("SUMMARIZE_MAX_SESSIONS", def.MaxSessions),
		Summarize: summarize.Config{
			MinInputChars:    def.Summarize.MinInputChars,
			MaxInputChars:    envconfig.GetEnvInt("SUMMARIZE_MAX_INPUT_CHARS", def.Summarize.MaxInputChars),
			BatchParallelism: envconfig.GetEnvInt("SUMMARIZE_BATCH_PARALLELISM", def.Summarize.BatchParallelism),
			MaxBatchSize:     envconfig.GetEnvInt("SUMMARIZE_MAX_BATCH_SIZE", def.Summarize.MaxBatchSize),
		},
		Assistant: assistant.Config{
			MaxInputChars:    envconfig.GetEnvInt("ASSISTANT_MAX_INPUT_CHARS", def.Assistant.MaxInputChars),
			MaxDocuments:     envconfig.GetEnvInt("ASSISTANT_MAX_DOCUMENTS", def.Assistant.MaxDocuments),
			MaxDocumentChars: envconfig.GetEnvInt("ASSISTANT_MAX_DOCUMENT_CHARS", def.Assistant.MaxDocumentChars),
			Timeout:          envconfig.GetEnvDuration("ASSISTANT_TIMEOUT", def.Assistant.Timeout),
		},
		KeyPointFile:           envconfig.GetEnvString("KEYPOINT_CONFIG_FILE", ""),
		KeyPointReloadSchedule: envconfig.GetEnvString("KEYPOINT_CONFIG_RELOAD", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks configuration correctness.
func (c *ServerConfig) Validate() error {
	var errs []error

	if c.Addr == "" {
		errs = append(errs, errors.New("API_ADDR cannot be empty"))
	}
	if err := envconfig.ValidatePositiveDuration(c.ShutdownTimeout); err != nil {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err))
	}
	if err := envconfig.ValidatePositiveDuration(c.RequestTimeout); err != nil {
		errs = append(errs, fmt.Errorf("REQUEST_TIMEOUT: %w", err))
	}
	if c.MaxBodyBytes < 1024 || c.MaxBodyBytes > 16<<20 {
		errs = append(errs, fmt.Errorf("MAX_REQUEST_BODY_BYTES must be between 1KB and 16MB, got %d", c.MaxBodyBytes))
	}
	if len(c.CORSAllowedOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS cannot be empty"))
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerMinute <= 0 {
			errs = append(errs, errors.New("RATE_LIMIT_PER_MINUTE must be positive"))
		}
		if c.RateLimit.Burst <= 0 {
			errs = append(errs, errors.New("RATE_LIMIT_BURST must be positive"))
		}
		if c.RateLimit.MaxClients <= 0 {
			errs = append(errs, errors.New("RATE_LIMIT_MAX_CLIENTS must be positive"))
		}
		for _, p := range c.RateLimit.TrustedProxies {
			if !validProxy(p) {
				errs = append(errs, fmt.Errorf("RATE_LIMIT_TRUSTED_PROXIES entry %q is invalid: must be an IP or CIDR", p))
			}
		}
	}
	if c.TraceSampleRatio < 0 || c.TraceSampleRatio > 1 {
		errs = append(errs, fmt.Errorf("TRACE_SAMPLE_RATIO must be between 0 and 1, got %g", c.TraceSampleRatio))
	}
	if c.MaxSessions <= 0 {
		errs = append(errs, errors.New("SUMMARIZE_MAX_SESSIONS must be positive"))
	}
	if c.Summarize.MaxInputChars < c.Summarize.MinInputChars {
		errs = append(errs, fmt.Errorf("SUMMARIZE_MAX_INPUT_CHARS must be at least %d", c.Summarize.MinInputChars))
	}
	if c.Summarize.BatchParallelism <= 0 {
		errs = append(errs, errors.New("SUMMARIZE_BATCH_PARALLELISM must be positive"))
	}
	if c.Summarize.MaxBatchSize <= 0 {
		errs = append(errs, errors.New("SUMMARIZE_MAX_BATCH_SIZE must be positive"))
	}
	if c.Assistant.MaxInputChars <= 0 {
		errs = append(errs, errors.New("ASSISTANT_MAX_INPUT_CHARS must be positive"))
	}
	if c.Assistant.MaxDocuments <= 0 {
		errs = append(errs, errors.New("ASSISTANT_MAX_DOCUMENTS must be positive"))
	}
	if c.Assistant.MaxDocumentChars <= 0 {
		errs = append(errs, errors.New("ASSISTANT_MAX_DOCUMENT_CHARS must be positive"))
	}
	if err := envconfig.ValidatePositiveDuration(c.Assistant.Timeout); err != nil {
		errs = append(errs, fmt.Errorf("ASSISTANT_TIMEOUT: %w", err))
	}
	if c.KeyPointReloadSchedule != "" {
		if c.KeyPointFile == "" {
			errs = append(errs, errors.New("KEYPOINT_CONFIG_RELOAD requires KEYPOINT_CONFIG_FILE"))
		}
		if _, err := cron.ParseStandard(c.KeyPointReloadSchedule); err != nil {
			errs = append(errs, fmt.Errorf("KEYPOINT_CONFIG_RELOAD is invalid: %w", err))
		}
	}

	return errors.Join(errs...)
}

func validProxy(s string) bool {
	if _, err := netip.ParsePrefix(s); err == nil {
		return true
	}
	_, err := netip.ParseAddr(s)
	return err == nil
}
