// Package llm provides the remote language model adapters behind the assistant.
// It includes adapters for Claude (Anthropic) and OpenAI APIs with reliability
// patterns (circuit breaker, retry with backoff) and a Noop provider for
// deployments without API keys.
package llm

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	openai "github.com/sashabaranov/go-openai"

	"ai-toolkit/pkg/config"
)

const (
	// ProviderClaude selects the Anthropic Claude adapter.
	ProviderClaude = "claude"
	// ProviderOpenAI selects the OpenAI adapter.
	ProviderOpenAI = "openai"
	// ProviderNoop selects the Noop provider.
	ProviderNoop = "noop"

	minMaxTokens = 64
	maxMaxTokens = 8192
)

// Config holds configuration for a language model provider.
// Configuration is loaded from environment variables with fallback to defaults.
type Config struct {
	// Provider is one of "claude", "openai" or "noop".
	Provider string

	// APIKey authenticates against the provider API.
	APIKey string

	// Model is the provider model identifier.
	Model string

	// MaxTokens is the maximum number of tokens for the API response.
	MaxTokens int

	// Timeout is the maximum duration for a single API call.
	Timeout time.Duration

	// BaseURL overrides the provider endpoint (proxies, tests). Empty uses the SDK default.
	BaseURL string
}

// LoadConfig loads provider configuration from environment variables.
//
// Environment variables:
//   - ASSISTANT_TYPE: claude, openai or noop (default: noop)
//   - ANTHROPIC_API_KEY / OPENAI_API_KEY: API key for the selected provider
//   - ASSISTANT_MODEL: model override (default depends on provider)
//   - ASSISTANT_MAX_TOKENS: response token cap (default: 1024, range: 64-8192)
//   - ASSISTANT_TIMEOUT: per-call timeout (default: 60s)
//   - ASSISTANT_BASE_URL: endpoint override
func LoadConfig() Config {
	provider := strings.ToLower(config.GetEnvString("ASSISTANT_TYPE", ProviderNoop))

	cfg := Config{
		Provider:  provider,
		MaxTokens: config.GetEnvInt("ASSISTANT_MAX_TOKENS", 1024),
		Timeout:   config.GetEnvDuration("ASSISTANT_TIMEOUT", 60*time.Second),
		BaseURL:   config.GetEnvString("ASSISTANT_BASE_URL", ""),
	}

	switch provider {
	case ProviderClaude:
		cfg.APIKey = config.GetEnvString("ANTHROPIC_API_KEY", "")
		cfg.Model = config.GetEnvString("ASSISTANT_MODEL", string(anthropic.ModelClaudeSonnet4_5_20250929))
	case ProviderOpenAI:
		cfg.APIKey = config.GetEnvString("OPENAI_API_KEY", "")
		cfg.Model = config.GetEnvString("ASSISTANT_MODEL", openai.GPT4oMini)
	}

	if cfg.MaxTokens < minMaxTokens || cfg.MaxTokens > maxMaxTokens {
		slog.Warn("ASSISTANT_MAX_TOKENS out of valid range, using default",
			slog.Int("value", cfg.MaxTokens),
			slog.Int("min", minMaxTokens),
			slog.Int("max", maxMaxTokens),
			slog.Int("default", 1024))
		cfg.MaxTokens = 1024
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderNoop:
		return nil
	case ProviderClaude, ProviderOpenAI:
	default:
		return fmt.Errorf("invalid provider %q: expected claude, openai or noop", c.Provider)
	}

	if c.APIKey == "" {
		return fmt.Errorf("api key is required for provider %s", c.Provider)
	}
	if c.Model == "" {
		return fmt.Errorf("model cannot be empty")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", c.MaxTokens)
	}
	if err := config.ValidatePositiveDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	return nil
}
