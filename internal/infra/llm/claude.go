package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"ai-toolkit/internal/resilience/circuitbreaker"
	"ai-toolkit/internal/resilience/retry"
	"ai-toolkit/internal/usecase/assistant"
	"ai-toolkit/internal/utils/text"
)

// Claude implements assistant.Provider using Anthropic's Claude API.
// It includes circuit breaker and retry logic for improved reliability.
type Claude struct {
	client          anthropic.Client
	circuitBreaker  *circuitbreaker.CircuitBreaker
	retryConfig     retry.Config
	config          Config
	metricsRecorder CallMetricsRecorder
}

// NewClaude creates a new Claude provider.
// SDK-level retries are disabled; retries go through retry.Do.
func NewClaude(cfg Config) *Claude {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	slog.Info("Initialized Claude assistant provider",
		slog.String("model", cfg.Model),
		slog.Int("max_tokens", cfg.MaxTokens))

	return &Claude{
		client:          anthropic.NewClient(opts...),
		circuitBreaker:  circuitbreaker.New(circuitbreaker.AssistantConfig(ProviderClaude)),
		retryConfig:     retry.AssistantConfig(ProviderClaude),
		config:          cfg,
		metricsRecorder: NewPrometheusCallMetrics(),
	}
}

// BreakerState reports the circuit breaker state ("closed", "half-open" or "open").
func (c *Claude) BreakerState() string {
	return c.circuitBreaker.StateName()
}

// Name implements assistant.Provider.
func (c *Claude) Name() string {
	return ProviderClaude
}

// Complete sends the prompt to Claude and returns the concatenated text blocks.
func (c *Claude) Complete(ctx context.Context, prompt assistant.Prompt) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	reply, err := callWithResilience(ctx, c.circuitBreaker, c.retryConfig, func() (string, error) {
		return c.doComplete(ctx, prompt)
	})
	if err != nil {
		return "", fmt.Errorf("claude completion failed: %w", err)
	}
	return reply, nil
}

// doComplete performs the actual API call without retry or circuit breaker.
func (c *Claude) doComplete(ctx context.Context, prompt assistant.Prompt) (string, error) {
	start := time.Now()

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.config.Model),
		MaxTokens: int64(c.config.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt.User)),
		},
	}
	if prompt.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: prompt.System}}
	}

	message, err := c.client.Messages.New(ctx, params)
	duration := time.Since(start)

	if err != nil {
		c.metricsRecorder.RecordCall(ProviderClaude, duration, false)
		slog.ErrorContext(ctx, "Claude completion failed",
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("claude api error: %w", statusError(apiErr.StatusCode, apiErr.Response, err))
		}
		return "", fmt.Errorf("claude api error: %w", err)
	}

	var b strings.Builder
	for _, block := range message.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			b.WriteString(tb.Text)
		}
	}
	reply := b.String()
	if strings.TrimSpace(reply) == "" {
		c.metricsRecorder.RecordCall(ProviderClaude, duration, false)
		slog.ErrorContext(ctx, "Claude API returned empty response",
			slog.Duration("duration", duration))
		return "", assistant.ErrEmptyCompletion
	}

	c.metricsRecorder.RecordCall(ProviderClaude, duration, true)
	c.metricsRecorder.RecordReplyLength(ProviderClaude, text.CountRunes(reply))
	slog.InfoContext(ctx, "Claude completion succeeded",
		slog.Int("reply_length", text.CountRunes(reply)),
		slog.Duration("duration", duration))

	return reply, nil
}
