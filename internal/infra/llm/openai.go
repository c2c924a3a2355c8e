package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"ai-toolkit/internal/resilience/circuitbreaker"
	"ai-toolkit/internal/resilience/retry"
	"ai-toolkit/internal/usecase/assistant"
	"ai-toolkit/internal/utils/text"
)

// OpenAI implements assistant.Provider using the OpenAI chat completions API.
// It includes circuit breaker and retry logic for improved reliability.
type OpenAI struct {
	client          *openai.Client
	circuitBreaker  *circuitbreaker.CircuitBreaker
	retryConfig     retry.Config
	config          Config
	metricsRecorder CallMetricsRecorder
}

// NewOpenAI creates a new OpenAI provider.
func NewOpenAI(cfg Config) *OpenAI {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	slog.Info("Initialized OpenAI assistant provider",
		slog.String("model", cfg.Model),
		slog.Int("max_tokens", cfg.MaxTokens))

	return &OpenAI{
		client:          openai.NewClientWithConfig(clientCfg),
		circuitBreaker:  circuitbreaker.New(circuitbreaker.AssistantConfig(ProviderOpenAI)),
		retryConfig:     retry.AssistantConfig(ProviderOpenAI),
		config:          cfg,
		metricsRecorder: NewPrometheusCallMetrics(),
	}
}

// BreakerState reports the circuit breaker state ("closed", "half-open" or "open").
func (o *OpenAI) BreakerState() string {
	return o.circuitBreaker.StateName()
}

// Name implements assistant.Provider.
func (o *OpenAI) Name() string {
	return ProviderOpenAI
}

// Complete sends the prompt as a system and a user message and returns the
// first choice.
func (o *OpenAI) Complete(ctx context.Context, prompt assistant.Prompt) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.config.Timeout)
	defer cancel()

	reply, err := callWithResilience(ctx, o.circuitBreaker, o.retryConfig, func() (string, error) {
		return o.doComplete(ctx, prompt)
	})
	if err != nil {
		return "", fmt.Errorf("openai completion failed: %w", err)
	}
	return reply, nil
}

// doComplete performs the actual API call without retry or circuit breaker.
func (o *OpenAI) doComplete(ctx context.Context, prompt assistant.Prompt) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if prompt.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: prompt.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt.User,
	})

	start := time.Now()
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     o.config.Model,
		MaxTokens: o.config.MaxTokens,
		Messages:  messages,
	})
	duration := time.Since(start)

	if err != nil {
		o.metricsRecorder.RecordCall(ProviderOpenAI, duration, false)
		slog.ErrorContext(ctx, "OpenAI completion failed",
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("openai api error: %w", statusError(apiErr.HTTPStatusCode, nil, err))
		}
		var reqErr *openai.RequestError
		if errors.As(err, &reqErr) {
			return "", fmt.Errorf("openai api error: %w", statusError(reqErr.HTTPStatusCode, nil, err))
		}
		return "", fmt.Errorf("openai api error: %w", err)
	}

	// Validate response structure (safety check to prevent panic on array access)
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		o.metricsRecorder.RecordCall(ProviderOpenAI, duration, false)
		slog.ErrorContext(ctx, "OpenAI API returned empty response",
			slog.Duration("duration", duration))
		return "", assistant.ErrEmptyCompletion
	}

	reply := resp.Choices[0].Message.Content
	o.metricsRecorder.RecordCall(ProviderOpenAI, duration, true)
	o.metricsRecorder.RecordReplyLength(ProviderOpenAI, text.CountRunes(reply))
	slog.InfoContext(ctx, "OpenAI completion succeeded",
		slog.Int("reply_length", text.CountRunes(reply)),
		slog.Duration("duration", duration))

	return reply, nil
}
