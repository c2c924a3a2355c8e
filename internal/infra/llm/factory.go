package llm

import (
	"fmt"
	"log/slog"

	"ai-toolkit/internal/usecase/assistant"
)

// New creates the provider selected by cfg.
func New(cfg Config) (assistant.Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid assistant configuration: %w", err)
	}

	switch cfg.Provider {
	case ProviderClaude:
		return NewClaude(cfg), nil
	case ProviderOpenAI:
		return NewOpenAI(cfg), nil
	default:
		slog.Info("Using noop assistant provider, replies will fall back")
		return NewNoop(), nil
	}
}
