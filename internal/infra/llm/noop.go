package llm

import (
	"context"

	"ai-toolkit/internal/usecase/assistant"
)

// Noop is a provider without a backing model. Every completion fails with
// assistant.ErrProviderDisabled, so callers serve their fallback replies.
// This is useful for local development and demos without API keys.
type Noop struct{}

// NewNoop creates a new Noop provider.
func NewNoop() *Noop {
	return &Noop{}
}

// Complete always returns assistant.ErrProviderDisabled.
func (n *Noop) Complete(_ context.Context, _ assistant.Prompt) (string, error) {
	return "", assistant.ErrProviderDisabled
}

// Name implements assistant.Provider.
func (n *Noop) Name() string {
	return ProviderNoop
}
