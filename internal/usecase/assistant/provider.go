// Package assistant implements the document Q&A and website chat use cases.
//
// Both operations build a prompt, hand it to a remote language model through
// the Provider interface and shape the reply for the front end. A provider
// failure never surfaces as an error: the caller receives the fallback reply
// with Success set to false, which the chat UI renders as a normal message.
package assistant

import "context"

// Prompt is a single-turn request to a language model.
type Prompt struct {
	System string
	User   string
}

// Provider is a remote language model that completes a prompt.
// Implementations live in internal/infra/llm.
type Provider interface {
	// Complete returns the model's text reply for the prompt.
	Complete(ctx context.Context, prompt Prompt) (string, error)

	// Name identifies the provider in logs and metrics ("claude", "openai", "noop").
	Name() string
}

// DocumentExtractor converts markup documents (HTML, XML) into plain text.
type DocumentExtractor interface {
	ExtractText(content string) (string, error)
}
