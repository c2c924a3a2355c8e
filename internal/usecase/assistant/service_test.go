package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-toolkit/internal/domain/entity"
)

// MockProvider implements Provider for testing.
type MockProvider struct {
	completeFn func(ctx context.Context, prompt Prompt) (string, error)
	prompts    []Prompt
}

func (m *MockProvider) Complete(ctx context.Context, prompt Prompt) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.completeFn != nil {
		return m.completeFn(ctx, prompt)
	}
	return "test answer", nil
}

func (m *MockProvider) Name() string { return "mock" }

// stubExtractor implements DocumentExtractor for testing.
type stubExtractor struct {
	err error
}

func (s stubExtractor) ExtractText(content string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "extracted: " + content, nil
}

var policyDocs = []entity.Document{
	{ID: "1", Name: "shipping.txt", Type: "text/plain", Content: "Shipping times vary by region."},
	{ID: "2", Name: "refunds.md", Type: "text/markdown", Content: "Our refund policy allows returns within 30 days."},
}

func TestService_AnswerQuestion(t *testing.T) {
	provider := &MockProvider{}
	svc := NewService(provider, nil, DefaultConfig())

	reply, err := svc.AnswerQuestion(context.Background(), "  What is the refund policy for orders? ", policyDocs)

	require.NoError(t, err)
	assert.True(t, reply.Success)
	assert.Equal(t, "test answer", reply.Response)
	assert.Equal(t, []string{"refunds.md"}, reply.Sources)
	assert.InDelta(t, 0.7, reply.Confidence, 1e-9)
	assert.Equal(t, []string{
		"Summarize refunds.md",
		"What are the key points in refunds.md?",
		"Ask a follow-up question",
	}, reply.Suggestions)

	require.Len(t, provider.prompts, 1)
	prompt := provider.prompts[0]
	assert.Equal(t, documentQASystemPrompt, prompt.System)
	assert.True(t, strings.HasSuffix(prompt.User, "Question: What is the refund policy for orders?"))
	assert.Less(t, strings.Index(prompt.User, "### refunds.md"), strings.Index(prompt.User, "### shipping.txt"),
		"relevant documents are listed first")
}

func TestService_AnswerQuestion_NoDocuments(t *testing.T) {
	svc := NewService(&MockProvider{}, nil, DefaultConfig())

	reply, err := svc.AnswerQuestion(context.Background(), "Explain retrieval augmented generation", nil)

	require.NoError(t, err)
	assert.True(t, reply.Success)
	assert.Empty(t, reply.Sources)
	assert.NotNil(t, reply.Sources)
	assert.Equal(t, 0.5, reply.Confidence)
	assert.Contains(t, reply.Suggestions, "Upload a document for more specific answers")
}

func TestService_AnswerQuestion_Validation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxInputChars = 10
	cfg.MaxDocuments = 1
	svc := NewService(&MockProvider{}, nil, cfg)

	tests := []struct {
		name     string
		question string
		docs     []entity.Document
		wantErr  error
	}{
		{name: "empty", question: "   ", wantErr: ErrQuestionRequired},
		{name: "too long", question: "this question is too long", wantErr: ErrInputTooLong},
		{name: "too many documents", question: "why?", docs: policyDocs, wantErr: ErrTooManyDocuments},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, err := svc.AnswerQuestion(context.Background(), tt.question, tt.docs)
			assert.Nil(t, reply)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestService_AnswerQuestion_ProviderFailure(t *testing.T) {
	tests := []struct {
		name       string
		completeFn func(ctx context.Context, prompt Prompt) (string, error)
	}{
		{
			name: "error",
			completeFn: func(ctx context.Context, prompt Prompt) (string, error) {
				return "", errors.New("upstream 529")
			},
		},
		{
			name: "blank reply",
			completeFn: func(ctx context.Context, prompt Prompt) (string, error) {
				return "  \n", nil
			},
		},
		{
			name: "disabled",
			completeFn: func(ctx context.Context, prompt Prompt) (string, error) {
				return "", ErrProviderDisabled
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&MockProvider{completeFn: tt.completeFn}, nil, DefaultConfig())

			reply, err := svc.AnswerQuestion(context.Background(), "What is the refund policy?", policyDocs)

			require.NoError(t, err)
			assert.Equal(t, FallbackQAReply(), reply)
			assert.False(t, reply.Success)
			assert.Equal(t, 0.0, reply.Confidence)
		})
	}
}

func TestService_AnswerQuestion_MarkupDocuments(t *testing.T) {
	docs := []entity.Document{
		{Name: "page.html", Content: "<p>refund</p>"},
		{Name: "notes.txt", Type: "text/plain", Content: "<p>kept</p>"},
		{Type: "application/xhtml+xml", Content: "<p>typed</p>"},
	}

	t.Run("extracted", func(t *testing.T) {
		provider := &MockProvider{}
		svc := NewService(provider, stubExtractor{}, DefaultConfig())

		_, err := svc.AnswerQuestion(context.Background(), "refund?", docs)

		require.NoError(t, err)
		user := provider.prompts[0].User
		assert.Contains(t, user, "extracted: <p>refund</p>")
		assert.Contains(t, user, "\n<p>kept</p>\n")
		assert.Contains(t, user, "### Document 3 (application/xhtml+xml)\nextracted: <p>typed</p>")
	})

	t.Run("extraction failure keeps raw content", func(t *testing.T) {
		provider := &MockProvider{}
		svc := NewService(provider, stubExtractor{err: errors.New("bad markup")}, DefaultConfig())

		_, err := svc.AnswerQuestion(context.Background(), "refund?", docs)

		require.NoError(t, err)
		assert.Contains(t, provider.prompts[0].User, "\n<p>refund</p>\n")
	})
}

func TestService_AnswerQuestion_TruncatesDocuments(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxDocumentChars = 5
	provider := &MockProvider{}
	svc := NewService(provider, nil, cfg)

	_, err := svc.AnswerQuestion(context.Background(), "anything?", []entity.Document{{Name: "long.txt", Content: "abcdefghij"}})

	require.NoError(t, err)
	assert.Contains(t, provider.prompts[0].User, "abcde"+documentTruncationSuffix)
	assert.NotContains(t, provider.prompts[0].User, "abcdef")
}

func TestService_Chat(t *testing.T) {
	provider := &MockProvider{
		completeFn: func(ctx context.Context, prompt Prompt) (string, error) {
			return "  Use the Path Generator.  ", nil
		},
	}
	svc := NewService(provider, nil, DefaultConfig())

	reply, err := svc.Chat(context.Background(), "How do I build a learning roadmap?")

	require.NoError(t, err)
	assert.Equal(t, &ChatReply{
		Success:     true,
		Response:    "Use the Path Generator.",
		Suggestions: []string{"Go to Path Generator", "Visit Text Summarizer", "Check Document Q&A"},
	}, reply)
	assert.Equal(t, websiteChatSystemPrompt, provider.prompts[0].System)
	assert.Equal(t, "mock", svc.ProviderName())
}

func TestService_Chat_Validation(t *testing.T) {
	svc := NewService(&MockProvider{}, nil, DefaultConfig())

	reply, err := svc.Chat(context.Background(), "")

	assert.Nil(t, reply)
	assert.ErrorIs(t, err, ErrMessageRequired)
}

func TestService_Chat_ProviderFailure(t *testing.T) {
	svc := NewService(&MockProvider{
		completeFn: func(ctx context.Context, prompt Prompt) (string, error) {
			return "", context.DeadlineExceeded
		},
	}, nil, DefaultConfig())

	reply, err := svc.Chat(context.Background(), "hello")

	require.NoError(t, err)
	assert.False(t, reply.Success)
	assert.Equal(t, []string{"Try again", "Visit Text Summarizer", "Check Document Q&A", "Go to Path Generator"}, reply.Suggestions)
	assert.True(t, strings.HasPrefix(reply.Response, "I apologize, but I'm having trouble connecting right now."))
}
