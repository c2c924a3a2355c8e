package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"ai-toolkit/internal/domain/entity"
	"ai-toolkit/internal/observability/logging"
	"ai-toolkit/internal/observability/metrics"
	"ai-toolkit/internal/utils/text"
)

const (
	operationDocumentQA  = "document_qa"
	operationWebsiteChat = "website_chat"

	documentTruncationSuffix = "\n(content truncated)"
)

// Config holds request limits for the assistant.
type Config struct {
	MaxInputChars    int           // Maximum question or message length in characters
	MaxDocuments     int           // Maximum documents per question
	MaxDocumentChars int           // Document content beyond this is cut before prompting
	Timeout          time.Duration // Upper bound for one provider call
}

// DefaultConfig returns the default assistant limits.
func DefaultConfig() Config {
	return Config{
		MaxInputChars:    2000,
		MaxDocuments:     10,
		MaxDocumentChars: 20000,
		Timeout:          60 * time.Second,
	}
}

// Service answers document questions and website chat messages.
type Service struct {
	provider  Provider
	extractor DocumentExtractor
	cfg       Config
}

// NewService creates an assistant service. extractor may be nil, in which case
// markup documents are passed to the provider as-is.
func NewService(provider Provider, extractor DocumentExtractor, cfg Config) *Service {
	return &Service{provider: provider, extractor: extractor, cfg: cfg}
}

// ProviderName returns the name of the configured provider.
func (s *Service) ProviderName() string {
	return s.provider.Name()
}

// AnswerQuestion answers question using docs as context. Only validation
// failures are returned as errors; provider failures yield FallbackQAReply.
func (s *Service) AnswerQuestion(ctx context.Context, question string, docs []entity.Document) (*QAReply, error) {
	logger := logging.WithRequestID(ctx, slog.Default())

	question = strings.TrimSpace(question)
	if err := s.validateInput(question, ErrQuestionRequired); err != nil {
		metrics.RecordAssistantRequest(operationDocumentQA, "invalid")
		return nil, err
	}
	if s.cfg.MaxDocuments > 0 && len(docs) > s.cfg.MaxDocuments {
		metrics.RecordAssistantRequest(operationDocumentQA, "invalid")
		return nil, fmt.Errorf("%w: %d documents, maximum is %d", ErrTooManyDocuments, len(docs), s.cfg.MaxDocuments)
	}

	prepared := s.prepareDocuments(ctx, docs)
	terms := queryTerms(question)
	ranked := rankDocuments(terms, prepared)
	sources := sourceNames(ranked)

	// Relevant documents go first so truncation by the model hurts least.
	ordered := make([]entity.Document, 0, len(prepared))
	inRanked := make(map[int]struct{}, len(ranked))
	for _, r := range ranked {
		ordered = append(ordered, r.doc)
		inRanked[r.order] = struct{}{}
	}
	for i, doc := range prepared {
		if _, ok := inRanked[i]; !ok {
			ordered = append(ordered, doc)
		}
	}

	answer, err := s.complete(ctx, buildDocumentQAPrompt(question, ordered))
	if err != nil {
		metrics.RecordAssistantRequest(operationDocumentQA, "fallback")
		logger.Warn("document question fell back",
			slog.String("provider", s.provider.Name()),
			slog.Int("documents", len(docs)),
			slog.Any("error", err))
		return FallbackQAReply(), nil
	}

	metrics.RecordAssistantRequest(operationDocumentQA, "success")
	logger.Info("document question answered",
		slog.String("provider", s.provider.Name()),
		slog.Int("documents", len(docs)),
		slog.Int("sources", len(sources)))

	return &QAReply{
		Success:     true,
		Response:    answer,
		Sources:     sources,
		Confidence:  confidence(terms, prepared, ranked),
		Suggestions: documentSuggestions(sources, len(prepared) > 0),
	}, nil
}

// Chat answers a website help message. Only validation failures are returned
// as errors; provider failures yield FallbackChatReply.
func (s *Service) Chat(ctx context.Context, message string) (*ChatReply, error) {
	logger := logging.WithRequestID(ctx, slog.Default())

	message = strings.TrimSpace(message)
	if err := s.validateInput(message, ErrMessageRequired); err != nil {
		metrics.RecordAssistantRequest(operationWebsiteChat, "invalid")
		return nil, err
	}

	answer, err := s.complete(ctx, buildWebsiteChatPrompt(message))
	if err != nil {
		metrics.RecordAssistantRequest(operationWebsiteChat, "fallback")
		logger.Warn("website chat fell back",
			slog.String("provider", s.provider.Name()),
			slog.Any("error", err))
		return FallbackChatReply(), nil
	}

	metrics.RecordAssistantRequest(operationWebsiteChat, "success")
	return &ChatReply{
		Success:     true,
		Response:    answer,
		Suggestions: chatSuggestions(message),
	}, nil
}

func (s *Service) validateInput(input string, emptyErr error) error {
	if input == "" {
		return emptyErr
	}
	if s.cfg.MaxInputChars > 0 {
		if n := text.CountRunes(input); n > s.cfg.MaxInputChars {
			return fmt.Errorf("%w: %d characters, maximum is %d", ErrInputTooLong, n, s.cfg.MaxInputChars)
		}
	}
	return nil
}

func (s *Service) complete(ctx context.Context, prompt Prompt) (string, error) {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}
	answer, err := s.provider.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", ErrEmptyCompletion
	}
	return answer, nil
}

// prepareDocuments names unnamed documents, converts markup to text and caps
// content length.
func (s *Service) prepareDocuments(ctx context.Context, docs []entity.Document) []entity.Document {
	prepared := make([]entity.Document, 0, len(docs))
	for i, doc := range docs {
		if strings.TrimSpace(doc.Name) == "" {
			doc.Name = fmt.Sprintf("Document %d", i+1)
		}
		if s.extractor != nil && isMarkup(doc) {
			extracted, err := s.extractor.ExtractText(doc.Content)
			if err != nil {
				logging.WithRequestID(ctx, slog.Default()).Warn("markup extraction failed, using raw content",
					slog.String("document", doc.Name),
					slog.Any("error", err))
			} else {
				doc.Content = extracted
			}
		}
		doc.Content = strings.TrimSpace(doc.Content)
		if s.cfg.MaxDocumentChars > 0 {
			doc.Content = text.Truncate(doc.Content, s.cfg.MaxDocumentChars, documentTruncationSuffix)
		}
		prepared = append(prepared, doc)
	}
	return prepared
}

func isMarkup(doc entity.Document) bool {
	t := strings.ToLower(doc.Type)
	if strings.Contains(t, "html") || strings.Contains(t, "xml") {
		return true
	}
	switch strings.ToLower(path.Ext(doc.Name)) {
	case ".html", ".htm", ".xhtml", ".xml":
		return true
	}
	return false
}
