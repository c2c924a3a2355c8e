package summarize

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"ai-toolkit/internal/domain/entity"
	"ai-toolkit/internal/observability/logging"
	"ai-toolkit/internal/observability/metrics"
	"ai-toolkit/internal/observability/tracing"
	"ai-toolkit/internal/utils/text"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

// ContentFetcher fetches readable text from a URL.
type ContentFetcher interface {
	FetchContent(ctx context.Context, url string) (string, error)
}

// Config holds caller-side limits applied before the engine runs.
type Config struct {
	MinInputChars    int // Minimum trimmed length in characters
	MaxInputChars    int // Maximum trimmed length in characters (0 = unlimited)
	BatchParallelism int // Maximum documents summarized concurrently in a batch
	MaxBatchSize     int // Maximum documents per batch
}

// DefaultConfig returns the default service limits.
func DefaultConfig() Config {
	return Config{
		MinInputChars:    50,
		MaxInputChars:    50000,
		BatchParallelism: 4,
		MaxBatchSize:     20,
	}
}

// Input is one summarization request. Text takes precedence over URL.
type Input struct {
	Text  string
	URL   string
	Level entity.CompressionLevel
}

// Service validates summarization input, resolves URL input through a
// ContentFetcher and delegates to the current Engine. The engine can be swapped
// at runtime (see SetEngine) while requests are in flight.
type Service struct {
	engine  atomic.Pointer[Engine]
	fetcher ContentFetcher
	cfg     Config
}

// NewService creates a Service. fetcher may be nil, in which case URL input
// fails with ErrContentFetchDisabled.
func NewService(engine *Engine, fetcher ContentFetcher, cfg Config) *Service {
	if engine == nil {
		engine = DefaultEngine()
	}
	if cfg.BatchParallelism <= 0 {
		cfg.BatchParallelism = 1
	}
	s := &Service{fetcher: fetcher, cfg: cfg}
	s.engine.Store(engine)
	return s
}

// Engine returns the engine currently serving requests.
func (s *Service) Engine() *Engine {
	return s.engine.Load()
}

// SetEngine replaces the engine used for subsequent requests.
func (s *Service) SetEngine(e *Engine) {
	if e != nil {
		s.engine.Store(e)
	}
}

// Config returns the service limits.
func (s *Service) Config() Config {
	return s.cfg
}

// Summarize summarizes in.Text, or the content behind in.URL when no text is
// given. The trimmed input must be at least MinInputChars characters long.
func (s *Service) Summarize(ctx context.Context, in Input) (*entity.SummaryResult, error) {
	level := in.Level
	if !level.IsKnown() {
		level = entity.LevelMedium
	}
	source := "text"
	if strings.TrimSpace(in.Text) == "" && strings.TrimSpace(in.URL) != "" {
		source = "url"
	}

	ctx, span := tracing.GetTracer().Start(ctx, "summarize.Service.Summarize")
	defer span.End()
	span.SetAttributes(
		attribute.String("summarize.level", string(level)),
		attribute.String("summarize.source", source),
	)

	logger := logging.WithRequestID(ctx, slog.Default())

	body, err := s.resolveInput(ctx, in, source)
	if err != nil {
		status := "failure"
		if IsValidationError(err) {
			status = "invalid"
		}
		metrics.RecordSummarization(string(level), source, status)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Warn("summarization rejected",
			slog.String("level", string(level)),
			slog.String("source", source),
			slog.Any("error", err))
		return nil, err
	}

	start := time.Now()
	result := s.Engine().Summarize(body, level)
	duration := time.Since(start)

	metrics.RecordSummaryProduced(string(level), duration, result.WordCount.Reduction)
	metrics.RecordSummarization(string(level), source, "success")
	span.SetAttributes(
		attribute.Int("summarize.words.original", result.WordCount.Original),
		attribute.Int("summarize.words.summary", result.WordCount.Summary),
		attribute.Int("summarize.key_points", len(result.KeyPoints)),
	)

	logger.Info("summarization completed",
		slog.String("level", string(level)),
		slog.String("source", source),
		slog.Int("original_words", result.WordCount.Original),
		slog.Int("summary_words", result.WordCount.Summary),
		slog.Int("reduction", result.WordCount.Reduction),
		slog.Duration("duration", duration))

	return result, nil
}

// SummarizeBatch summarizes every input with bounded parallelism. Results are
// returned in input order. The first failure cancels the remaining work and is
// returned annotated with the document index.
func (s *Service) SummarizeBatch(ctx context.Context, inputs []Input) ([]*entity.SummaryResult, error) {
	if len(inputs) == 0 {
		return nil, ErrBatchEmpty
	}
	if s.cfg.MaxBatchSize > 0 && len(inputs) > s.cfg.MaxBatchSize {
		return nil, fmt.Errorf("%w: %d documents, maximum is %d", ErrBatchTooLarge, len(inputs), s.cfg.MaxBatchSize)
	}
	metrics.RecordBatchSize(len(inputs))

	ctx, span := tracing.GetTracer().Start(ctx, "summarize.Service.SummarizeBatch")
	defer span.End()
	span.SetAttributes(attribute.Int("summarize.batch.size", len(inputs)))

	results := make([]*entity.SummaryResult, len(inputs))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.cfg.BatchParallelism)

	for i, in := range inputs {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			result, err := s.Summarize(egCtx, in)
			if err != nil {
				return fmt.Errorf("document %d: %w", i, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return results, nil
}

// resolveInput returns the trimmed text to summarize.
func (s *Service) resolveInput(ctx context.Context, in Input, source string) (string, error) {
	body := strings.TrimSpace(in.Text)

	if source == "url" {
		fetched, err := s.fetch(ctx, strings.TrimSpace(in.URL))
		if err != nil {
			return "", err
		}
		body = strings.TrimSpace(fetched)
		// Oversized pages are cut rather than rejected.
		if s.cfg.MaxInputChars > 0 {
			body = text.Truncate(body, s.cfg.MaxInputChars, "")
		}
	}

	if body == "" {
		return "", ErrTextRequired
	}
	n := text.CountRunes(body)
	if n < s.cfg.MinInputChars {
		return "", ErrTextTooShort
	}
	if s.cfg.MaxInputChars > 0 && n > s.cfg.MaxInputChars {
		return "", fmt.Errorf("%w: %d characters, maximum is %d", ErrTextTooLong, n, s.cfg.MaxInputChars)
	}
	return body, nil
}

func (s *Service) fetch(ctx context.Context, url string) (string, error) {
	if s.fetcher == nil {
		return "", ErrContentFetchDisabled
	}
	start := time.Now()
	content, err := s.fetcher.FetchContent(ctx, url)
	if err != nil {
		metrics.RecordContentFetchFailed(time.Since(start))
		return "", fmt.Errorf("%w: %w", ErrContentFetch, err)
	}
	metrics.RecordContentFetchSuccess(time.Since(start), len(content))
	return content, nil
}
