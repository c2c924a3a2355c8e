package summarize

import (
	"fmt"

	"ai-toolkit/internal/domain/entity"
)

// Engine runs the full extractive pipeline. It holds only immutable state.
type Engine struct {
	detector *KeyPointDetector
}

// NewEngine validates cfg and returns an Engine that uses it for key points.
func NewEngine(cfg KeyPointConfig) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid key point config: %w", err)
	}
	return &Engine{detector: NewKeyPointDetector(cfg)}, nil
}

// DefaultEngine returns an Engine with DefaultKeyPointConfig.
func DefaultEngine() *Engine {
	return &Engine{detector: NewKeyPointDetector(DefaultKeyPointConfig())}
}

// KeyPointConfig returns the configuration the engine was built with.
func (e *Engine) KeyPointConfig() KeyPointConfig {
	return e.detector.Config()
}

// Summarize segments text, extracts the summary sentences for level, detects
// key points over the full sentence list and computes statistics against the
// original text. It is total: empty text produces an empty summary, no key
// points and a reduction of 0.
func (e *Engine) Summarize(text string, level entity.CompressionLevel) *entity.SummaryResult {
	sentences := Segment(text)
	selected := Extract(sentences, ResolveRatio(level))
	summary := JoinSummary(selected)

	return &entity.SummaryResult{
		Original:  text,
		Summary:   summary,
		KeyPoints: e.detector.Detect(sentences),
		WordCount: Stats(text, summary),
	}
}
