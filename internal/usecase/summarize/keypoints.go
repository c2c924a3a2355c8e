package summarize

import (
	"strings"

	"ai-toolkit/internal/domain/entity"
	"ai-toolkit/internal/utils/text"
)

// KeyPointDetector picks salient sentences independently of the summary
// selection. It is immutable after construction and safe for concurrent use.
type KeyPointDetector struct {
	cfg      KeyPointConfig
	keywords []string // lower-cased
}

// NewKeyPointDetector creates a detector for the given configuration.
// The configuration is assumed to be valid; see KeyPointConfig.Validate.
func NewKeyPointDetector(cfg KeyPointConfig) *KeyPointDetector {
	keywords := make([]string, 0, len(cfg.Keywords))
	for _, kw := range cfg.Keywords {
		keywords = append(keywords, strings.ToLower(kw))
	}
	return &KeyPointDetector{cfg: cfg, keywords: keywords}
}

// Config returns the detector configuration.
func (d *KeyPointDetector) Config() KeyPointConfig {
	return d.cfg
}

// Detect scans sentences in order and returns the text of the first
// MaxKeyPoints candidates that are salient. Candidates are sentences longer
// than MinLength characters. If no candidate is salient, the first
// FallbackCount candidates are returned instead. The result is never nil.
func (d *KeyPointDetector) Detect(sentences []entity.Sentence) []string {
	candidates := make([]string, 0, len(sentences))
	for _, s := range sentences {
		if text.CountRunes(s.Text) > d.cfg.MinLength {
			candidates = append(candidates, s.Text)
		}
	}

	points := make([]string, 0, d.cfg.MaxKeyPoints)
	for _, c := range candidates {
		if len(points) == d.cfg.MaxKeyPoints {
			break
		}
		if d.IsSalient(c) {
			points = append(points, c)
		}
	}
	if len(points) > 0 {
		return points
	}

	n := min(d.cfg.FallbackCount, len(candidates))
	fallback := make([]string, n)
	copy(fallback, candidates[:n])
	return fallback
}

// IsSalient reports whether a candidate sentence contains a keyword, contains
// a connective, or is longer than LengthOverrideThreshold characters.
// The candidate length filter is not applied here.
func (d *KeyPointDetector) IsSalient(sentence string) bool {
	lower := strings.ToLower(sentence)
	for _, kw := range d.keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	for _, conn := range d.cfg.Connectives {
		if strings.Contains(sentence, conn) {
			return true
		}
	}
	return text.CountRunes(sentence) > d.cfg.LengthOverrideThreshold
}
