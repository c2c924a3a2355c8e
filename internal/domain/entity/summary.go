// Package entity defines the core value types shared across the application:
// sentences and summary results produced by the summarization engine,
// documents handed to the assistant, and generated learning paths.
package entity

import "strings"

// Sentence is a trimmed span of a document bounded by terminal punctuation.
// Index is the dense, 0-based position of the sentence after empty spans are dropped.
type Sentence struct {
	Index int
	Text  string
}

// CompressionLevel selects how much of the original text a summary retains.
type CompressionLevel string

const (
	// LevelShort keeps roughly 20% of the sentences.
	LevelShort CompressionLevel = "short"
	// LevelMedium keeps roughly 40% of the sentences. It is the default.
	LevelMedium CompressionLevel = "medium"
	// LevelLong keeps roughly 60% of the sentences.
	LevelLong CompressionLevel = "long"
)

// ParseCompressionLevel maps a user-supplied selector to a CompressionLevel.
// Matching is case-insensitive; empty or unrecognized values fall back to LevelMedium.
func ParseCompressionLevel(s string) CompressionLevel {
	switch CompressionLevel(strings.ToLower(strings.TrimSpace(s))) {
	case LevelShort:
		return LevelShort
	case LevelLong:
		return LevelLong
	default:
		return LevelMedium
	}
}

// IsKnown reports whether l is one of the three defined levels.
func (l CompressionLevel) IsKnown() bool {
	return l == LevelShort || l == LevelMedium || l == LevelLong
}

// WordCount reports compression statistics for a summary.
type WordCount struct {
	Original  int `json:"original" example:"120"`
	Summary   int `json:"summary" example:"48"`
	Reduction int `json:"reduction" example:"60"`
}

// SummaryResult is the outcome of one summarization request.
type SummaryResult struct {
	Original  string    `json:"original"`
	Summary   string    `json:"summary"`
	KeyPoints []string  `json:"keyPoints"`
	WordCount WordCount `json:"wordCount"`
}
