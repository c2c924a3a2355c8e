// Package summarize implements the extractive summarization use case.
//
// The engine is a deterministic, rule-based sentence selector: it splits text
// into sentences, keeps a positional subset of them, flags up to a handful of
// salient sentences as key points, and reports word-count statistics. It has no
// I/O and no shared mutable state, so an Engine may be used from any number of
// goroutines. Service adds input validation, URL ingestion, observability and
// batching on top; Runner adds latest-request-wins semantics for clients that
// resubmit before an earlier request finishes.
package summarize

import (
	"strings"

	"ai-toolkit/internal/domain/entity"
)

// Segment splits text into sentences on any run of '.', '!' or '?'.
// Spans that are empty after trimming are dropped, and the surviving sentences
// are numbered densely from 0. Text without terminal punctuation yields a single
// sentence; empty or whitespace-only text yields none.
func Segment(text string) []entity.Sentence {
	spans := strings.FieldsFunc(text, isTerminal)
	sentences := make([]entity.Sentence, 0, len(spans))
	for _, span := range spans {
		trimmed := strings.TrimSpace(span)
		if trimmed == "" {
			continue
		}
		sentences = append(sentences, entity.Sentence{
			Index: len(sentences),
			Text:  trimmed,
		})
	}
	return sentences
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
