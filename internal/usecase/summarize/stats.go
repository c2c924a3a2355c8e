package summarize

import (
	"math"

	"ai-toolkit/internal/domain/entity"
	"ai-toolkit/internal/utils/text"
)

// Stats counts words in the original and summary text and reports the
// percentage reduction, rounded and clamped to [0, 100]. An original with no
// words reports a reduction of 0.
func Stats(original, summary string) entity.WordCount {
	originalWords := text.CountWords(original)
	summaryWords := text.CountWords(summary)

	reduction := 0
	if originalWords > 0 {
		pct := float64(originalWords-summaryWords) / float64(originalWords) * 100
		reduction = int(math.Floor(pct + 0.5))
		reduction = max(0, min(100, reduction))
	}

	return entity.WordCount{
		Original:  originalWords,
		Summary:   summaryWords,
		Reduction: reduction,
	}
}
