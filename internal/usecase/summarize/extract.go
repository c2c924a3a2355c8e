package summarize

import (
	"math"
	"strings"

	"ai-toolkit/internal/domain/entity"
)

const (
	// middleBandStart and middleBandEnd bound the slice of the document that
	// is sampled for non-boundary summary content, as fractions of N.
	middleBandStart = 0.3
	middleBandEnd   = 0.7
)

// TargetCount returns max(1, round(n*ratio)), rounding halves up.
func TargetCount(n int, ratio float64) int {
	target := int(math.Floor(float64(n)*ratio + 0.5))
	if target < 1 {
		return 1
	}
	return target
}

// Extract selects the summary sentences for the given ratio.
//
// When the document has no more sentences than the target count, every
// sentence is returned. Otherwise the first sentence is always kept, evenly
// spaced picks from the middle band [30%, 70%) fill up to target-2 slots when
// target > 2, and the last sentence closes the summary if room remains. Picks
// whose text duplicates an already selected sentence are skipped, so the result
// may hold fewer than target sentences. Relative order is preserved.
func Extract(sentences []entity.Sentence, ratio float64) []entity.Sentence {
	n := len(sentences)
	if n == 0 {
		return []entity.Sentence{}
	}

	target := TargetCount(n, ratio)
	if n <= target {
		all := make([]entity.Sentence, n)
		copy(all, sentences)
		return all
	}

	selected := make([]entity.Sentence, 0, target)
	seen := make(map[string]struct{}, target)
	add := func(s entity.Sentence) {
		if _, dup := seen[s.Text]; dup {
			return
		}
		seen[s.Text] = struct{}{}
		selected = append(selected, s)
	}

	add(sentences[0])

	if target > 2 {
		start := int(math.Floor(float64(n) * middleBandStart))
		end := int(math.Floor(float64(n) * middleBandEnd))
		band := sentences[start:end]
		middleCount := min(target-2, len(band))
		for i := 0; i < middleCount; i++ {
			add(band[i*len(band)/middleCount])
		}
	}

	if len(selected) < target && n > 1 {
		add(sentences[n-1])
	}

	return selected
}

// JoinSummary renders selected sentences as summary text: sentences joined by
// ". " with a closing period. An empty selection renders as "".
func JoinSummary(sentences []entity.Sentence) string {
	if len(sentences) == 0 {
		return ""
	}
	texts := make([]string, len(sentences))
	for i, s := range sentences {
		texts[i] = s.Text
	}
	return strings.Join(texts, ". ") + "."
}
