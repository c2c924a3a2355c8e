package summarize

import (
	"fmt"
	"strings"

	"ai-toolkit/internal/domain/entity"
)

// ExportFilename is the attachment name used for plain-text summary downloads.
const ExportFilename = "summary.txt"

// FormatPlainText renders a result in the download format:
//
//	Original Text (<o> words):
//	<original>
//
//	Summary (<s> words, <r>% reduction):
//	<summary>
//
//	Key Points:
//	1. <point>
func FormatPlainText(r *entity.SummaryResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Original Text (%d words):\n%s\n\n", r.WordCount.Original, r.Original)
	fmt.Fprintf(&b, "Summary (%d words, %d%% reduction):\n%s\n\n", r.WordCount.Summary, r.WordCount.Reduction, r.Summary)
	b.WriteString("Key Points:\n")
	points := make([]string, len(r.KeyPoints))
	for i, kp := range r.KeyPoints {
		points[i] = fmt.Sprintf("%d. %s", i+1, kp)
	}
	b.WriteString(strings.Join(points, "\n"))
	return b.String()
}
