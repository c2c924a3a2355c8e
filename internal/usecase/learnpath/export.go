package learnpath

import (
	"fmt"
	"strings"

	"ai-toolkit/internal/domain/entity"
)

// ExportFilename is the attachment name used for plain-text path downloads.
const ExportFilename = "learning-path.txt"

// FormatPlainText renders a path in the download format. Steps are separated
// by a blank line.
func FormatPlainText(p *entity.LearningPath) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n%s\n\nDuration: %s\n\nSteps:\n", p.Title, p.Description, p.TotalDuration)
	steps := make([]string, len(p.Steps))
	for i, s := range p.Steps {
		steps[i] = fmt.Sprintf("%d. %s (%s)\n   %s\n   Skills: %s\n",
			i+1, s.Title, s.Duration, s.Description, strings.Join(s.Skills, ", "))
	}
	b.WriteString(strings.Join(steps, "\n"))
	return b.String()
}
