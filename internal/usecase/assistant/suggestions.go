package assistant

import (
	"fmt"
	"strings"
)

const maxSuggestions = 3

// documentSuggestions proposes follow-up questions for a Q&A answer.
func documentSuggestions(sources []string, hasDocuments bool) []string {
	if !hasDocuments {
		return []string{
			"Upload a document for more specific answers",
			"Ask a follow-up question",
			"Try the Text Summarizer",
		}
	}
	if len(sources) == 0 {
		return []string{
			"Rephrase the question using terms from your documents",
			"Ask for a summary of a document",
			"Check document uploads",
		}
	}
	primary := sources[0]
	return []string{
		fmt.Sprintf("Summarize %s", primary),
		fmt.Sprintf("What are the key points in %s?", primary),
		"Ask a follow-up question",
	}
}

// chatTopics maps message keywords to the tool suggestion they point at.
var chatTopics = []struct {
	keywords   []string
	suggestion string
}{
	{keywords: []string{"summar", "condense", "shorten", "tl;dr"}, suggestion: "Visit Text Summarizer"},
	{keywords: []string{"path", "learn", "roadmap", "study", "course"}, suggestion: "Go to Path Generator"},
	{keywords: []string{"document", "file", "upload", "pdf", "q&a"}, suggestion: "Check Document Q&A"},
}

// chatSuggestions returns up to three suggestions, matched topics first.
func chatSuggestions(message string) []string {
	lower := strings.ToLower(message)
	suggestions := make([]string, 0, maxSuggestions)
	var rest []string
	for _, topic := range chatTopics {
		matched := false
		for _, kw := range topic.keywords {
			if strings.Contains(lower, kw) {
				matched = true
				break
			}
		}
		if matched {
			suggestions = append(suggestions, topic.suggestion)
		} else {
			rest = append(rest, topic.suggestion)
		}
	}
	suggestions = append(suggestions, rest...)
	return suggestions[:min(len(suggestions), maxSuggestions)]
}
