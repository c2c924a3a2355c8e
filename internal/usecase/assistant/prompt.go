package assistant

import (
	"fmt"
	"strings"

	"ai-toolkit/internal/domain/entity"
)

const documentQASystemPrompt = `You are a document analysis assistant.
Answer the user's question using the provided documents first and your general knowledge second.
When you use a document, mention it by name. If the documents do not contain the answer, say so before answering from general knowledge.
Keep answers concise and well structured.`

const websiteChatSystemPrompt = `You are the help assistant of an AI tools demo website.
The site offers three tools:
- Text Summarizer: condenses long text into a short, medium or long extractive summary with key points and word statistics.
- Path Generator: builds a step-by-step learning roadmap from a goal, an experience level and a weekly time commitment.
- Document Q&A: answers questions about documents the user uploads.
Navigation: the header menu switches between tools, every page has a "Back to Home" link, and all features work on mobile.
Answer questions about the site and its tools briefly and point users to the right tool.`

// buildDocumentQAPrompt renders the documents and question into a prompt.
// Documents are listed most relevant first.
func buildDocumentQAPrompt(question string, docs []entity.Document) Prompt {
	var b strings.Builder
	if len(docs) == 0 {
		b.WriteString("No documents were provided.\n\n")
	} else {
		b.WriteString("Documents:\n")
		for _, doc := range docs {
			fmt.Fprintf(&b, "\n### %s", doc.Name)
			if doc.Type != "" {
				fmt.Fprintf(&b, " (%s)", doc.Type)
			}
			fmt.Fprintf(&b, "\n%s\n", doc.Content)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Question: %s", question)

	return Prompt{System: documentQASystemPrompt, User: b.String()}
}

func buildWebsiteChatPrompt(message string) Prompt {
	return Prompt{System: websiteChatSystemPrompt, User: message}
}
