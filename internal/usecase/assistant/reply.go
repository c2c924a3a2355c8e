package assistant

// QAReply is the answer to a document question.
type QAReply struct {
	Success     bool     `json:"success"`
	Response    string   `json:"response"`
	Sources     []string `json:"sources"`
	Confidence  float64  `json:"confidence"`
	Suggestions []string `json:"suggestions"`
}

// ChatReply is the answer to a website chat message.
type ChatReply struct {
	Success     bool     `json:"success"`
	Response    string   `json:"response"`
	Suggestions []string `json:"suggestions"`
}

const qaFallbackResponse = "I apologize, but I encountered an error processing your question. " +
	"This might be due to a temporary issue with the AI service. " +
	"Please try again, or try rephrasing your question.\n\n" +
	"For immediate assistance, you can:\n" +
	"• Try a simpler or more specific question\n" +
	"• Check if your documents uploaded correctly\n" +
	"• Refresh the page and try again"

const chatFallbackResponse = "I apologize, but I'm having trouble connecting right now. " +
	"Here are some things I can help you with when I'm back online:\n\n" +
	"🔧 **Feature Help:**\n" +
	"• Text Summarizer - Condense long texts\n" +
	"• Path Generator - Create learning roadmaps\n" +
	"• Document Q&A - Analyze uploaded files\n\n" +
	"🧭 **Navigation:**\n" +
	"• Use the header menu to switch between tools\n" +
	"• Each page has a \"Back to Home\" link\n" +
	"• All features are mobile-friendly\n\n" +
	"Try asking me again in a moment, or explore the features directly!"

// FallbackQAReply is returned when the provider cannot answer a question.
func FallbackQAReply() *QAReply {
	return &QAReply{
		Success:     false,
		Response:    qaFallbackResponse,
		Sources:     []string{},
		Confidence:  0,
		Suggestions: []string{"Try a simpler question", "Check document uploads", "Refresh and try again"},
	}
}

// FallbackChatReply is returned when the provider cannot answer a chat message.
func FallbackChatReply() *ChatReply {
	return &ChatReply{
		Success:     false,
		Response:    chatFallbackResponse,
		Suggestions: []string{"Try again", "Visit Text Summarizer", "Check Document Q&A", "Go to Path Generator"},
	}
}
