// Package assistant provides the HTTP handlers for document Q&A and the
// website help chat.
package assistant

import "ai-toolkit/internal/domain/entity"

// DocumentQARequest is the body of /api/document-qa.
type DocumentQARequest struct {
	Question  string            `json:"question" example:"What are the key findings?"`
	Documents []entity.Document `json:"documents"`
}

// ChatRequest is the body of /api/website-chat.
type ChatRequest struct {
	Message string `json:"message" example:"How do I use the summarizer?"`
}
