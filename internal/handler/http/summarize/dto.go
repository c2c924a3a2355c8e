// Package summarize provides the HTTP handlers for text summarization:
// single requests, batches, and plain-text export.
package summarize

import (
	"ai-toolkit/internal/domain/entity"
	sumUC "ai-toolkit/internal/usecase/summarize"
)

// SessionHeader lets a client opt into latest-request-wins handling. A
// request is answered 409 when a newer one with the same session arrives
// before it completes.
const SessionHeader = "X-Session-ID"

// Request is the body of /api/summarize and /api/summarize/export.
type Request struct {
	Text   string `json:"text,omitempty" example:"Go is an open source programming language. It makes it simple to build secure, scalable systems."`
	URL    string `json:"url,omitempty" example:"https://go.dev/blog/go1.22"`
	Length string `json:"length,omitempty" example:"medium" enums:"short,medium,long"`
}

func (r Request) input() sumUC.Input {
	return sumUC.Input{
		Text:  r.Text,
		URL:   r.URL,
		Level: entity.ParseCompressionLevel(r.Length),
	}
}

// BatchDocument is one text of a batch request.
type BatchDocument struct {
	Text   string `json:"text"`
	Length string `json:"length,omitempty" enums:"short,medium,long"`
}

// BatchRequest is the body of /api/summarize/batch.
type BatchRequest struct {
	Documents []BatchDocument `json:"documents"`
}

// BatchResponse holds results in request order.
type BatchResponse struct {
	Results []*entity.SummaryResult `json:"results"`
}
