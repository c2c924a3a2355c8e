package entity

// Document is an uploaded file whose text content has already been extracted.
// It is the context handed to the document Q&A assistant.
type Document struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Content string `json:"content"`
}
