package documents

import "time"

// Document is the persisted unit combining uploaded source text and its
// derived artifacts. Content is set once at ingestion; Summary and
// Flashcards start empty and are each set at most once.
type Document struct {
	ID         string
	Filename   string
	MediaType  string
	Content    string
	Summary    string
	Flashcards string
	UploadedAt time.Time
}
