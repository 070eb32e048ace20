package documents

import "time"

// UploadResponse is returned after a successful ingestion.
type UploadResponse struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// DocumentResponse is the outward-facing representation of a document.
type DocumentResponse struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	MediaType  string    `json:"mediaType"`
	Content    string    `json:"content"`
	Summary    string    `json:"summary,omitempty"`
	Flashcards string    `json:"flashcards,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
}

func toUploadResponse(doc Document) UploadResponse {
	return UploadResponse{
		ID:         doc.ID,
		Filename:   doc.Filename,
		UploadedAt: doc.UploadedAt,
	}
}

func toResponse(doc Document) DocumentResponse {
	return DocumentResponse{
		ID:         doc.ID,
		Filename:   doc.Filename,
		MediaType:  doc.MediaType,
		Content:    doc.Content,
		Summary:    doc.Summary,
		Flashcards: doc.Flashcards,
		UploadedAt: doc.UploadedAt,
	}
}
