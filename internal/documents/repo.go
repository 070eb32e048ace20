package documents

import "context"

// Repo defines persistence operations for documents.
//
// SetSummary and SetFlashcards are conditional writes: the artifact is
// stored only if currently unset, and the value now held in the row is
// returned either way, so a writer that lost a race reads the winner's
// value instead of clobbering it.
type Repo interface {
	Create(ctx context.Context, doc Document) error
	GetByID(ctx context.Context, id string) (Document, error)
	List(ctx context.Context) ([]Document, error)
	SetSummary(ctx context.Context, id, summary string) (string, error)
	SetFlashcards(ctx context.Context, id, flashcards string) (string, error)
	Delete(ctx context.Context, id string) error
}
