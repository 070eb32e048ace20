package documents

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"studybuddy-backend/internal/extract"
	"studybuddy-backend/internal/llm"
	"studybuddy-backend/internal/shared/telemetry"
)

// Service contains the document workflow: ingestion, lazy cached artifact
// generation, Q&A, listing, deletion.
type Service struct {
	Repo Repo
	LLM  llm.CompletionClient

	locks keyedMutex
}

// Ingest extracts text from the upload and persists a new document. Nothing
// is persisted when extraction fails or yields no text.
func (s *Service) Ingest(ctx context.Context, data []byte, filename, mediaType string) (Document, error) {
	if strings.TrimSpace(filename) == "" {
		return Document{}, fmt.Errorf("%w: filename is required", ErrInvalidInput)
	}

	content, err := extract.Text(data, mediaType)
	if err != nil {
		return Document{}, err
	}
	if strings.TrimSpace(content) == "" {
		return Document{}, fmt.Errorf("%w: document contains no extractable text", ErrInvalidInput)
	}

	doc := Document{
		ID:         uuid.NewString(),
		Filename:   filename,
		MediaType:  mediaType,
		Content:    content,
		UploadedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}

	telemetry.Info("document.ingested", map[string]any{
		"document_id":    doc.ID,
		"filename":       doc.Filename,
		"media_type":     doc.MediaType,
		"content_length": len(doc.Content),
	})
	return doc, nil
}

// Summary returns the document's summary, generating and caching it on first
// request. Generation failures leave the field unset so a later call can retry.
func (s *Service) Summary(ctx context.Context, id string) (string, error) {
	return s.artifact(ctx, id, "summary", llm.SummaryPrompt, s.Repo.SetSummary,
		func(doc Document) string { return doc.Summary })
}

// Flashcards returns the document's flashcards as JSON text, generating and
// caching them on first request. Code-fence markers are stripped from the
// model output before the value is cached.
func (s *Service) Flashcards(ctx context.Context, id string) (string, error) {
	return s.artifact(ctx, id, "flashcards", llm.FlashcardsPrompt, s.Repo.SetFlashcards,
		func(doc Document) string { return doc.Flashcards })
}

func (s *Service) artifact(
	ctx context.Context,
	id, kind string,
	renderPrompt func(string) string,
	persist func(context.Context, string, string) (string, error),
	cached func(Document) string,
) (string, error) {
	doc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if value := cached(doc); value != "" {
		telemetry.Debug("document.artifact.cache_hit", map[string]any{
			"document_id": id,
			"artifact":    kind,
		})
		return value, nil
	}

	// Serialize generation per document+artifact so concurrent first
	// requests trigger a single model call.
	unlock := s.locks.lock(id + "|" + kind)
	defer unlock()

	doc, err = s.Repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if value := cached(doc); value != "" {
		return value, nil
	}

	generated, err := s.LLM.Complete(ctx, renderPrompt(doc.Content))
	if err != nil {
		return "", err
	}
	if kind == "flashcards" {
		generated = llm.StripCodeFences(generated)
	}

	stored, err := persist(ctx, id, generated)
	if err != nil {
		return "", err
	}

	telemetry.Info("document.artifact.generated", map[string]any{
		"document_id": id,
		"artifact":    kind,
		"length":      len(stored),
	})
	return stored, nil
}

// Answer asks the model a question grounded in the document's content.
// Answers are question-specific and never cached.
func (s *Service) Answer(ctx context.Context, id, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", fmt.Errorf("%w: question is required", ErrInvalidInput)
	}
	doc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return s.LLM.Complete(ctx, llm.AnswerPrompt(doc.Content, question))
}

// List returns all documents, most recently uploaded first.
func (s *Service) List(ctx context.Context) ([]Document, error) {
	return s.Repo.List(ctx)
}

// Delete removes a document and with it all cached artifacts.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	telemetry.Info("document.deleted", map[string]any{"document_id": id})
	return nil
}

// keyedMutex hands out one mutex per key. Entries are kept for the process
// lifetime; the key space is bounded by documents times artifact kinds.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
