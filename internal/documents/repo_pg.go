package documents

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new document.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (
    id,
    filename,
    media_type,
    content,
    summary,
    flashcards,
    uploaded_at
) VALUES ($1, $2, $3, $4, NULL, NULL, $5)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.Filename,
		doc.MediaType,
		doc.Content,
		doc.UploadedAt,
	)
	return err
}

// GetByID fetches a document by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Document, error) {
	const query = `
SELECT id, filename, media_type, content, summary, flashcards, uploaded_at
FROM documents
WHERE id = $1`

	doc, err := scanDocument(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	return doc, nil
}

// List returns all documents ordered by upload time, newest first.
func (r *PGRepo) List(ctx context.Context) ([]Document, error) {
	const query = `
SELECT id, filename, media_type, content, summary, flashcards, uploaded_at
FROM documents
ORDER BY uploaded_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

// SetSummary stores the summary only if the row holds none, then returns the
// value now in the row.
func (r *PGRepo) SetSummary(ctx context.Context, id, summary string) (string, error) {
	return r.setArtifact(ctx, id, "summary", summary)
}

// SetFlashcards stores the flashcards only if the row holds none, then
// returns the value now in the row.
func (r *PGRepo) SetFlashcards(ctx context.Context, id, flashcards string) (string, error) {
	return r.setArtifact(ctx, id, "flashcards", flashcards)
}

func (r *PGRepo) setArtifact(ctx context.Context, id, column, value string) (string, error) {
	// column is one of the two fixed artifact names, never caller input.
	query := `
UPDATE documents
SET ` + column + ` = $1
WHERE id = $2 AND (` + column + ` IS NULL OR ` + column + ` = '')`

	if _, err := r.DB.ExecContext(ctx, query, value, id); err != nil {
		return "", err
	}

	var stored sql.NullString
	selectQuery := `SELECT ` + column + ` FROM documents WHERE id = $1`
	if err := r.DB.QueryRowContext(ctx, selectQuery, id).Scan(&stored); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return stored.String, nil
}

// Delete removes a document. Unknown ids report ErrNotFound.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM documents WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (Document, error) {
	var doc Document
	var summary sql.NullString
	var flashcards sql.NullString
	if err := row.Scan(
		&doc.ID,
		&doc.Filename,
		&doc.MediaType,
		&doc.Content,
		&summary,
		&flashcards,
		&doc.UploadedAt,
	); err != nil {
		return Document{}, err
	}
	if summary.Valid {
		doc.Summary = summary.String
	}
	if flashcards.Valid {
		doc.Flashcards = flashcards.String
	}
	return doc, nil
}

var _ Repo = (*PGRepo)(nil)
