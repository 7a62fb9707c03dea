package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/malek/tadreeb/internal/app/models"
	"github.com/malek/tadreeb/internal/pkg/apperrors"
)

// DocumentRepository handles database operations for course documents
type DocumentRepository struct {
	db *pgxpool.Pool
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create inserts a document record. Repeated uploads with the same type
// are additive, never overwriting.
func (r *DocumentRepository) Create(ctx context.Context, doc *models.CourseDocument) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO course_documents (course_id, type, path, file_name) VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		doc.CourseID, doc.Type, doc.Path, doc.FileName,
	).Scan(&doc.ID, &doc.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating course document: %w", err)
	}
	return nil
}

// GetByID retrieves a document record
func (r *DocumentRepository) GetByID(ctx context.Context, id int64) (*models.CourseDocument, error) {
	var doc models.CourseDocument
	err := r.db.QueryRow(ctx,
		`SELECT id, course_id, type, path, file_name, created_at FROM course_documents WHERE id = $1`, id,
	).Scan(&doc.ID, &doc.CourseID, &doc.Type, &doc.Path, &doc.FileName, &doc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("error retrieving course document: %w", err)
	}
	return &doc, nil
}

// Delete removes a document record
func (r *DocumentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM course_documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course document: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDocumentNotFound
	}
	return nil
}
