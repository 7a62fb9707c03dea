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

// ImageRepository handles database operations for course images
type ImageRepository struct {
	db *pgxpool.Pool
}

// NewImageRepository creates a new image repository
func NewImageRepository(db *pgxpool.Pool) *ImageRepository {
	return &ImageRepository{db: db}
}

// Create inserts an image record
func (r *ImageRepository) Create(ctx context.Context, img *models.CourseImage) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO course_images (course_id, url, alt_text) VALUES ($1, $2, $3) RETURNING id, created_at`,
		img.CourseID, img.URL, img.AltText,
	).Scan(&img.ID, &img.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating course image: %w", err)
	}
	return nil
}

// GetByID retrieves an image record
func (r *ImageRepository) GetByID(ctx context.Context, id int64) (*models.CourseImage, error) {
	var img models.CourseImage
	err := r.db.QueryRow(ctx,
		`SELECT id, course_id, url, alt_text, created_at FROM course_images WHERE id = $1`, id,
	).Scan(&img.ID, &img.CourseID, &img.URL, &img.AltText, &img.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrImageNotFound
		}
		return nil, fmt.Errorf("error retrieving course image: %w", err)
	}
	return &img, nil
}

// Delete removes an image record
func (r *ImageRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM course_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course image: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrImageNotFound
	}
	return nil
}
