package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/malek/tadreeb/internal/app/models"
	"github.com/malek/tadreeb/internal/pkg/apperrors"
	"github.com/malek/tadreeb/internal/pkg/dberrors"
)

// FieldRepository handles database operations for course fields
type FieldRepository struct {
	db *pgxpool.Pool
}

// NewFieldRepository creates a new field repository
func NewFieldRepository(db *pgxpool.Pool) *FieldRepository {
	return &FieldRepository{db: db}
}

// List retrieves fields matching a case-insensitive substring search,
// ordered ascending by name, optionally annotated with course counts.
func (r *FieldRepository) List(ctx context.Context, search string, includeCount bool) ([]models.CourseField, error) {
	query := `
		SELECT f.id, f.name
		FROM course_fields f
		WHERE ($1 = '' OR f.name ILIKE '%' || $1 || '%')
		ORDER BY f.name ASC
	`
	if includeCount {
		query = `
			SELECT f.id, f.name, COUNT(c.id)
			FROM course_fields f
			LEFT JOIN courses c ON c.course_field_id = f.id
			WHERE ($1 = '' OR f.name ILIKE '%' || $1 || '%')
			GROUP BY f.id, f.name
			ORDER BY f.name ASC
		`
	}

	rows, err := r.db.Query(ctx, query, search)
	if err != nil {
		return nil, fmt.Errorf("error listing course fields: %w", err)
	}
	defer rows.Close()

	fields := make([]models.CourseField, 0)
	for rows.Next() {
		var field models.CourseField
		if includeCount {
			var count int64
			if err := rows.Scan(&field.ID, &field.Name, &count); err != nil {
				return nil, err
			}
			field.CourseCount = &count
		} else {
			if err := rows.Scan(&field.ID, &field.Name); err != nil {
				return nil, err
			}
		}
		fields = append(fields, field)
	}

	return fields, rows.Err()
}

// GetByID retrieves a field with its referencing-course count
func (r *FieldRepository) GetByID(ctx context.Context, id int64) (*models.CourseField, error) {
	query := `
		SELECT f.id, f.name, COUNT(c.id)
		FROM course_fields f
		LEFT JOIN courses c ON c.course_field_id = f.id
		WHERE f.id = $1
		GROUP BY f.id, f.name
	`

	var field models.CourseField
	var count int64
	err := r.db.QueryRow(ctx, query, id).Scan(&field.ID, &field.Name, &count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFieldNotFound
		}
		return nil, fmt.Errorf("error retrieving course field: %w", err)
	}

	field.CourseCount = &count
	return &field, nil
}

// Exists reports whether a field id is present
func (r *FieldRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM course_fields WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking field existence: %w", err)
	}
	return exists, nil
}

// Create inserts a new field
func (r *FieldRepository) Create(ctx context.Context, name string) (*models.CourseField, error) {
	var field models.CourseField
	err := r.db.QueryRow(ctx,
		`INSERT INTO course_fields (name) VALUES ($1) RETURNING id, name`, name,
	).Scan(&field.ID, &field.Name)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrFieldAlreadyExists
		}
		return nil, fmt.Errorf("error creating course field: %w", err)
	}
	return &field, nil
}

// Update renames a field
func (r *FieldRepository) Update(ctx context.Context, id int64, name string) (*models.CourseField, error) {
	cmdTag, err := r.db.Exec(ctx, `UPDATE course_fields SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrFieldAlreadyExists
		}
		return nil, fmt.Errorf("error updating course field: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, apperrors.ErrFieldNotFound
	}

	return r.GetByID(ctx, id)
}

// CountCourses returns the number of courses referencing a field
func (r *FieldRepository) CountCourses(ctx context.Context, fieldID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses WHERE course_field_id = $1`, fieldID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting field courses: %w", err)
	}
	return count, nil
}

// Delete removes a field row. Callers must have verified it is
// unreferenced; the FK constraint is the backstop.
func (r *FieldRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM course_fields WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrFieldInUse
		}
		return fmt.Errorf("error deleting course field: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFieldNotFound
	}
	return nil
}
