package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/malek/tadreeb/internal/app/models"
	"github.com/malek/tadreeb/internal/app/models/dto"
	"github.com/malek/tadreeb/internal/app/repositories"
	"github.com/malek/tadreeb/internal/pkg/apperrors"
	"github.com/malek/tadreeb/internal/pkg/helpers"
	"github.com/malek/tadreeb/internal/pkg/logger"
)

const (
	fieldNameMinLen = 2
	fieldNameMaxLen = 64
)

// FieldService manages the course field taxonomy.
type FieldService struct {
	fieldRepo  *repositories.FieldRepository
	courseRepo *repositories.CourseRepository
}

// NewFieldService creates a new field service
func NewFieldService(fieldRepo *repositories.FieldRepository, courseRepo *repositories.CourseRepository) *FieldService {
	return &FieldService{
		fieldRepo:  fieldRepo,
		courseRepo: courseRepo,
	}
}

// normalizeFieldName trims and validates a field name.
func normalizeFieldName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if len(name) < fieldNameMinLen || len(name) > fieldNameMaxLen {
		return "", apperrors.NewValidationError(
			fmt.Sprintf("Field name must be between %d and %d characters", fieldNameMinLen, fieldNameMaxLen))
	}
	return name, nil
}

// List returns all fields ordered by name. When includeCount is set, each
// field carries the number of courses referencing it.
func (s *FieldService) List(ctx context.Context, search string, includeCount bool) ([]models.CourseField, error) {
	return s.fieldRepo.List(ctx, strings.TrimSpace(search), includeCount)
}

// Get returns one field with its course count.
func (s *FieldService) Get(ctx context.Context, id int64) (*models.CourseField, error) {
	return s.fieldRepo.GetByID(ctx, id)
}

// ListCourses returns one page of the courses belonging to a field.
func (s *FieldService) ListCourses(ctx context.Context, fieldID int64, page, limit int) (*models.CourseField, []models.Course, int64, error) {
	field, err := s.fieldRepo.GetByID(ctx, fieldID)
	if err != nil {
		return nil, nil, 0, err
	}

	offset, size := helpers.CalculateOffsetLimit(page, limit)
	courses, total, err := s.courseRepo.List(ctx, repositories.ListCoursesFilter{
		FieldID: &fieldID,
		Offset:  offset,
		Limit:   size,
	})
	if err != nil {
		return nil, nil, 0, err
	}
	return field, courses, total, nil
}

// Create adds a new field. Names are unique.
func (s *FieldService) Create(ctx context.Context, name string) (*models.CourseField, error) {
	name, err := normalizeFieldName(name)
	if err != nil {
		return nil, err
	}
	field, err := s.fieldRepo.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	logger.Info().Int64("fieldId", field.ID).Str("name", field.Name).Msg("Course field created")
	return field, nil
}

// Update renames a field.
func (s *FieldService) Update(ctx context.Context, id int64, name string) (*models.CourseField, error) {
	name, err := normalizeFieldName(name)
	if err != nil {
		return nil, err
	}
	return s.fieldRepo.Update(ctx, id, name)
}

// Delete removes a field. Deletion is refused while any course still
// references the field; the error carries the blocking course count.
func (s *FieldService) Delete(ctx context.Context, id int64) error {
	if _, err := s.fieldRepo.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.fieldRepo.CountCourses(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.NewFieldInUseError(
			fmt.Sprintf("Cannot delete field: %d course(s) still reference it", count), count)
	}

	if err := s.fieldRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("fieldId", id).Msg("Course field deleted")
	return nil
}

// BulkCreate inserts many fields in one call, best effort. Duplicates are
// reported as skipped rather than failing the batch.
func (s *FieldService) BulkCreate(ctx context.Context, names []string) (*dto.BulkCreateFieldsResult, error) {
	result := &dto.BulkCreateFieldsResult{
		Created: []models.CourseField{},
		Skipped: []dto.BulkSkippedField{},
		Errors:  []dto.BulkErroredField{},
	}

	for _, raw := range names {
		name, err := normalizeFieldName(raw)
		if err != nil {
			result.Errors = append(result.Errors, dto.BulkErroredField{Name: raw, Error: err.Error()})
			continue
		}

		field, err := s.fieldRepo.Create(ctx, name)
		if err != nil {
			if errors.Is(err, apperrors.ErrFieldAlreadyExists) {
				result.Skipped = append(result.Skipped, dto.BulkSkippedField{Name: name, Reason: "already exists"})
				continue
			}
			result.Errors = append(result.Errors, dto.BulkErroredField{Name: name, Error: err.Error()})
			continue
		}
		result.Created = append(result.Created, *field)
	}

	logger.Info().
		Int("created", len(result.Created)).
		Int("skipped", len(result.Skipped)).
		Int("errored", len(result.Errors)).
		Msg("Bulk field creation finished")
	return result, nil
}
