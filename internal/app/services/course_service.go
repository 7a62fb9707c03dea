package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/malek/tadreeb/internal/app/models"
	"github.com/malek/tadreeb/internal/app/models/dto"
	"github.com/malek/tadreeb/internal/app/repositories"
	"github.com/malek/tadreeb/internal/pkg/apperrors"
	"github.com/malek/tadreeb/internal/pkg/filestorage"
	"github.com/malek/tadreeb/internal/pkg/helpers"
	"github.com/malek/tadreeb/internal/pkg/logger"
)

// CourseService manages course records and keeps the disk files of their
// attachments in sync with the database rows.
type CourseService struct {
	courseRepo *repositories.CourseRepository
	fieldRepo  *repositories.FieldRepository
	storage    *filestorage.LocalStorage
}

// NewCourseService creates a new course service
func NewCourseService(courseRepo *repositories.CourseRepository, fieldRepo *repositories.FieldRepository, storage *filestorage.LocalStorage) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		fieldRepo:  fieldRepo,
		storage:    storage,
	}
}

// parseCourseDate parses an incoming date string or fails as a validation error.
func parseCourseDate(name, value string) (time.Time, error) {
	t, err := helpers.ParseDate(value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(fmt.Sprintf("%s must be a valid date", name))
	}
	return t, nil
}

// List returns one page of courses matching the filter.
func (s *CourseService) List(ctx context.Context, filter dto.CourseListFilter) ([]models.Course, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Limit)
	repoFilter := repositories.ListCoursesFilter{
		Search:  strings.TrimSpace(filter.Search),
		FieldID: filter.FieldID,
		Offset:  offset,
		Limit:   limit,
	}

	if filter.StartDate != nil && *filter.StartDate != "" {
		t, err := parseCourseDate("startDate", *filter.StartDate)
		if err != nil {
			return nil, 0, err
		}
		repoFilter.StartDate = &t
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		t, err := parseCourseDate("endDate", *filter.EndDate)
		if err != nil {
			return nil, 0, err
		}
		repoFilter.EndDate = &t
	}

	return s.courseRepo.List(ctx, repoFilter)
}

// Get returns one course with its field, images and documents.
func (s *CourseService) Get(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// Create validates the payload and inserts a new course.
func (s *CourseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	startDate, err := parseCourseDate("courseStartDate", req.CourseStartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseCourseDate("courseEndDate", req.CourseEndDate)
	if err != nil {
		return nil, err
	}
	if endDate.Before(startDate) {
		return nil, apperrors.NewValidationError("courseEndDate must not be before courseStartDate")
	}

	exists, err := s.fieldRepo.Exists(ctx, req.CourseFieldID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidReference,
			"Invalid course field ID. Field does not exist.")
	}

	course := &models.Course{
		CourseNumber:          strings.TrimSpace(req.CourseNumber),
		CourseCode:            strings.TrimSpace(req.CourseCode),
		CourseFieldID:         req.CourseFieldID,
		CourseName:            strings.TrimSpace(req.CourseName),
		CourseVenue:           strings.TrimSpace(req.CourseVenue),
		CourseStartDate:       startDate,
		CourseEndDate:         endDate,
		CourseDuration:        req.CourseDuration,
		CourseHours:           req.CourseHours,
		NumberOfBeneficiaries: *req.NumberOfBeneficiaries,
		NumberOfGraduates:     *req.NumberOfGraduates,
		TrainerName:           strings.TrimSpace(req.TrainerName),
		TrainerPhoneNumber:    strings.TrimSpace(req.TrainerPhoneNumber),
		Notes:                 req.Notes,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	logger.Info().Int64("courseId", course.ID).Str("courseNumber", course.CourseNumber).Msg("Course created")
	return s.courseRepo.GetByID(ctx, course.ID)
}

// Update applies a partial update: only the supplied slots change, the rest
// of the record is preserved.
func (s *CourseService) Update(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	if req.IsEmpty() {
		return nil, apperrors.NewValidationError("No fields supplied for update")
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.applyCourseUpdate(ctx, course, req); err != nil {
		return nil, err
	}
	if course.CourseEndDate.Before(course.CourseStartDate) {
		return nil, apperrors.NewValidationError("courseEndDate must not be before courseStartDate")
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}
	return s.courseRepo.GetByID(ctx, id)
}

func (s *CourseService) applyCourseUpdate(ctx context.Context, course *models.Course, req *dto.UpdateCourseRequest) error {
	setString := func(name string, dst *string, src *string) error {
		if src == nil {
			return nil
		}
		v := strings.TrimSpace(*src)
		if v == "" {
			return apperrors.NewValidationError(fmt.Sprintf("%s must not be empty", name))
		}
		*dst = v
		return nil
	}
	setPositive := func(name string, dst *int, src *int) error {
		if src == nil {
			return nil
		}
		if *src < 1 {
			return apperrors.NewValidationError(fmt.Sprintf("%s must be at least 1", name))
		}
		*dst = *src
		return nil
	}
	setNonNegative := func(name string, dst *int, src *int) error {
		if src == nil {
			return nil
		}
		if *src < 0 {
			return apperrors.NewValidationError(fmt.Sprintf("%s must not be negative", name))
		}
		*dst = *src
		return nil
	}

	if err := setString("courseNumber", &course.CourseNumber, req.CourseNumber); err != nil {
		return err
	}
	if err := setString("courseCode", &course.CourseCode, req.CourseCode); err != nil {
		return err
	}
	if err := setString("courseName", &course.CourseName, req.CourseName); err != nil {
		return err
	}
	if err := setString("courseVenue", &course.CourseVenue, req.CourseVenue); err != nil {
		return err
	}
	if err := setString("trainerName", &course.TrainerName, req.TrainerName); err != nil {
		return err
	}
	if err := setString("trainerPhoneNumber", &course.TrainerPhoneNumber, req.TrainerPhoneNumber); err != nil {
		return err
	}
	if err := setPositive("courseDuration", &course.CourseDuration, req.CourseDuration); err != nil {
		return err
	}
	if err := setPositive("courseHours", &course.CourseHours, req.CourseHours); err != nil {
		return err
	}
	if err := setNonNegative("numberOfBeneficiaries", &course.NumberOfBeneficiaries, req.NumberOfBeneficiaries); err != nil {
		return err
	}
	if err := setNonNegative("numberOfGraduates", &course.NumberOfGraduates, req.NumberOfGraduates); err != nil {
		return err
	}

	if req.CourseStartDate != nil {
		t, err := parseCourseDate("courseStartDate", *req.CourseStartDate)
		if err != nil {
			return err
		}
		course.CourseStartDate = t
	}
	if req.CourseEndDate != nil {
		t, err := parseCourseDate("courseEndDate", *req.CourseEndDate)
		if err != nil {
			return err
		}
		course.CourseEndDate = t
	}
	if req.Notes != nil {
		course.Notes = req.Notes
	}

	if req.CourseFieldID != nil {
		exists, err := s.fieldRepo.Exists(ctx, *req.CourseFieldID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NewCustomError(apperrors.ErrInvalidReference,
				"Invalid course field ID. Field does not exist.")
		}
		course.CourseFieldID = *req.CourseFieldID
	}
	return nil
}

// Delete removes a course together with its database associations and the
// files behind them. File removal is settle-all: a failed unlink is logged
// and never blocks the row delete.
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	pointers := make([]string, 0, len(course.Images)+len(course.Documents))
	for _, img := range course.Images {
		pointers = append(pointers, img.URL)
	}
	for _, doc := range course.Documents {
		pointers = append(pointers, doc.Path)
	}
	s.storage.DeleteAll(pointers)

	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().
		Int64("courseId", id).
		Int("files", len(pointers)).
		Msg("Course deleted")
	return nil
}
