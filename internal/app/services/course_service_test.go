package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malek/tadreeb/internal/app/models"
	"github.com/malek/tadreeb/internal/app/models/dto"
	"github.com/malek/tadreeb/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func baseCourse() *models.Course {
	start, _ := time.Parse("2006-01-02", "2026-01-10")
	end, _ := time.Parse("2006-01-02", "2026-01-20")
	return &models.Course{
		ID:                    1,
		CourseNumber:          "TR-001",
		CourseCode:            "MGMT",
		CourseFieldID:         2,
		CourseName:            "Time Management",
		CourseVenue:           "Main Hall",
		CourseStartDate:       start,
		CourseEndDate:         end,
		CourseDuration:        10,
		CourseHours:           40,
		NumberOfBeneficiaries: 30,
		NumberOfGraduates:     25,
		TrainerName:           "Sara",
		TrainerPhoneNumber:    "0500",
	}
}

func TestApplyCourseUpdateMergesSuppliedSlots(t *testing.T) {
	svc := &CourseService{}
	course := baseCourse()

	err := svc.applyCourseUpdate(context.Background(), course, &dto.UpdateCourseRequest{
		CourseName:        strPtr("  Advanced Time Management "),
		CourseHours:       intPtr(60),
		NumberOfGraduates: intPtr(0),
		Notes:             strPtr("rescheduled"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Advanced Time Management", course.CourseName)
	assert.Equal(t, 60, course.CourseHours)
	assert.Equal(t, 0, course.NumberOfGraduates)
	require.NotNil(t, course.Notes)
	assert.Equal(t, "rescheduled", *course.Notes)

	// Untouched slots keep their values
	assert.Equal(t, "TR-001", course.CourseNumber)
	assert.Equal(t, 30, course.NumberOfBeneficiaries)
	assert.Equal(t, "Sara", course.TrainerName)
}

func TestApplyCourseUpdateRejectsBlankString(t *testing.T) {
	svc := &CourseService{}

	err := svc.applyCourseUpdate(context.Background(), baseCourse(), &dto.UpdateCourseRequest{
		CourseVenue: strPtr("   "),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestApplyCourseUpdateRejectsNegativeCount(t *testing.T) {
	svc := &CourseService{}

	err := svc.applyCourseUpdate(context.Background(), baseCourse(), &dto.UpdateCourseRequest{
		NumberOfBeneficiaries: intPtr(-1),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestApplyCourseUpdateRejectsZeroHours(t *testing.T) {
	svc := &CourseService{}

	err := svc.applyCourseUpdate(context.Background(), baseCourse(), &dto.UpdateCourseRequest{
		CourseHours: intPtr(0),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestApplyCourseUpdateRejectsBadDate(t *testing.T) {
	svc := &CourseService{}

	err := svc.applyCourseUpdate(context.Background(), baseCourse(), &dto.UpdateCourseRequest{
		CourseStartDate: strPtr("20/01/2026"),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateCourseRequestIsEmpty(t *testing.T) {
	assert.True(t, (&dto.UpdateCourseRequest{}).IsEmpty())
	assert.False(t, (&dto.UpdateCourseRequest{CourseName: strPtr("x")}).IsEmpty())
}

func TestParseCourseDate(t *testing.T) {
	parsed, err := parseCourseDate("courseStartDate", "2026-05-01")
	require.NoError(t, err)
	assert.Equal(t, time.May, parsed.Month())

	_, err = parseCourseDate("courseStartDate", "yesterday")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "courseStartDate")
}
