package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malek/tadreeb/internal/app/models"
	"github.com/malek/tadreeb/internal/app/repositories"
)

func statRow(fieldID int64, date string, graduates, beneficiaries, hours int, trainer, phone string) repositories.CourseStatRow {
	t, _ := time.Parse("2006-01-02", date)
	return repositories.CourseStatRow{
		FieldID:       fieldID,
		StartDate:     t,
		Graduates:     graduates,
		Beneficiaries: beneficiaries,
		Hours:         hours,
		TrainerName:   trainer,
		TrainerPhone:  phone,
	}
}

func TestGroupByMonth(t *testing.T) {
	rows := []repositories.CourseStatRow{
		statRow(1, "2026-03-05", 10, 12, 20, "A", "1"),
		statRow(1, "2026-03-20", 5, 6, 10, "B", "2"),
		statRow(2, "2026-05-01", 7, 8, 15, "A", "1"),
	}

	result := groupByMonth(rows)
	require.Len(t, result, 2)

	// Most recent month first
	assert.Equal(t, "2026-05", result[0].Month)
	assert.Equal(t, 1, result[0].Count)
	assert.Equal(t, 7, result[0].Graduates)

	assert.Equal(t, "2026-03", result[1].Month)
	assert.Equal(t, 2, result[1].Count)
	assert.Equal(t, 15, result[1].Graduates)
}

func TestGroupByMonthEmpty(t *testing.T) {
	assert.Empty(t, groupByMonth(nil))
}

func TestFoldFieldStats(t *testing.T) {
	fields := []models.CourseField{
		{ID: 1, Name: "Administration"},
		{ID: 2, Name: "Computing"},
		{ID: 3, Name: "Languages"},
	}
	rows := []repositories.CourseStatRow{
		statRow(1, "2026-01-10", 10, 15, 20, "A", "1"),
		statRow(1, "2026-02-10", 5, 8, 12, "B", "2"),
		statRow(2, "2026-01-15", 3, 4, 6, "A", "1"),
	}

	result := foldFieldStats(fields, rows)
	require.Len(t, result, 3)

	assert.Equal(t, "Administration", result[0].Name)
	assert.Equal(t, int64(2), result[0].TotalCourses)
	assert.Equal(t, int64(15), result[0].TotalGraduates)
	assert.Equal(t, int64(23), result[0].TotalBeneficiaries)
	assert.Equal(t, int64(32), result[0].TotalHours)

	assert.Equal(t, "Computing", result[1].Name)
	assert.Equal(t, int64(1), result[1].TotalCourses)

	// A field without courses stays at zero
	assert.Equal(t, "Languages", result[2].Name)
	assert.Equal(t, int64(0), result[2].TotalCourses)
}

func TestGroupTrainers(t *testing.T) {
	rows := []repositories.CourseStatRow{
		statRow(1, "2026-01-01", 10, 0, 8, "Sara", "0500"),
		statRow(1, "2026-02-01", 12, 0, 16, "Sara", "0500"),
		statRow(2, "2026-03-01", 4, 0, 6, "Omar", "0511"),
	}

	result := groupTrainers(rows)
	require.Len(t, result, 2)

	assert.Equal(t, "Sara", result[0].Name)
	assert.Equal(t, "0500", result[0].Phone)
	assert.Equal(t, int64(2), result[0].TotalCourses)
	assert.Equal(t, int64(22), result[0].TotalGraduates)
	assert.Equal(t, int64(24), result[0].TotalHours)

	assert.Equal(t, "Omar", result[1].Name)
}

func TestGroupTrainersSamePersonDifferentPhone(t *testing.T) {
	rows := []repositories.CourseStatRow{
		statRow(1, "2026-01-01", 1, 0, 1, "Sara", "0500"),
		statRow(1, "2026-02-01", 1, 0, 1, "Sara", "0599"),
	}

	// The key is the (name, phone) pair
	assert.Len(t, groupTrainers(rows), 2)
}

func TestGroupTrainersTieBreaksByName(t *testing.T) {
	rows := []repositories.CourseStatRow{
		statRow(1, "2026-01-01", 1, 0, 1, "Zain", "1"),
		statRow(1, "2026-02-01", 1, 0, 1, "Amal", "2"),
	}

	result := groupTrainers(rows)
	require.Len(t, result, 2)
	assert.Equal(t, "Amal", result[0].Name)
	assert.Equal(t, "Zain", result[1].Name)
}

func TestGroupByMonthOfYear(t *testing.T) {
	rows := []repositories.CourseStatRow{
		statRow(1, "2026-11-10", 5, 0, 10, "A", "1"),
		statRow(1, "2026-02-10", 3, 0, 6, "A", "1"),
		statRow(1, "2026-02-25", 2, 0, 4, "B", "2"),
	}

	result := groupByMonthOfYear(rows)
	require.Len(t, result, 2)

	// Ascending by month, empty months omitted
	assert.Equal(t, 2, result[0].Month)
	assert.Equal(t, 2, result[0].Courses)
	assert.Equal(t, 5, result[0].Graduates)
	assert.Equal(t, 10, result[0].Hours)

	assert.Equal(t, 11, result[1].Month)
	assert.Equal(t, 1, result[1].Courses)
}
