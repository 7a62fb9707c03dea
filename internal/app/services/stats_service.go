package services

import (
	"context"
	"sort"
	"time"

	"github.com/malek/tadreeb/internal/app/models"
	"github.com/malek/tadreeb/internal/app/models/dto"
	"github.com/malek/tadreeb/internal/app/repositories"
)

const recentCoursesCount = 5

// StatsService computes the reporting views. Whole-store sums come from
// SQL aggregates; the grouped series are folded in memory over a slim
// per-course projection.
type StatsService struct {
	courseRepo *repositories.CourseRepository
	fieldRepo  *repositories.FieldRepository
}

// NewStatsService creates a new stats service
func NewStatsService(courseRepo *repositories.CourseRepository, fieldRepo *repositories.FieldRepository) *StatsService {
	return &StatsService{
		courseRepo: courseRepo,
		fieldRepo:  fieldRepo,
	}
}

// Dashboard assembles the landing-page statistics: overview totals,
// per-field course counts, the five most recent courses and the
// trailing-six-months series.
func (s *StatsService) Dashboard(ctx context.Context) (*dto.DashboardStats, error) {
	overview, err := s.courseRepo.AggregateTotals(ctx, nil, nil)
	if err != nil {
		return nil, err
	}

	fields, err := s.fieldRepo.List(ctx, "", true)
	if err != nil {
		return nil, err
	}
	byField := make([]dto.FieldCourseCount, 0, len(fields))
	for _, f := range fields {
		var count int64
		if f.CourseCount != nil {
			count = *f.CourseCount
		}
		byField = append(byField, dto.FieldCourseCount{ID: f.ID, Name: f.Name, Count: count})
	}

	recent, err := s.courseRepo.Recent(ctx, recentCoursesCount)
	if err != nil {
		return nil, err
	}

	sixMonthsAgo := time.Now().UTC().AddDate(0, -6, 0)
	rows, err := s.courseRepo.ListStatRows(ctx, &sixMonthsAgo, nil)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStats{
		Overview:       overview,
		CoursesByField: byField,
		RecentCourses:  recent,
		CoursesByMonth: groupByMonth(rows),
	}, nil
}

// FieldStats returns per-field aggregates for every field, including
// fields without any course yet.
func (s *StatsService) FieldStats(ctx context.Context) ([]dto.FieldStats, error) {
	fields, err := s.fieldRepo.List(ctx, "", false)
	if err != nil {
		return nil, err
	}
	rows, err := s.courseRepo.ListStatRows(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	return foldFieldStats(fields, rows), nil
}

// TrainerStats aggregates courses per trainer, busiest trainers first.
func (s *StatsService) TrainerStats(ctx context.Context) ([]dto.TrainerStats, error) {
	rows, err := s.courseRepo.ListStatRows(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	return groupTrainers(rows), nil
}

// Yearly returns the overview totals and month-by-month breakdown of one
// calendar year.
func (s *StatsService) Yearly(ctx context.Context, year int) (*dto.YearlyStats, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond)

	overview, err := s.courseRepo.AggregateTotals(ctx, &from, &to)
	if err != nil {
		return nil, err
	}
	rows, err := s.courseRepo.ListStatRows(ctx, &from, &to)
	if err != nil {
		return nil, err
	}

	return &dto.YearlyStats{
		Year:             year,
		Overview:         overview,
		MonthlyBreakdown: groupByMonthOfYear(rows),
	}, nil
}

// groupByMonth folds rows into YYYY-MM buckets, most recent month first.
func groupByMonth(rows []repositories.CourseStatRow) []dto.MonthlyCount {
	buckets := make(map[string]*dto.MonthlyCount)
	for _, row := range rows {
		key := row.StartDate.UTC().Format("2006-01")
		b, ok := buckets[key]
		if !ok {
			b = &dto.MonthlyCount{Month: key}
			buckets[key] = b
		}
		b.Count++
		b.Graduates += row.Graduates
	}

	result := make([]dto.MonthlyCount, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, *b)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Month > result[j].Month
	})
	return result
}

// foldFieldStats sums rows under their field, preserving the field order
// of the taxonomy listing. Fields with no courses stay at zero.
func foldFieldStats(fields []models.CourseField, rows []repositories.CourseStatRow) []dto.FieldStats {
	index := make(map[int64]int, len(fields))
	result := make([]dto.FieldStats, 0, len(fields))
	for _, f := range fields {
		index[f.ID] = len(result)
		result = append(result, dto.FieldStats{ID: f.ID, Name: f.Name})
	}

	for _, row := range rows {
		i, ok := index[row.FieldID]
		if !ok {
			continue
		}
		result[i].TotalCourses++
		result[i].TotalGraduates += int64(row.Graduates)
		result[i].TotalBeneficiaries += int64(row.Beneficiaries)
		result[i].TotalHours += int64(row.Hours)
	}
	return result
}

// groupTrainers folds rows per (name, phone) pair, ordered by course count
// descending with name as the tie breaker.
func groupTrainers(rows []repositories.CourseStatRow) []dto.TrainerStats {
	type trainerKey struct {
		name  string
		phone string
	}

	buckets := make(map[trainerKey]*dto.TrainerStats)
	for _, row := range rows {
		key := trainerKey{name: row.TrainerName, phone: row.TrainerPhone}
		b, ok := buckets[key]
		if !ok {
			b = &dto.TrainerStats{Name: row.TrainerName, Phone: row.TrainerPhone}
			buckets[key] = b
		}
		b.TotalCourses++
		b.TotalGraduates += int64(row.Graduates)
		b.TotalHours += int64(row.Hours)
	}

	result := make([]dto.TrainerStats, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, *b)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].TotalCourses != result[j].TotalCourses {
			return result[i].TotalCourses > result[j].TotalCourses
		}
		return result[i].Name < result[j].Name
	})
	return result
}

// groupByMonthOfYear folds rows of a single year into month buckets 1-12,
// ascending. Months without courses are omitted.
func groupByMonthOfYear(rows []repositories.CourseStatRow) []dto.MonthOfYearStats {
	buckets := make(map[int]*dto.MonthOfYearStats)
	for _, row := range rows {
		month := int(row.StartDate.UTC().Month())
		b, ok := buckets[month]
		if !ok {
			b = &dto.MonthOfYearStats{Month: month}
			buckets[month] = b
		}
		b.Courses++
		b.Graduates += row.Graduates
		b.Hours += row.Hours
	}

	result := make([]dto.MonthOfYearStats, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, *b)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Month < result[j].Month
	})
	return result
}
