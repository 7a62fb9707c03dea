package dto

import "github.com/malek/tadreeb/internal/app/models"

// OverviewTotals are whole-store sums for dashboard and yearly views
type OverviewTotals struct {
	TotalCourses       int64 `json:"totalCourses"`
	TotalGraduates     int64 `json:"totalGraduates"`
	TotalHours         int64 `json:"totalHours"`
	TotalBeneficiaries int64 `json:"totalBeneficiaries"`
}

// FieldCourseCount is one per-field slice of the dashboard
type FieldCourseCount struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// MonthlyCount is one YYYY-MM bucket of the trailing-six-months series
type MonthlyCount struct {
	Month     string `json:"month"`
	Count     int    `json:"count"`
	Graduates int    `json:"graduates"`
}

// DashboardStats is the dashboard payload
type DashboardStats struct {
	Overview       OverviewTotals     `json:"overview"`
	CoursesByField []FieldCourseCount `json:"coursesByField"`
	RecentCourses  []models.Course    `json:"recentCourses"`
	CoursesByMonth []MonthlyCount     `json:"coursesByMonth"`
}

// FieldStats aggregates one field's courses
type FieldStats struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	TotalCourses       int64  `json:"totalCourses"`
	TotalGraduates     int64  `json:"totalGraduates"`
	TotalBeneficiaries int64  `json:"totalBeneficiaries"`
	TotalHours         int64  `json:"totalHours"`
}

// TrainerStats aggregates courses by (trainer name, trainer phone)
type TrainerStats struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	TotalCourses   int64  `json:"totalCourses"`
	TotalGraduates int64  `json:"totalGraduates"`
	TotalHours     int64  `json:"totalHours"`
}

// MonthOfYearStats is one month bucket (1-12) of the yearly breakdown
type MonthOfYearStats struct {
	Month     int `json:"month"`
	Courses   int `json:"courses"`
	Graduates int `json:"graduates"`
	Hours     int `json:"hours"`
}

// YearlyStats is the yearly statistics payload
type YearlyStats struct {
	Year             int                `json:"year"`
	Overview         OverviewTotals     `json:"overview"`
	MonthlyBreakdown []MonthOfYearStats `json:"monthlyBreakdown"`
}
