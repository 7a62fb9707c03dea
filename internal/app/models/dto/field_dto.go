package dto

import "github.com/malek/tadreeb/internal/app/models"

// CreateFieldRequest creates or renames a course field
type CreateFieldRequest struct {
	Name string `json:"name" binding:"required,min=2,max=64"`
}

// BulkCreateFieldsRequest creates many fields in one best-effort batch
type BulkCreateFieldsRequest struct {
	Fields []CreateFieldRequest `json:"fields" binding:"required,min=1,dive"`
}

// BulkSkippedField records a batch entry skipped as a duplicate
type BulkSkippedField struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// BulkErroredField records a batch entry that failed outright
type BulkErroredField struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

// BulkCreateFieldsResult partitions a bulk create into its outcomes
type BulkCreateFieldsResult struct {
	Created []models.CourseField `json:"created"`
	Skipped []BulkSkippedField   `json:"skipped"`
	Errors  []BulkErroredField   `json:"errors"`
}

// FieldCoursesResponse is the payload of the per-field course listing
type FieldCoursesResponse struct {
	Field      *models.CourseField `json:"field"`
	Courses    []models.Course     `json:"courses"`
	Pagination *Pagination         `json:"pagination"`
}
