package models

// CourseField is a category label attached to courses. Fields are
// referenced, not owned, by courses: deletion is blocked while any
// course still points at the field.
type CourseField struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`

	// CourseCount is populated on demand (list with includeCount,
	// single get, dashboard statistics).
	CourseCount *int64 `json:"courseCount,omitempty"`
}
