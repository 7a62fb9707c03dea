package models

import "time"

// Course is a single training-course archival record. It exclusively owns
// its images and documents; both are cascade-deleted with the course.
type Course struct {
	ID                    int64     `json:"id"`
	CourseNumber          string    `json:"courseNumber"`
	CourseCode            string    `json:"courseCode"`
	CourseFieldID         int64     `json:"courseFieldId"`
	CourseName            string    `json:"courseName"`
	CourseVenue           string    `json:"courseVenue"`
	CourseStartDate       time.Time `json:"courseStartDate"`
	CourseEndDate         time.Time `json:"courseEndDate"`
	CourseDuration        int       `json:"courseDuration"`
	CourseHours           int       `json:"courseHours"`
	NumberOfBeneficiaries int       `json:"numberOfBeneficiaries"`
	NumberOfGraduates     int       `json:"numberOfGraduates"`
	TrainerName           string    `json:"trainerName"`
	TrainerPhoneNumber    string    `json:"trainerPhoneNumber"`
	Notes                 *string   `json:"notes"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`

	CourseField *CourseField     `json:"courseField,omitempty"`
	Images      []CourseImage    `json:"images"`
	Documents   []CourseDocument `json:"documents"`
}

// CourseImage is an uploaded gallery image belonging to a course. URL is
// the public pointer (/uploads/images/<name>); the backing disk file is
// deleted whenever the record is.
type CourseImage struct {
	ID        int64     `json:"id"`
	CourseID  int64     `json:"courseId"`
	URL       string    `json:"url"`
	AltText   *string   `json:"altText"`
	CreatedAt time.Time `json:"createdAt"`
}

// CourseDocument is a typed document attachment (attendance form,
// certificate, ...). Multiple documents per (course, type) are allowed.
type CourseDocument struct {
	ID        int64        `json:"id"`
	CourseID  int64        `json:"courseId"`
	Type      DocumentType `json:"type"`
	Path      string       `json:"path"`
	FileName  string       `json:"fileName"`
	CreatedAt time.Time    `json:"createdAt"`
}
