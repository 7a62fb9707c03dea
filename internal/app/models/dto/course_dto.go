package dto

// CreateCourseRequest carries a full course payload. Dates arrive as
// ISO strings and are parsed and validated in the service.
type CreateCourseRequest struct {
	CourseNumber          string  `json:"courseNumber" binding:"required"`
	CourseCode            string  `json:"courseCode" binding:"required"`
	CourseFieldID         int64   `json:"courseFieldId" binding:"required,min=1"`
	CourseName            string  `json:"courseName" binding:"required"`
	CourseVenue           string  `json:"courseVenue" binding:"required"`
	CourseStartDate       string  `json:"courseStartDate" binding:"required"`
	CourseEndDate         string  `json:"courseEndDate" binding:"required"`
	CourseDuration        int     `json:"courseDuration" binding:"required,min=1"`
	CourseHours           int     `json:"courseHours" binding:"required,min=1"`
	NumberOfBeneficiaries *int    `json:"numberOfBeneficiaries" binding:"required,min=0"`
	NumberOfGraduates     *int    `json:"numberOfGraduates" binding:"required,min=0"`
	TrainerName           string  `json:"trainerName" binding:"required"`
	TrainerPhoneNumber    string  `json:"trainerPhoneNumber" binding:"required"`
	Notes                 *string `json:"notes"`
}

// UpdateCourseRequest is the partial-update payload: one optional slot per
// mutable attribute, only supplied slots are validated and applied.
type UpdateCourseRequest struct {
	CourseNumber          *string `json:"courseNumber"`
	CourseCode            *string `json:"courseCode"`
	CourseFieldID         *int64  `json:"courseFieldId"`
	CourseName            *string `json:"courseName"`
	CourseVenue           *string `json:"courseVenue"`
	CourseStartDate       *string `json:"courseStartDate"`
	CourseEndDate         *string `json:"courseEndDate"`
	CourseDuration        *int    `json:"courseDuration"`
	CourseHours           *int    `json:"courseHours"`
	NumberOfBeneficiaries *int    `json:"numberOfBeneficiaries"`
	NumberOfGraduates     *int    `json:"numberOfGraduates"`
	TrainerName           *string `json:"trainerName"`
	TrainerPhoneNumber    *string `json:"trainerPhoneNumber"`
	Notes                 *string `json:"notes"`
}

// IsEmpty reports whether no slot was supplied at all.
func (r *UpdateCourseRequest) IsEmpty() bool {
	return r.CourseNumber == nil && r.CourseCode == nil && r.CourseFieldID == nil &&
		r.CourseName == nil && r.CourseVenue == nil && r.CourseStartDate == nil &&
		r.CourseEndDate == nil && r.CourseDuration == nil && r.CourseHours == nil &&
		r.NumberOfBeneficiaries == nil && r.NumberOfGraduates == nil &&
		r.TrainerName == nil && r.TrainerPhoneNumber == nil && r.Notes == nil
}

// CourseListFilter collects the query parameters of the course listing
type CourseListFilter struct {
	Page      int
	Limit     int
	Search    string
	FieldID   *int64
	StartDate *string
	EndDate   *string
}
