package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// FieldError is one entry of the structured validation error list
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewValidationErrorResponse builds a failure envelope carrying the
// structured field-error list.
func NewValidationErrorResponse(fieldErrors []FieldError) Response {
	return Response{
		Success: false,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// FieldErrorsFromBinding converts a gin binding error into the structured
// field-error list. Non-validator errors collapse into a single entry.
func FieldErrorsFromBinding(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Message: formatValidationError(fe),
		})
	}
	return out
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "dive":
		return e.Field() + " contains invalid entries"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
