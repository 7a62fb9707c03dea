package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// A referenced entity (foreign key) does not exist
	ErrInvalidReference = errors.New("referenced entity does not exist")

	// Authentication / authorization errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrPermissionDenied   = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Server errors
	ErrServerMisconfigured = errors.New("server misconfiguration")
)

// Field registry errors
var (
	ErrFieldNotFound      = errors.New("course field not found")
	ErrFieldAlreadyExists = errors.New("course field with this name already exists")
	ErrFieldInUse         = errors.New("course field has associated courses and cannot be deleted")
)

// Course errors
var (
	ErrCourseNotFound          = errors.New("course not found")
	ErrCourseNumberAlreadyUsed = errors.New("course number already exists")
	ErrImageNotFound           = errors.New("course image not found")
	ErrDocumentNotFound        = errors.New("course document not found")
	ErrInvalidFileType         = errors.New("file type not allowed")
	ErrFileTooLarge            = errors.New("file exceeds maximum allowed size")
	ErrInvalidDocumentType     = errors.New("invalid document type")
	ErrNoFilesUploaded         = errors.New("no files uploaded")
	ErrTooManyFiles            = errors.New("too many files uploaded")
)

// User errors
var (
	ErrUserNotFound = errors.New("user not found")
)

// CustomError carries additional context alongside a sentinel error
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError wrapping a sentinel
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails attaches context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewFieldInUseError reports a blocked field deletion with the live reference count
func NewFieldInUseError(message string, courseCount int64) *CustomError {
	return &CustomError{
		Err:     ErrFieldInUse,
		Message: message,
		Details: map[string]interface{}{"courseCount": courseCount},
	}
}

// NewValidationError creates a validation failure with a message
func NewValidationError(message string) *CustomError {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}
