package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/malek/tadreeb/internal/app/models/dto"
	"github.com/malek/tadreeb/internal/pkg/apperrors"
	"github.com/malek/tadreeb/internal/pkg/logger"
)

// HandleAPIError maps a service error to its HTTP status and writes the
// failure envelope. CustomError messages and details pass through; unknown
// errors are logged and answered with a generic 500.
func HandleAPIError(c *gin.Context, err error) {
	status := statusFor(err)

	if status == http.StatusInternalServerError && !errors.Is(err, apperrors.ErrServerMisconfigured) {
		logger.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled API error")
		c.JSON(status, dto.NewError("Internal server error"))
		return
	}

	resp := dto.NewError(err.Error())
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Details != nil {
		resp.Data = customErr.Details
	}
	c.JSON(status, resp)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrFieldNotFound),
		errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrImageNotFound),
		errors.Is(err, apperrors.ErrDocumentNotFound),
		errors.Is(err, apperrors.ErrUserNotFound):
		return http.StatusNotFound

	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized

	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden

	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrInvalidReference),
		errors.Is(err, apperrors.ErrFieldAlreadyExists),
		errors.Is(err, apperrors.ErrFieldInUse),
		errors.Is(err, apperrors.ErrCourseNumberAlreadyUsed),
		errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrInvalidFileType),
		errors.Is(err, apperrors.ErrFileTooLarge),
		errors.Is(err, apperrors.ErrInvalidDocumentType),
		errors.Is(err, apperrors.ErrNoFilesUploaded),
		errors.Is(err, apperrors.ErrTooManyFiles):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
