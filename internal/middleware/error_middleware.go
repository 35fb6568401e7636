package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/burak/campusplace/internal/app/models/dto"
	"github.com/burak/campusplace/internal/pkg/apperrors"
)

// HandleAPIError maps application errors to the standard error envelope.
// Controllers call it from every failure path so status codes and payload
// shapes stay consistent across the API.
func HandleAPIError(c *gin.Context, err error) {
	message := ""
	var details interface{}

	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		message = custom.Message
		if custom.Details != nil {
			details = custom.Details
		}
	}

	respond := func(status int, code dto.ErrorCode, fallback string) {
		if message == "" {
			message = fallback
		}
		detail := dto.NewErrorDetail(code, message)
		if details != nil {
			detail = detail.WithDetails(details)
		}
		c.JSON(status, dto.APIResponse{Error: detail})
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")

	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")
	case errors.Is(err, apperrors.ErrNotPartnered):
		respond(http.StatusForbidden, dto.ErrorCodeForbidden, "No active partnership with this college")

	case errors.Is(err, apperrors.ErrUserNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found")
	case errors.Is(err, apperrors.ErrJobNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Job not found")
	case errors.Is(err, apperrors.ErrPartnershipNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Partnership not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found")

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respond(http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists")
	case errors.Is(err, apperrors.ErrPartnershipExists):
		respond(http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Request already sent or active")
	case errors.Is(err, apperrors.ErrConflict):
		respond(http.StatusConflict, dto.ErrorCodeResourceConflict, "Conflict")

	case errors.Is(err, apperrors.ErrPartitionRequired):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Class year and department are required")
	case errors.Is(err, apperrors.ErrNoWorksheet):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed, "No worksheet found in file")
	case errors.Is(err, apperrors.ErrNoValidRecords):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed, "No valid records found in the upload")
	case errors.Is(err, apperrors.ErrCollegeMissing):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed, "College profile missing")
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed")

	default:
		message = ""
		details = nil
		respond(http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}
