package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/ryalynne/hrms/internal/app/models/dto"
	"github.com/ryalynne/hrms/internal/pkg/apperrors"
)

// --- Central Error Handling ---

// HandleAPIError handles common API errors and returns appropriate responses.
// Unknown errors are logged and answered with a generic 500.
func HandleAPIError(c *gin.Context, err error) {
	status, detail := classifyError(err)

	if status == http.StatusInternalServerError {
		requestLogger(c).Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
	}

	c.JSON(status, dto.NewErrorResponse(detail))
}

func classifyError(err error) (int, *dto.ErrorDetail) {
	message := func(fallback string) string {
		return apperrors.PublicMessage(err, fallback)
	}

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound,
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message("Resource not found"))
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message("Validation failed")).
				WithField(apperrors.FieldOf(err))
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message("Bad request"))
	case errors.Is(err, apperrors.ErrUserNotFound):
		return http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, message("User not found"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, message("Invalid credentials"))
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Invalid token")
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrTokenNotFound):
		return http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return http.StatusConflict,
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists")
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		return http.StatusConflict,
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, message("Resource already exists"))
	case errors.Is(err, apperrors.ErrReferenceNotFound):
		return http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeResourceInvalid, message("Referenced resource not found")).
				WithField(apperrors.FieldOf(err))
	case errors.Is(err, apperrors.ErrResourceInUse):
		return http.StatusConflict,
			dto.NewErrorDetail(dto.ErrorCodeConflict, message("Resource is still referenced"))
	default:
		return http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// Recovery turns a panic into a logged 500 with the standard error body
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		requestLogger(c).Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Msg("Recovered from panic")

		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
	})
}

func requestLogger(c *gin.Context) *zerolog.Logger {
	return zerolog.Ctx(c.Request.Context())
}
