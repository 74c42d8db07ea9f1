package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ryalynne/hrms/internal/app/models/dto"
	"github.com/ryalynne/hrms/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    dto.ErrorCode
		wantMessage string
	}{
		{"employee not found", apperrors.ErrEmployeeNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found"},
		{"no positions", fmt.Errorf("listing: %w", apperrors.ErrNoPositions), http.StatusNotFound, dto.ErrorCodeResourceNotFound, "No positions found for this job"},
		{"validation", apperrors.NewValidationError("id", "id must be a positive integer"), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "id must be a positive integer"},
		{"unknown user", apperrors.NewCustomError(apperrors.ErrUserNotFound, "User not found"), http.StatusBadRequest, dto.ErrorCodeInvalidCredentials, "User not found"},
		{"bad password", apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid credentials"), http.StatusBadRequest, dto.ErrorCodeInvalidCredentials, "Invalid credentials"},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists"},
		{"missing reference", apperrors.NewReferenceError("dep_id", "Job title not found"), http.StatusBadRequest, dto.ErrorCodeResourceInvalid, "Job title not found"},
		{"in use", apperrors.NewConflictError("Job title still has positions"), http.StatusConflict, dto.ErrorCodeConflict, "Job title still has positions"},
		{"storage failure", errors.New("pq: password authentication failed for user hr"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantMessage, body.Error.Message)
			assert.NotContains(t, w.Body.String(), "pq:")
		})
	}
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), string(dto.ErrorCodeInternalServer))
}
