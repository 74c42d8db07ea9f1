package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ryalynne/hrms/internal/app/models/dto"
	"github.com/ryalynne/hrms/internal/pkg/apperrors"
	"github.com/ryalynne/hrms/internal/pkg/auth"
)

// Context keys set by JWTAuth
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
)

// TokenValidator verifies a bearer token and returns its identity
type TokenValidator interface {
	ValidateToken(token string) (*dto.AuthenticatedUser, error)
}

// AuthMiddleware for authentication
type AuthMiddleware struct {
	validator TokenValidator
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		validator: validator,
	}
}

// JWTAuth middleware for JWT token validation. A missing header is a 401;
// a token that is present but invalid or expired is a 400.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Access denied, no token provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		user, err := m.validator.ValidateToken(tokenString)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			if errors.Is(err, apperrors.ErrTokenExpired) {
				errorCode = dto.ErrorCodeExpiredToken
			}

			errorDetail := dto.NewErrorDetail(errorCode, "Invalid token")
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextEmail, user.Email)

		c.Next()
	}
}

// CurrentUser returns the identity JWTAuth stored on the context
func CurrentUser(c *gin.Context) (dto.AuthenticatedUser, bool) {
	id, ok := c.Get(ContextUserID)
	if !ok {
		return dto.AuthenticatedUser{}, false
	}
	userID, ok := id.(int64)
	if !ok {
		return dto.AuthenticatedUser{}, false
	}
	return dto.AuthenticatedUser{ID: userID, Email: c.GetString(ContextEmail)}, true
}
