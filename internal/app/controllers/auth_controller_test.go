package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/ryalynne/hrms/internal/app/models/dto"
	"github.com/ryalynne/hrms/internal/middleware"
	"github.com/ryalynne/hrms/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAuthRouter(svc *mockAuthService) *gin.Engine {
	ctrl := NewAuthController(svc, zerolog.Nop())
	r := gin.New()
	r.POST("/auth/register", ctrl.Register)
	r.POST("/auth/login", ctrl.Login)
	r.GET("/protected-route", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, int64(3))
		c.Set(middleware.ContextEmail, "hr@example.com")
	}, ctrl.Protected)
	return r
}

func TestRegister(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("Register", mock.Anything, &dto.RegisterRequest{Email: "hr@example.com", Password: "secret1"}).
		Return(&dto.RegisterResponse{Message: "User created successfully", UserID: 1}, nil)
	svc.On("Register", mock.Anything, &dto.RegisterRequest{Email: "dup@example.com", Password: "secret1"}).
		Return(nil, apperrors.ErrEmailAlreadyExists)
	r := newAuthRouter(svc)

	w := doRequest(r, http.MethodPost, "/auth/register", `{"email":"hr@example.com","password":"secret1"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message":"User created successfully","id":1}`, w.Body.String())

	w = doRequest(r, http.MethodPost, "/auth/register", `{"email":"dup@example.com","password":"secret1"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, dto.ErrorCodeResourceAlreadyExists, decodeError(t, w).Error.Code)

	w = doRequest(r, http.MethodPost, "/auth/register", `{"email":"not-an-email","password":"secret1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "email", decodeError(t, w).Error.Field)
}

func TestLogin(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("Login", mock.Anything, &dto.LoginRequest{Email: "hr@example.com", Password: "secret1"}).
		Return(&dto.TokenResponse{Token: "jwt", TokenType: "Bearer", ExpiresIn: 3600}, nil)
	svc.On("Login", mock.Anything, &dto.LoginRequest{Email: "hr@example.com", Password: "wrong"}).
		Return(nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid credentials"))
	r := newAuthRouter(svc)

	w := doRequest(r, http.MethodPost, "/auth/login", `{"email":"hr@example.com","password":"secret1"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"token":"jwt","tokenType":"Bearer","expiresIn":3600}`, w.Body.String())

	w = doRequest(r, http.MethodPost, "/auth/login", `{"email":"hr@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, dto.ErrorCodeInvalidCredentials, body.Error.Code)
	assert.NotContains(t, w.Body.String(), "token\":")
}

func TestProtected(t *testing.T) {
	w := doRequest(newAuthRouter(new(mockAuthService)), http.MethodGet, "/protected-route", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"You have accessed a protected route","user":{"id":3,"email":"hr@example.com"}}`, w.Body.String())
}
