package dto

// RegisterRequest is the body of POST /auth/register
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// RegisterResponse acknowledges a new account
type RegisterResponse struct {
	Message string `json:"message" example:"User created successfully"`
	UserID  int64  `json:"id" example:"1"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries the signed bearer token
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType" example:"Bearer"`
	ExpiresIn int64  `json:"expiresIn" example:"3600"`
}

// AuthenticatedUser is the identity the auth gate attaches to a request
type AuthenticatedUser struct {
	ID    int64  `json:"id" example:"1"`
	Email string `json:"email" example:"hr@example.com"`
}

// ProtectedResponse is the body of GET /protected-route
type ProtectedResponse struct {
	Message string            `json:"message" example:"You have accessed a protected route"`
	User    AuthenticatedUser `json:"user"`
}
