package auth

import (
	"github.com/devshowcase/api/internal/core/domain/user"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// RegisterRequest represents the registration request
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,password_strength"`
	Username  string `json:"username" validate:"required,username_charset"`
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
}

// LoginRequest represents the first login step (password check, 2FA code sent)
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// VerifyEmailRequest carries the 6-digit token mailed at registration
type VerifyEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
	Token string `json:"token" validate:"required,len=6"`
}

// Verify2FARequest carries the 6-digit code mailed at login
type Verify2FARequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

// ResendEmailRequest is shared by both resend endpoints
type ResendEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// MessageResponse is the generic confirmation body
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries the signed bearer token issued after 2FA
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Claims represents the JWT claim set issued once a 2FA challenge is satisfied
type Claims struct {
	UserID uuid.UUID     `json:"user_id"`
	Email  string        `json:"email"`
	Role   user.UserRole `json:"role"`

	jwt.RegisteredClaims
}
