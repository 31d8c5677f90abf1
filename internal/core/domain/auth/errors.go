package auth

import "errors"

// Sentinel errors for the credential-issuance flow. Handlers map these to
// HTTP statuses with errors.Is; services return them unwrapped so the mapping
// stays exact.
var (
	ErrEmailTaken    = errors.New("email already exists")
	ErrUsernameTaken = errors.New("username already exists")

	ErrAlreadyVerified = errors.New("email already verified")
	ErrInvalidToken    = errors.New("invalid verification token")
	ErrTokenExpired    = errors.New("verification token expired")

	// Identical message whether the account is missing or the password is
	// wrong, so callers cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotVerified   = errors.New("please verify your email first")

	// ErrInvalidCode likewise covers both a missing account and a wrong code.
	ErrInvalidCode = errors.New("invalid 2FA code")
	ErrCodeExpired = errors.New("2FA code expired")
)
