package ports

import (
	"context"

	"github.com/devshowcase/api/internal/core/domain/auth"
)

// AuthService owns the credential-issuance state machine: registration,
// email verification, password login and the per-login 2FA challenge.
type AuthService interface {
	Register(ctx context.Context, req *auth.RegisterRequest) error
	VerifyEmail(ctx context.Context, req *auth.VerifyEmailRequest) error
	Login(ctx context.Context, req *auth.LoginRequest) error
	Verify2FA(ctx context.Context, req *auth.Verify2FARequest) (string, error)
	ResendVerificationEmail(ctx context.Context, email string) error
	Resend2FACode(ctx context.Context, email string) error
}

// TokenSigner signs a claim set into a bearer token and verifies tokens it
// issued. The signature algorithm and any expiry policy belong to the
// implementation, not to the state machine.
type TokenSigner interface {
	Sign(claims *auth.Claims) (string, error)
	Parse(token string) (*auth.Claims, error)
}

// CodeGenerator produces the one-time numeric codes used for both email
// verification and 2FA. Uniqueness is not required; the expiry window is
// the security boundary.
type CodeGenerator interface {
	Generate() (string, error)
}
