package ports

import (
	"context"
)

// EmailService defines the outbound notification channel. Delivery is
// synchronous from the caller's perspective: a failure here fails the
// enclosing operation.
type EmailService interface {
	SendVerificationEmail(ctx context.Context, email, code, firstName string) error
	SendTwoFactorCode(ctx context.Context, email, code, firstName string) error
}
