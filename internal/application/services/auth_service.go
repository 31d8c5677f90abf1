package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	config "github.com/devshowcase/api/configs"
	"github.com/devshowcase/api/internal/core/domain/auth"
	"github.com/devshowcase/api/internal/core/domain/user"
	"github.com/devshowcase/api/internal/core/ports"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// AuthService owns the account state machine: pending-verification ->
// verified, and the per-login 2FA challenge. A single challenge slot is
// shared by both flows, so issuing either kind of code overwrites whatever
// code was outstanding.
type AuthService struct {
	userRepo     ports.UserRepository
	emailService ports.EmailService
	signer       ports.TokenSigner
	codes        ports.CodeGenerator
	authConfig   *config.AuthConfig
	logger       *logrus.Logger
}

func NewAuthService(userRepo ports.UserRepository, emailService ports.EmailService, signer ports.TokenSigner, codes ports.CodeGenerator, authConfig *config.AuthConfig, logger *logrus.Logger) ports.AuthService {
	return &AuthService{
		userRepo:     userRepo,
		emailService: emailService,
		signer:       signer,
		codes:        codes,
		authConfig:   authConfig,
		logger:       logger,
	}
}

// Register creates an account in the pending-verification state and mails
// the verification code. Email delivery failure fails the registration.
func (s *AuthService) Register(ctx context.Context, req *auth.RegisterRequest) error {
	if existing, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil && existing != nil {
		return auth.ErrEmailTaken
	} else if err != nil && !errors.Is(err, user.ErrNotFound) {
		return fmt.Errorf("failed to check email uniqueness: %w", err)
	}

	if existing, err := s.userRepo.GetByUsername(ctx, req.Username); err == nil && existing != nil {
		return auth.ErrUsernameTaken
	} else if err != nil && !errors.Is(err, user.ErrNotFound) {
		return fmt.Errorf("failed to check username uniqueness: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	code, err := s.codes.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate verification code: %w", err)
	}

	now := time.Now()
	newUser := &user.User{
		ID:           uuid.New(),
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         user.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	newUser.SetChallenge(code, now.Add(s.authConfig.VerificationCodeTTL))

	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.emailService.SendVerificationEmail(ctx, newUser.Email, code, newUser.FirstName); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"user_id": newUser.ID, "email": newUser.Email}).Info("user registered, verification email sent")
	}

	return nil
}

// VerifyEmail moves an account from pending-verification to verified when
// the presented token matches the outstanding challenge and is unexpired.
// The checks run in a fixed order: existence, already-verified, mismatch,
// expiry.
func (s *AuthService) VerifyEmail(ctx context.Context, req *auth.VerifyEmailRequest) error {
	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.ErrNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if u.IsEmailVerified() {
		return auth.ErrAlreadyVerified
	}

	if !u.ChallengeMatches(req.Token) {
		return auth.ErrInvalidToken
	}

	now := time.Now()
	if u.ChallengeExpired(now) {
		return auth.ErrTokenExpired
	}

	u.EmailVerifiedAt = &now
	u.ClearChallenge()
	u.UpdatedAt = now

	if err := s.userRepo.Update(ctx, u); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"user_id": u.ID}).Info("email verified")
	}

	return nil
}

// Login checks the password and, on success, issues a fresh 2FA challenge.
// It never returns a token itself. Missing account and wrong password yield
// the same error so callers cannot enumerate registered emails.
func (s *AuthService) Login(ctx context.Context, req *auth.LoginRequest) error {
	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return auth.ErrInvalidCredentials
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.ErrInvalidCredentials
	}

	if !u.IsEmailVerified() {
		return auth.ErrEmailNotVerified
	}

	if err := s.issueTwoFactorCode(ctx, u); err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"user_id": u.ID}).Info("password accepted, 2FA code sent")
	}

	return nil
}

// Verify2FA consumes the outstanding 2FA challenge and returns a signed
// bearer token. On success the challenge slot is cleared, so replaying the
// same code fails.
func (s *AuthService) Verify2FA(ctx context.Context, req *auth.Verify2FARequest) (string, error) {
	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", auth.ErrInvalidCode
		}
		return "", fmt.Errorf("failed to get user: %w", err)
	}

	if !u.ChallengeMatches(req.Code) {
		return "", auth.ErrInvalidCode
	}

	now := time.Now()
	if u.ChallengeExpired(now) {
		return "", auth.ErrCodeExpired
	}

	u.ClearChallenge()
	u.UpdatedAt = now

	if err := s.userRepo.Update(ctx, u); err != nil {
		return "", fmt.Errorf("failed to update user: %w", err)
	}

	token, err := s.issueToken(u)
	if err != nil {
		return "", err
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"user_id": u.ID}).Info("2FA satisfied, session token issued")
	}

	return token, nil
}

// ResendVerificationEmail regenerates the verification challenge with a
// fresh 24h window, invalidating any previous code.
func (s *AuthService) ResendVerificationEmail(ctx context.Context, email string) error {
	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.ErrNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if u.IsEmailVerified() {
		return auth.ErrAlreadyVerified
	}

	code, err := s.codes.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate verification code: %w", err)
	}

	now := time.Now()
	u.SetChallenge(code, now.Add(s.authConfig.VerificationCodeTTL))
	u.UpdatedAt = now

	if err := s.userRepo.Update(ctx, u); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	if err := s.emailService.SendVerificationEmail(ctx, u.Email, code, u.FirstName); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}

	return nil
}

// Resend2FACode regenerates the 2FA challenge with a fresh 10-minute window.
func (s *AuthService) Resend2FACode(ctx context.Context, email string) error {
	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.ErrNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	return s.issueTwoFactorCode(ctx, u)
}

// issueTwoFactorCode overwrites the challenge slot with a new login code and
// mails it. A send failure fails the whole operation; the overwritten code
// stays persisted, which matches the last-writer-wins challenge semantics.
func (s *AuthService) issueTwoFactorCode(ctx context.Context, u *user.User) error {
	code, err := s.codes.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate 2FA code: %w", err)
	}

	now := time.Now()
	u.SetChallenge(code, now.Add(s.authConfig.TwoFactorCodeTTL))
	u.UpdatedAt = now

	if err := s.userRepo.Update(ctx, u); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	if err := s.emailService.SendTwoFactorCode(ctx, u.Email, code, u.FirstName); err != nil {
		return fmt.Errorf("failed to send 2FA code: %w", err)
	}

	return nil
}

// issueToken builds the claim set for a verified account that just satisfied
// a 2FA check and hands it to the signer. Expiry policy belongs to the
// signer, not to the claim construction.
func (s *AuthService) issueToken(u *user.User) (string, error) {
	claims := &auth.Claims{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: u.ID.String(),
		},
	}

	token, err := s.signer.Sign(claims)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return token, nil
}
