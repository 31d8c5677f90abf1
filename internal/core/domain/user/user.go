package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	Email           string     `json:"email" db:"email"`
	Username        string     `json:"username" db:"username"`
	PasswordHash    string     `json:"-" db:"password_hash"`
	FirstName       string     `json:"first_name" db:"first_name"`
	LastName        string     `json:"last_name" db:"last_name"`
	Bio             *string    `json:"bio,omitempty" db:"bio"`
	AvatarURL       *string    `json:"avatar_url,omitempty" db:"avatar_url"`
	WebsiteURL      *string    `json:"website_url,omitempty" db:"website_url"`
	GithubURL       *string    `json:"github_url,omitempty" db:"github_url"`
	TwitterURL      *string    `json:"twitter_url,omitempty" db:"twitter_url"`
	Role            UserRole   `json:"role" db:"role"`
	EmailVerifiedAt *time.Time `json:"email_verified_at,omitempty" db:"email_verified_at"`
	ChallengeCode   *string    `json:"-" db:"challenge_code"`
	ChallengeExpiry *time.Time `json:"-" db:"challenge_expiry"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

// IsEmailVerified reports whether the account completed email verification.
func (u *User) IsEmailVerified() bool {
	return u.EmailVerifiedAt != nil
}

// SetChallenge installs a new one-time code, overwriting any outstanding one.
// A single slot is shared by email verification and 2FA: only one challenge
// can be pending per account at any time.
func (u *User) SetChallenge(code string, expiry time.Time) {
	u.ChallengeCode = &code
	u.ChallengeExpiry = &expiry
}

// ClearChallenge resets both challenge fields; they are always set or cleared together.
func (u *User) ClearChallenge() {
	u.ChallengeCode = nil
	u.ChallengeExpiry = nil
}

// ChallengeMatches reports whether code equals the outstanding challenge.
func (u *User) ChallengeMatches(code string) bool {
	return u.ChallengeCode != nil && *u.ChallengeCode == code
}

// ChallengeExpired reports whether the outstanding challenge is past its
// expiry. A code presented exactly at the expiry instant is still valid:
// the challenge is expired only when now > expiry.
func (u *User) ChallengeExpired(now time.Time) bool {
	return u.ChallengeExpiry == nil || now.After(*u.ChallengeExpiry)
}

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// UpdateProfileRequest represents a partial profile update
type UpdateProfileRequest struct {
	FirstName  *string `json:"first_name,omitempty" validate:"omitempty,max=50"`
	LastName   *string `json:"last_name,omitempty" validate:"omitempty,max=50"`
	Bio        *string `json:"bio,omitempty"`
	AvatarURL  *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
	WebsiteURL *string `json:"website_url,omitempty" validate:"omitempty,url"`
	GithubURL  *string `json:"github_url,omitempty" validate:"omitempty,url"`
	TwitterURL *string `json:"twitter_url,omitempty" validate:"omitempty,url"`
}

// UpdateRoleRequest represents an admin role change
type UpdateRoleRequest struct {
	Role UserRole `json:"role" validate:"required"`
}

// PublicProfile is the outward view of a user on public endpoints.
type PublicProfile struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Bio        *string   `json:"bio,omitempty"`
	AvatarURL  *string   `json:"avatar_url,omitempty"`
	WebsiteURL *string   `json:"website_url,omitempty"`
	GithubURL  *string   `json:"github_url,omitempty"`
	TwitterURL *string   `json:"twitter_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Public returns the outward profile view of u.
func (u *User) Public() *PublicProfile {
	return &PublicProfile{
		ID:         u.ID,
		Username:   u.Username,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Bio:        u.Bio,
		AvatarURL:  u.AvatarURL,
		WebsiteURL: u.WebsiteURL,
		GithubURL:  u.GithubURL,
		TwitterURL: u.TwitterURL,
		CreatedAt:  u.CreatedAt,
	}
}
