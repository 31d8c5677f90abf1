package ports

import (
	"context"

	"github.com/devshowcase/api/internal/core/domain/project"
	"github.com/devshowcase/api/internal/core/domain/user"
	"github.com/google/uuid"
)

// UserRepository defines the interface for account data operations
type UserRepository interface {
	Create(ctx context.Context, user *user.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	GetByUsername(ctx context.Context, username string) (*user.User, error)
	Update(ctx context.Context, user *user.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*user.User, error)
	Count(ctx context.Context) (int, error)
	CountCreatedSince(ctx context.Context, days int) (int, error)
}

// UserService defines the interface for profile business logic
type UserService interface {
	GetUser(ctx context.Context, id uuid.UUID) (*user.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req *user.UpdateProfileRequest) (*user.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID) error
	GetPublicProfile(ctx context.Context, username string) (*user.PublicProfile, []*project.Project, error)
}
