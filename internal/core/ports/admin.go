package ports

import (
	"context"

	"github.com/devshowcase/api/internal/core/domain/project"
	"github.com/devshowcase/api/internal/core/domain/user"
	"github.com/google/uuid"
)

// AdminService defines the interface for moderation and reporting
type AdminService interface {
	ListUsers(ctx context.Context, limit, offset int) ([]*user.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*user.User, error)
	UpdateUserRole(ctx context.Context, id uuid.UUID, role user.UserRole) (*user.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error

	ListProjects(ctx context.Context) ([]*project.Project, error)
	ProjectsByUser(ctx context.Context, userID uuid.UUID) ([]*project.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
	ModerateProject(ctx context.Context, id uuid.UUID) (*project.Project, error)

	Stats(ctx context.Context) (*project.Stats, error)
	TrendingTech(ctx context.Context) ([]project.TechCount, error)
}
