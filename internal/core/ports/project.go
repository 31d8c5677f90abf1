package ports

import (
	"context"

	"github.com/devshowcase/api/internal/core/domain/project"
	"github.com/google/uuid"
)

// ProjectRepository defines the interface for project and upvote data operations
type ProjectRepository interface {
	Create(ctx context.Context, p *project.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*project.Project, error)
	Update(ctx context.Context, p *project.Project) error
	Delete(ctx context.Context, id uuid.UUID) error

	ListPublished(ctx context.Context, q *project.ListQuery) ([]*project.Project, int, error)
	ListTopPublished(ctx context.Context, limit int) ([]*project.Project, error)
	ListLatestPublished(ctx context.Context, limit int) ([]*project.Project, error)
	ListPublishedByUser(ctx context.Context, userID uuid.UUID) ([]*project.Project, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*project.Project, error)
	ListAll(ctx context.Context) ([]*project.Project, error)

	CreateUpvote(ctx context.Context, u *project.Upvote) error
	GetUpvote(ctx context.Context, projectID, userID uuid.UUID) (*project.Upvote, error)
	DeleteUpvote(ctx context.Context, projectID, userID uuid.UUID) error
	ListUpvotes(ctx context.Context, projectID uuid.UUID) ([]*project.Upvote, error)

	Count(ctx context.Context) (int, error)
	CountPublished(ctx context.Context) (int, error)
	CountUpvotes(ctx context.Context) (int, error)
	PublishedTechStacks(ctx context.Context) ([][]string, error)
}

// ProjectService defines the interface for project business logic
type ProjectService interface {
	ListPublic(ctx context.Context, q *project.ListQuery) ([]*project.Project, *project.ListMeta, error)
	GetPublic(ctx context.Context, id uuid.UUID) (*project.Project, error)
	Trending(ctx context.Context) ([]*project.Project, error)
	Latest(ctx context.Context) ([]*project.Project, error)
	Search(ctx context.Context, term string) ([]*project.Project, error)
	ByCategory(ctx context.Context, category project.Category) ([]*project.Project, error)

	ListMine(ctx context.Context, userID uuid.UUID) ([]*project.Project, error)
	Create(ctx context.Context, userID uuid.UUID, req *project.CreateProjectRequest) (*project.Project, error)
	Get(ctx context.Context, id, requesterID uuid.UUID) (*project.Project, error)
	Update(ctx context.Context, id, userID uuid.UUID, req *project.UpdateProjectRequest) (*project.Project, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	Publish(ctx context.Context, id, userID uuid.UUID) (*project.Project, error)
	Unpublish(ctx context.Context, id, userID uuid.UUID) (*project.Project, error)

	Upvote(ctx context.Context, projectID, userID uuid.UUID) error
	RemoveUpvote(ctx context.Context, projectID, userID uuid.UUID) error
	ListUpvotes(ctx context.Context, projectID uuid.UUID) ([]*project.Upvote, error)
}
