package services_test

import (
	"context"
	"testing"

	impl "github.com/devshowcase/api/internal/application/services"
	"github.com/devshowcase/api/internal/core/domain/project"
	"github.com/devshowcase/api/internal/core/domain/user"
	"github.com/devshowcase/api/test/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestUpdateUserRole(t *testing.T) {
	u := &user.User{ID: uuid.New(), Email: "dev@example.com", Role: user.RoleUser}

	var saved *user.User
	ur := &mocks.UserRepositoryMock{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*user.User, error) { return u, nil },
		UpdateFn: func(ctx context.Context, uu *user.User) error {
			saved = uu
			return nil
		},
	}

	svc := impl.NewAdminService(ur, &mocks.ProjectRepositoryMock{}, nil)

	out, err := svc.UpdateUserRole(context.Background(), u.ID, user.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, user.RoleAdmin, out.Role)
	require.Equal(t, user.RoleAdmin, saved.Role)

	_, err = svc.UpdateUserRole(context.Background(), u.ID, user.UserRole("superuser"))
	require.Error(t, err)
}

func TestListUsers_BoundsPagination(t *testing.T) {
	var gotLimit, gotOffset int
	ur := &mocks.UserRepositoryMock{
		ListFn: func(ctx context.Context, limit, offset int) ([]*user.User, error) {
			gotLimit, gotOffset = limit, offset
			return nil, nil
		},
	}

	svc := impl.NewAdminService(ur, &mocks.ProjectRepositoryMock{}, nil)

	_, err := svc.ListUsers(context.Background(), 0, -5)
	require.NoError(t, err)
	require.Equal(t, 50, gotLimit)
	require.Equal(t, 0, gotOffset)

	_, err = svc.ListUsers(context.Background(), 25, 10)
	require.NoError(t, err)
	require.Equal(t, 25, gotLimit)
	require.Equal(t, 10, gotOffset)
}

func TestModerateProject_UnpublishesAnyOwner(t *testing.T) {
	p := &project.Project{ID: uuid.New(), UserID: uuid.New(), IsPublished: true}

	var saved *project.Project
	pr := &mocks.ProjectRepositoryMock{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*project.Project, error) { return p, nil },
		UpdateFn: func(ctx context.Context, pp *project.Project) error {
			saved = pp
			return nil
		},
	}

	svc := impl.NewAdminService(&mocks.UserRepositoryMock{}, pr, nil)
	out, err := svc.ModerateProject(context.Background(), p.ID)
	require.NoError(t, err)
	require.False(t, out.IsPublished)
	require.False(t, saved.IsPublished)
}

func TestProjectsByUser_UnknownUser(t *testing.T) {
	svc := impl.NewAdminService(&mocks.UserRepositoryMock{}, &mocks.ProjectRepositoryMock{}, nil)
	_, err := svc.ProjectsByUser(context.Background(), uuid.New())
	require.ErrorIs(t, err, user.ErrNotFound)
}

func TestStats_AggregatesCounts(t *testing.T) {
	ur := &mocks.UserRepositoryMock{
		CountFn: func(ctx context.Context) (int, error) { return 120, nil },
		CountCreatedSinceFn: func(ctx context.Context, days int) (int, error) {
			require.Equal(t, 30, days)
			return 14, nil
		},
	}
	pr := &mocks.ProjectRepositoryMock{
		CountFn:          func(ctx context.Context) (int, error) { return 60, nil },
		CountPublishedFn: func(ctx context.Context) (int, error) { return 40, nil },
		CountUpvotesFn:   func(ctx context.Context) (int, error) { return 300, nil },
	}

	svc := impl.NewAdminService(ur, pr, nil)
	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, &project.Stats{
		TotalUsers:        120,
		TotalProjects:     60,
		PublishedProjects: 40,
		TotalUpvotes:      300,
		RecentUsers:       14,
	}, stats)
}

func TestTrendingTech_CountsAndOrders(t *testing.T) {
	pr := &mocks.ProjectRepositoryMock{
		PublishedTechStacksFn: func(ctx context.Context) ([][]string, error) {
			return [][]string{
				{"Go", "PostgreSQL", "Redis"},
				{"Go", "PostgreSQL"},
				{"Go", "TypeScript"},
			}, nil
		},
	}

	svc := impl.NewAdminService(&mocks.UserRepositoryMock{}, pr, nil)
	top, err := svc.TrendingTech(context.Background())
	require.NoError(t, err)
	require.Equal(t, []project.TechCount{
		{Name: "Go", Count: 3},
		{Name: "PostgreSQL", Count: 2},
		{Name: "Redis", Count: 1},
		{Name: "TypeScript", Count: 1},
	}, top)
}
