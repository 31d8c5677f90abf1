package services_test

import (
	"context"
	"testing"

	impl "github.com/devshowcase/api/internal/application/services"
	"github.com/devshowcase/api/internal/core/domain/project"
	"github.com/devshowcase/api/test/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func publishedProject(owner uuid.UUID) *project.Project {
	return &project.Project{
		ID:          uuid.New(),
		UserID:      owner,
		Name:        "DevShowcase",
		Tagline:     "Show off your side projects",
		Description: "A place to publish projects",
		Category:    project.CategoryWebApp,
		Status:      project.StatusLaunched,
		IsPublished: true,
	}
}

func TestListPublic_PaginationMeta(t *testing.T) {
	repo := &mocks.ProjectRepositoryMock{
		ListPublishedFn: func(ctx context.Context, q *project.ListQuery) ([]*project.Project, int, error) {
			require.Equal(t, 1, q.Page)
			require.Equal(t, 20, q.Limit)
			require.Equal(t, project.SortLatest, q.SortBy)
			return []*project.Project{publishedProject(uuid.New())}, 45, nil
		},
	}

	svc := impl.NewProjectService(repo, nil)
	projects, meta, err := svc.ListPublic(context.Background(), &project.ListQuery{})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, 45, meta.Total)
	require.Equal(t, 3, meta.TotalPages)
}

func TestGetPublic_UnpublishedHiddenAsNotFound(t *testing.T) {
	p := publishedProject(uuid.New())
	p.IsPublished = false

	repo := &mocks.ProjectRepositoryMock{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*project.Project, error) { return p, nil },
	}

	svc := impl.NewProjectService(repo, nil)
	_, err := svc.GetPublic(context.Background(), p.ID)
	require.ErrorIs(t, err, project.ErrNotFound)
}

func TestGet_OwnerSeesUnpublished(t *testing.T) {
	owner := uuid.New()
	p := publishedProject(owner)
	p.IsPublished = false

	repo := &mocks.ProjectRepositoryMock{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*project.Project, error) { return p, nil },
	}

	svc := impl.NewProjectService(repo, nil)
	got, err := svc.Get(context.Background(), p.ID, owner)
	require.NoError(t, err)
	require.Equal(t, p.ID, got.ID)

	_, err = svc.Get(context.Background(), p.ID, uuid.New())
	require.ErrorIs(t, err, project.ErrForbidden)
}

func TestCreate_DefaultsInvalidEnums(t *testing.T) {
	var created *project.Project
	repo := &mocks.ProjectRepositoryMock{
		CreateFn: func(ctx context.Context, p *project.Project) error {
			created = p
			return nil
		},
	}

	svc := impl.NewProjectService(repo, nil)
	owner := uuid.New()
	p, err := svc.Create(context.Background(), owner, &project.CreateProjectRequest{
		Name:        "Thing",
		Tagline:     "A thing",
		Description: "Does things",
		Category:    project.Category("bogus"),
		Status:      project.Status("bogus"),
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	require.Equal(t, owner, p.UserID)
	require.Equal(t, project.CategoryOther, p.Category)
	require.Equal(t, project.StatusInDevelopment, p.Status)
	require.False(t, p.IsPublished, "new projects start unpublished")
}

func TestUpdate_OnlyOwnerCanModify(t *testing.T) {
	owner := uuid.New()
	p := publishedProject(owner)

	repo := &mocks.ProjectRepositoryMock{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*project.Project, error) { return p, nil },
	}

	svc := impl.NewProjectService(repo, nil)
	name := "Renamed"
	_, err := svc.Update(context.Background(), p.ID, uuid.New(), &project.UpdateProjectRequest{Name: &name})
	require.ErrorIs(t, err, project.ErrForbidden)

	updated, err := svc.Update(context.Background(), p.ID, owner, &project.UpdateProjectRequest{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Name)
}

func TestPublishUnpublish(t *testing.T) {
	owner := uuid.New()
	p := publishedProject(owner)
	p.IsPublished = false

	var saved *project.Project
	repo := &mocks.ProjectRepositoryMock{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*project.Project, error) { return p, nil },
		UpdateFn: func(ctx context.Context, pp *project.Project) error {
			saved = pp
			return nil
		},
	}

	svc := impl.NewProjectService(repo, nil)
	out, err := svc.Publish(context.Background(), p.ID, owner)
	require.NoError(t, err)
	require.True(t, out.IsPublished)
	require.True(t, saved.IsPublished)

	out, err = svc.Unpublish(context.Background(), p.ID, owner)
	require.NoError(t, err)
	require.False(t, out.IsPublished)
}

func TestUpvote_Rules(t *testing.T) {
	owner := uuid.New()
	voter := uuid.New()
	p := publishedProject(owner)

	t.Run("unpublished project cannot be upvoted", func(t *testing.T) {
		hidden := publishedProject(owner)
		hidden.IsPublished = false
		repo := &mocks.ProjectRepositoryMock{
			GetByIDFn: func(ctx context.Context, id uuid.UUID) (*project.Project, error) { return hidden, nil },
		}
		svc := impl.NewProjectService(repo, nil)
		err := svc.Upvote(context.Background(), hidden.ID, voter)
		require.ErrorIs(t, err, project.ErrNotPublished)
	})

	t.Run("double upvote rejected", func(t *testing.T) {
		repo := &mocks.ProjectRepositoryMock{
			GetByIDFn: func(ctx context.Context, id uuid.UUID) (*project.Project, error) { return p, nil },
			GetUpvoteFn: func(ctx context.Context, projectID, userID uuid.UUID) (*project.Upvote, error) {
				return &project.Upvote{ProjectID: projectID, UserID: userID}, nil
			},
		}
		svc := impl.NewProjectService(repo, nil)
		err := svc.Upvote(context.Background(), p.ID, voter)
		require.ErrorIs(t, err, project.ErrAlreadyUpvoted)
	})

	t.Run("upvote increments counter", func(t *testing.T) {
		fresh := publishedProject(owner)
		var savedCount int
		repo := &mocks.ProjectRepositoryMock{
			GetByIDFn: func(ctx context.Context, id uuid.UUID) (*project.Project, error) { return fresh, nil },
			UpdateFn: func(ctx context.Context, pp *project.Project) error {
				savedCount = pp.UpvotesCount
				return nil
			},
		}
		svc := impl.NewProjectService(repo, nil)
		require.NoError(t, svc.Upvote(context.Background(), fresh.ID, voter))
		require.Equal(t, 1, savedCount)
	})

	t.Run("remove missing upvote fails", func(t *testing.T) {
		repo := &mocks.ProjectRepositoryMock{
			GetByIDFn: func(ctx context.Context, id uuid.UUID) (*project.Project, error) { return p, nil },
		}
		svc := impl.NewProjectService(repo, nil)
		err := svc.RemoveUpvote(context.Background(), p.ID, voter)
		require.ErrorIs(t, err, project.ErrUpvoteNotFound)
	})

	t.Run("remove upvote decrements counter", func(t *testing.T) {
		fresh := publishedProject(owner)
		fresh.UpvotesCount = 3
		var savedCount int
		repo := &mocks.ProjectRepositoryMock{
			GetByIDFn: func(ctx context.Context, id uuid.UUID) (*project.Project, error) { return fresh, nil },
			GetUpvoteFn: func(ctx context.Context, projectID, userID uuid.UUID) (*project.Upvote, error) {
				return &project.Upvote{ProjectID: projectID, UserID: userID}, nil
			},
			UpdateFn: func(ctx context.Context, pp *project.Project) error {
				savedCount = pp.UpvotesCount
				return nil
			},
		}
		svc := impl.NewProjectService(repo, nil)
		require.NoError(t, svc.RemoveUpvote(context.Background(), fresh.ID, voter))
		require.Equal(t, 2, savedCount)
	})
}

func TestSearch_LimitsAndDelegates(t *testing.T) {
	repo := &mocks.ProjectRepositoryMock{
		ListPublishedFn: func(ctx context.Context, q *project.ListQuery) ([]*project.Project, int, error) {
			require.Equal(t, "cli", q.Search)
			require.Equal(t, 20, q.Limit)
			return []*project.Project{publishedProject(uuid.New())}, 1, nil
		},
	}

	svc := impl.NewProjectService(repo, nil)
	projects, err := svc.Search(context.Background(), "cli")
	require.NoError(t, err)
	require.Len(t, projects, 1)
}

func TestByCategory_SortsByPopularity(t *testing.T) {
	repo := &mocks.ProjectRepositoryMock{
		ListPublishedFn: func(ctx context.Context, q *project.ListQuery) ([]*project.Project, int, error) {
			require.Equal(t, project.CategoryDevTool, q.Category)
			require.Equal(t, project.SortPopular, q.SortBy)
			return nil, 0, nil
		},
	}

	svc := impl.NewProjectService(repo, nil)
	_, err := svc.ByCategory(context.Background(), project.CategoryDevTool)
	require.NoError(t, err)
}
