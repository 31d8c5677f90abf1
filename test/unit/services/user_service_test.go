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

func TestUpdateProfile_PartialUpdate(t *testing.T) {
	u := &user.User{ID: uuid.New(), Email: "dev@example.com", FirstName: "Dev", LastName: "One"}

	var saved *user.User
	ur := &mocks.UserRepositoryMock{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*user.User, error) { return u, nil },
		UpdateFn: func(ctx context.Context, uu *user.User) error {
			saved = uu
			return nil
		},
	}

	svc := impl.NewUserService(ur, &mocks.ProjectRepositoryMock{}, nil)

	bio := "I build things"
	out, err := svc.UpdateProfile(context.Background(), u.ID, &user.UpdateProfileRequest{Bio: &bio})
	require.NoError(t, err)
	require.Equal(t, "I build things", *out.Bio)
	// fields not in the request are untouched
	require.Equal(t, "Dev", saved.FirstName)
	require.Equal(t, "One", saved.LastName)
}

func TestGetPublicProfile_OnlyPublishedProjects(t *testing.T) {
	u := &user.User{ID: uuid.New(), Username: "dev", FirstName: "Dev"}
	published := &project.Project{ID: uuid.New(), UserID: u.ID, IsPublished: true}

	ur := &mocks.UserRepositoryMock{
		GetByUsernameFn: func(ctx context.Context, username string) (*user.User, error) {
			require.Equal(t, "dev", username)
			return u, nil
		},
	}
	pr := &mocks.ProjectRepositoryMock{
		ListPublishedByUserFn: func(ctx context.Context, userID uuid.UUID) ([]*project.Project, error) {
			require.Equal(t, u.ID, userID)
			return []*project.Project{published}, nil
		},
	}

	svc := impl.NewUserService(ur, pr, nil)
	profile, projects, err := svc.GetPublicProfile(context.Background(), "dev")
	require.NoError(t, err)
	require.Equal(t, "dev", profile.Username)
	require.Len(t, projects, 1)
}

func TestGetPublicProfile_UnknownUsername(t *testing.T) {
	svc := impl.NewUserService(&mocks.UserRepositoryMock{}, &mocks.ProjectRepositoryMock{}, nil)
	_, _, err := svc.GetPublicProfile(context.Background(), "ghost")
	require.ErrorIs(t, err, user.ErrNotFound)
}
