package services

import (
	"context"
	"fmt"
	"time"

	"github.com/devshowcase/api/internal/core/domain/project"
	"github.com/devshowcase/api/internal/core/domain/user"
	"github.com/devshowcase/api/internal/core/ports"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type UserService struct {
	repo        ports.UserRepository
	projectRepo ports.ProjectRepository
	logger      *logrus.Logger
}

func NewUserService(repo ports.UserRepository, projectRepo ports.ProjectRepository, logger *logrus.Logger) ports.UserService {
	return &UserService{
		repo:        repo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, req *user.UpdateProfileRequest) (*user.User, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		existing.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		existing.LastName = *req.LastName
	}
	if req.Bio != nil {
		existing.Bio = req.Bio
	}
	if req.AvatarURL != nil {
		existing.AvatarURL = req.AvatarURL
	}
	if req.WebsiteURL != nil {
		existing.WebsiteURL = req.WebsiteURL
	}
	if req.GithubURL != nil {
		existing.GithubURL = req.GithubURL
	}
	if req.TwitterURL != nil {
		existing.TwitterURL = req.TwitterURL
	}
	existing.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return existing, nil
}

func (s *UserService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"user_id": id}).Info("account deleted")
	}

	return nil
}

// GetPublicProfile returns the outward profile view plus the user's
// published projects.
func (s *UserService) GetPublicProfile(ctx context.Context, username string) (*user.PublicProfile, []*project.Project, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}

	projects, err := s.projectRepo.ListPublishedByUser(ctx, u.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list published projects: %w", err)
	}

	return u.Public(), projects, nil
}
