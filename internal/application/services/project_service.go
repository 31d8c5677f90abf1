package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/devshowcase/api/internal/core/domain/project"
	"github.com/devshowcase/api/internal/core/ports"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const discoveryLimit = 10

type ProjectService struct {
	repo   ports.ProjectRepository
	logger *logrus.Logger
}

func NewProjectService(repo ports.ProjectRepository, logger *logrus.Logger) ports.ProjectService {
	return &ProjectService{repo: repo, logger: logger}
}

func (s *ProjectService) ListPublic(ctx context.Context, q *project.ListQuery) ([]*project.Project, *project.ListMeta, error) {
	q.Normalize()

	projects, total, err := s.repo.ListPublished(ctx, q)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list projects: %w", err)
	}

	totalPages := total / q.Limit
	if total%q.Limit != 0 {
		totalPages++
	}

	meta := &project.ListMeta{
		Total:      total,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: totalPages,
	}

	return projects, meta, nil
}

func (s *ProjectService) GetPublic(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsPublished {
		return nil, project.ErrNotFound
	}
	return p, nil
}

func (s *ProjectService) Trending(ctx context.Context) ([]*project.Project, error) {
	return s.repo.ListTopPublished(ctx, discoveryLimit)
}

func (s *ProjectService) Latest(ctx context.Context) ([]*project.Project, error) {
	return s.repo.ListLatestPublished(ctx, discoveryLimit)
}

func (s *ProjectService) Search(ctx context.Context, term string) ([]*project.Project, error) {
	q := &project.ListQuery{Search: term, Limit: 20}
	q.Normalize()
	projects, _, err := s.repo.ListPublished(ctx, q)
	return projects, err
}

func (s *ProjectService) ByCategory(ctx context.Context, category project.Category) ([]*project.Project, error) {
	q := &project.ListQuery{Category: category, SortBy: project.SortPopular}
	q.Normalize()
	projects, _, err := s.repo.ListPublished(ctx, q)
	return projects, err
}

func (s *ProjectService) ListMine(ctx context.Context, userID uuid.UUID) ([]*project.Project, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *ProjectService) Create(ctx context.Context, userID uuid.UUID, req *project.CreateProjectRequest) (*project.Project, error) {
	now := time.Now()

	category := req.Category
	if !category.IsValid() {
		category = project.CategoryOther
	}
	status := req.Status
	if !status.IsValid() {
		status = project.StatusInDevelopment
	}

	p := &project.Project{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           req.Name,
		Tagline:        req.Tagline,
		Description:    req.Description,
		WebsiteURL:     req.WebsiteURL,
		RepositoryURL:  req.RepositoryURL,
		Category:       category,
		Status:         status,
		TechStack:      req.TechStack,
		LogoURL:        req.LogoURL,
		ScreenshotURLs: req.ScreenshotURLs,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"project_id": p.ID, "user_id": userID}).Info("project created")
	}

	return p, nil
}

// Get returns a project if it is published or owned by the requester.
func (s *ProjectService) Get(ctx context.Context, id, requesterID uuid.UUID) (*project.Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsPublished && p.UserID != requesterID {
		return nil, project.ErrForbidden
	}
	return p, nil
}

func (s *ProjectService) Update(ctx context.Context, id, userID uuid.UUID, req *project.UpdateProjectRequest) (*project.Project, error) {
	p, err := s.ownedProject(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Tagline != nil {
		p.Tagline = *req.Tagline
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.WebsiteURL != nil {
		p.WebsiteURL = req.WebsiteURL
	}
	if req.RepositoryURL != nil {
		p.RepositoryURL = req.RepositoryURL
	}
	if req.Category != nil && req.Category.IsValid() {
		p.Category = *req.Category
	}
	if req.Status != nil && req.Status.IsValid() {
		p.Status = *req.Status
	}
	if req.TechStack != nil {
		p.TechStack = req.TechStack
	}
	if req.LogoURL != nil {
		p.LogoURL = req.LogoURL
	}
	if req.ScreenshotURLs != nil {
		p.ScreenshotURLs = req.ScreenshotURLs
	}
	if req.LaunchedAt != nil {
		p.LaunchedAt = req.LaunchedAt
	}
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return p, nil
}

func (s *ProjectService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.ownedProject(ctx, id, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *ProjectService) Publish(ctx context.Context, id, userID uuid.UUID) (*project.Project, error) {
	return s.setPublished(ctx, id, userID, true)
}

func (s *ProjectService) Unpublish(ctx context.Context, id, userID uuid.UUID) (*project.Project, error) {
	return s.setPublished(ctx, id, userID, false)
}

func (s *ProjectService) Upvote(ctx context.Context, projectID, userID uuid.UUID) error {
	p, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if !p.IsPublished {
		return project.ErrNotPublished
	}

	if _, err := s.repo.GetUpvote(ctx, projectID, userID); err == nil {
		return project.ErrAlreadyUpvoted
	} else if !errors.Is(err, project.ErrUpvoteNotFound) {
		return fmt.Errorf("failed to check existing upvote: %w", err)
	}

	upvote := &project.Upvote{
		ID:        uuid.New(),
		ProjectID: projectID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateUpvote(ctx, upvote); err != nil {
		return fmt.Errorf("failed to create upvote: %w", err)
	}

	p.UpvotesCount++
	p.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, p); err != nil {
		return fmt.Errorf("failed to update upvote count: %w", err)
	}

	return nil
}

func (s *ProjectService) RemoveUpvote(ctx context.Context, projectID, userID uuid.UUID) error {
	if _, err := s.repo.GetUpvote(ctx, projectID, userID); err != nil {
		return err
	}

	if err := s.repo.DeleteUpvote(ctx, projectID, userID); err != nil {
		return fmt.Errorf("failed to delete upvote: %w", err)
	}

	p, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return nil
	}
	if p.UpvotesCount > 0 {
		p.UpvotesCount--
		p.UpdatedAt = time.Now()
		if err := s.repo.Update(ctx, p); err != nil && s.logger != nil {
			s.logger.WithFields(logrus.Fields{"project_id": projectID}).WithError(err).Warn("failed to decrement upvote count")
		}
	}

	return nil
}

func (s *ProjectService) ListUpvotes(ctx context.Context, projectID uuid.UUID) ([]*project.Upvote, error) {
	if _, err := s.repo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.repo.ListUpvotes(ctx, projectID)
}

func (s *ProjectService) ownedProject(ctx context.Context, id, userID uuid.UUID) (*project.Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.UserID != userID {
		return nil, project.ErrForbidden
	}
	return p, nil
}

func (s *ProjectService) setPublished(ctx context.Context, id, userID uuid.UUID, published bool) (*project.Project, error) {
	p, err := s.ownedProject(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	p.IsPublished = published
	p.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return p, nil
}
