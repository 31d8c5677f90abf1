package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/devshowcase/api/internal/core/domain/project"
	"github.com/devshowcase/api/internal/core/domain/user"
	"github.com/devshowcase/api/internal/core/ports"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	recentUserWindowDays = 30
	trendingTechLimit    = 20
)

type AdminService struct {
	userRepo    ports.UserRepository
	projectRepo ports.ProjectRepository
	logger      *logrus.Logger
}

func NewAdminService(userRepo ports.UserRepository, projectRepo ports.ProjectRepository, logger *logrus.Logger) ports.AdminService {
	return &AdminService{
		userRepo:    userRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (s *AdminService) ListUsers(ctx context.Context, limit, offset int) ([]*user.User, error) {
	if limit < 1 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.userRepo.List(ctx, limit, offset)
}

func (s *AdminService) GetUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *AdminService) UpdateUserRole(ctx context.Context, id uuid.UUID, role user.UserRole) (*user.User, error) {
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role %q", role)
	}

	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u.Role = role
	u.UpdatedAt = time.Now()
	if err := s.userRepo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"user_id": id, "role": role}).Info("user role updated")
	}

	return u, nil
}

func (s *AdminService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.userRepo.Delete(ctx, id)
}

func (s *AdminService) ListProjects(ctx context.Context) ([]*project.Project, error) {
	return s.projectRepo.ListAll(ctx)
}

func (s *AdminService) ProjectsByUser(ctx context.Context, userID uuid.UUID) ([]*project.Project, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.projectRepo.ListByUser(ctx, userID)
}

func (s *AdminService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return s.projectRepo.Delete(ctx, id)
}

// ModerateProject unpublishes a project regardless of owner.
func (s *AdminService) ModerateProject(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	p, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.IsPublished = false
	p.UpdatedAt = time.Now()
	if err := s.projectRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to moderate project: %w", err)
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"project_id": id}).Info("project unpublished by moderation")
	}

	return p, nil
}

func (s *AdminService) Stats(ctx context.Context) (*project.Stats, error) {
	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	totalProjects, err := s.projectRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}

	publishedProjects, err := s.projectRepo.CountPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count published projects: %w", err)
	}

	totalUpvotes, err := s.projectRepo.CountUpvotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count upvotes: %w", err)
	}

	recentUsers, err := s.userRepo.CountCreatedSince(ctx, recentUserWindowDays)
	if err != nil {
		return nil, fmt.Errorf("failed to count recent users: %w", err)
	}

	return &project.Stats{
		TotalUsers:        totalUsers,
		TotalProjects:     totalProjects,
		PublishedProjects: publishedProjects,
		TotalUpvotes:      totalUpvotes,
		RecentUsers:       recentUsers,
	}, nil
}

// TrendingTech aggregates tech stack entries across published projects and
// returns the top entries by usage.
func (s *AdminService) TrendingTech(ctx context.Context) ([]project.TechCount, error) {
	stacks, err := s.projectRepo.PublishedTechStacks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tech stacks: %w", err)
	}

	counts := make(map[string]int)
	for _, stack := range stacks {
		for _, tech := range stack {
			counts[tech]++
		}
	}

	result := make([]project.TechCount, 0, len(counts))
	for name, count := range counts {
		result = append(result, project.TechCount{Name: name, Count: count})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Name < result[j].Name
	})

	if len(result) > trendingTechLimit {
		result = result[:trendingTechLimit]
	}

	return result, nil
}
