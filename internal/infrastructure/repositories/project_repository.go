package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/devshowcase/api/internal/core/domain/project"
	"github.com/devshowcase/api/internal/core/ports"
	"github.com/devshowcase/api/internal/infrastructure/db"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// ProjectRepository implements the project repository interface
type ProjectRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(database *db.Database, logger *logrus.Logger) ports.ProjectRepository {
	return &ProjectRepository{
		db:     database,
		logger: logger,
	}
}

const projectColumns = `id, user_id, name, tagline, description, website_url, repository_url,
	   category, status, tech_stack, logo_url, screenshot_urls, launched_at,
	   is_published, upvotes_count, created_at, updated_at`

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, p *project.Project) error {
	query := `
		INSERT INTO projects (id, user_id, name, tagline, description, website_url, repository_url,
			category, status, tech_stack, logo_url, screenshot_urls, launched_at,
			is_published, upvotes_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err := r.db.DB.ExecContext(ctx, query,
		p.ID, p.UserID, p.Name, p.Tagline, p.Description, p.WebsiteURL, p.RepositoryURL,
		p.Category, p.Status, p.TechStack, p.LogoURL, p.ScreenshotURLs, p.LaunchedAt,
		p.IsPublished, p.UpvotesCount, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"project_id": p.ID, "user_id": p.UserID}).WithError(err).Error("db: failed to create project")
		}
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	var p project.Project
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE id = $1`, projectColumns)

	err := r.db.DB.GetContext(ctx, &p, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, project.ErrNotFound
		}
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"project_id": id}).WithError(err).Error("db: failed to get project by ID")
		}
		return nil, fmt.Errorf("failed to get project by ID: %w", err)
	}

	return &p, nil
}

// Update updates an existing project
func (r *ProjectRepository) Update(ctx context.Context, p *project.Project) error {
	query := `
		UPDATE projects
		SET name = $2, tagline = $3, description = $4, website_url = $5, repository_url = $6,
			category = $7, status = $8, tech_stack = $9, logo_url = $10, screenshot_urls = $11,
			launched_at = $12, is_published = $13, upvotes_count = $14, updated_at = $15
		WHERE id = $1`

	result, err := r.db.DB.ExecContext(ctx, query,
		p.ID, p.Name, p.Tagline, p.Description, p.WebsiteURL, p.RepositoryURL,
		p.Category, p.Status, p.TechStack, p.LogoURL, p.ScreenshotURLs,
		p.LaunchedAt, p.IsPublished, p.UpvotesCount, p.UpdatedAt)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"project_id": p.ID}).WithError(err).Error("db: failed to update project")
		}
		return fmt.Errorf("failed to update project: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return project.ErrNotFound
	}

	return nil
}

// Delete deletes a project by ID
func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM projects WHERE id = $1`

	result, err := r.db.DB.ExecContext(ctx, query, id)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"project_id": id}).WithError(err).Error("db: failed to delete project")
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return project.ErrNotFound
	}

	return nil
}

// ListPublished retrieves published projects matching the query, plus the
// total count before pagination.
func (r *ProjectRepository) ListPublished(ctx context.Context, q *project.ListQuery) ([]*project.Project, int, error) {
	where := []string{"is_published = TRUE"}
	args := []interface{}{}
	argN := 1

	if q.Search != "" {
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR tagline ILIKE $%d OR description ILIKE $%d)", argN, argN, argN))
		args = append(args, "%"+q.Search+"%")
		argN++
	}
	if q.Category != "" {
		where = append(where, fmt.Sprintf("category = $%d", argN))
		args = append(args, q.Category)
		argN++
	}

	whereClause := strings.Join(where, " AND ")

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM projects WHERE %s`, whereClause)
	if err := r.db.DB.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count published projects: %w", err)
	}

	orderBy := "created_at DESC"
	switch q.SortBy {
	case project.SortPopular:
		orderBy = "upvotes_count DESC, created_at DESC"
	case project.SortTrending:
		// Trending ranks recent projects by upvotes; older ones sort below.
		orderBy = "(created_at > NOW() - INTERVAL '7 days') DESC, upvotes_count DESC, created_at DESC"
	}

	query := fmt.Sprintf(`SELECT %s FROM projects WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		projectColumns, whereClause, orderBy, argN, argN+1)
	args = append(args, q.Limit, (q.Page-1)*q.Limit)

	var projects []*project.Project
	if err := r.db.DB.SelectContext(ctx, &projects, query, args...); err != nil {
		if r.logger != nil {
			r.logger.WithError(err).Error("db: failed to list published projects")
		}
		return nil, 0, fmt.Errorf("failed to list published projects: %w", err)
	}

	return projects, total, nil
}

// ListTopPublished retrieves recently published projects ordered by upvotes
func (r *ProjectRepository) ListTopPublished(ctx context.Context, limit int) ([]*project.Project, error) {
	var projects []*project.Project
	query := fmt.Sprintf(`
		SELECT %s FROM projects
		WHERE is_published = TRUE AND created_at > NOW() - INTERVAL '7 days'
		ORDER BY upvotes_count DESC, created_at DESC
		LIMIT $1`, projectColumns)

	if err := r.db.DB.SelectContext(ctx, &projects, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list top published projects: %w", err)
	}

	return projects, nil
}

// ListLatestPublished retrieves the most recently published projects
func (r *ProjectRepository) ListLatestPublished(ctx context.Context, limit int) ([]*project.Project, error) {
	var projects []*project.Project
	query := fmt.Sprintf(`
		SELECT %s FROM projects
		WHERE is_published = TRUE
		ORDER BY created_at DESC
		LIMIT $1`, projectColumns)

	if err := r.db.DB.SelectContext(ctx, &projects, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list latest published projects: %w", err)
	}

	return projects, nil
}

// ListPublishedByUser retrieves a user's published projects
func (r *ProjectRepository) ListPublishedByUser(ctx context.Context, userID uuid.UUID) ([]*project.Project, error) {
	var projects []*project.Project
	query := fmt.Sprintf(`
		SELECT %s FROM projects
		WHERE user_id = $1 AND is_published = TRUE
		ORDER BY created_at DESC`, projectColumns)

	if err := r.db.DB.SelectContext(ctx, &projects, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list published projects by user: %w", err)
	}

	return projects, nil
}

// ListByUser retrieves all of a user's projects, published or not
func (r *ProjectRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*project.Project, error) {
	var projects []*project.Project
	query := fmt.Sprintf(`
		SELECT %s FROM projects
		WHERE user_id = $1
		ORDER BY created_at DESC`, projectColumns)

	if err := r.db.DB.SelectContext(ctx, &projects, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list projects by user: %w", err)
	}

	return projects, nil
}

// ListAll retrieves every project, newest first
func (r *ProjectRepository) ListAll(ctx context.Context) ([]*project.Project, error) {
	var projects []*project.Project
	query := fmt.Sprintf(`SELECT %s FROM projects ORDER BY created_at DESC`, projectColumns)

	if err := r.db.DB.SelectContext(ctx, &projects, query); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return projects, nil
}

// CreateUpvote records an upvote for a project
func (r *ProjectRepository) CreateUpvote(ctx context.Context, v *project.Upvote) error {
	query := `
		INSERT INTO project_upvotes (id, project_id, user_id, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.DB.ExecContext(ctx, query, v.ID, v.ProjectID, v.UserID, v.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return project.ErrAlreadyUpvoted
		}
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"project_id": v.ProjectID, "user_id": v.UserID}).WithError(err).Error("db: failed to create upvote")
		}
		return fmt.Errorf("failed to create upvote: %w", err)
	}

	return nil
}

// GetUpvote retrieves a user's upvote for a project, if any
func (r *ProjectRepository) GetUpvote(ctx context.Context, projectID, userID uuid.UUID) (*project.Upvote, error) {
	var v project.Upvote
	query := `SELECT id, project_id, user_id, created_at FROM project_upvotes WHERE project_id = $1 AND user_id = $2`

	err := r.db.DB.GetContext(ctx, &v, query, projectID, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, project.ErrUpvoteNotFound
		}
		return nil, fmt.Errorf("failed to get upvote: %w", err)
	}

	return &v, nil
}

// DeleteUpvote removes a user's upvote for a project
func (r *ProjectRepository) DeleteUpvote(ctx context.Context, projectID, userID uuid.UUID) error {
	query := `DELETE FROM project_upvotes WHERE project_id = $1 AND user_id = $2`

	result, err := r.db.DB.ExecContext(ctx, query, projectID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete upvote: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return project.ErrUpvoteNotFound
	}

	return nil
}

// ListUpvotes retrieves all upvotes for a project, newest first
func (r *ProjectRepository) ListUpvotes(ctx context.Context, projectID uuid.UUID) ([]*project.Upvote, error) {
	var upvotes []*project.Upvote
	query := `SELECT id, project_id, user_id, created_at FROM project_upvotes WHERE project_id = $1 ORDER BY created_at DESC`

	if err := r.db.DB.SelectContext(ctx, &upvotes, query, projectID); err != nil {
		return nil, fmt.Errorf("failed to list upvotes: %w", err)
	}

	return upvotes, nil
}

// Count returns the total number of projects
func (r *ProjectRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM projects`); err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return count, nil
}

// CountPublished returns the number of published projects
func (r *ProjectRepository) CountPublished(ctx context.Context) (int, error) {
	var count int
	if err := r.db.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM projects WHERE is_published = TRUE`); err != nil {
		return 0, fmt.Errorf("failed to count published projects: %w", err)
	}
	return count, nil
}

// CountUpvotes returns the total number of upvotes across all projects
func (r *ProjectRepository) CountUpvotes(ctx context.Context) (int, error) {
	var count int
	if err := r.db.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM project_upvotes`); err != nil {
		return 0, fmt.Errorf("failed to count upvotes: %w", err)
	}
	return count, nil
}

// PublishedTechStacks retrieves the tech stack arrays of all published projects
func (r *ProjectRepository) PublishedTechStacks(ctx context.Context) ([][]string, error) {
	rows, err := r.db.DB.QueryContext(ctx, `SELECT tech_stack FROM projects WHERE is_published = TRUE`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tech stacks: %w", err)
	}
	defer rows.Close()

	var stacks [][]string
	for rows.Next() {
		var stack pq.StringArray
		if err := rows.Scan(&stack); err != nil {
			return nil, fmt.Errorf("failed to scan tech stack: %w", err)
		}
		stacks = append(stacks, []string(stack))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tech stacks: %w", err)
	}

	return stacks, nil
}
