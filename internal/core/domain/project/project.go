package project

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	ErrNotFound       = errors.New("project not found")
	ErrForbidden      = errors.New("access denied")
	ErrNotPublished   = errors.New("cannot upvote unpublished project")
	ErrAlreadyUpvoted = errors.New("project already upvoted")
	ErrUpvoteNotFound = errors.New("upvote not found")
)

type Project struct {
	ID             uuid.UUID      `json:"id" db:"id"`
	UserID         uuid.UUID      `json:"user_id" db:"user_id"`
	Name           string         `json:"name" db:"name"`
	Tagline        string         `json:"tagline" db:"tagline"`
	Description    string         `json:"description" db:"description"`
	WebsiteURL     *string        `json:"website_url,omitempty" db:"website_url"`
	RepositoryURL  *string        `json:"repository_url,omitempty" db:"repository_url"`
	Category       Category       `json:"category" db:"category"`
	Status         Status         `json:"status" db:"status"`
	TechStack      pq.StringArray `json:"tech_stack" db:"tech_stack"`
	LogoURL        *string        `json:"logo_url,omitempty" db:"logo_url"`
	ScreenshotURLs pq.StringArray `json:"screenshot_urls" db:"screenshot_urls"`
	LaunchedAt     *time.Time     `json:"launched_at,omitempty" db:"launched_at"`
	IsPublished    bool           `json:"is_published" db:"is_published"`
	UpvotesCount   int            `json:"upvotes_count" db:"upvotes_count"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" db:"updated_at"`
}

type Upvote struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ProjectID uuid.UUID `json:"project_id" db:"project_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Category string

const (
	CategoryWebApp   Category = "web_app"
	CategoryMobile   Category = "mobile_app"
	CategoryDevTool  Category = "dev_tool"
	CategoryLibrary  Category = "library"
	CategoryAPI      Category = "api"
	CategoryGame     Category = "game"
	CategoryAI       Category = "ai_ml"
	CategoryOther    Category = "other"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryWebApp, CategoryMobile, CategoryDevTool, CategoryLibrary,
		CategoryAPI, CategoryGame, CategoryAI, CategoryOther:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusIdea          Status = "idea"
	StatusInDevelopment Status = "in_development"
	StatusBeta          Status = "beta"
	StatusLaunched      Status = "launched"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusIdea, StatusInDevelopment, StatusBeta, StatusLaunched:
		return true
	default:
		return false
	}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Name           string   `json:"name" validate:"required,max=100"`
	Tagline        string   `json:"tagline" validate:"required,max=200"`
	Description    string   `json:"description" validate:"required"`
	WebsiteURL     *string  `json:"website_url,omitempty" validate:"omitempty,url"`
	RepositoryURL  *string  `json:"repository_url,omitempty" validate:"omitempty,url"`
	Category       Category `json:"category,omitempty"`
	Status         Status   `json:"status,omitempty"`
	TechStack      []string `json:"tech_stack,omitempty"`
	LogoURL        *string  `json:"logo_url,omitempty" validate:"omitempty,url"`
	ScreenshotURLs []string `json:"screenshot_urls,omitempty"`
}

// UpdateProjectRequest represents a partial project update
type UpdateProjectRequest struct {
	Name           *string   `json:"name,omitempty" validate:"omitempty,max=100"`
	Tagline        *string   `json:"tagline,omitempty" validate:"omitempty,max=200"`
	Description    *string   `json:"description,omitempty"`
	WebsiteURL     *string   `json:"website_url,omitempty" validate:"omitempty,url"`
	RepositoryURL  *string   `json:"repository_url,omitempty" validate:"omitempty,url"`
	Category       *Category `json:"category,omitempty"`
	Status         *Status   `json:"status,omitempty"`
	TechStack      []string  `json:"tech_stack,omitempty"`
	LogoURL        *string   `json:"logo_url,omitempty" validate:"omitempty,url"`
	ScreenshotURLs []string  `json:"screenshot_urls,omitempty"`
	LaunchedAt     *time.Time `json:"launched_at,omitempty"`
}

// Sort orders for public listings
type SortBy string

const (
	SortLatest   SortBy = "latest"
	SortPopular  SortBy = "popular"
	SortTrending SortBy = "trending"
)

// ListQuery captures the public listing filters
type ListQuery struct {
	Search   string   `query:"search"`
	Category Category `query:"category"`
	Page     int      `query:"page"`
	Limit    int      `query:"limit"`
	SortBy   SortBy   `query:"sort_by"`
}

// Normalize applies listing defaults and bounds.
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 20
	}
	switch q.SortBy {
	case SortLatest, SortPopular, SortTrending:
	default:
		q.SortBy = SortLatest
	}
}

// ListMeta is the pagination envelope for public listings
type ListMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
}

// Stats is the admin platform report
type Stats struct {
	TotalUsers        int `json:"total_users"`
	TotalProjects     int `json:"total_projects"`
	PublishedProjects int `json:"published_projects"`
	TotalUpvotes      int `json:"total_upvotes"`
	RecentUsers       int `json:"recent_users"`
}

// TechCount is one entry of the trending-tech report
type TechCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
