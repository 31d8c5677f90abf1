package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/devshowcase/api/internal/core/domain/project"
	"github.com/devshowcase/api/internal/core/domain/user"
	"github.com/devshowcase/api/internal/core/ports"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// Utility helpers
func cacheSetSilently(c ports.Cache, ctx context.Context, key string, v any, ttl time.Duration) {
	if c == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = c.Set(ctx, key, b, ttl)
}

func cacheGet[T any](c ports.Cache, ctx context.Context, key string) (*T, bool) {
	if c == nil {
		return nil, false
	}
	b, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return nil, false
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, false
	}
	return &v, true
}

// loadListWithSingleflight coalesces a list load using singleflight, caches the
// result, and returns the list. The loader should fetch the complete list when
// called.
func loadListWithSingleflight[T any](cache ports.Cache, ctx context.Context, key string, ttl time.Duration, loader func() ([]T, error)) ([]T, error) {
	if cache != nil {
		if v, ok := cacheGet[[]T](cache, ctx, key); ok {
			return *v, nil
		}
	}
	res, err, _ := sf.Do(key, func() (any, error) {
		if cache != nil {
			if v, ok := cacheGet[[]T](cache, ctx, key); ok {
				return *v, nil
			}
		}
		all, err := loader()
		if err != nil {
			return nil, err
		}
		if cache != nil {
			cacheSetSilently(cache, ctx, key, all, ttl)
		}
		return all, nil
	})
	if err != nil {
		return nil, err
	}
	all, ok := res.([]T)
	if !ok {
		return nil, fmt.Errorf("unexpected type from singleflight result")
	}
	return all, nil
}

// CachingUserRepository decorates a UserRepository with cache-aside on the
// single-entity lookups. The email-verification and 2FA challenge live on the
// user row, so every Update overwrites the cached copies.
type CachingUserRepository struct {
	inner ports.UserRepository
	cache ports.Cache
	ttl   time.Duration
}

func NewCachingUserRepository(inner ports.UserRepository, cache ports.Cache, ttl time.Duration) ports.UserRepository {
	return &CachingUserRepository{inner: inner, cache: cache, ttl: ttl}
}

func (c *CachingUserRepository) cacheUser(ctx context.Context, u *user.User) {
	cacheSetSilently(c.cache, ctx, "user:id:"+u.ID.String(), u, c.ttl)
	cacheSetSilently(c.cache, ctx, "user:email:"+u.Email, u, c.ttl)
	cacheSetSilently(c.cache, ctx, "user:username:"+u.Username, u, c.ttl)
}

func (c *CachingUserRepository) Create(ctx context.Context, u *user.User) error {
	if err := c.inner.Create(ctx, u); err != nil {
		return err
	}
	c.cacheUser(ctx, u)
	return nil
}

func (c *CachingUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if v, ok := cacheGet[user.User](c.cache, ctx, "user:id:"+id.String()); ok {
		return v, nil
	}
	u, err := c.inner.GetByID(ctx, id)
	if err == nil {
		c.cacheUser(ctx, u)
	}
	return u, err
}

func (c *CachingUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if v, ok := cacheGet[user.User](c.cache, ctx, "user:email:"+email); ok {
		return v, nil
	}
	u, err := c.inner.GetByEmail(ctx, email)
	if err == nil {
		c.cacheUser(ctx, u)
	}
	return u, err
}

func (c *CachingUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if v, ok := cacheGet[user.User](c.cache, ctx, "user:username:"+username); ok {
		return v, nil
	}
	u, err := c.inner.GetByUsername(ctx, username)
	if err == nil {
		c.cacheUser(ctx, u)
	}
	return u, err
}

func (c *CachingUserRepository) Update(ctx context.Context, u *user.User) error {
	if err := c.inner.Update(ctx, u); err != nil {
		return err
	}
	// Overwrite cache
	c.cacheUser(ctx, u)
	return nil
}

func (c *CachingUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Need current to delete email/username keys
	current, _ := c.inner.GetByID(ctx, id)
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	if c.cache != nil {
		_ = c.cache.Delete(ctx, "user:id:"+id.String())
		if current != nil {
			_ = c.cache.Delete(ctx, "user:email:"+current.Email)
			_ = c.cache.Delete(ctx, "user:username:"+current.Username)
		}
	}
	return nil
}

func (c *CachingUserRepository) List(ctx context.Context, limit, offset int) ([]*user.User, error) {
	return c.inner.List(ctx, limit, offset)
}

func (c *CachingUserRepository) Count(ctx context.Context) (int, error) {
	return c.inner.Count(ctx)
}

func (c *CachingUserRepository) CountCreatedSince(ctx context.Context, days int) (int, error) {
	return c.inner.CountCreatedSince(ctx, days)
}

// CachingProjectRepository decorates a ProjectRepository. Single projects are
// cached by ID; the public discovery lists (trending, latest) are the hot read
// paths, so those are cached behind singleflight. Everything else passes
// through.
type CachingProjectRepository struct {
	inner ports.ProjectRepository
	cache ports.Cache
	ttl   time.Duration
}

func NewCachingProjectRepository(inner ports.ProjectRepository, cache ports.Cache, ttl time.Duration) ports.ProjectRepository {
	return &CachingProjectRepository{inner: inner, cache: cache, ttl: ttl}
}

func (c *CachingProjectRepository) invalidateLists(ctx context.Context) {
	if c.cache == nil {
		return
	}
	_ = c.cache.Delete(ctx, "projects:trending")
	_ = c.cache.Delete(ctx, "projects:latest")
}

func (c *CachingProjectRepository) Create(ctx context.Context, p *project.Project) error {
	if err := c.inner.Create(ctx, p); err != nil {
		return err
	}
	cacheSetSilently(c.cache, ctx, "project:id:"+p.ID.String(), p, c.ttl)
	c.invalidateLists(ctx)
	return nil
}

func (c *CachingProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	if v, ok := cacheGet[project.Project](c.cache, ctx, "project:id:"+id.String()); ok {
		return v, nil
	}
	p, err := c.inner.GetByID(ctx, id)
	if err == nil {
		cacheSetSilently(c.cache, ctx, "project:id:"+id.String(), p, c.ttl)
	}
	return p, err
}

func (c *CachingProjectRepository) Update(ctx context.Context, p *project.Project) error {
	if err := c.inner.Update(ctx, p); err != nil {
		return err
	}
	cacheSetSilently(c.cache, ctx, "project:id:"+p.ID.String(), p, c.ttl)
	c.invalidateLists(ctx)
	return nil
}

func (c *CachingProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	if c.cache != nil {
		_ = c.cache.Delete(ctx, "project:id:"+id.String())
	}
	c.invalidateLists(ctx)
	return nil
}

func (c *CachingProjectRepository) ListPublished(ctx context.Context, q *project.ListQuery) ([]*project.Project, int, error) {
	return c.inner.ListPublished(ctx, q)
}

func (c *CachingProjectRepository) ListTopPublished(ctx context.Context, limit int) ([]*project.Project, error) {
	all, err := loadListWithSingleflight(c.cache, ctx, "projects:trending", c.ttl, func() ([]*project.Project, error) {
		return c.inner.ListTopPublished(ctx, limit)
	})
	if err != nil {
		return nil, err
	}
	if limit > 0 && limit < len(all) {
		return all[:limit], nil
	}
	return all, nil
}

func (c *CachingProjectRepository) ListLatestPublished(ctx context.Context, limit int) ([]*project.Project, error) {
	all, err := loadListWithSingleflight(c.cache, ctx, "projects:latest", c.ttl, func() ([]*project.Project, error) {
		return c.inner.ListLatestPublished(ctx, limit)
	})
	if err != nil {
		return nil, err
	}
	if limit > 0 && limit < len(all) {
		return all[:limit], nil
	}
	return all, nil
}

func (c *CachingProjectRepository) ListPublishedByUser(ctx context.Context, ownerID uuid.UUID) ([]*project.Project, error) {
	return c.inner.ListPublishedByUser(ctx, ownerID)
}

func (c *CachingProjectRepository) ListByUser(ctx context.Context, ownerID uuid.UUID) ([]*project.Project, error) {
	return c.inner.ListByUser(ctx, ownerID)
}

func (c *CachingProjectRepository) ListAll(ctx context.Context) ([]*project.Project, error) {
	return c.inner.ListAll(ctx)
}

func (c *CachingProjectRepository) CreateUpvote(ctx context.Context, v *project.Upvote) error {
	if err := c.inner.CreateUpvote(ctx, v); err != nil {
		return err
	}
	c.invalidateLists(ctx)
	return nil
}

func (c *CachingProjectRepository) GetUpvote(ctx context.Context, projectID, userID uuid.UUID) (*project.Upvote, error) {
	return c.inner.GetUpvote(ctx, projectID, userID)
}

func (c *CachingProjectRepository) DeleteUpvote(ctx context.Context, projectID, userID uuid.UUID) error {
	if err := c.inner.DeleteUpvote(ctx, projectID, userID); err != nil {
		return err
	}
	c.invalidateLists(ctx)
	return nil
}

func (c *CachingProjectRepository) ListUpvotes(ctx context.Context, projectID uuid.UUID) ([]*project.Upvote, error) {
	return c.inner.ListUpvotes(ctx, projectID)
}

func (c *CachingProjectRepository) Count(ctx context.Context) (int, error) {
	return c.inner.Count(ctx)
}

func (c *CachingProjectRepository) CountPublished(ctx context.Context) (int, error) {
	return c.inner.CountPublished(ctx)
}

func (c *CachingProjectRepository) CountUpvotes(ctx context.Context) (int, error) {
	return c.inner.CountUpvotes(ctx)
}

func (c *CachingProjectRepository) PublishedTechStacks(ctx context.Context) ([][]string, error) {
	return c.inner.PublishedTechStacks(ctx)
}

// Simple validation to ensure decorators implement interfaces at compile time
var _ ports.UserRepository = (*CachingUserRepository)(nil)
var _ ports.ProjectRepository = (*CachingProjectRepository)(nil)

// singleflight group for coalescing cache-miss loads in-process
var sf singleflight.Group
