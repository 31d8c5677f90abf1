package httpserver

import (
	"errors"
	"net/http"

	"github.com/devshowcase/api/internal/core/domain/project"
	"github.com/devshowcase/api/internal/infrastructure/httpserver/helpers"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func projectError(err error) error {
	switch {
	case errors.Is(err, project.ErrNotFound), errors.Is(err, project.ErrUpvoteNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, project.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, project.ErrAlreadyUpvoted):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, project.ErrNotPublished):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}

// Public discovery handlers
func (s *Server) listProjects(c echo.Context) error {
	var q project.ListQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	projects, meta, err := s.projectService.ListPublic(c.Request().Context(), &q)
	if err != nil {
		return projectError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"projects": projects,
		"meta":     meta,
	})
}

func (s *Server) trendingProjects(c echo.Context) error {
	projects, err := s.projectService.Trending(c.Request().Context())
	if err != nil {
		return projectError(err)
	}
	return c.JSON(http.StatusOK, projects)
}

func (s *Server) latestProjects(c echo.Context) error {
	projects, err := s.projectService.Latest(c.Request().Context())
	if err != nil {
		return projectError(err)
	}
	return c.JSON(http.StatusOK, projects)
}

func (s *Server) searchProjects(c echo.Context) error {
	term := c.QueryParam("q")
	if term == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "search term is required")
	}

	projects, err := s.projectService.Search(c.Request().Context(), term)
	if err != nil {
		return projectError(err)
	}
	return c.JSON(http.StatusOK, projects)
}

func (s *Server) projectsByCategory(c echo.Context) error {
	category := project.Category(c.Param("category"))
	if !category.IsValid() {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid category")
	}

	projects, err := s.projectService.ByCategory(c.Request().Context(), category)
	if err != nil {
		return projectError(err)
	}
	return c.JSON(http.StatusOK, projects)
}

func (s *Server) getPublicProject(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid project ID")
	}

	p, err := s.projectService.GetPublic(c.Request().Context(), id)
	if err != nil {
		return projectError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) listProjectUpvotes(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid project ID")
	}

	upvotes, err := s.projectService.ListUpvotes(c.Request().Context(), id)
	if err != nil {
		return projectError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"upvotes": upvotes,
		"count":   len(upvotes),
	})
}

// Owner handlers
func (s *Server) listOwnProjects(c echo.Context) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	projects, err := s.projectService.ListMine(c.Request().Context(), userID)
	if err != nil {
		return projectError(err)
	}
	return c.JSON(http.StatusOK, projects)
}

func (s *Server) getOwnProject(c echo.Context) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid project ID")
	}

	p, err := s.projectService.Get(c.Request().Context(), id, userID)
	if err != nil {
		return projectError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) createProject(c echo.Context) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	var req project.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := s.projectService.Create(c.Request().Context(), userID, &req)
	if err != nil {
		return projectError(err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (s *Server) updateProject(c echo.Context) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid project ID")
	}

	var req project.UpdateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := s.projectService.Update(c.Request().Context(), id, userID, &req)
	if err != nil {
		return projectError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) deleteProject(c echo.Context) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid project ID")
	}

	if err := s.projectService.Delete(c.Request().Context(), id, userID); err != nil {
		return projectError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) publishProject(c echo.Context) error {
	return s.setProjectPublished(c, true)
}

func (s *Server) unpublishProject(c echo.Context) error {
	return s.setProjectPublished(c, false)
}

func (s *Server) setProjectPublished(c echo.Context, published bool) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid project ID")
	}

	var p *project.Project
	if published {
		p, err = s.projectService.Publish(c.Request().Context(), id, userID)
	} else {
		p, err = s.projectService.Unpublish(c.Request().Context(), id, userID)
	}
	if err != nil {
		return projectError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) upvoteProject(c echo.Context) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid project ID")
	}

	if err := s.projectService.Upvote(c.Request().Context(), id, userID); err != nil {
		return projectError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "project upvoted"})
}

func (s *Server) removeUpvote(c echo.Context) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid project ID")
	}

	if err := s.projectService.RemoveUpvote(c.Request().Context(), id, userID); err != nil {
		return projectError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "upvote removed"})
}
