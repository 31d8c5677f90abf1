package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/devshowcase/api/internal/core/domain/auth"
	"github.com/devshowcase/api/internal/core/domain/project"
	"github.com/devshowcase/api/internal/core/domain/user"
	api_http "github.com/devshowcase/api/internal/infrastructure/httpserver"
	"github.com/devshowcase/api/test/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestProjectEndpoints_OwnerFlow(t *testing.T) {
	ownerID := uuid.New()
	signer := signerFor(map[string]*auth.Claims{
		"owner-token": {UserID: ownerID, Email: "dev@example.com", Role: user.RoleUser},
	})

	projectID := uuid.New()
	projectMock := &mocks.ProjectServiceMock{
		CreateFn: func(ctx context.Context, userID uuid.UUID, req *project.CreateProjectRequest) (*project.Project, error) {
			require.Equal(t, ownerID, userID)
			return &project.Project{ID: projectID, UserID: userID, Name: req.Name, Tagline: req.Tagline}, nil
		},
		PublishFn: func(ctx context.Context, id, userID uuid.UUID) (*project.Project, error) {
			return &project.Project{ID: id, UserID: userID, IsPublished: true}, nil
		},
		UpdateFn: func(ctx context.Context, id, userID uuid.UUID, req *project.UpdateProjectRequest) (*project.Project, error) {
			return nil, project.ErrForbidden
		},
	}

	ts := newTestServer(api_http.ServerDeps{
		AuthService:    &mocks.AuthServiceMock{},
		ProjectService: projectMock,
		TokenSigner:    signer,
	})
	defer ts.Close()

	createReq := map[string]any{
		"name":        "DevShowcase",
		"tagline":     "Show off your side projects",
		"description": "A place to publish projects",
		"category":    "web_app",
		"tech_stack":  []string{"Go", "PostgreSQL"},
	}
	resp, body := doJSON(t, ts, http.MethodPost, "/api/v1/projects", createReq, "owner-token")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created project.Project
	require.NoError(t, json.Unmarshal(body, &created))
	require.Equal(t, projectID, created.ID)

	resp, _ = doJSON(t, ts, http.MethodPut, "/api/v1/projects/"+projectID.String()+"/publish", nil, "owner-token")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// updating someone else's project
	resp, _ = doJSON(t, ts, http.MethodPut, "/api/v1/projects/"+projectID.String(), map[string]string{"name": "Stolen"}, "owner-token")
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	// creating without the required fields
	resp, _ = doJSON(t, ts, http.MethodPost, "/api/v1/projects", map[string]string{"name": "No tagline"}, "owner-token")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// bad project id
	resp, _ = doJSON(t, ts, http.MethodPut, "/api/v1/projects/not-a-uuid/publish", nil, "owner-token")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProjectEndpoints_UpvoteMapping(t *testing.T) {
	voterID := uuid.New()
	signer := signerFor(map[string]*auth.Claims{
		"voter-token": {UserID: voterID, Email: "voter@example.com", Role: user.RoleUser},
	})

	projectMock := &mocks.ProjectServiceMock{
		UpvoteFn: func(ctx context.Context, projectID, userID uuid.UUID) error {
			return project.ErrAlreadyUpvoted
		},
		RemoveUpvoteFn: func(ctx context.Context, projectID, userID uuid.UUID) error {
			return project.ErrUpvoteNotFound
		},
	}

	ts := newTestServer(api_http.ServerDeps{
		AuthService:    &mocks.AuthServiceMock{},
		ProjectService: projectMock,
		TokenSigner:    signer,
	})
	defer ts.Close()

	id := uuid.New().String()
	resp, _ := doJSON(t, ts, http.MethodPost, "/api/v1/projects/"+id+"/upvote", nil, "voter-token")
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = doJSON(t, ts, http.MethodDelete, "/api/v1/projects/"+id+"/upvote", nil, "voter-token")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProjectEndpoints_PublicDiscovery(t *testing.T) {
	projectMock := &mocks.ProjectServiceMock{
		ListPublicFn: func(ctx context.Context, q *project.ListQuery) ([]*project.Project, *project.ListMeta, error) {
			require.Equal(t, "dev_tool", string(q.Category))
			require.Equal(t, 2, q.Page)
			return []*project.Project{{ID: uuid.New(), IsPublished: true}}, &project.ListMeta{Total: 21, Page: 2, Limit: 20, TotalPages: 2}, nil
		},
		SearchFn: func(ctx context.Context, term string) ([]*project.Project, error) {
			require.Equal(t, "cli", term)
			return nil, nil
		},
		GetPublicFn: func(ctx context.Context, id uuid.UUID) (*project.Project, error) {
			return nil, project.ErrNotFound
		},
	}

	ts := newTestServer(api_http.ServerDeps{
		AuthService:    &mocks.AuthServiceMock{},
		ProjectService: projectMock,
		TokenSigner:    &mocks.TokenSignerMock{},
	})
	defer ts.Close()

	resp, body := doJSON(t, ts, http.MethodGet, "/api/v1/projects?category=dev_tool&page=2", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listing struct {
		Projects []*project.Project `json:"projects"`
		Meta     *project.ListMeta  `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(body, &listing))
	require.Equal(t, 21, listing.Meta.Total)

	resp, _ = doJSON(t, ts, http.MethodGet, "/api/v1/projects/search?q=cli", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// search without a term
	resp, _ = doJSON(t, ts, http.MethodGet, "/api/v1/projects/search", nil, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// unknown category
	resp, _ = doJSON(t, ts, http.MethodGet, "/api/v1/projects/category/blockchain", nil, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// unpublished or missing project is hidden
	resp, _ = doJSON(t, ts, http.MethodGet, "/api/v1/projects/"+uuid.New().String(), nil, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
