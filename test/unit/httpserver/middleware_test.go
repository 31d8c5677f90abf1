package httpserver_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/devshowcase/api/internal/core/domain/auth"
	"github.com/devshowcase/api/internal/core/domain/user"
	api_http "github.com/devshowcase/api/internal/infrastructure/httpserver"
	"github.com/devshowcase/api/test/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func signerFor(claimsByToken map[string]*auth.Claims) *mocks.TokenSignerMock {
	return &mocks.TokenSignerMock{
		ParseFn: func(token string) (*auth.Claims, error) {
			if claims, ok := claimsByToken[token]; ok {
				return claims, nil
			}
			return nil, fmt.Errorf("token is malformed")
		},
	}
}

func TestProtectedRoutes_RequireJWT(t *testing.T) {
	userID := uuid.New()
	signer := signerFor(map[string]*auth.Claims{
		"good-token": {UserID: userID, Email: "dev@example.com", Role: user.RoleUser},
	})

	userMock := &mocks.UserServiceMock{
		GetUserFn: func(ctx context.Context, id uuid.UUID) (*user.User, error) {
			require.Equal(t, userID, id)
			return &user.User{ID: id, Email: "dev@example.com", Username: "dev"}, nil
		},
	}

	ts := newTestServer(api_http.ServerDeps{
		AuthService: &mocks.AuthServiceMock{},
		UserService: userMock,
		TokenSigner: signer,
	})
	defer ts.Close()

	// no token
	resp, _ := doJSON(t, ts, http.MethodGet, "/api/v1/me", nil, "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// garbage token
	resp, _ = doJSON(t, ts, http.MethodGet, "/api/v1/me", nil, "bad-token")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// valid token reaches the handler with the claim identity
	resp, body := doJSON(t, ts, http.MethodGet, "/api/v1/me", nil, "good-token")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var u user.User
	require.NoError(t, json.Unmarshal(body, &u))
	require.Equal(t, userID, u.ID)
}

func TestAdminRoutes_RequireAdminRole(t *testing.T) {
	signer := signerFor(map[string]*auth.Claims{
		"user-token":  {UserID: uuid.New(), Email: "dev@example.com", Role: user.RoleUser},
		"admin-token": {UserID: uuid.New(), Email: "admin@example.com", Role: user.RoleAdmin},
	})

	adminMock := &mocks.AdminServiceMock{
		ListUsersFn: func(ctx context.Context, limit, offset int) ([]*user.User, error) {
			return []*user.User{{ID: uuid.New(), Username: "dev"}}, nil
		},
	}

	ts := newTestServer(api_http.ServerDeps{
		AuthService:  &mocks.AuthServiceMock{},
		AdminService: adminMock,
		TokenSigner:  signer,
	})
	defer ts.Close()

	resp, _ := doJSON(t, ts, http.MethodGet, "/api/v1/admin/users", nil, "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, ts, http.MethodGet, "/api/v1/admin/users", nil, "user-token")
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, ts, http.MethodGet, "/api/v1/admin/users", nil, "admin-token")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestPublicRoutes_NoTokenNeeded(t *testing.T) {
	projectMock := &mocks.ProjectServiceMock{}

	ts := newTestServer(api_http.ServerDeps{
		AuthService:    &mocks.AuthServiceMock{},
		ProjectService: projectMock,
		TokenSigner:    &mocks.TokenSignerMock{},
	})
	defer ts.Close()

	resp, _ := doJSON(t, ts, http.MethodGet, "/api/v1/projects/trending", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, ts, http.MethodGet, "/api/v1/projects/latest", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
