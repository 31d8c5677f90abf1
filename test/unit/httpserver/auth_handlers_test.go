package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/devshowcase/api/internal/core/domain/auth"
	"github.com/devshowcase/api/internal/core/domain/user"
	api_http "github.com/devshowcase/api/internal/infrastructure/httpserver"
	"github.com/devshowcase/api/test/mocks"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestServer(deps api_http.ServerDeps) *httptest.Server {
	srv := api_http.NewServer(&api_http.ServerConfig{
		Host:         "127.0.0.1",
		Port:         "0",
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		IdleTimeout:  time.Second,
	}, logrus.New(), deps)
	return httptest.NewServer(srv.Echo())
}

func doJSON(t *testing.T, ts *httptest.Server, method, path string, body any, token string) (*http.Response, []byte) {
	t.Helper()
	var b []byte
	if body != nil {
		var err error
		b, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req, err := http.NewRequest(method, ts.URL+path, bytes.NewReader(b))
	require.NoError(t, err)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, respBody
}

func TestAuthEndpoints_FullFlowStatusCodes(t *testing.T) {
	authMock := &mocks.AuthServiceMock{}

	deps := api_http.ServerDeps{
		AuthService:    authMock,
		UserService:    nil,
		ProjectService: nil,
		AdminService:   nil,
		TokenSigner:    &mocks.TokenSignerMock{},
	}
	ts := newTestServer(deps)
	defer ts.Close()

	registerReq := map[string]string{
		"email": "dev@example.com", "password": "Password1", "username": "dev_one",
		"first_name": "Dev", "last_name": "One",
	}
	resp, _ := doJSON(t, ts, http.MethodPost, "/api/v1/auth/register", registerReq, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	verifyReq := map[string]string{"email": "dev@example.com", "token": "123456"}
	resp, _ = doJSON(t, ts, http.MethodPost, "/api/v1/auth/verify-email", verifyReq, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	loginReq := map[string]string{"email": "dev@example.com", "password": "Password1"}
	resp, _ = doJSON(t, ts, http.MethodPost, "/api/v1/auth/login", loginReq, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	twoFAReq := map[string]string{"email": "dev@example.com", "code": "654321"}
	resp, body := doJSON(t, ts, http.MethodPost, "/api/v1/auth/verify-2fa", twoFAReq, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var tokens auth.TokenResponse
	require.NoError(t, json.Unmarshal(body, &tokens))
	require.Equal(t, "signed-token", tokens.AccessToken)
}

func TestAuthEndpoints_ErrorMapping(t *testing.T) {
	authMock := &mocks.AuthServiceMock{
		RegisterFn: func(ctx context.Context, req *auth.RegisterRequest) error {
			return auth.ErrEmailTaken
		},
		VerifyEmailFn: func(ctx context.Context, req *auth.VerifyEmailRequest) error {
			if req.Email == "ghost@example.com" {
				return user.ErrNotFound
			}
			return auth.ErrTokenExpired
		},
		LoginFn: func(ctx context.Context, req *auth.LoginRequest) error {
			if req.Email == "pending@example.com" {
				return auth.ErrEmailNotVerified
			}
			return auth.ErrInvalidCredentials
		},
		Verify2FAFn: func(ctx context.Context, req *auth.Verify2FARequest) (string, error) {
			return "", auth.ErrInvalidCode
		},
		ResendVerificationEmailFn: func(ctx context.Context, email string) error {
			if email == "ghost@example.com" {
				return user.ErrNotFound
			}
			return auth.ErrAlreadyVerified
		},
	}

	ts := newTestServer(api_http.ServerDeps{AuthService: authMock, TokenSigner: &mocks.TokenSignerMock{}})
	defer ts.Close()

	registerReq := map[string]string{
		"email": "dev@example.com", "password": "Password1", "username": "dev_one",
		"first_name": "Dev", "last_name": "One",
	}
	resp, _ := doJSON(t, ts, http.MethodPost, "/api/v1/auth/register", registerReq, "")
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = doJSON(t, ts, http.MethodPost, "/api/v1/auth/verify-email", map[string]string{"email": "ghost@example.com", "token": "123456"}, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, ts, http.MethodPost, "/api/v1/auth/verify-email", map[string]string{"email": "dev@example.com", "token": "123456"}, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, ts, http.MethodPost, "/api/v1/auth/login", map[string]string{"email": "pending@example.com", "password": "Password1"}, "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, ts, http.MethodPost, "/api/v1/auth/login", map[string]string{"email": "dev@example.com", "password": "wrongpass"}, "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, ts, http.MethodPost, "/api/v1/auth/verify-2fa", map[string]string{"email": "dev@example.com", "code": "000000"}, "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, ts, http.MethodPost, "/api/v1/auth/resend-verification-email", map[string]string{"email": "ghost@example.com"}, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, ts, http.MethodPost, "/api/v1/auth/resend-verification-email", map[string]string{"email": "dev@example.com"}, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAuthEndpoints_RequestValidation(t *testing.T) {
	registerCalled := false
	authMock := &mocks.AuthServiceMock{
		RegisterFn: func(ctx context.Context, req *auth.RegisterRequest) error {
			registerCalled = true
			return nil
		},
	}

	ts := newTestServer(api_http.ServerDeps{AuthService: authMock, TokenSigner: &mocks.TokenSignerMock{}})
	defer ts.Close()

	// weak password rejected before the service is reached
	weak := map[string]string{
		"email": "dev@example.com", "password": "password", "username": "dev_one",
		"first_name": "Dev", "last_name": "One",
	}
	resp, _ := doJSON(t, ts, http.MethodPost, "/api/v1/auth/register", weak, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// bad username charset
	badUser := map[string]string{
		"email": "dev@example.com", "password": "Password1", "username": "dev one!",
		"first_name": "Dev", "last_name": "One",
	}
	resp, _ = doJSON(t, ts, http.MethodPost, "/api/v1/auth/register", badUser, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.False(t, registerCalled)

	// malformed body
	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/api/v1/auth/register", bytes.NewReader([]byte("not-json")))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	raw, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	raw.Body.Close()
	require.Equal(t, http.StatusBadRequest, raw.StatusCode)

	// 2FA code must be six digits long
	resp, _ = doJSON(t, ts, http.MethodPost, "/api/v1/auth/verify-2fa", map[string]string{"email": "dev@example.com", "code": "123"}, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
