package httpserver

import (
	"errors"
	"net/http"

	"github.com/devshowcase/api/internal/core/domain/auth"
	"github.com/devshowcase/api/internal/core/domain/user"
	"github.com/labstack/echo/v4"
)

// Auth handlers
func (s *Server) register(c echo.Context) error {
	var req auth.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := s.authSvc.Register(c.Request().Context(), &req); err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailTaken), errors.Is(err, auth.ErrUsernameTaken):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to register")
		}
	}

	return c.JSON(http.StatusCreated, auth.MessageResponse{
		Message: "Registration successful. Please check your email to verify your account.",
	})
}

func (s *Server) verifyEmail(c echo.Context) error {
	var req auth.VerifyEmailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := s.authSvc.VerifyEmail(c.Request().Context(), &req); err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, auth.ErrAlreadyVerified),
			errors.Is(err, auth.ErrInvalidToken),
			errors.Is(err, auth.ErrTokenExpired):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to verify email")
		}
	}

	return c.JSON(http.StatusOK, auth.MessageResponse{Message: "Email verified successfully"})
}

func (s *Server) login(c echo.Context) error {
	var req auth.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := s.authSvc.Login(c.Request().Context(), &req); err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrEmailNotVerified):
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to login")
		}
	}

	return c.JSON(http.StatusOK, auth.MessageResponse{Message: "2FA code sent to your email"})
}

func (s *Server) verify2FA(c echo.Context) error {
	var req auth.Verify2FARequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := s.authSvc.Verify2FA(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCode), errors.Is(err, auth.ErrCodeExpired):
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to verify 2FA code")
		}
	}

	return c.JSON(http.StatusOK, auth.TokenResponse{AccessToken: token})
}

func (s *Server) resendVerificationEmail(c echo.Context) error {
	var req auth.ResendEmailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := s.authSvc.ResendVerificationEmail(c.Request().Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, auth.ErrAlreadyVerified):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to resend verification email")
		}
	}

	return c.JSON(http.StatusOK, auth.MessageResponse{Message: "Verification email sent"})
}

func (s *Server) resend2FACode(c echo.Context) error {
	var req auth.ResendEmailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := s.authSvc.Resend2FACode(c.Request().Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to resend 2FA code")
		}
	}

	return c.JSON(http.StatusOK, auth.MessageResponse{Message: "2FA code sent"})
}
