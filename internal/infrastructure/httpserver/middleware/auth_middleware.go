package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/devshowcase/api/internal/core/domain/user"
	"github.com/devshowcase/api/internal/core/ports"
	"github.com/devshowcase/api/internal/infrastructure/httpserver/helpers"
)

type JWTMiddleware struct {
	signer ports.TokenSigner
	logger *logrus.Logger
}

func NewJWTMiddleware(signer ports.TokenSigner, logger *logrus.Logger) *JWTMiddleware {
	return &JWTMiddleware{signer: signer, logger: logger}
}

// RequireJWT creates middleware that validates bearer tokens and sets user context
func (m *JWTMiddleware) RequireJWT() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, err := helpers.GetJWTTokenFromContext(c)
			if err != nil {
				return err
			}

			claims, err := m.signer.Parse(tokenString)
			if err != nil {
				if m.logger != nil {
					m.logger.WithFields(logrus.Fields{"ip": c.RealIP(), "path": c.Request().URL.Path, "error": err.Error()}).Warn("JWT validation failed")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			helpers.SetUserID(c, claims.UserID)
			helpers.SetUserRole(c, claims.Role)
			helpers.SetUserEmail(c, claims.Email)

			if m.logger != nil {
				m.logger.WithFields(logrus.Fields{"user_id": claims.UserID, "role": claims.Role}).Debug("jwt validated and user context set")
			}

			return next(c)
		}
	}
}

// RequireRole restricts a route to users holding the given role. It must run
// after RequireJWT.
func (m *JWTMiddleware) RequireRole(role user.UserRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			current, err := helpers.GetUserRoleFromContext(c)
			if err != nil {
				return err
			}
			if current != role {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions")
			}
			return next(c)
		}
	}
}
