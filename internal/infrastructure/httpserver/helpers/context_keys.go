package helpers

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/devshowcase/api/internal/core/domain/user"
)

type ctxKey string

const (
	keyUserID    ctxKey = "user_id"
	keyUserRole  ctxKey = "user_role"
	keyUserEmail ctxKey = "user_email"
)

func SetUserID(c echo.Context, id uuid.UUID) { c.Set(string(keyUserID), id) }
func GetUserIDRaw(c echo.Context) (uuid.UUID, bool) {
	v := c.Get(string(keyUserID))
	id, ok := v.(uuid.UUID)
	return id, ok
}

func SetUserRole(c echo.Context, r user.UserRole) { c.Set(string(keyUserRole), r) }
func GetUserRoleRaw(c echo.Context) (user.UserRole, bool) {
	v := c.Get(string(keyUserRole))
	r, ok := v.(user.UserRole)
	return r, ok
}

func SetUserEmail(c echo.Context, email string) { c.Set(string(keyUserEmail), email) }
func GetUserEmailRaw(c echo.Context) (string, bool) {
	v := c.Get(string(keyUserEmail))
	s, ok := v.(string)
	return s, ok
}
