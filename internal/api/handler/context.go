package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/blog-api/internal/api/middleware"
	"github.com/bloghub/blog-api/internal/core/domain"
)

// ctxIdentity reassembles the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: a non-empty role
// proves the middleware ran.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	role, _ := c.Get(middleware.KeyRole).(string)
	if role == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ := c.Get(middleware.KeyUserID).(string)
	email, _ := c.Get(middleware.KeyEmail).(string)

	return domain.Identity{UserID: userID, Email: email, Role: role}, nil
}
