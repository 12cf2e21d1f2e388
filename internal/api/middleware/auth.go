package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// Context keys under which the verified identity is stored for the request.
const (
	KeyUserID = "user_id"
	KeyEmail  = "email"
	KeyRole   = "role"
)

// TokenVerifier decodes and validates a bearer token.
type TokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}

// Auth extracts the bearer token, verifies it, and injects the identity into
// the request context. A missing or malformed header is 401; a token that
// fails verification (bad signature, garbage, expired) is 403.
func Auth(tokens TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			id, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "invalid or expired token")
			}

			c.Set(KeyUserID, id.UserID)
			c.Set(KeyEmail, id.Email)
			c.Set(KeyRole, id.Role)

			return next(c)
		}
	}
}

// RequireRole demands an exact match against the single role carried in the
// token. There is no hierarchy: admin does not satisfy a user-gated route.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			got, _ := c.Get(KeyRole).(string)
			if got != role {
				return echo.NewHTTPError(http.StatusForbidden, role+" role required")
			}
			return next(c)
		}
	}
}
