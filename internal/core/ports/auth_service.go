package ports

import (
	"context"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// AuthService implements registration and login.
type AuthService interface {
	// Register creates an account with the fixed role "user".
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed token plus the user.
	// Unknown email and wrong password both fail with
	// domain.ErrInvalidCredentials so callers cannot probe for accounts.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
