package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloghub/blog-api/internal/api/metrics"
	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
	"github.com/bloghub/blog-api/internal/pkg/password"
	"github.com/bloghub/blog-api/internal/pkg/token"
)

const minPasswordLength = 6

// AuthService implements registration and login on top of the user store,
// the password hasher, and the token service.
type AuthService struct {
	repo   ports.UserRepository
	tokens *token.Service
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *token.Service, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, log: log}
}

// Register creates an account with role "user". There is no endpoint that
// creates admins; those are provisioned directly in the store.
func (s *AuthService) Register(ctx context.Context, name, email, pass string) (*domain.User, error) {
	if name == "" || email == "" || pass == "" {
		return nil, domain.ErrMissingFields
	}
	if len(pass) < minPasswordLength {
		return nil, domain.ErrWeakPassword
	}

	hash, err := password.Hash(pass)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.UsersRegisteredTotal.Inc()
	s.log.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user registered")
	return created, nil
}

// Login verifies credentials and mints a token carrying {sub, email, role}.
// Unknown email and wrong password collapse into the same error so the
// endpoint cannot be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, pass string) (string, *domain.User, error) {
	if email == "" || pass == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !password.Verify(pass, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(domain.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user logged in")
	return signed, user, nil
}
