// Package token issues and verifies the signed identity tokens used by the
// API. Tokens are self-contained HS256 JWTs carrying {subject id, email,
// role}; there is no server-side session store.
//
// TODO: there is no revocation list, so a stolen token stays valid until its
// exp claim passes. Rotating JWT_SECRET invalidates every outstanding token.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bloghub/blog-api/internal/core/domain"
)

const defaultTTL = 24 * time.Hour

var (
	// ErrExpired marks a token whose signature checked out but whose expiry
	// horizon has passed.
	ErrExpired = errors.New("token expired")
	// ErrInvalid covers everything else: bad signature, wrong algorithm,
	// malformed structure, missing claims.
	ErrInvalid = errors.New("invalid token")
)

// Service signs and verifies identity tokens with a process-wide secret.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService returns a Service signing with secret. A non-positive ttl falls
// back to 24 hours.
func NewService(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Issue mints a signed token for the given identity.
func (s *Service) Issue(id domain.Identity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   id.UserID,
		"email": id.Email,
		"role":  id.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates tokenString and returns the embedded identity.
// Expiry is reported as ErrExpired; every other failure as ErrInvalid.
func (s *Service) Verify(tokenString string) (domain.Identity, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, ErrExpired
		}
		return domain.Identity{}, ErrInvalid
	}
	if !tkn.Valid {
		return domain.Identity{}, ErrInvalid
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if sub == "" || role == "" {
		return domain.Identity{}, ErrInvalid
	}

	return domain.Identity{UserID: sub, Email: email, Role: role}, nil
}
