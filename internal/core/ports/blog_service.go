package ports

import (
	"context"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// CreateBlogInput carries the data needed to create a post. Author identity
// comes from the verified token, never from the request body.
type CreateBlogInput struct {
	Title       string
	Description string
	Image       string
}

// BlogService defines the use-case operations on posts.
type BlogService interface {
	Create(ctx context.Context, input CreateBlogInput, caller domain.Identity) (*domain.Blog, error)
	// List returns every post, newest first.
	List(ctx context.Context) ([]*domain.Blog, error)
	// ListByAuthor returns the posts authored by the given email, newest first.
	ListByAuthor(ctx context.Context, email string) ([]*domain.Blog, error)
	Get(ctx context.Context, id string) (*domain.Blog, error)
	// Update applies a partial patch. Only the author or an admin may update;
	// anyone else gets domain.ErrForbidden.
	Update(ctx context.Context, id string, patch BlogPatch, caller domain.Identity) (*domain.Blog, error)
	// Delete removes a post permanently under the same ownership rule as
	// Update and returns the removed record.
	Delete(ctx context.Context, id string, caller domain.Identity) (*domain.Blog, error)
}
