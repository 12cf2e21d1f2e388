package ports

import (
	"context"
	"time"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// BlogPatch carries the fields of a partial update. Nil means "leave as is".
type BlogPatch struct {
	Title       *string
	Description *string
	Image       *string
}

// IsEmpty reports whether the patch changes nothing.
func (p BlogPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Image == nil
}

// BlogRepository defines persistence for blog posts. Each operation is a
// single-document write; the store's per-document atomicity is the only
// concurrency guarantee (concurrent updates are last-write-wins).
type BlogRepository interface {
	Insert(ctx context.Context, blog *domain.Blog) (*domain.Blog, error)
	// FindByID returns domain.ErrBlogNotFound when no document matches and
	// domain.ErrInvalidID when id is not a well-formed identifier.
	FindByID(ctx context.Context, id string) (*domain.Blog, error)
	// List returns posts newest-first. A non-empty authorEmail restricts the
	// result to that author.
	List(ctx context.Context, authorEmail string) ([]*domain.Blog, error)
	// Update applies the non-nil patch fields and stamps updatedAt, returning
	// the post as it exists after the write.
	Update(ctx context.Context, id string, patch BlogPatch, updatedAt time.Time) (*domain.Blog, error)
	// Delete removes the post permanently and returns the removed document.
	Delete(ctx context.Context, id string) (*domain.Blog, error)
}
