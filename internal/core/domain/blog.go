package domain

import (
	"errors"
	"time"
)

var (
	ErrBlogNotFound = errors.New("blog not found")
	ErrForbidden    = errors.New("access forbidden")
	ErrInvalidID    = errors.New("invalid blog id")
)

// Blog is the core aggregate: a post authored by a user.
//
// AuthorEmail is denormalized from the creator's token at write time so
// ownership checks never need a join against the users collection. Emails
// are immutable in this system, so the copy cannot go stale.
type Blog struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Image       string    `json:"image,omitempty" bson:"image,omitempty"`
	AuthorID    string    `json:"author_id" bson:"author_id"`
	AuthorEmail string    `json:"author_email" bson:"author_email"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// CanModify reports whether the given identity may update or delete the blog:
// the author (matched by denormalized email) or any admin.
func (b *Blog) CanModify(id Identity) bool {
	return id.IsAdmin() || id.Email == b.AuthorEmail
}
