package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloghub/blog-api/internal/api/metrics"
	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

// BlogService implements the post lifecycle: create, list, get, partial
// update, and hard delete, with ownership checks on the mutations.
type BlogService struct {
	repo     ports.BlogRepository
	activity ports.ActivityDispatcher
	log      zerolog.Logger
}

func NewBlogService(repo ports.BlogRepository, activity ports.ActivityDispatcher, log zerolog.Logger) *BlogService {
	return &BlogService{repo: repo, activity: activity, log: log}
}

// Create persists a post stamped with the caller's id and email. The author
// fields come from the verified token, never from the request body.
func (s *BlogService) Create(ctx context.Context, input ports.CreateBlogInput, caller domain.Identity) (*domain.Blog, error) {
	if input.Title == "" || input.Description == "" {
		return nil, domain.ErrMissingFields
	}

	now := time.Now().UTC()
	blog := &domain.Blog{
		Title:       input.Title,
		Description: input.Description,
		Image:       input.Image,
		AuthorID:    caller.UserID,
		AuthorEmail: caller.Email,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Insert(ctx, blog)
	if err != nil {
		s.log.Error().Err(err).Str("author", caller.Email).Msg("failed to create blog")
		return nil, err
	}

	metrics.PostsCreatedTotal.Inc()
	s.record(created.ID, domain.ActivityCreated, caller)
	s.log.Info().Str("blog_id", created.ID).Str("author", caller.Email).Msg("blog created")
	return created, nil
}

// List returns every post, newest first.
func (s *BlogService) List(ctx context.Context) ([]*domain.Blog, error) {
	return s.repo.List(ctx, "")
}

// ListByAuthor returns the posts authored by email, newest first.
func (s *BlogService) ListByAuthor(ctx context.Context, email string) ([]*domain.Blog, error) {
	return s.repo.List(ctx, email)
}

func (s *BlogService) Get(ctx context.Context, id string) (*domain.Blog, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies the non-nil patch fields. Only the author (matched on the
// denormalized email) or an admin may update. An empty patch returns the
// post unchanged without bumping updated_at.
func (s *BlogService) Update(ctx context.Context, id string, patch ports.BlogPatch, caller domain.Identity) (*domain.Blog, error) {
	blog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !blog.CanModify(caller) {
		return nil, domain.ErrForbidden
	}
	if patch.IsEmpty() {
		return blog, nil
	}

	updated, err := s.repo.Update(ctx, id, patch, time.Now().UTC())
	if err != nil {
		s.log.Error().Err(err).Str("blog_id", id).Msg("failed to update blog")
		return nil, err
	}

	s.record(id, domain.ActivityUpdated, caller)
	s.log.Info().Str("blog_id", id).Str("actor", caller.Email).Msg("blog updated")
	return updated, nil
}

// Delete removes the post permanently under the same ownership rule as
// Update and returns the removed record.
func (s *BlogService) Delete(ctx context.Context, id string, caller domain.Identity) (*domain.Blog, error) {
	blog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !blog.CanModify(caller) {
		return nil, domain.ErrForbidden
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Str("blog_id", id).Msg("failed to delete blog")
		return nil, err
	}

	metrics.PostsDeletedTotal.Inc()
	s.record(id, domain.ActivityDeleted, caller)
	s.log.Info().Str("blog_id", id).Str("actor", caller.Email).Msg("blog deleted")
	return deleted, nil
}

// record enqueues an audit event. The dispatcher is optional so the service
// can run without the pipeline in tests.
func (s *BlogService) record(blogID string, action domain.ActivityAction, caller domain.Identity) {
	if s.activity == nil {
		return
	}
	s.activity.Enqueue(domain.ActivityEvent{
		BlogID:     blogID,
		Action:     action,
		ActorEmail: caller.Email,
		Timestamp:  time.Now().UTC(),
	})
}
