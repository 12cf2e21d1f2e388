package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloghub/blog-api/internal/core/domain"
)

type stubActivityRepo struct {
	inserted  []domain.ActivityEvent
	insertErr error
}

func (r *stubActivityRepo) Insert(_ context.Context, event *domain.ActivityEvent) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, *event)
	return nil
}

type stubDedup struct {
	seen    map[string]bool
	markErr error
}

func newStubDedup() *stubDedup {
	return &stubDedup{seen: make(map[string]bool)}
}

func (d *stubDedup) key(blogID, action string, ts time.Time) string {
	return blogID + "|" + action + "|" + ts.UTC().Format(time.RFC3339)
}

func (d *stubDedup) IsDuplicate(_ context.Context, blogID, action string, ts time.Time) (bool, error) {
	return d.seen[d.key(blogID, action, ts)], nil
}

func (d *stubDedup) Mark(_ context.Context, blogID, action string, ts time.Time) error {
	if d.markErr != nil {
		return d.markErr
	}
	d.seen[d.key(blogID, action, ts)] = true
	return nil
}

func TestActivityService_RecordsEvent(t *testing.T) {
	repo := &stubActivityRepo{}
	svc := NewActivityService(repo, newStubDedup(), zerolog.Nop())

	event := domain.ActivityEvent{
		BlogID:     "blog-1",
		Action:     domain.ActivityCreated,
		ActorEmail: "alice@example.com",
		Timestamp:  time.Now().UTC(),
	}
	if err := svc.Process(context.Background(), event); err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if len(repo.inserted) != 1 || repo.inserted[0].BlogID != "blog-1" {
		t.Fatalf("event not persisted: %+v", repo.inserted)
	}
}

func TestActivityService_SkipsDuplicate(t *testing.T) {
	repo := &stubActivityRepo{}
	svc := NewActivityService(repo, newStubDedup(), zerolog.Nop())

	event := domain.ActivityEvent{
		BlogID:    "blog-1",
		Action:    domain.ActivityUpdated,
		Timestamp: time.Now().UTC(),
	}
	if err := svc.Process(context.Background(), event); err != nil {
		t.Fatalf("first Process returned error: %v", err)
	}
	if err := svc.Process(context.Background(), event); err != nil {
		t.Fatalf("duplicate Process returned error: %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("duplicate was recorded twice: %+v", repo.inserted)
	}
}

func TestActivityService_InsertFailure(t *testing.T) {
	repo := &stubActivityRepo{insertErr: errors.New("mongo down")}
	svc := NewActivityService(repo, newStubDedup(), zerolog.Nop())

	event := domain.ActivityEvent{
		BlogID:    "blog-1",
		Action:    domain.ActivityDeleted,
		Timestamp: time.Now().UTC(),
	}
	if err := svc.Process(context.Background(), event); err == nil {
		t.Fatalf("expected error when insert fails")
	}
}
