package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloghub/blog-api/internal/api/metrics"
	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis) guarding the audit
// trail against double recording when events are re-enqueued.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, blogID, action string, ts time.Time) (bool, error)
	Mark(ctx context.Context, blogID, action string, ts time.Time) error
}

type activityService struct {
	repo  ports.ActivityRepository
	dedup DedupChecker
	log   zerolog.Logger
}

// NewActivityService returns an ActivityService implementation.
func NewActivityService(repo ports.ActivityRepository, dedup DedupChecker, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, dedup: dedup, log: log}
}

// Process deduplicates and persists a single audit event.
func (s *activityService) Process(ctx context.Context, event domain.ActivityEvent) error {
	start := time.Now()

	isDup, err := s.dedup.IsDuplicate(ctx, event.BlogID, string(event.Action), event.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("blog_id", event.BlogID).Msg("dedup check failed, recording anyway")
	} else if isDup {
		metrics.ActivityDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Str("blog_id", event.BlogID).Str("action", string(event.Action)).Msg("duplicate activity skipped")
		return nil
	}
	metrics.ActivityDedupTotal.WithLabelValues("miss").Inc()

	// Mark before writing so a retry after a partial failure is skipped
	// rather than recorded twice.
	if markErr := s.dedup.Mark(ctx, event.BlogID, string(event.Action), event.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("blog_id", event.BlogID).Msg("failed to set dedup key")
	}

	if err := s.repo.Insert(ctx, &event); err != nil {
		metrics.ActivityErrorsTotal.WithLabelValues("insert_failed").Inc()
		metrics.ActivityProcessingDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return fmt.Errorf("record activity: %w", err)
	}

	metrics.ActivityProcessedTotal.WithLabelValues(string(event.Action)).Inc()
	metrics.ActivityProcessingDuration.WithLabelValues(string(event.Action)).Observe(time.Since(start).Seconds())

	s.log.Info().
		Str("blog_id", event.BlogID).
		Str("action", string(event.Action)).
		Str("actor", event.ActorEmail).
		Msg("activity recorded")

	return nil
}
