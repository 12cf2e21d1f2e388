package ports

import (
	"context"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// ActivityService processes a single audit event off the dispatcher queue.
type ActivityService interface {
	Process(ctx context.Context, event domain.ActivityEvent) error
}

// ActivityRepository persists the audit trail.
type ActivityRepository interface {
	Insert(ctx context.Context, event *domain.ActivityEvent) error
}

// ActivityDispatcher is the write side of the audit pipeline, used by the
// blog service after successful mutations. Implementations must not block
// the request path.
type ActivityDispatcher interface {
	Enqueue(event domain.ActivityEvent)
}
