package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bloghub/blog-api/internal/core/domain"
)

const activitiesCollection = "activities"

// ActivityRepository persists the append-only audit trail of blog mutations.
type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(activitiesCollection)}
}

type mongoActivity struct {
	BlogID     string    `bson:"blog_id"`
	Action     string    `bson:"action"`
	ActorEmail string    `bson:"actor_email"`
	Timestamp  time.Time `bson:"timestamp"`
}

func (r *ActivityRepository) Insert(ctx context.Context, event *domain.ActivityEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoActivity{
		BlogID:     event.BlogID,
		Action:     string(event.Action),
		ActorEmail: event.ActorEmail,
		Timestamp:  event.Timestamp,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}
