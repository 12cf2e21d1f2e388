package domain

import "time"

// ActivityAction identifies a blog lifecycle mutation.
type ActivityAction string

const (
	ActivityCreated ActivityAction = "created"
	ActivityUpdated ActivityAction = "updated"
	ActivityDeleted ActivityAction = "deleted"
)

// ActivityEvent is one entry in the audit trail of blog mutations. Events are
// recorded asynchronously; the request path never waits on them.
type ActivityEvent struct {
	BlogID     string
	Action     ActivityAction
	ActorEmail string
	Timestamp  time.Time
}
