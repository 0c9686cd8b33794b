package store

import (
	"context"
	"time"
)

// KVRepo is a byte-valued key-value table. Each key holds one document
// that is overwritten as a whole.
type KVRepo interface {
	// Get returns the value for key. The bool is false if the key is absent.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Put inserts or overwrites the value for key.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// ActivityKind names what a learner did.
type ActivityKind string

const (
	ActivityLessonCompleted ActivityKind = "lesson_completed"
	ActivityQuizScored      ActivityKind = "quiz_scored"
)

// ActivityEvent is one entry of the append-only activity log.
type ActivityEvent struct {
	ID        string
	Sequence  int64
	Kind      ActivityKind
	Subject   string // lesson ID or quiz ID
	Score     int    // quiz_scored only
	Timestamp time.Time
}

// EventRepo provides append and query access to the activity log.
type EventRepo interface {
	// AppendActivity records an event. ID and Timestamp are filled in when
	// empty.
	AppendActivity(ctx context.Context, ev ActivityEvent) error

	// RecentActivity returns up to limit events, newest first.
	// A limit <= 0 returns all events.
	RecentActivity(ctx context.Context, limit int) ([]ActivityEvent, error)

	// ClearActivity removes every event.
	ClearActivity(ctx context.Context) error
}
