package store

// Activity log.
//
// Every successful progress write appends one event. Events are ordered by
// the table's autoincrement sequence, so entries written within the same
// millisecond still come back in write order.

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const activityTable = "activity_events"

// eventRepo implements EventRepo on the activity_events table.
type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendActivity(ctx context.Context, ev ActivityEvent) error {
	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(activityTable).
		Columns("event_id", "kind", "subject", "score", "timestamp").
		Values(ev.ID, string(ev.Kind), ev.Subject, ev.Score, ev.Timestamp.UnixMilli()).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("append %s event: %w", ev.Kind, err)
	}
	return nil
}

func (r *eventRepo) RecentActivity(ctx context.Context, limit int) ([]ActivityEvent, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select("seq", "event_id", "kind", "subject", "score", "timestamp").
		From(entsql.Table(activityTable)).
		OrderBy(entsql.Desc("seq"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query activity: %w", err)
	}
	defer rows.Close()

	var events []ActivityEvent
	for rows.Next() {
		var (
			ev   ActivityEvent
			kind string
			ts   int64
		)
		if err := rows.Scan(&ev.Sequence, &ev.ID, &kind, &ev.Subject, &ev.Score, &ts); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		ev.Kind = ActivityKind(kind)
		ev.Timestamp = time.UnixMilli(ts)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity: %w", err)
	}
	return events, nil
}

func (r *eventRepo) ClearActivity(ctx context.Context) error {
	query, args := entsql.Dialect(dialect.SQLite).Delete(activityTable).Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear activity: %w", err)
	}
	return nil
}
