package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"conversation-funnel-service/internal/funnel/core/domain"
	"conversation-funnel-service/internal/funnel/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

const DefaultPageSize = 1000

type EventRepository struct {
	db       DB
	pageSize int
}

func NewEventRepository(db DB, pageSize int) *EventRepository {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &EventRepository{db: db, pageSize: pageSize}
}

var _ ports.EventReaderPort = (*EventRepository)(nil)

// id breaks ties between messages created in the same instant so pages never overlap
const listEventsSQL = `
SELECT
    ig_username,
    created_at,
    direction,
    message_tag
FROM ig_conversations
WHERE created_at >= $1 AND created_at <= $2
ORDER BY created_at ASC, id ASC
LIMIT $3 OFFSET $4`

// ListEvents pages through the range until a short page comes back.
func (r *EventRepository) ListEvents(ctx context.Context, f ports.EventFilter) ([]domain.Event, error) {
	var all []domain.Event

	for page := 0; ; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		events, err := r.listPage(ctx, f, page)
		if err != nil {
			return nil, fmt.Errorf("failed to read page %d: %w", page, err)
		}
		all = append(all, events...)

		if len(events) < r.pageSize {
			break
		}
	}

	return all, nil
}

func (r *EventRepository) listPage(ctx context.Context, f ports.EventFilter, page int) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, listEventsSQL,
		f.From.UTC(),
		f.To.UTC(),
		r.pageSize,
		page*r.pageSize,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]domain.Event, 0, r.pageSize)
	for rows.Next() {
		var (
			username  sql.NullString
			createdAt time.Time
			direction string
			tag       sql.NullString
		)

		if err := rows.Scan(&username, &createdAt, &direction, &tag); err != nil {
			return nil, err
		}

		events = append(events, domain.Event{
			UserID:    username.String,
			Timestamp: createdAt.UTC().Format(time.RFC3339Nano),
			Direction: domain.Direction(direction),
			Tag:       tag.String,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
