package ports

import (
	"context"
	"time"

	"conversation-funnel-service/internal/funnel/core/domain"
)

type EventFilter struct {
	From time.Time // inclusive
	To   time.Time // inclusive
}

type EventReaderPort interface {
	// ListEvents returns every event in the range, ordered by creation time.
	// Implementations must page through the whole range: the analytics
	// assume nothing in the window is missing.
	ListEvents(ctx context.Context, f EventFilter) ([]domain.Event, error)
}
