package ports

import (
	"context"

	"conversation-funnel-service/internal/conversations/core/domain"
)

type MessageRepositoryPort interface {
	// InsertMessage:
	//   created = true,  err = nil  -> new record
	//   created = false, err = nil  -> duplicate (idempotent)
	//   created = false, err != nil -> DB error
	InsertMessage(ctx context.Context, m *domain.Message) (created bool, err error)

	// InsertMessages stores the batch in one statement and reports how many
	// rows were new. Duplicates are skipped silently.
	InsertMessages(ctx context.Context, ms []*domain.Message) (created int, err error)
}
