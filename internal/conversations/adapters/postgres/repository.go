package postgres

import (
	"context"
	"fmt"

	"conversation-funnel-service/internal/conversations/core/domain"
	"conversation-funnel-service/internal/conversations/core/ports"

	"github.com/lib/pq"
)

type MessageRepository struct {
	db DB
}

func NewMessageRepository(db DB) *MessageRepository {
	return &MessageRepository{db: db}
}

var _ ports.MessageRepositoryPort = (*MessageRepository)(nil)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS ig_conversations (
    id            BIGSERIAL PRIMARY KEY,
    message_id    UUID NOT NULL,
    ig_message_id TEXT,
    ig_username   TEXT,
    created_at    TIMESTAMPTZ NOT NULL,
    direction     TEXT NOT NULL CHECK (direction IN ('inbound', 'outbound')),
    message_tag   TEXT,
    dedupe_key    TEXT NOT NULL UNIQUE
);
ALTER TABLE ig_conversations ADD COLUMN IF NOT EXISTS ig_message_id TEXT;
CREATE INDEX IF NOT EXISTS ig_conversations_created_at_idx
    ON ig_conversations (created_at, id);
`

const insertMessageSQL = `
INSERT INTO ig_conversations (
    message_id,
    ig_message_id,
    ig_username,
    created_at,
    direction,
    message_tag,
    dedupe_key
) VALUES (
    $1, NULLIF($2, ''), NULLIF($3, ''),
    $4, $5, NULLIF($6, ''), $7
)
ON CONFLICT (dedupe_key) DO NOTHING;
`

// one row per array index; created_at travels as unix seconds
const insertMessagesSQL = `
INSERT INTO ig_conversations (
    message_id,
    ig_message_id,
    ig_username,
    created_at,
    direction,
    message_tag,
    dedupe_key
)
SELECT
    u.message_id::uuid,
    NULLIF(u.external_id, ''),
    NULLIF(u.username, ''),
    to_timestamp(u.created_at),
    u.direction,
    NULLIF(u.tag, ''),
    u.dedupe_key
FROM unnest($1::text[], $2::text[], $3::text[], $4::bigint[], $5::text[], $6::text[], $7::text[])
    AS u(message_id, external_id, username, created_at, direction, tag, dedupe_key)
ON CONFLICT (dedupe_key) DO NOTHING;
`

// EnsureSchema creates the conversation table when it does not exist yet.
func (r *MessageRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create ig_conversations table: %w", err)
	}
	return nil
}

func (r *MessageRepository) InsertMessage(ctx context.Context, m *domain.Message) (bool, error) {
	res, err := r.db.ExecContext(ctx, insertMessageSQL,
		m.ID.String(),
		m.ExternalID,
		m.Username,
		m.CreatedAt,
		m.Direction,
		m.Tag,
		m.DedupeKey,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert message: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 1  -> new record
	// rows == 0  -> duplicate (ON CONFLICT DO NOTHING)
	return rows > 0, nil
}

func (r *MessageRepository) InsertMessages(ctx context.Context, ms []*domain.Message) (int, error) {
	if len(ms) == 0 {
		return 0, nil
	}

	var (
		ids        = make([]string, len(ms))
		externals  = make([]string, len(ms))
		usernames  = make([]string, len(ms))
		createdAt  = make([]int64, len(ms))
		directions = make([]string, len(ms))
		tags       = make([]string, len(ms))
		keys       = make([]string, len(ms))
	)
	for i, m := range ms {
		ids[i] = m.ID.String()
		externals[i] = m.ExternalID
		usernames[i] = m.Username
		createdAt[i] = m.CreatedAt.Unix()
		directions[i] = m.Direction
		tags[i] = m.Tag
		keys[i] = m.DedupeKey
	}

	res, err := r.db.ExecContext(ctx, insertMessagesSQL,
		pq.Array(ids),
		pq.Array(externals),
		pq.Array(usernames),
		pq.Array(createdAt),
		pq.Array(directions),
		pq.Array(tags),
		pq.Array(keys),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert %d messages: %w", len(ms), err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(rows), nil
}
