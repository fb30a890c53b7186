package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is one stored Instagram conversation message.
type Message struct {
	ID uuid.UUID
	// ExternalID is the platform message id, empty when the sender has none.
	ExternalID string
	Username   string
	Direction  string
	Tag        string
	CreatedAt  time.Time
	DedupeKey  string
}
