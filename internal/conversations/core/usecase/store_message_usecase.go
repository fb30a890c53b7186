package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"conversation-funnel-service/internal/conversations/core/domain"
	"conversation-funnel-service/internal/conversations/core/ports"
	funnel "conversation-funnel-service/internal/funnel/core/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidMessage = errors.New("invalid message")
	ErrUnknownTag     = errors.New("unknown message tag")
	ErrFutureTime     = errors.New("timestamp cannot be in the future")
)

type StoreMessageUseCase struct {
	repo ports.MessageRepositoryPort
	log  *zap.Logger
	now  func() time.Time
}

func NewStoreMessageUseCase(repo ports.MessageRepositoryPort, log *zap.Logger) *StoreMessageUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &StoreMessageUseCase{repo: repo, log: log, now: time.Now}
}

type StoreMessageInput struct {
	// ExternalID is the platform message id. When set it alone identifies
	// the message, so replies sharing user, direction and second stay apart.
	ExternalID string
	Username   string
	Direction  string
	Tag        string
	Timestamp  int64
}

func (uc *StoreMessageUseCase) Execute(ctx context.Context, in StoreMessageInput) (bool, error) {
	if err := uc.validateInput(in); err != nil {
		uc.log.Warn("Rejected message",
			zap.String("username", in.Username),
			zap.String("direction", in.Direction),
			zap.String("tag", in.Tag),
			zap.Error(err))
		return false, err
	}

	created, err := uc.repo.InsertMessage(ctx, newMessage(in))
	if err != nil {
		return false, err
	}

	return created, nil
}

// newMessage derives the dedupe key and a message id stable across retries.
func newMessage(in StoreMessageInput) *domain.Message {
	createdAt := time.Unix(in.Timestamp, 0).UTC()
	key := buildDedupeKey(in, createdAt)

	return &domain.Message{
		ID:         uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)),
		ExternalID: in.ExternalID,
		Username:   in.Username,
		Direction:  in.Direction,
		Tag:        in.Tag,
		CreatedAt:  createdAt,
		DedupeKey:  key,
	}
}

func buildDedupeKey(in StoreMessageInput, t time.Time) string {
	if in.ExternalID != "" {
		return "ig|" + in.ExternalID
	}

	// username + direction + tag + unix_timestamp
	return fmt.Sprintf("%s|%s|%s|%d",
		in.Username,
		in.Direction,
		in.Tag,
		t.Unix(),
	)
}

type BulkStoreMessagesInput struct {
	Messages []StoreMessageInput
}

type BulkStoreMessagesResult struct {
	Created    int
	Duplicates int
}

// BulkStoreMessages validates the whole batch before writing any of it.
func (uc *StoreMessageUseCase) BulkStoreMessages(ctx context.Context, in BulkStoreMessagesInput) (BulkStoreMessagesResult, error) {
	var res BulkStoreMessagesResult

	for i, m := range in.Messages {
		if err := uc.validateInput(m); err != nil {
			uc.log.Warn("Rejected message batch", zap.Int("index", i), zap.Error(err))
			return res, fmt.Errorf("message %d: %w", i, err)
		}
	}

	if len(in.Messages) == 0 {
		return res, nil
	}

	batch := make([]*domain.Message, len(in.Messages))
	for i, m := range in.Messages {
		batch[i] = newMessage(m)
	}

	created, err := uc.repo.InsertMessages(ctx, batch)
	if err != nil {
		return res, err
	}

	res.Created = created
	res.Duplicates = len(batch) - created

	uc.log.Info("Stored message batch",
		zap.Int("created", res.Created),
		zap.Int("duplicates", res.Duplicates))

	return res, nil
}

func (uc *StoreMessageUseCase) validateInput(in StoreMessageInput) error {
	if !funnel.Direction(in.Direction).Known() || in.Timestamp <= 0 {
		return ErrInvalidMessage
	}

	if in.Tag != "" && !funnel.IsKnownTag(in.Tag) {
		return fmt.Errorf("%w: %q", ErrUnknownTag, in.Tag)
	}

	if in.Timestamp > uc.now().Unix() {
		return ErrFutureTime
	}

	return nil
}
