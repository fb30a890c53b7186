package fiber

import (
	"context"
	"errors"
	"net/http"

	"conversation-funnel-service/internal/conversations/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type StoreMessageUseCase interface {
	Execute(ctx context.Context, in usecase.StoreMessageInput) (bool, error)
	BulkStoreMessages(ctx context.Context, in usecase.BulkStoreMessagesInput) (usecase.BulkStoreMessagesResult, error)
}

type MessageHandler struct {
	storeUC StoreMessageUseCase
}

func NewMessageHandler(storeUC StoreMessageUseCase) *MessageHandler {
	return &MessageHandler{storeUC: storeUC}
}

func (h *MessageHandler) Register(r fiber.Router) {
	r.Post("/conversations", h.StoreMessage)
	r.Post("/conversations/bulk", h.BulkStoreMessages)
}

// StoreMessage godoc
// @Summary Store a conversation message
// @Description Stores a single message with idempotency handling
// @Tags Conversations
// @Accept json
// @Produce json
// @Param request body StoreMessageRequest true "Message payload"
// @Success 201 {object} StoreMessageResponse
// @Success 200 {object} StoreMessageResponse "Duplicate message"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /conversations [post]
func (h *MessageHandler) StoreMessage(c *fiber.Ctx) error {
	var req StoreMessageRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	created, err := h.storeUC.Execute(c.UserContext(), toInput(req))
	if err != nil {
		return writeError(c, err)
	}

	if !created {
		return c.Status(http.StatusOK).JSON(StoreMessageResponse{Status: "duplicate"})
	}

	return c.Status(http.StatusCreated).JSON(StoreMessageResponse{Status: "created"})
}

// BulkStoreMessages godoc
// @Summary Bulk store conversation messages
// @Description Validates the whole list, then stores it in one statement
// @Tags Conversations
// @Accept json
// @Produce json
// @Param request body BulkStoreMessagesRequest true "Bulk message payload"
// @Success 201 {object} BulkStoreMessagesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /conversations/bulk [post]
func (h *MessageHandler) BulkStoreMessages(c *fiber.Ctx) error {
	var req BulkStoreMessagesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	if len(req.Messages) == 0 {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "messages_list_required",
		})
	}

	inputs := make([]usecase.StoreMessageInput, len(req.Messages))
	for i, m := range req.Messages {
		inputs[i] = toInput(m)
	}

	result, err := h.storeUC.BulkStoreMessages(
		c.UserContext(),
		usecase.BulkStoreMessagesInput{Messages: inputs},
	)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(BulkStoreMessagesResponse{
		Created:    result.Created,
		Duplicates: result.Duplicates,
	})
}

func toInput(req StoreMessageRequest) usecase.StoreMessageInput {
	return usecase.StoreMessageInput{
		ExternalID: req.MessageID,
		Username:   req.Username,
		Direction:  req.Direction,
		Tag:        req.Tag,
		Timestamp:  req.Timestamp,
	}
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidMessage),
		errors.Is(err, usecase.ErrUnknownTag),
		errors.Is(err, usecase.ErrFutureTime):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_message",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
