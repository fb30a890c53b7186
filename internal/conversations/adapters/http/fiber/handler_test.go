package fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"conversation-funnel-service/internal/conversations/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type fakeStoreMessageUseCase struct {
	ExecuteFunc      func(ctx context.Context, in usecase.StoreMessageInput) (bool, error)
	BulkStoreFunc    func(ctx context.Context, in usecase.BulkStoreMessagesInput) (usecase.BulkStoreMessagesResult, error)
	LastExecuteInput usecase.StoreMessageInput
	LastBulkInput    usecase.BulkStoreMessagesInput
	BulkStoreCalled  bool
}

func (f *fakeStoreMessageUseCase) Execute(ctx context.Context, in usecase.StoreMessageInput) (bool, error) {
	f.LastExecuteInput = in
	if f.ExecuteFunc != nil {
		return f.ExecuteFunc(ctx, in)
	}
	return false, nil
}

func (f *fakeStoreMessageUseCase) BulkStoreMessages(ctx context.Context, in usecase.BulkStoreMessagesInput) (usecase.BulkStoreMessagesResult, error) {
	f.BulkStoreCalled = true
	f.LastBulkInput = in
	if f.BulkStoreFunc != nil {
		return f.BulkStoreFunc(ctx, in)
	}
	return usecase.BulkStoreMessagesResult{}, nil
}

// helper: create fiber app and routes
func setupTestApp(uc StoreMessageUseCase) *fiber.App {
	app := fiber.New()
	NewMessageHandler(uc).Register(app)
	return app
}

// helper: send request
func doRequest(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var buf io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		buf = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		buf = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	_ = resp.Body.Close()

	return resp, respBody
}

func decode(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	return out
}

func TestStoreMessage_Created(t *testing.T) {
	now := time.Now().Add(-time.Minute).Unix()

	fakeUC := &fakeStoreMessageUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.StoreMessageInput) (bool, error) {
			return true, nil
		},
	}

	app := setupTestApp(fakeUC)

	reqBody := StoreMessageRequest{
		MessageID: "mid.42",
		Username:  "ana.garcia",
		Direction: "outbound",
		Tag:       "startMessage_A",
		Timestamp: now,
	}

	resp, body := doRequest(t, app, http.MethodPost, "/conversations", reqBody)

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusCreated, resp.StatusCode, string(body))
	}
	if got := decode(t, body)["status"]; got != "created" {
		t.Errorf("expected status=created, got %v", got)
	}

	in := fakeUC.LastExecuteInput
	if in.ExternalID != "mid.42" || in.Username != "ana.garcia" || in.Direction != "outbound" || in.Tag != "startMessage_A" || in.Timestamp != now {
		t.Errorf("unexpected usecase input: %+v", in)
	}
}

func TestStoreMessage_Duplicate(t *testing.T) {
	fakeUC := &fakeStoreMessageUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.StoreMessageInput) (bool, error) {
			return false, nil
		},
	}

	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, http.MethodPost, "/conversations", StoreMessageRequest{Direction: "inbound", Timestamp: 1})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	if got := decode(t, body)["status"]; got != "duplicate" {
		t.Errorf("expected status=duplicate, got %v", got)
	}
}

func TestStoreMessage_InvalidJSON(t *testing.T) {
	app := setupTestApp(&fakeStoreMessageUseCase{})

	resp, body := doRequest(t, app, http.MethodPost, "/conversations", "{not json")

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
	if got := decode(t, body)["error"]; got != "invalid_json" {
		t.Errorf("expected error=invalid_json, got %v", got)
	}
}

func TestStoreMessage_ValidationErrors(t *testing.T) {
	for _, sentinel := range []error{usecase.ErrInvalidMessage, usecase.ErrUnknownTag, usecase.ErrFutureTime} {
		t.Run(sentinel.Error(), func(t *testing.T) {
			fakeUC := &fakeStoreMessageUseCase{
				ExecuteFunc: func(ctx context.Context, in usecase.StoreMessageInput) (bool, error) {
					return false, fmt.Errorf("%w: detail", sentinel)
				},
			}

			app := setupTestApp(fakeUC)

			resp, body := doRequest(t, app, http.MethodPost, "/conversations", StoreMessageRequest{})

			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
			}
			if got := decode(t, body)["error"]; got != "invalid_message" {
				t.Errorf("expected error=invalid_message, got %v", got)
			}
		})
	}
}

func TestStoreMessage_InternalError(t *testing.T) {
	fakeUC := &fakeStoreMessageUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.StoreMessageInput) (bool, error) {
			return false, errors.New("db down")
		},
	}

	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, http.MethodPost, "/conversations", StoreMessageRequest{})

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, resp.StatusCode)
	}
	if got := decode(t, body)["error"]; got != "internal_server_error" {
		t.Errorf("expected error=internal_server_error, got %v", got)
	}
}

func TestBulkStoreMessages_Success(t *testing.T) {
	fakeUC := &fakeStoreMessageUseCase{
		BulkStoreFunc: func(ctx context.Context, in usecase.BulkStoreMessagesInput) (usecase.BulkStoreMessagesResult, error) {
			return usecase.BulkStoreMessagesResult{Created: 1, Duplicates: 1}, nil
		},
	}

	app := setupTestApp(fakeUC)

	reqBody := BulkStoreMessagesRequest{
		Messages: []StoreMessageRequest{
			{Username: "ana", Direction: "outbound", Tag: "startMessage_A", Timestamp: 100},
			{Username: "ana", Direction: "inbound", Timestamp: 160},
		},
	}

	resp, body := doRequest(t, app, http.MethodPost, "/conversations/bulk", reqBody)

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusCreated, resp.StatusCode, string(body))
	}

	respJSON := decode(t, body)
	if respJSON["created"] != float64(1) || respJSON["duplicates"] != float64(1) {
		t.Errorf("unexpected response: %v", respJSON)
	}

	msgs := fakeUC.LastBulkInput.Messages
	if len(msgs) != 2 || msgs[1].Direction != "inbound" || msgs[1].Timestamp != 160 {
		t.Errorf("unexpected usecase input: %+v", msgs)
	}
}

func TestBulkStoreMessages_EmptyList(t *testing.T) {
	fakeUC := &fakeStoreMessageUseCase{}
	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, http.MethodPost, "/conversations/bulk", BulkStoreMessagesRequest{})

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
	if got := decode(t, body)["error"]; got != "messages_list_required" {
		t.Errorf("expected error=messages_list_required, got %v", got)
	}
	if fakeUC.BulkStoreCalled {
		t.Errorf("usecase should not be called for an empty list")
	}
}

func TestBulkStoreMessages_ValidationError(t *testing.T) {
	fakeUC := &fakeStoreMessageUseCase{
		BulkStoreFunc: func(ctx context.Context, in usecase.BulkStoreMessagesInput) (usecase.BulkStoreMessagesResult, error) {
			return usecase.BulkStoreMessagesResult{}, fmt.Errorf("message 1: %w", usecase.ErrUnknownTag)
		},
	}

	app := setupTestApp(fakeUC)

	reqBody := BulkStoreMessagesRequest{
		Messages: []StoreMessageRequest{{Direction: "outbound", Tag: "nope", Timestamp: 1}},
	}

	resp, _ := doRequest(t, app, http.MethodPost, "/conversations/bulk", reqBody)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}
