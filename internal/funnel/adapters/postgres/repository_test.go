package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"conversation-funnel-service/internal/funnel/core/domain"
	"conversation-funnel-service/internal/funnel/core/ports"
)

// fakeRowScanner implements RowScanner for tests.
type fakeRowScanner struct {
	rows   []fakeRow
	i      int
	err    error
	closed bool
}

type fakeRow struct {
	values []any
}

func (f *fakeRowScanner) Next() bool {
	return f.i < len(f.rows)
}

func (f *fakeRowScanner) Scan(dest ...any) error {
	if f.i >= len(f.rows) {
		return errors.New("no more rows")
	}
	row := f.rows[f.i]
	if len(dest) != len(row.values) {
		return errors.New("dest length mismatch")
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *sql.NullString:
			if err := d.Scan(row.values[i]); err != nil {
				return err
			}
		case *string:
			v, ok := row.values[i].(string)
			if !ok {
				return errors.New("type assertion to string failed")
			}
			*d = v
		case *time.Time:
			v, ok := row.values[i].(time.Time)
			if !ok {
				return errors.New("type assertion to time.Time failed")
			}
			*d = v
		default:
			return errors.New("unsupported dest type")
		}
	}
	f.i++
	return nil
}

func (f *fakeRowScanner) Err() error {
	return f.err
}

func (f *fakeRowScanner) Close() error {
	f.closed = true
	return nil
}

// fakeDB implements DB interface.
type fakeDB struct {
	QueryFn  func(ctx context.Context, query string, args ...any) (RowScanner, error)
	queries  int
	lastArgs []any
	allArgs  [][]any
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	f.queries++
	f.lastArgs = args
	f.allArgs = append(f.allArgs, args)
	if f.QueryFn != nil {
		return f.QueryFn(ctx, query, args...)
	}
	return &fakeRowScanner{}, nil
}

var base = time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)

func messageRow(user any, offset time.Duration, direction string, tag any) fakeRow {
	return fakeRow{values: []any{user, base.Add(offset), direction, tag}}
}

func filter() ports.EventFilter {
	return ports.EventFilter{
		From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 1, 31, 23, 59, 59, 999e6, time.UTC),
	}
}

// ------------------------------------------------------------
// SINGLE PAGE
// ------------------------------------------------------------

func TestEventRepository_ListEvents_SinglePage(t *testing.T) {
	scanner := &fakeRowScanner{
		rows: []fakeRow{
			messageRow("ana", 0, "outbound", "startMessage_A"),
			messageRow("ana", time.Minute, "inbound", nil),
			messageRow(nil, 2*time.Minute, "outbound", "startMessage_B"),
		},
	}
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			if !strings.Contains(query, "FROM ig_conversations") {
				t.Fatalf("unexpected query: %s", query)
			}
			if !strings.Contains(query, "ORDER BY created_at ASC, id ASC") {
				t.Fatalf("expected stable ordering, got: %s", query)
			}
			return scanner, nil
		},
	}

	repo := NewEventRepository(db, 10)

	events, err := repo.ListEvents(context.Background(), filter())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if db.queries != 1 {
		t.Fatalf("expected 1 query for a short page, got %d", db.queries)
	}
	if !scanner.closed {
		t.Fatalf("expected rows to be closed")
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	want := domain.Event{UserID: "ana", Timestamp: "2025-01-06T09:00:00Z", Direction: domain.DirectionOutbound, Tag: "startMessage_A"}
	if events[0] != want {
		t.Fatalf("unexpected first event: %+v", events[0])
	}
	if events[1].Tag != "" || events[1].Direction != domain.DirectionInbound {
		t.Fatalf("unexpected reply: %+v", events[1])
	}
	if events[2].UserID != "" {
		t.Fatalf("expected null username to map to empty, got %q", events[2].UserID)
	}

	args := db.lastArgs
	if len(args) != 4 || args[2] != 10 || args[3] != 0 {
		t.Fatalf("unexpected args: %v", args)
	}
}

// ------------------------------------------------------------
// PAGINATION
// ------------------------------------------------------------

func TestEventRepository_ListEvents_PagesUntilShortPage(t *testing.T) {
	pages := [][]fakeRow{
		{messageRow("a", 0, "outbound", "startMessage_A"), messageRow("a", time.Minute, "inbound", nil)},
		{messageRow("b", 2*time.Minute, "outbound", "startMessage_B"), messageRow("b", 3*time.Minute, "inbound", nil)},
		{messageRow("c", 4*time.Minute, "outbound", "finalMessage_A")},
	}
	db := &fakeDB{}
	db.QueryFn = func(ctx context.Context, query string, args ...any) (RowScanner, error) {
		return &fakeRowScanner{rows: pages[db.queries-1]}, nil
	}

	repo := NewEventRepository(db, 2)

	events, err := repo.ListEvents(context.Background(), filter())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if db.queries != 3 {
		t.Fatalf("expected 3 queries, got %d", db.queries)
	}
	if len(events) != 5 {
		t.Fatalf("expected 5 events, got %d", len(events))
	}
	for i, args := range db.allArgs {
		if args[3] != i*2 {
			t.Fatalf("page %d: expected offset %d, got %v", i, i*2, args[3])
		}
	}
	if events[4].Tag != "finalMessage_A" {
		t.Fatalf("unexpected last event: %+v", events[4])
	}
}

func TestEventRepository_ListEvents_FullLastPageTriggersEmptyFetch(t *testing.T) {
	db := &fakeDB{}
	db.QueryFn = func(ctx context.Context, query string, args ...any) (RowScanner, error) {
		if db.queries == 1 {
			return &fakeRowScanner{rows: []fakeRow{messageRow("a", 0, "inbound", nil)}}, nil
		}
		return &fakeRowScanner{}, nil
	}

	events, err := NewEventRepository(db, 1).ListEvents(context.Background(), filter())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if db.queries != 2 || len(events) != 1 {
		t.Fatalf("expected 2 queries and 1 event, got %d queries and %d events", db.queries, len(events))
	}
}

func TestEventRepository_DefaultPageSize(t *testing.T) {
	repo := NewEventRepository(&fakeDB{}, 0)
	if repo.pageSize != DefaultPageSize {
		t.Fatalf("expected default page size %d, got %d", DefaultPageSize, repo.pageSize)
	}
}

// ------------------------------------------------------------
// ERRORS
// ------------------------------------------------------------

func TestEventRepository_ListEvents_QueryError(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return nil, errors.New("db failure")
		},
	}

	_, err := NewEventRepository(db, 10).ListEvents(context.Background(), filter())
	if err == nil || !strings.Contains(err.Error(), "db failure") {
		t.Fatalf("expected db failure, got %v", err)
	}
}

func TestEventRepository_ListEvents_RowsError(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{err: errors.New("connection reset")}, nil
		},
	}

	_, err := NewEventRepository(db, 10).ListEvents(context.Background(), filter())
	if err == nil || !strings.Contains(err.Error(), "connection reset") {
		t.Fatalf("expected rows error, got %v", err)
	}
}

func TestEventRepository_ListEvents_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	db := &fakeDB{}
	_, err := NewEventRepository(db, 10).ListEvents(ctx, filter())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if db.queries != 0 {
		t.Fatalf("expected no queries after cancellation")
	}
}
