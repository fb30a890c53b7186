package analytics_test

import (
	"time"

	"conversation-funnel-service/internal/funnel/core/domain"
)

var t0 = time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC) // a Monday

func at(d time.Duration) string {
	return t0.Add(d).Format(time.RFC3339Nano)
}

func out(user string, d time.Duration, tag string) domain.Event {
	return domain.Event{UserID: user, Timestamp: at(d), Direction: domain.DirectionOutbound, Tag: tag}
}

func in(user string, d time.Duration) domain.Event {
	return domain.Event{UserID: user, Timestamp: at(d), Direction: domain.DirectionInbound}
}

const (
	day  = 24 * time.Hour
	mins = time.Minute
)
