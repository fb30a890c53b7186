package analytics

import (
	"time"

	"conversation-funnel-service/internal/funnel/core/domain"

	"golang.org/x/text/language"
)

// PeriodKeyer buckets instants for one computation pass.
type PeriodKeyer struct {
	mode   domain.PeriodMode
	loc    *time.Location
	locale language.Tag
}

// NewPeriodKeyer normalises mode (unknown -> day) and loc (nil -> UTC).
func NewPeriodKeyer(mode domain.PeriodMode, loc *time.Location, locale language.Tag) PeriodKeyer {
	if loc == nil {
		loc = time.UTC
	}
	return PeriodKeyer{
		mode:   domain.ParsePeriodMode(string(mode)),
		loc:    loc,
		locale: domain.MatchLocale(locale.String()),
	}
}

func (k PeriodKeyer) Mode() domain.PeriodMode   { return k.mode }
func (k PeriodKeyer) Location() *time.Location { return k.loc }

func (k PeriodKeyer) Key(t time.Time) string {
	return domain.BucketKey(t.In(k.loc), k.mode)
}

// KeyOf parses ts and keys it. ok is false for malformed timestamps.
func (k PeriodKeyer) KeyOf(ts string) (key string, ok bool) {
	t, err := domain.ParseTimestamp(ts, k.loc)
	if err != nil {
		return "", false
	}
	return k.Key(t), true
}

func (k PeriodKeyer) Label(key string) string {
	return domain.Label(key, k.mode, k.locale)
}
