package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"conversation-funnel-service/internal/funnel/core/analytics"
	"conversation-funnel-service/internal/funnel/core/domain"
	"conversation-funnel-service/internal/funnel/core/ports"

	"go.uber.org/zap"
)

var (
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrInvalidCategory  = errors.New("invalid conversion category")
	ErrUnknownTag       = errors.New("unknown message tag")
)

const dateLayout = "2006-01-02"

type GetAggregatesInput struct {
	From string // YYYY-MM-DD inclusive, defaults to DefaultRangeDays before To
	To   string // YYYY-MM-DD inclusive, defaults to today

	GroupBy  string // "day" | "week" | "month", anything else is day
	Category string // "start" | "second" | "final", empty is start

	Tags       []string // tracked tags, empty means the category's conversion tags
	SeriesTags []string
	Locale     string
}

type Options struct {
	Location         *time.Location
	Locale           string
	DefaultRangeDays int
	Now              func() time.Time
}

type GetAggregatesUseCase struct {
	reader ports.EventReaderPort
	log    *zap.Logger
	opts   Options
}

func NewGetAggregatesUseCase(reader ports.EventReaderPort, log *zap.Logger, opts Options) *GetAggregatesUseCase {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.DefaultRangeDays <= 0 {
		opts.DefaultRangeDays = 30
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &GetAggregatesUseCase{reader: reader, log: log, opts: opts}
}

// Execute validates the query, reads the whole date range and computes all
// funnel views over it.
func (uc *GetAggregatesUseCase) Execute(ctx context.Context, in GetAggregatesInput) (*domain.Aggregates, error) {
	filter, err := uc.buildFilter(in)
	if err != nil {
		uc.log.Warn("Rejected funnel query",
			zap.String("from", in.From),
			zap.String("to", in.To),
			zap.Error(err))
		return nil, err
	}

	params, err := uc.buildParams(in)
	if err != nil {
		uc.log.Warn("Rejected funnel query",
			zap.String("category", in.Category),
			zap.Strings("tags", in.Tags),
			zap.Strings("series_tags", in.SeriesTags),
			zap.Error(err))
		return nil, err
	}

	uc.log.Info("Computing funnel aggregates",
		zap.Time("from", filter.From),
		zap.Time("to", filter.To),
		zap.String("group_by", string(params.PeriodMode)),
		zap.String("category", string(params.Conversion.Category)))

	events, err := uc.reader.ListEvents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	uc.log.Debug("Fetched events", zap.Int("count", len(events)))

	agg := analytics.Compute(events, params)
	return &agg, nil
}

func (uc *GetAggregatesUseCase) buildFilter(in GetAggregatesInput) (ports.EventFilter, error) {
	loc := uc.opts.Location

	now := uc.opts.Now().In(loc)
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	if in.To != "" {
		t, err := time.ParseInLocation(dateLayout, in.To, loc)
		if err != nil {
			return ports.EventFilter{}, fmt.Errorf("%w: to=%q", ErrInvalidDate, in.To)
		}
		to = t
	}

	from := to.AddDate(0, 0, -uc.opts.DefaultRangeDays)
	if in.From != "" {
		t, err := time.ParseInLocation(dateLayout, in.From, loc)
		if err != nil {
			return ports.EventFilter{}, fmt.Errorf("%w: from=%q", ErrInvalidDate, in.From)
		}
		from = t
	}

	if from.After(to) {
		return ports.EventFilter{}, fmt.Errorf("%w: from %s is after to %s", ErrInvalidDateRange, in.From, in.To)
	}

	return ports.EventFilter{
		From: from,
		To:   to.AddDate(0, 0, 1).Add(-time.Millisecond),
	}, nil
}

func (uc *GetAggregatesUseCase) buildParams(in GetAggregatesInput) (analytics.Params, error) {
	cat := domain.CategoryStart
	if in.Category != "" {
		c, ok := domain.ParseCategory(in.Category)
		if !ok {
			return analytics.Params{}, fmt.Errorf("%w: %q", ErrInvalidCategory, in.Category)
		}
		cat = c
	}

	for _, tags := range [][]string{in.Tags, in.SeriesTags} {
		for _, tag := range tags {
			if !domain.IsKnownTag(tag) {
				return analytics.Params{}, fmt.Errorf("%w: %q", ErrUnknownTag, tag)
			}
		}
	}

	locale := in.Locale
	if locale == "" {
		locale = uc.opts.Locale
	}

	return analytics.Params{
		PeriodMode: domain.ParsePeriodMode(in.GroupBy),
		Location:   uc.opts.Location,
		Locale:     domain.MatchLocale(locale),
		Conversion: analytics.ConversionParams{
			Category: cat,
			Tracked:  in.Tags,
			Series:   in.SeriesTags,
		},
	}, nil
}
