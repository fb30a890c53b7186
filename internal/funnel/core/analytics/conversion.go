package analytics

import (
	"slices"

	"conversation-funnel-service/internal/funnel/core/domain"
)

// DefaultSeriesTags is how many tracked tags get a time series when the
// caller does not pick them.
const DefaultSeriesTags = 2

type ConversionParams struct {
	// Category defaults to start. Its conversion tags are tracked unless
	// Tracked is set.
	Category domain.Category
	Tracked  []string
	// Series defaults to the first DefaultSeriesTags tracked tags.
	Series []string
}

type tally struct {
	sent      int
	converted int
}

// Conversion counts, for every tracked tag, outbound sends and how many of
// them were immediately followed by an inbound message on the same user's
// timeline. Adjacency is by position only; elapsed time does not matter and
// the last message of a timeline never converts.
func Conversion(seqs Sequences, p ConversionParams, k PeriodKeyer) domain.ConversionReport {
	cat, tracked, series := p.resolve()

	isTracked := make(map[string]bool, len(tracked))
	byTag := make(map[string]*tally, len(tracked))
	byPeriod := make(map[string]map[string]*tally, len(tracked))
	for _, tag := range tracked {
		isTracked[tag] = true
		byTag[tag] = &tally{}
		byPeriod[tag] = make(map[string]*tally)
	}

	for _, user := range seqs.Users() {
		seq := seqs[user]
		for i, e := range seq {
			if !e.IsOutbound() || !isTracked[e.Tag] {
				continue
			}

			period := k.Key(e.At)
			cell, ok := byPeriod[e.Tag][period]
			if !ok {
				cell = &tally{}
				byPeriod[e.Tag][period] = cell
			}

			cell.sent++
			byTag[e.Tag].sent++

			if i+1 < len(seq) && seq[i+1].IsInbound() {
				cell.converted++
				byTag[e.Tag].converted++
			}
		}
	}

	report := domain.ConversionReport{
		Category:   cat,
		Tags:       tracked,
		SeriesTags: series,
		ByTag:      make(map[string]domain.TagConversion, len(tracked)),
		Series:     []domain.ConversionRow{},
	}

	var total tally
	for _, tag := range tracked {
		t := byTag[tag]
		report.ByTag[tag] = domain.TagConversion{
			Sent:      t.sent,
			Converted: t.converted,
			Rate:      AggregateRate(t.converted, t.sent),
		}
		total.sent += t.sent
		total.converted += t.converted
	}
	report.CategoryTotal = domain.TagConversion{
		Sent:      total.sent,
		Converted: total.converted,
		Rate:      AggregateRate(total.converted, total.sent),
	}

	var periods []string
	for _, tag := range series {
		for period := range byPeriod[tag] {
			if !slices.Contains(periods, period) {
				periods = append(periods, period)
			}
		}
	}
	slices.Sort(periods)

	for _, period := range periods {
		row := domain.ConversionRow{
			Period: period,
			Label:  k.Label(period),
			Tags:   series,
			Rates:  make(map[string]*int, len(series)),
		}
		for _, tag := range series {
			row.Rates[tag] = nil
			if cell := byPeriod[tag][period]; cell != nil {
				row.Rates[tag] = PeriodPercent(cell.converted, cell.sent)
			}
		}
		report.Series = append(report.Series, row)
	}

	return report
}

func (p ConversionParams) resolve() (domain.Category, []string, []string) {
	cat, ok := domain.ParseCategory(string(p.Category))
	if !ok {
		cat = domain.CategoryStart
	}

	tracked := unique(p.Tracked)
	if len(tracked) == 0 {
		tracked = domain.ConversionTags(cat)
	}

	series := unique(p.Series)
	if len(series) == 0 {
		series = slices.Clone(tracked[:min(DefaultSeriesTags, len(tracked))])
	}

	return cat, tracked, series
}

func unique(tags []string) []string {
	var out []string
	for _, t := range tags {
		if t != "" && !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	return out
}

// AggregateRate is converted/sent as a percentage with one decimal, nil when
// sent is zero.
func AggregateRate(converted, sent int) *float64 {
	if sent <= 0 {
		return nil
	}
	r := roundHalfUp(float64(converted)/float64(sent)*1000) / 10
	return &r
}

// PeriodPercent is converted/sent as a whole percentage, nil when sent is zero.
func PeriodPercent(converted, sent int) *int {
	if sent <= 0 {
		return nil
	}
	p := int(roundHalfUp(float64(converted) / float64(sent) * 100))
	return &p
}
