package analytics

import (
	"time"

	"conversation-funnel-service/internal/funnel/core/domain"

	"golang.org/x/text/language"
)

type Params struct {
	PeriodMode domain.PeriodMode
	// Location is the zone periods are cut in. Nil means UTC.
	Location *time.Location
	Locale   language.Tag

	Conversion ConversionParams
	// Latency falls back to DefaultLatencyParams when it has no transitions.
	Latency LatencyParams
}

// Compute derives every view from one snapshot of events. The three views
// are independent of each other and share only the per-user sequencing.
func Compute(events []domain.Event, p Params) domain.Aggregates {
	k := NewPeriodKeyer(p.PeriodMode, p.Location, p.Locale)

	lp := p.Latency
	if len(lp.Transitions) == 0 {
		lp = DefaultLatencyParams()
	}

	seqs := Sequence(events, k.Location())

	return domain.Aggregates{
		TotalRecords: len(events),
		PeriodMode:   k.Mode(),
		Deliveries:   Deliveries(events, k),
		Latency:      Latency(seqs, lp),
		Conversion:   Conversion(seqs, p.Conversion, k),
	}
}
