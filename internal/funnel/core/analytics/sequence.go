package analytics

import (
	"slices"
	"time"

	"conversation-funnel-service/internal/funnel/core/domain"
)

// Entry is an event placed on its user's timeline.
type Entry struct {
	domain.Event
	At    time.Time
	Index int // position in the input
}

// Sequences maps a user to their events in chronological order.
type Sequences map[string][]Entry

// Sequence partitions events by user and orders each partition by time,
// keeping input order between equal instants. Events without a user or with
// a timestamp that does not parse cannot be placed and are left out.
func Sequence(events []domain.Event, loc *time.Location) Sequences {
	seqs := make(Sequences)
	for i, e := range events {
		if e.UserID == "" {
			continue
		}
		at, err := domain.ParseTimestamp(e.Timestamp, loc)
		if err != nil {
			continue
		}
		seqs[e.UserID] = append(seqs[e.UserID], Entry{Event: e, At: at, Index: i})
	}

	for _, seq := range seqs {
		slices.SortStableFunc(seq, func(a, b Entry) int {
			return a.At.Compare(b.At)
		})
	}
	return seqs
}

// Users returns the user ids in lexical order.
func (s Sequences) Users() []string {
	users := make([]string, 0, len(s))
	for u := range s {
		users = append(users, u)
	}
	slices.Sort(users)
	return users
}
