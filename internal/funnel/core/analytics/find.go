package analytics

import "conversation-funnel-service/internal/funnel/core/domain"

type Predicate func(Entry) bool

// FindFirst returns the index of the first entry at or after from that
// satisfies pred, or -1.
func FindFirst(seq []Entry, from int, pred Predicate) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(seq); i++ {
		if pred(seq[i]) {
			return i
		}
	}
	return -1
}

// InCategory matches entries whose tag belongs to one of cats.
func InCategory(cats ...domain.Category) Predicate {
	return func(e Entry) bool {
		c := domain.CategoryOf(e.Tag)
		if c == domain.CategoryNone {
			return false
		}
		for _, want := range cats {
			if c == want {
				return true
			}
		}
		return false
	}
}

func IsInbound(e Entry) bool { return e.IsInbound() }

func AnyOf(preds ...Predicate) Predicate {
	return func(e Entry) bool {
		for _, p := range preds {
			if p(e) {
				return true
			}
		}
		return false
	}
}
