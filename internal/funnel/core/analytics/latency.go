package analytics

import (
	"fmt"
	"math"
	"slices"
	"time"

	"conversation-funnel-service/internal/funnel/core/domain"
)

// MaxLatencyMinutes bounds retained samples: only 0 < elapsed < MaxLatencyMinutes count.
const MaxLatencyMinutes = 2880

const (
	StartResponse  = "start_response"
	SecondToFinal  = "second_to_final"
	FinalToClosing = "final_to_closing"
	OtherResponses = "other"
)

// Transition measures, per user, the time from the first Origin entry to
// the first Target entry after it.
type Transition struct {
	Name   string
	Origin Predicate
	Target Predicate
}

// Pool reports the union of the samples of several transitions under one name.
type Pool struct {
	Name    string
	Members []string
}

type LatencyParams struct {
	Transitions []Transition
	Pools       []Pool
}

// DefaultLatencyParams measures the first answer to a start message (a reply,
// or the funnel moving on to a second or final message), second to final and
// final to closing, and pools the last two as "other".
func DefaultLatencyParams() LatencyParams {
	return LatencyParams{
		Transitions: []Transition{
			{
				Name:   StartResponse,
				Origin: InCategory(domain.CategoryStart),
				Target: AnyOf(IsInbound, InCategory(domain.CategorySecond, domain.CategoryFinal)),
			},
			{
				Name:   SecondToFinal,
				Origin: InCategory(domain.CategorySecond),
				Target: InCategory(domain.CategoryFinal),
			},
			{
				Name:   FinalToClosing,
				Origin: InCategory(domain.CategoryFinal),
				Target: InCategory(domain.CategoryClosing),
			},
		},
		Pools: []Pool{
			{Name: OtherResponses, Members: []string{SecondToFinal, FinalToClosing}},
		},
	}
}

// Samples collects at most one elapsed-minutes sample per user for t. Only
// the user's first origin is considered and the scan stops at the first
// target after it, whether or not the sample is then kept.
func Samples(seqs Sequences, t Transition) []int {
	var out []int
	for _, user := range seqs.Users() {
		seq := seqs[user]

		o := FindFirst(seq, 0, t.Origin)
		if o < 0 {
			continue
		}
		tgt := FindFirst(seq, o+1, t.Target)
		if tgt < 0 {
			continue
		}

		mins := elapsedMinutes(seq[o].At, seq[tgt].At)
		if mins > 0 && mins < MaxLatencyMinutes {
			out = append(out, mins)
		}
	}
	return out
}

// whole minutes, truncated toward zero
func elapsedMinutes(from, to time.Time) int {
	return int(to.Sub(from) / time.Minute)
}

// Latency runs every transition and pool of p. Names without samples map to nil.
func Latency(seqs Sequences, p LatencyParams) domain.LatencyReport {
	report := make(domain.LatencyReport, len(p.Transitions)+len(p.Pools))
	samples := make(map[string][]int, len(p.Transitions))

	for _, t := range p.Transitions {
		s := Samples(seqs, t)
		samples[t.Name] = s
		report[t.Name] = Summarize(s)
	}

	for _, pool := range p.Pools {
		var all []int
		for _, m := range pool.Members {
			all = append(all, samples[m]...)
		}
		report[pool.Name] = Summarize(all)
	}

	return report
}

// Summarize reduces samples to count, rounded mean and median. The median is
// the element at n/2 of the sorted samples, the upper one for even n.
func Summarize(samples []int) *domain.LatencyStats {
	n := len(samples)
	if n == 0 {
		return nil
	}

	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	sum := 0
	for _, s := range sorted {
		sum += s
	}
	mean := float64(sum) / float64(n)
	median := sorted[n/2]

	return &domain.LatencyStats{
		SampleCount:     n,
		MeanMinutes:     int(roundHalfUp(mean)),
		MedianMinutes:   median,
		MeanFormatted:   FormatMinutes(mean),
		MedianFormatted: FormatMinutes(float64(median)),
	}
}

// FormatMinutes renders a duration in minutes as "2h 5m" or "45m". The total
// is rounded first so 119.6 becomes "2h 0m".
func FormatMinutes(mins float64) string {
	total := int(roundHalfUp(mins))
	hours, rest := total/60, total%60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, rest)
	}
	return fmt.Sprintf("%dm", rest)
}

// .5 rounds up
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
