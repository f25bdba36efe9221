package engine

import (
	"context"
	"sort"
	"time"

	"rise/internal/storage"
)

// Interval is a titled time span used for overlap detection.
type Interval struct {
	ID    string
	Title string
	Start time.Time
	End   time.Time
}

type OverlapPair struct {
	A Interval
	B Interval
}

func intervalsOverlap(a, b Interval) bool {
	// Half-open intervals: touching endpoints do not overlap.
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// Overlaps reports every pair of intervals that share time. Overlap
// is advisory only; nothing rejects a conflicting schedule.
func Overlaps(intervals []Interval) []OverlapPair {
	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start.Before(sorted[j].Start) })

	var pairs []OverlapPair
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if !sorted[j].Start.Before(sorted[i].End) {
				break
			}
			pairs = append(pairs, OverlapPair{A: sorted[i], B: sorted[j]})
		}
	}
	return pairs
}

// PlanIntervals converts proposed blocks for overlap checks against
// an existing schedule.
func PlanIntervals(plan *OnboardingPlan) []Interval {
	out := make([]Interval, 0, len(plan.Blocks))
	for _, b := range plan.Blocks {
		out = append(out, Interval{Title: b.Title, Start: b.Start, End: b.End})
	}
	return out
}

// TaskIntervals converts persisted tasks for overlap checks.
func TaskIntervals(tasks []storage.Task) []Interval {
	out := make([]Interval, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, Interval{ID: t.ID, Title: t.Title, Start: t.Start, End: t.End})
	}
	return out
}

// ScheduleConflicts returns overlapping pairs among tasks still on
// the schedule.
func (s *Service) ScheduleConflicts(ctx context.Context) ([]OverlapPair, error) {
	tasks, err := s.tasks.List(ctx, string(StatusScheduled))
	if err != nil {
		return nil, err
	}
	return Overlaps(TaskIntervals(tasks)), nil
}
