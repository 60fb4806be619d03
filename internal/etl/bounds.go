package etl

import (
	"fmt"
	"time"
)

// SeasonBounds are the earliest and latest gameweek deadlines found in the
// bootstrap events, copied onto every team and player row for season
// categorization.
type SeasonBounds struct {
	Min time.Time
	Max time.Time
}

func ComputeSeasonBounds(events []SourceEvent) (SeasonBounds, error) {
	var bounds SeasonBounds
	found := false
	for _, event := range events {
		if event.DeadlineTime == nil {
			continue
		}
		deadline := *event.DeadlineTime
		if !found {
			bounds.Min, bounds.Max = deadline, deadline
			found = true
			continue
		}
		if deadline.Before(bounds.Min) {
			bounds.Min = deadline
		}
		if deadline.After(bounds.Max) {
			bounds.Max = deadline
		}
	}

	if !found {
		return SeasonBounds{}, fmt.Errorf("%w: no deadline_time present in events", ErrData)
	}

	return bounds, nil
}
