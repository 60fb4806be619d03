package etl

import (
	"errors"
	"testing"
	"time"
)

func TestComputeSeasonBounds_MinAndMaxAcrossEvents(t *testing.T) {
	t.Parallel()

	first := time.Date(2024, 8, 16, 17, 30, 0, 0, time.UTC)
	middle := time.Date(2024, 12, 26, 13, 0, 0, 0, time.UTC)
	last := time.Date(2025, 5, 25, 14, 0, 0, 0, time.UTC)

	bounds, err := ComputeSeasonBounds([]SourceEvent{
		{DeadlineTime: timePtr(middle)},
		{DeadlineTime: timePtr(last)},
		{DeadlineTime: timePtr(first)},
	})
	if err != nil {
		t.Fatalf("ComputeSeasonBounds error: %v", err)
	}
	if !bounds.Min.Equal(first) {
		t.Fatalf("unexpected min: got=%v want=%v", bounds.Min, first)
	}
	if !bounds.Max.Equal(last) {
		t.Fatalf("unexpected max: got=%v want=%v", bounds.Max, last)
	}
}

func TestComputeSeasonBounds_SkipsNilDeadlines(t *testing.T) {
	t.Parallel()

	only := time.Date(2024, 8, 16, 17, 30, 0, 0, time.UTC)
	bounds, err := ComputeSeasonBounds([]SourceEvent{
		{DeadlineTime: nil},
		{DeadlineTime: timePtr(only)},
		{DeadlineTime: nil},
	})
	if err != nil {
		t.Fatalf("ComputeSeasonBounds error: %v", err)
	}
	if !bounds.Min.Equal(only) || !bounds.Max.Equal(only) {
		t.Fatalf("single deadline must be both bounds: %+v", bounds)
	}
}

func TestComputeSeasonBounds_NoDeadlinesIsDataError(t *testing.T) {
	t.Parallel()

	_, err := ComputeSeasonBounds([]SourceEvent{{DeadlineTime: nil}, {DeadlineTime: nil}})
	if !errors.Is(err, ErrData) {
		t.Fatalf("expected ErrData, got %v", err)
	}

	_, err = ComputeSeasonBounds(nil)
	if !errors.Is(err, ErrData) {
		t.Fatalf("expected ErrData for empty events, got %v", err)
	}
}
