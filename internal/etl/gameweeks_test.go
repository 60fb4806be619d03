package etl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/premdata/fpl-warehouse/internal/domain/fixture"
	"github.com/premdata/fpl-warehouse/internal/platform/logging"
)

type stubFixturesFetcher struct {
	fixtures     []SourceFixture
	err          error
	finishedOnly *bool
}

func (s *stubFixturesFetcher) Fixtures(_ context.Context, finishedOnly bool) ([]SourceFixture, error) {
	s.finishedOnly = &finishedOnly
	return s.fixtures, s.err
}

type captureFixtureStore struct {
	rows  []fixture.Record
	calls int
	err   error
}

func (s *captureFixtureStore) Replace(_ context.Context, rows []fixture.Record) error {
	s.calls++
	s.rows = rows
	return s.err
}

func TestBuildFixtureRows_MapsScheduledFixture(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2024, 8, 17, 14, 0, 0, 0, time.UTC)
	rows, err := BuildFixtureRows([]SourceFixture{
		{
			Code:           2444470,
			GameweekID:     int64Ptr(1),
			Finished:       true,
			ID:             5,
			KickoffAt:      timePtr(kickoff),
			AwayTeamID:     7,
			HomeTeamID:     11,
			AwayScore:      int64Ptr(0),
			HomeScore:      int64Ptr(2),
			AwayDifficulty: int64Ptr(4),
			HomeDifficulty: int64Ptr(2),
		},
	})
	if err != nil {
		t.Fatalf("BuildFixtureRows error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("unexpected row count: got=%d want=1", len(rows))
	}

	row := rows[0]
	if row.GameCode != 2444470 || row.GameID != 5 {
		t.Fatalf("unexpected identifiers: %+v", row)
	}
	if row.GameWeekID != 1 {
		t.Fatalf("unexpected gameweek: got=%d want=1", row.GameWeekID)
	}
	if !row.Finished {
		t.Fatalf("finished flag lost")
	}
	if !row.KickoffTime.Equal(kickoff) {
		t.Fatalf("unexpected kickoff: got=%v want=%v", row.KickoffTime, kickoff)
	}
	if row.TeamIDA != 7 || row.TeamIDH != 11 {
		t.Fatalf("unexpected team ids: %+v", row)
	}
	if row.TeamAScore != 0 || row.TeamHScore != 2 {
		t.Fatalf("unexpected scores: %+v", row)
	}
	if row.DifficultyA != 4 || row.DifficultyH != 2 {
		t.Fatalf("unexpected difficulty: %+v", row)
	}
}

func TestBuildFixtureRows_NullFieldsZeroFilled(t *testing.T) {
	t.Parallel()

	rows, err := BuildFixtureRows([]SourceFixture{
		{Code: 1, ID: 1, AwayTeamID: 2, HomeTeamID: 3},
	})
	if err != nil {
		t.Fatalf("BuildFixtureRows error: %v", err)
	}

	row := rows[0]
	if row.GameWeekID != 0 || row.TeamAScore != 0 || row.TeamHScore != 0 || row.DifficultyA != 0 || row.DifficultyH != 0 {
		t.Fatalf("null numerics must become zero: %+v", row)
	}
	if !row.KickoffTime.IsZero() {
		t.Fatalf("null kickoff must become the zero time, got=%v", row.KickoffTime)
	}
}

func TestBuildFixtureRows_EmptyPayloadIsSchemaError(t *testing.T) {
	t.Parallel()

	_, err := BuildFixtureRows(nil)
	if !errors.Is(err, ErrSchema) {
		t.Fatalf("expected ErrSchema, got %v", err)
	}
}

func TestGameweeksJob_Run_FetchesFullFixtureList(t *testing.T) {
	t.Parallel()

	fetcher := &stubFixturesFetcher{fixtures: []SourceFixture{
		{Code: 1, ID: 1, AwayTeamID: 2, HomeTeamID: 3},
		{Code: 2, ID: 2, AwayTeamID: 4, HomeTeamID: 5},
	}}
	store := &captureFixtureStore{}

	job := NewGameweeksJob(fetcher, store, logging.NewNop())
	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if fetcher.finishedOnly == nil || *fetcher.finishedOnly {
		t.Fatalf("gameweeks job must request the full fixture list")
	}
	if store.calls != 1 || len(store.rows) != 2 {
		t.Fatalf("unexpected store interaction: calls=%d rows=%d", store.calls, len(store.rows))
	}
}
