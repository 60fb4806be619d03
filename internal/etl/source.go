package etl

import (
	"context"
	"time"
)

// Source* types are the typed form of the upstream JSON, produced by the
// fetcher at the parse boundary so the transform stages never touch raw
// key lookups.

type SourceEvent struct {
	DeadlineTime *time.Time
}

type SourceTeam struct {
	ID        int64
	Code      int64
	Name      string
	ShortName string
}

type SourcePlayer struct {
	ID         int64
	FirstName  string
	SecondName string
	WebName    string
	TeamCode   int64
	TeamID     int64
	Position   int64
	Code       int64
	Region     *int64
	CanSelect  bool
}

// Bootstrap is the parsed bootstrap-static payload. Nil slices mean the
// corresponding top-level key was absent.
type Bootstrap struct {
	Events  []SourceEvent
	Teams   []SourceTeam
	Players []SourcePlayer
}

type SourceStatEntry struct {
	PlayerID int64
	Value    int64
}

// SourceStatBlock is one per-statistic breakdown attached to a fixture,
// split into away and home entry lists.
type SourceStatBlock struct {
	Identifier string
	Away       []SourceStatEntry
	Home       []SourceStatEntry
}

type SourceFixture struct {
	Code           int64
	GameweekID     *int64
	Finished       bool
	ID             int64
	KickoffAt      *time.Time
	AwayTeamID     int64
	HomeTeamID     int64
	AwayScore      *int64
	HomeScore      *int64
	AwayDifficulty *int64
	HomeDifficulty *int64
	Stats          []SourceStatBlock
}

// BootstrapFetcher pulls the bootstrap-static payload.
type BootstrapFetcher interface {
	Bootstrap(ctx context.Context) (Bootstrap, error)
}

// FixturesFetcher pulls the fixture list, optionally restricted to
// completed games.
type FixturesFetcher interface {
	Fixtures(ctx context.Context, finishedOnly bool) ([]SourceFixture, error)
}
