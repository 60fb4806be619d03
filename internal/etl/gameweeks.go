package etl

import (
	"context"
	"fmt"

	"github.com/premdata/fpl-warehouse/internal/domain/fixture"
	"github.com/premdata/fpl-warehouse/internal/platform/logging"
)

// FixtureStore replaces the bronze games table with the given rows.
type FixtureStore interface {
	Replace(ctx context.Context, rows []fixture.Record) error
}

// BuildFixtureRows projects the fixture list into bronze rows. Numeric
// fields that are null upstream are filled with zero; a null kickoff
// becomes the zero time.
func BuildFixtureRows(fixtures []SourceFixture) ([]fixture.Record, error) {
	if len(fixtures) == 0 {
		return nil, fmt.Errorf("%w: fixtures payload is empty", ErrSchema)
	}

	rows := make([]fixture.Record, 0, len(fixtures))
	for _, src := range fixtures {
		row := fixture.Record{
			GameCode:    src.Code,
			GameWeekID:  int64OrZero(src.GameweekID),
			Finished:    src.Finished,
			GameID:      src.ID,
			TeamIDA:     src.AwayTeamID,
			TeamIDH:     src.HomeTeamID,
			TeamAScore:  int64OrZero(src.AwayScore),
			TeamHScore:  int64OrZero(src.HomeScore),
			DifficultyA: int64OrZero(src.AwayDifficulty),
			DifficultyH: int64OrZero(src.HomeDifficulty),
		}
		if src.KickoffAt != nil {
			row.KickoffTime = *src.KickoffAt
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func int64OrZero(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

// GameweeksJob pulls the full fixture list and replaces bronze.games_info.
type GameweeksJob struct {
	fetcher FixturesFetcher
	store   FixtureStore
	logger  *logging.Logger
}

func NewGameweeksJob(fetcher FixturesFetcher, store FixtureStore, logger *logging.Logger) *GameweeksJob {
	if logger == nil {
		logger = logging.Default()
	}
	return &GameweeksJob{fetcher: fetcher, store: store, logger: logger}
}

func (j *GameweeksJob) Run(ctx context.Context) error {
	fixtures, err := j.fetcher.Fixtures(ctx, false)
	if err != nil {
		j.logger.ErrorContext(ctx, "fetch fixtures payload", "error", err)
		return err
	}
	j.logger.InfoContext(ctx, "fixtures payload fetched", "fixtures", len(fixtures))

	rows, err := BuildFixtureRows(fixtures)
	if err != nil {
		j.logger.ErrorContext(ctx, "build fixture rows", "error", err)
		return err
	}

	if err := j.store.Replace(ctx, rows); err != nil {
		j.logger.ErrorContext(ctx, "load fixture rows", "error", err)
		return err
	}
	j.logger.InfoContext(ctx, "gameweek fixtures loaded", "rows", len(rows))

	return nil
}
