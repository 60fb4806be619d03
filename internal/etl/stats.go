package etl

import (
	"context"
	"fmt"

	"github.com/premdata/fpl-warehouse/internal/domain/statevent"
	"github.com/premdata/fpl-warehouse/internal/platform/logging"
)

// StatStore replaces the bronze player stats table with the given rows.
type StatStore interface {
	Replace(ctx context.Context, rows []statevent.Record) error
}

// ExtractStat emits one row per entry in the named statistic block of each
// fixture, away side first. Fixtures without the block contribute nothing.
func ExtractStat(fixtures []SourceFixture, identifier string) []statevent.Record {
	var out []statevent.Record
	for _, fx := range fixtures {
		for _, block := range fx.Stats {
			if block.Identifier != identifier {
				continue
			}
			for _, side := range statevent.Sides {
				entries := block.Away
				if side == "h" {
					entries = block.Home
				}
				for _, entry := range entries {
					out = append(out, statevent.Record{
						GameCode:  fx.Code,
						Finished:  fx.Finished,
						GameID:    fx.ID,
						StatValue: entry.Value,
						PlayerID:  entry.PlayerID,
						TeamType:  side,
						StatType:  identifier,
					})
				}
			}
		}
	}

	return out
}

// AggregateStats expands the per-fixture stat blocks into one long-format
// table, concatenated in catalogue order. An all-empty result is returned
// as an empty slice, never an error; the caller decides to skip the load.
func AggregateStats(fixtures []SourceFixture, catalogue []string) []statevent.Record {
	var out []statevent.Record
	for _, identifier := range catalogue {
		out = append(out, ExtractStat(fixtures, identifier)...)
	}

	return out
}

// StatsJob pulls completed fixtures, flattens their statistic blocks, and
// replaces bronze.player_stats. An empty aggregation skips the load.
type StatsJob struct {
	fetcher   FixturesFetcher
	store     StatStore
	catalogue []string
	logger    *logging.Logger
}

func NewStatsJob(fetcher FixturesFetcher, store StatStore, catalogue []string, logger *logging.Logger) *StatsJob {
	if len(catalogue) == 0 {
		catalogue = statevent.DefaultCatalogue()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &StatsJob{fetcher: fetcher, store: store, catalogue: catalogue, logger: logger}
}

func (j *StatsJob) Run(ctx context.Context) error {
	fixtures, err := j.fetcher.Fixtures(ctx, true)
	if err != nil {
		j.logger.ErrorContext(ctx, "fetch completed fixtures", "error", err)
		return err
	}
	if len(fixtures) == 0 {
		err := fmt.Errorf("%w: completed fixtures payload is empty", ErrData)
		j.logger.ErrorContext(ctx, "aggregate player stats", "error", err)
		return err
	}
	j.logger.InfoContext(ctx, "completed fixtures fetched", "fixtures", len(fixtures))

	rows := AggregateStats(fixtures, j.catalogue)
	if len(rows) == 0 {
		// Early in a season no fixture carries stat blocks yet; this is
		// a skip, not a failure.
		j.logger.WarnContext(ctx, "no stat rows aggregated, skipping load", "fixtures", len(fixtures))
		return nil
	}

	if err := j.store.Replace(ctx, rows); err != nil {
		j.logger.ErrorContext(ctx, "load stat rows", "error", err)
		return err
	}
	j.logger.InfoContext(ctx, "player stats loaded", "rows", len(rows), "catalogue_size", len(j.catalogue))

	return nil
}
