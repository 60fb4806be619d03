package etl

import (
	"context"
	"fmt"

	"github.com/premdata/fpl-warehouse/internal/domain/player"
	"github.com/premdata/fpl-warehouse/internal/platform/logging"
)

const playerPhotoBaseURL = "https://resources.premierleague.com/premierleague/photos/players/250x250/p"

// PlayerStore replaces the bronze players table with the given rows.
type PlayerStore interface {
	Replace(ctx context.Context, rows []player.Record) error
}

// BuildPlayerRows projects the bootstrap elements collection into bronze
// rows, attaching photo URLs and season bounds.
func BuildPlayerRows(boot Bootstrap, bounds SeasonBounds) ([]player.Record, error) {
	if len(boot.Players) == 0 {
		return nil, fmt.Errorf("%w: bootstrap payload has no elements", ErrSchema)
	}

	rows := make([]player.Record, 0, len(boot.Players))
	for _, src := range boot.Players {
		row := player.Record{
			PlayerID:       src.ID,
			FirstName:      src.FirstName,
			SecondName:     src.SecondName,
			WebName:        src.WebName,
			TeamCode:       src.TeamCode,
			TeamID:         src.TeamID,
			PlayerPosition: src.Position,
			PlayerCode:     src.Code,
			Region:         src.Region,
			CanSelect:      src.CanSelect,
			MinKickoff:     bounds.Min,
			MaxKickoff:     bounds.Max,
			PhotoURL:       fmt.Sprintf("%s%d.png", playerPhotoBaseURL, src.Code),
		}
		if err := row.Validate(); err != nil {
			return nil, fmt.Errorf("%w: player id=%d: %v", ErrData, src.ID, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// PlayersJob pulls bootstrap-static and replaces bronze.players_info.
type PlayersJob struct {
	fetcher BootstrapFetcher
	store   PlayerStore
	logger  *logging.Logger
}

func NewPlayersJob(fetcher BootstrapFetcher, store PlayerStore, logger *logging.Logger) *PlayersJob {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayersJob{fetcher: fetcher, store: store, logger: logger}
}

func (j *PlayersJob) Run(ctx context.Context) error {
	boot, err := j.fetcher.Bootstrap(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "fetch bootstrap payload", "error", err)
		return err
	}
	j.logger.InfoContext(ctx, "bootstrap payload fetched", "elements", len(boot.Players), "events", len(boot.Events))

	bounds, err := ComputeSeasonBounds(boot.Events)
	if err != nil {
		j.logger.ErrorContext(ctx, "compute season bounds", "error", err)
		return err
	}

	rows, err := BuildPlayerRows(boot, bounds)
	if err != nil {
		j.logger.ErrorContext(ctx, "build player rows", "error", err)
		return err
	}

	if err := j.store.Replace(ctx, rows); err != nil {
		j.logger.ErrorContext(ctx, "load player rows", "error", err)
		return err
	}
	j.logger.InfoContext(ctx, "players loaded", "rows", len(rows))

	return nil
}
