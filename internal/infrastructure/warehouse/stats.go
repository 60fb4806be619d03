package warehouse

import (
	"context"
	"fmt"

	"github.com/premdata/fpl-warehouse/internal/config"
	"github.com/premdata/fpl-warehouse/internal/domain/statevent"
	"github.com/premdata/fpl-warehouse/internal/etl"
	"github.com/premdata/fpl-warehouse/internal/platform/logging"
)

const (
	statsTable = "bronze.player_stats"

	statsTableDDL = `
CREATE TABLE bronze.player_stats (
    game_code  BIGINT NOT NULL,
    finished   BOOLEAN NOT NULL,
    game_id    BIGINT NOT NULL,
    stat_value BIGINT NOT NULL,
    player_id  BIGINT NOT NULL,
    team_type  TEXT NOT NULL,
    stat_type  TEXT NOT NULL
)`

	insertStatsQuery = `
INSERT INTO bronze.player_stats (game_code, finished, game_id, stat_value, player_id, team_type, stat_type)
VALUES (:game_code, :finished, :game_id, :stat_value, :player_id, :team_type, :stat_type)`
)

type statTableModel struct {
	GameCode  int64  `db:"game_code"`
	Finished  bool   `db:"finished"`
	GameID    int64  `db:"game_id"`
	StatValue int64  `db:"stat_value"`
	PlayerID  int64  `db:"player_id"`
	TeamType  string `db:"team_type"`
	StatType  string `db:"stat_type"`
}

// StatStore writes bronze.player_stats in replace mode. Empty aggregations
// never reach it; the stats job skips the load instead.
type StatStore struct {
	cfg    config.Store
	logger *logging.Logger
}

func NewStatStore(cfg config.Store, logger *logging.Logger) *StatStore {
	if logger == nil {
		logger = logging.Default()
	}
	return &StatStore{cfg: cfg, logger: logger}
}

func (s *StatStore) Replace(ctx context.Context, rows []statevent.Record) error {
	if len(rows) == 0 {
		return fmt.Errorf("%w: no stat rows to load", etl.ErrData)
	}

	db, err := Connect(ctx, s.cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	models := make([]statTableModel, 0, len(rows))
	for _, row := range rows {
		models = append(models, statTableModel{
			GameCode:  row.GameCode,
			Finished:  row.Finished,
			GameID:    row.GameID,
			StatValue: row.StatValue,
			PlayerID:  row.PlayerID,
			TeamType:  row.TeamType,
			StatType:  row.StatType,
		})
	}

	if err := replaceTable(ctx, db, statsTable, statsTableDDL, insertStatsQuery, models); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "table replaced", "table", statsTable, "rows", len(models))

	return nil
}
