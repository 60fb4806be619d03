package warehouse

import (
	"context"
	"fmt"
	"time"

	"github.com/premdata/fpl-warehouse/internal/config"
	"github.com/premdata/fpl-warehouse/internal/domain/fixture"
	"github.com/premdata/fpl-warehouse/internal/etl"
	"github.com/premdata/fpl-warehouse/internal/platform/logging"
)

const (
	gamesTable = "bronze.games_info"

	gamesTableDDL = `
CREATE TABLE bronze.games_info (
    game_code    BIGINT NOT NULL,
    game_week_id BIGINT NOT NULL,
    finished     BOOLEAN NOT NULL,
    game_id      BIGINT NOT NULL,
    kickoff_time TIMESTAMPTZ NOT NULL,
    team_id_a    BIGINT NOT NULL,
    team_id_h    BIGINT NOT NULL,
    team_a_score BIGINT NOT NULL,
    team_h_score BIGINT NOT NULL,
    difficulty_a BIGINT NOT NULL,
    difficulty_h BIGINT NOT NULL
)`

	insertGamesQuery = `
INSERT INTO bronze.games_info (game_code, game_week_id, finished, game_id, kickoff_time, team_id_a, team_id_h, team_a_score, team_h_score, difficulty_a, difficulty_h)
VALUES (:game_code, :game_week_id, :finished, :game_id, :kickoff_time, :team_id_a, :team_id_h, :team_a_score, :team_h_score, :difficulty_a, :difficulty_h)`
)

type gameTableModel struct {
	GameCode    int64     `db:"game_code"`
	GameWeekID  int64     `db:"game_week_id"`
	Finished    bool      `db:"finished"`
	GameID      int64     `db:"game_id"`
	KickoffTime time.Time `db:"kickoff_time"`
	TeamIDA     int64     `db:"team_id_a"`
	TeamIDH     int64     `db:"team_id_h"`
	TeamAScore  int64     `db:"team_a_score"`
	TeamHScore  int64     `db:"team_h_score"`
	DifficultyA int64     `db:"difficulty_a"`
	DifficultyH int64     `db:"difficulty_h"`
}

// GameStore writes bronze.games_info in replace mode.
type GameStore struct {
	cfg    config.Store
	logger *logging.Logger
}

func NewGameStore(cfg config.Store, logger *logging.Logger) *GameStore {
	if logger == nil {
		logger = logging.Default()
	}
	return &GameStore{cfg: cfg, logger: logger}
}

func (s *GameStore) Replace(ctx context.Context, rows []fixture.Record) error {
	if len(rows) == 0 {
		return fmt.Errorf("%w: no fixture rows to load", etl.ErrData)
	}

	db, err := Connect(ctx, s.cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	models := make([]gameTableModel, 0, len(rows))
	for _, row := range rows {
		models = append(models, gameTableModel{
			GameCode:    row.GameCode,
			GameWeekID:  row.GameWeekID,
			Finished:    row.Finished,
			GameID:      row.GameID,
			KickoffTime: row.KickoffTime,
			TeamIDA:     row.TeamIDA,
			TeamIDH:     row.TeamIDH,
			TeamAScore:  row.TeamAScore,
			TeamHScore:  row.TeamHScore,
			DifficultyA: row.DifficultyA,
			DifficultyH: row.DifficultyH,
		})
	}

	if err := replaceTable(ctx, db, gamesTable, gamesTableDDL, insertGamesQuery, models); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "table replaced", "table", gamesTable, "rows", len(models))

	return nil
}
