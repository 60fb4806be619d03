package warehouse

import (
	"context"
	"fmt"
	"time"

	"github.com/premdata/fpl-warehouse/internal/config"
	"github.com/premdata/fpl-warehouse/internal/domain/player"
	"github.com/premdata/fpl-warehouse/internal/etl"
	"github.com/premdata/fpl-warehouse/internal/platform/logging"
)

const (
	playersTable = "bronze.players_info"

	playersTableDDL = `
CREATE TABLE bronze.players_info (
    player_id       BIGINT NOT NULL,
    first_name      TEXT NOT NULL,
    second_name     TEXT NOT NULL,
    web_name        TEXT NOT NULL,
    team_code       BIGINT NOT NULL,
    team_id         BIGINT NOT NULL,
    player_position BIGINT NOT NULL,
    player_code     BIGINT NOT NULL,
    region          BIGINT,
    can_select      BOOLEAN NOT NULL,
    min_kickoff     TIMESTAMPTZ NOT NULL,
    max_kickoff     TIMESTAMPTZ NOT NULL,
    photo_url       TEXT NOT NULL
)`

	insertPlayersQuery = `
INSERT INTO bronze.players_info (player_id, first_name, second_name, web_name, team_code, team_id, player_position, player_code, region, can_select, min_kickoff, max_kickoff, photo_url)
VALUES (:player_id, :first_name, :second_name, :web_name, :team_code, :team_id, :player_position, :player_code, :region, :can_select, :min_kickoff, :max_kickoff, :photo_url)`
)

type playerTableModel struct {
	PlayerID       int64     `db:"player_id"`
	FirstName      string    `db:"first_name"`
	SecondName     string    `db:"second_name"`
	WebName        string    `db:"web_name"`
	TeamCode       int64     `db:"team_code"`
	TeamID         int64     `db:"team_id"`
	PlayerPosition int64     `db:"player_position"`
	PlayerCode     int64     `db:"player_code"`
	Region         *int64    `db:"region"`
	CanSelect      bool      `db:"can_select"`
	MinKickoff     time.Time `db:"min_kickoff"`
	MaxKickoff     time.Time `db:"max_kickoff"`
	PhotoURL       string    `db:"photo_url"`
}

// PlayerStore writes bronze.players_info in replace mode.
type PlayerStore struct {
	cfg    config.Store
	logger *logging.Logger
}

func NewPlayerStore(cfg config.Store, logger *logging.Logger) *PlayerStore {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerStore{cfg: cfg, logger: logger}
}

func (s *PlayerStore) Replace(ctx context.Context, rows []player.Record) error {
	if len(rows) == 0 {
		return fmt.Errorf("%w: no player rows to load", etl.ErrData)
	}

	db, err := Connect(ctx, s.cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	models := make([]playerTableModel, 0, len(rows))
	for _, row := range rows {
		models = append(models, playerTableModel{
			PlayerID:       row.PlayerID,
			FirstName:      row.FirstName,
			SecondName:     row.SecondName,
			WebName:        row.WebName,
			TeamCode:       row.TeamCode,
			TeamID:         row.TeamID,
			PlayerPosition: row.PlayerPosition,
			PlayerCode:     row.PlayerCode,
			Region:         row.Region,
			CanSelect:      row.CanSelect,
			MinKickoff:     row.MinKickoff,
			MaxKickoff:     row.MaxKickoff,
			PhotoURL:       row.PhotoURL,
		})
	}

	if err := replaceTable(ctx, db, playersTable, playersTableDDL, insertPlayersQuery, models); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "table replaced", "table", playersTable, "rows", len(models))

	return nil
}
