package warehouse

import (
	"context"
	"fmt"
	"time"

	"github.com/premdata/fpl-warehouse/internal/config"
	"github.com/premdata/fpl-warehouse/internal/domain/team"
	"github.com/premdata/fpl-warehouse/internal/etl"
	"github.com/premdata/fpl-warehouse/internal/platform/logging"
)

const (
	teamsTable = "bronze.teams_info"

	teamsTableDDL = `
CREATE TABLE bronze.teams_info (
    team_id         BIGINT NOT NULL,
    team_code       BIGINT NOT NULL,
    team_name       TEXT NOT NULL,
    team_short_name TEXT NOT NULL,
    min_kickoff     TIMESTAMPTZ NOT NULL,
    max_kickoff     TIMESTAMPTZ NOT NULL,
    logo_url        TEXT NOT NULL
)`

	insertTeamsQuery = `
INSERT INTO bronze.teams_info (team_id, team_code, team_name, team_short_name, min_kickoff, max_kickoff, logo_url)
VALUES (:team_id, :team_code, :team_name, :team_short_name, :min_kickoff, :max_kickoff, :logo_url)`
)

type teamTableModel struct {
	TeamID        int64     `db:"team_id"`
	TeamCode      int64     `db:"team_code"`
	TeamName      string    `db:"team_name"`
	TeamShortName string    `db:"team_short_name"`
	MinKickoff    time.Time `db:"min_kickoff"`
	MaxKickoff    time.Time `db:"max_kickoff"`
	LogoURL       string    `db:"logo_url"`
}

// TeamStore writes bronze.teams_info in replace mode.
type TeamStore struct {
	cfg    config.Store
	logger *logging.Logger
}

func NewTeamStore(cfg config.Store, logger *logging.Logger) *TeamStore {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamStore{cfg: cfg, logger: logger}
}

func (s *TeamStore) Replace(ctx context.Context, rows []team.Record) error {
	if len(rows) == 0 {
		return fmt.Errorf("%w: no team rows to load", etl.ErrData)
	}

	db, err := Connect(ctx, s.cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	models := make([]teamTableModel, 0, len(rows))
	for _, row := range rows {
		models = append(models, teamTableModel{
			TeamID:        row.TeamID,
			TeamCode:      row.TeamCode,
			TeamName:      row.TeamName,
			TeamShortName: row.TeamShortName,
			MinKickoff:    row.MinKickoff,
			MaxKickoff:    row.MaxKickoff,
			LogoURL:       row.LogoURL,
		})
	}

	if err := replaceTable(ctx, db, teamsTable, teamsTableDDL, insertTeamsQuery, models); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "table replaced", "table", teamsTable, "rows", len(models))

	return nil
}
