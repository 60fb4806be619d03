package app

import (
	"github.com/premdata/fpl-warehouse/external/fpl"
	"github.com/premdata/fpl-warehouse/internal/config"
	"github.com/premdata/fpl-warehouse/internal/etl"
	"github.com/premdata/fpl-warehouse/internal/infrastructure/mart"
	"github.com/premdata/fpl-warehouse/internal/infrastructure/warehouse"
	"github.com/premdata/fpl-warehouse/internal/platform/logging"
)

// Job constructors validate the store credentials a job actually needs and
// wire the fetch/transform/load collaborators together.

func newFPLClient(cfg config.Config, logger *logging.Logger) *fpl.Client {
	return fpl.NewClient(fpl.ClientConfig{
		BaseURL: cfg.FPLBaseURL,
		Timeout: cfg.FPLTimeout,
		Logger:  logger,
	})
}

func NewTeamsJob(cfg config.Config, logger *logging.Logger) (Job, error) {
	if err := cfg.Warehouse.Validate("warehouse"); err != nil {
		return nil, err
	}

	return etl.NewTeamsJob(
		newFPLClient(cfg, logger),
		warehouse.NewTeamStore(cfg.Warehouse, logger),
		logger,
	), nil
}

func NewPlayersJob(cfg config.Config, logger *logging.Logger) (Job, error) {
	if err := cfg.Warehouse.Validate("warehouse"); err != nil {
		return nil, err
	}

	return etl.NewPlayersJob(
		newFPLClient(cfg, logger),
		warehouse.NewPlayerStore(cfg.Warehouse, logger),
		logger,
	), nil
}

func NewGameweeksJob(cfg config.Config, logger *logging.Logger) (Job, error) {
	if err := cfg.Warehouse.Validate("warehouse"); err != nil {
		return nil, err
	}

	return etl.NewGameweeksJob(
		newFPLClient(cfg, logger),
		warehouse.NewGameStore(cfg.Warehouse, logger),
		logger,
	), nil
}

func NewStatsJob(cfg config.Config, logger *logging.Logger) (Job, error) {
	if err := cfg.Warehouse.Validate("warehouse"); err != nil {
		return nil, err
	}

	return etl.NewStatsJob(
		newFPLClient(cfg, logger),
		warehouse.NewStatStore(cfg.Warehouse, logger),
		cfg.StatsCatalogue,
		logger,
	), nil
}

func NewReplicateJob(cfg config.Config, logger *logging.Logger) (Job, error) {
	if err := cfg.Warehouse.Validate("warehouse"); err != nil {
		return nil, err
	}
	if err := cfg.Mart.Validate("mart"); err != nil {
		return nil, err
	}

	return etl.NewReplicateJob(
		warehouse.NewHistoryReader(cfg.Warehouse, logger),
		mart.NewHistoryStore(cfg.Mart, cfg.MartTable, logger),
		cfg.MartRequireRows,
		logger,
	), nil
}
