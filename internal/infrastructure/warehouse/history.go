package warehouse

import (
	"context"
	"fmt"

	"github.com/premdata/fpl-warehouse/internal/config"
	"github.com/premdata/fpl-warehouse/internal/etl"
	"github.com/premdata/fpl-warehouse/internal/platform/logging"
)

// teamHistoryQuery is the fixed gold-layer read the replicate job copies
// verbatim; the projection is owned by the transform layer, not by us.
const teamHistoryQuery = `SELECT * FROM gold.v_fct_team_history`

// HistoryReader pulls the gold team-history view as an opaque result set.
type HistoryReader struct {
	cfg    config.Store
	logger *logging.Logger
}

func NewHistoryReader(cfg config.Store, logger *logging.Logger) *HistoryReader {
	if logger == nil {
		logger = logging.Default()
	}
	return &HistoryReader{cfg: cfg, logger: logger}
}

func (r *HistoryReader) ReadAll(ctx context.Context) (etl.ResultSet, error) {
	db, err := Connect(ctx, r.cfg)
	if err != nil {
		return etl.ResultSet{}, err
	}
	defer func() {
		_ = db.Close()
	}()

	rows, err := db.QueryxContext(ctx, teamHistoryQuery)
	if err != nil {
		return etl.ResultSet{}, fmt.Errorf("%w: query team history view: %v", etl.ErrLoad, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	columns, err := rows.Columns()
	if err != nil {
		return etl.ResultSet{}, fmt.Errorf("%w: read view columns: %v", etl.ErrLoad, err)
	}

	out := etl.ResultSet{Columns: columns}
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return etl.ResultSet{}, fmt.Errorf("%w: scan view row: %v", etl.ErrLoad, err)
		}
		out.Rows = append(out.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return etl.ResultSet{}, fmt.Errorf("%w: iterate view rows: %v", etl.ErrLoad, err)
	}
	r.logger.DebugContext(ctx, "view read", "query", teamHistoryQuery, "rows", len(out.Rows))

	return out, nil
}
