package etl

import (
	"context"
	"fmt"

	"github.com/premdata/fpl-warehouse/internal/platform/logging"
)

// ResultSet is an opaque tabular query result: the replicate job copies it
// verbatim without interpreting the projection.
type ResultSet struct {
	Columns []string
	Rows    [][]any
}

func (rs ResultSet) Empty() bool {
	return len(rs.Rows) == 0
}

// HistoryReader runs the fixed gold-layer query against the warehouse.
type HistoryReader interface {
	ReadAll(ctx context.Context) (ResultSet, error)
}

// HistoryWriter empties the pre-existing mart table, then inserts the rows.
// Appending zero rows must leave the table truncated and empty.
type HistoryWriter interface {
	TruncateAndAppend(ctx context.Context, rs ResultSet) error
}

// ReplicateJob copies the gold team-history view into the mart.
type ReplicateJob struct {
	reader      HistoryReader
	writer      HistoryWriter
	requireRows bool
	logger      *logging.Logger
}

func NewReplicateJob(reader HistoryReader, writer HistoryWriter, requireRows bool, logger *logging.Logger) *ReplicateJob {
	if logger == nil {
		logger = logging.Default()
	}
	return &ReplicateJob{reader: reader, writer: writer, requireRows: requireRows, logger: logger}
}

func (j *ReplicateJob) Run(ctx context.Context) error {
	rs, err := j.reader.ReadAll(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "read team history view", "error", err)
		return err
	}
	j.logger.InfoContext(ctx, "team history fetched", "rows", len(rs.Rows), "columns", len(rs.Columns))

	if j.requireRows && rs.Empty() {
		err := fmt.Errorf("%w: team history view returned no rows", ErrData)
		j.logger.ErrorContext(ctx, "replicate team history", "error", err)
		return err
	}

	if err := j.writer.TruncateAndAppend(ctx, rs); err != nil {
		j.logger.ErrorContext(ctx, "write team history", "error", err)
		return err
	}
	j.logger.InfoContext(ctx, "team history replicated", "rows", len(rs.Rows))

	return nil
}
