package mart

import (
	"context"
	"fmt"

	"github.com/valyala/bytebufferpool"

	"github.com/premdata/fpl-warehouse/internal/config"
	"github.com/premdata/fpl-warehouse/internal/etl"
	"github.com/premdata/fpl-warehouse/internal/platform/logging"
)

const insertChunkSize = 500

// HistoryStore writes the replicated team-history table in
// truncate-then-append mode. The destination schema is fixed by the mart;
// only rows are replaced, never the table definition.
type HistoryStore struct {
	cfg    config.Store
	table  string
	logger *logging.Logger
}

func NewHistoryStore(cfg config.Store, table string, logger *logging.Logger) *HistoryStore {
	if logger == nil {
		logger = logging.Default()
	}
	return &HistoryStore{cfg: cfg, table: table, logger: logger}
}

func (s *HistoryStore) TruncateAndAppend(ctx context.Context, rs etl.ResultSet) error {
	db, err := Connect(ctx, s.cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	if _, err := db.ExecContext(ctx, "TRUNCATE TABLE `"+s.table+"`"); err != nil {
		return fmt.Errorf("%w: truncate %s: %v", etl.ErrLoad, s.table, err)
	}
	s.logger.InfoContext(ctx, "table truncated", "table", s.table)

	if rs.Empty() {
		// Appending zero rows is a valid no-op; the table stays empty.
		s.logger.InfoContext(ctx, "no rows to append", "table", s.table)
		return nil
	}
	if len(rs.Columns) == 0 {
		return fmt.Errorf("%w: result set has rows but no columns", etl.ErrData)
	}

	for start := 0; start < len(rs.Rows); start += insertChunkSize {
		end := start + insertChunkSize
		if end > len(rs.Rows) {
			end = len(rs.Rows)
		}
		chunk := rs.Rows[start:end]

		args := make([]any, 0, len(chunk)*len(rs.Columns))
		for _, row := range chunk {
			if len(row) != len(rs.Columns) {
				return fmt.Errorf("%w: row has %d values, expected %d", etl.ErrData, len(row), len(rs.Columns))
			}
			args = append(args, row...)
		}

		query := buildInsertQuery(s.table, rs.Columns, len(chunk))
		if _, err := db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: append into %s: %v", etl.ErrLoad, s.table, err)
		}
	}
	s.logger.InfoContext(ctx, "rows appended", "table", s.table, "rows", len(rs.Rows))

	return nil
}

// buildInsertQuery renders a multi-row INSERT for the opaque column list.
// The statement can get large for wide chunks, so it is assembled in a
// pooled buffer.
func buildInsertQuery(table string, columns []string, rowCount int) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString("INSERT INTO `")
	_, _ = buf.WriteString(table)
	_, _ = buf.WriteString("` (")
	for i, column := range columns {
		if i > 0 {
			_, _ = buf.WriteString(", ")
		}
		_, _ = buf.WriteString("`")
		_, _ = buf.WriteString(column)
		_, _ = buf.WriteString("`")
	}
	_, _ = buf.WriteString(") VALUES ")

	for row := 0; row < rowCount; row++ {
		if row > 0 {
			_, _ = buf.WriteString(", ")
		}
		_, _ = buf.WriteString("(")
		for col := range columns {
			if col > 0 {
				_, _ = buf.WriteString(", ")
			}
			_, _ = buf.WriteString("?")
		}
		_, _ = buf.WriteString(")")
	}

	return buf.String()
}
