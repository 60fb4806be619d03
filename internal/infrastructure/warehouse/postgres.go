package warehouse

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/premdata/fpl-warehouse/internal/config"
	"github.com/premdata/fpl-warehouse/internal/etl"
)

const (
	createBronzeSchema = `CREATE SCHEMA IF NOT EXISTS bronze`

	insertChunkSize = 500
)

// Connect opens an instrumented warehouse connection. Callers own the
// returned handle and must close it on every exit path.
func Connect(ctx context.Context, cfg config.Store) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("postgres", DSN(cfg),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(cfg.Name),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: open warehouse connection: %v", etl.ErrLoad, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping warehouse: %v", etl.ErrLoad, err)
	}

	return db, nil
}

func DSN(cfg config.Store) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		url.QueryEscape(cfg.User),
		url.QueryEscape(cfg.Password),
		cfg.Host,
		cfg.Port,
		cfg.Name,
		sslMode,
	)
}

// replaceTable implements replace mode: drop and recreate the destination
// inside one transaction, then insert the rows in chunks.
func replaceTable[T any](ctx context.Context, db *sqlx.DB, table, ddl, insertQuery string, rows []T) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin replace tx for %s: %v", etl.ErrLoad, table, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, createBronzeSchema); err != nil {
		return fmt.Errorf("%w: ensure bronze schema: %v", etl.ErrLoad, err)
	}
	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
		return fmt.Errorf("%w: drop %s: %v", etl.ErrLoad, table, err)
	}
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("%w: create %s: %v", etl.ErrLoad, table, err)
	}

	for start := 0; start < len(rows); start += insertChunkSize {
		end := start + insertChunkSize
		if end > len(rows) {
			end = len(rows)
		}
		if _, err := tx.NamedExecContext(ctx, insertQuery, rows[start:end]); err != nil {
			return fmt.Errorf("%w: insert into %s: %v", etl.ErrLoad, table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit replace tx for %s: %v", etl.ErrLoad, table, err)
	}

	return nil
}
