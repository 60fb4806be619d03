package mart

import (
	"context"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/premdata/fpl-warehouse/internal/config"
	"github.com/premdata/fpl-warehouse/internal/etl"
)

// Connect opens an instrumented mart connection. Callers own the returned
// handle and must close it on every exit path.
func Connect(ctx context.Context, cfg config.Store) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("mysql", DSN(cfg),
		otelsql.WithDBSystem("mysql"),
		otelsql.WithDBName(cfg.Name),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: open mart connection: %v", etl.ErrLoad, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping mart: %v", etl.ErrLoad, err)
	}

	return db, nil
}

func DSN(cfg config.Store) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&loc=UTC",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Name,
	)
}
