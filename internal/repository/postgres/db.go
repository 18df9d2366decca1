package postgres

import (
	"context"
	"database/sql"
)

// Querier is the subset of *sql.DB and *sql.Tx the journal needs. The journal
// only writes.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
)
