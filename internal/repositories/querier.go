package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/viagemtrack/travelog/internal/middlewares"
)

// querier is the subset of sqlx used by repositories, satisfied by both
// *sqlx.DB and *sqlx.Tx.
type querier interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// querierFromContext returns the request transaction when one is present in
// the context, otherwise the shared pool.
func querierFromContext(ctx context.Context, db *sqlx.DB) querier {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}
