// Package tx carries an sqlx transaction through the request context so
// repositories can join a transaction opened by the service layer.
package tx

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// With stores a transaction in the context.
func With(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// From retrieves the transaction from the context. Returns nil if not present.
func From(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

// Runner opens transactions on a database handle.
type Runner struct {
	db *sqlx.DB
}

// NewRunner creates a Runner over db.
func NewRunner(db *sqlx.DB) *Runner {
	return &Runner{db: db}
}

// RunInTx runs fn with a transaction stored in the context. The transaction
// commits only if fn returns nil; any error or panic rolls back every write
// made through it, so partial application is never observable.
func (r *Runner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	dbtx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if rec := recover(); rec != nil {
			dbtx.Rollback()
			panic(rec)
		}
	}()

	if err := fn(With(ctx, dbtx)); err != nil {
		dbtx.Rollback()
		return err
	}

	return dbtx.Commit()
}
