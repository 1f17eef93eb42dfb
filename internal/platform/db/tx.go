package db

import (
	"context"
	"database/sql"
	"fmt"
)

type contextKey string

const txKey contextKey = "db_tx"

// Querier is the subset of database/sql shared by *sql.DB and *sql.Tx.
// Repositories run against whichever the context supplies, so a cascade
// delete can span several repositories inside one transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxFromContext retrieves the transaction bound to the context, if any.
func TxFromContext(ctx context.Context) *sql.Tx {
	tx, _ := ctx.Value(txKey).(*sql.Tx)
	return tx
}

// TxRunner runs a function inside one database transaction. Services take
// this instead of *sql.DB so tests can substitute a pass-through runner.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Runner is the *sql.DB backed TxRunner.
type Runner struct {
	Conn *sql.DB
}

func (r Runner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return WithTx(ctx, r.Conn, fn)
}

// WithTx runs fn inside a transaction bound to the derived context.
// The transaction commits when fn returns nil and rolls back otherwise.
func WithTx(ctx context.Context, conn *sql.DB, fn func(ctx context.Context) error) error {
	if TxFromContext(ctx) != nil {
		// Already transactional; join it.
		return fn(ctx)
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(context.WithValue(ctx, txKey, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
