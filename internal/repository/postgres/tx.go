package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type txKey string

const keyTx = txKey("sqlx_tx")

type querier interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// Chk returns the transaction bound to ctx, or the plain connection.
func (r *Repository) Chk(ctx context.Context) querier {
	if tx, ok := ctx.Value(keyTx).(*sqlx.Tx); ok {
		return tx
	}
	return r.connection
}

func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(keyTx).(*sqlx.Tx); ok {
		return cb(ctx)
	}

	tx, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %v", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = cb(context.WithValue(ctx, keyTx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %v", err)
	}

	return nil
}
