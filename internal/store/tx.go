package store

import (
	"context"

	"github.com/uptrace/bun"
)

type txKey struct{}

// Transactor runs fn inside a database transaction. Nested calls join the
// transaction already carried by ctx.
type Transactor interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type BunTransactor struct {
	db *bun.DB
}

func NewTransactor(db *bun.DB) *BunTransactor {
	return &BunTransactor{db: db}
}

func (t *BunTransactor) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return RunInTx(ctx, t.db, func(ctx context.Context, _ bun.IDB) error {
		return fn(ctx)
	})
}

// RunInTx is the repository-level variant of Transactor.RunInTx.
func RunInTx(ctx context.Context, db *bun.DB, fn func(ctx context.Context, idb bun.IDB) error) error {
	if tx, ok := ctx.Value(txKey{}).(bun.Tx); ok {
		return fn(ctx, tx)
	}
	return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return fn(context.WithValue(ctx, txKey{}, tx), tx)
	})
}

// Conn returns the transaction carried by ctx, or db when there is none.
func Conn(ctx context.Context, db *bun.DB) bun.IDB {
	if tx, ok := ctx.Value(txKey{}).(bun.Tx); ok {
		return tx
	}
	return db
}
