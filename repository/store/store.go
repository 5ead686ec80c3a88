// Package store holds what every repository shares: the DBTX handle,
// a transaction runner, list paging and driver error mapping.
package store

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // registers the dialect
)

// DBTX is the subset of database/sql used by repositories.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxRunner runs fn inside a single transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error
}

type txRunner struct {
	db   *sql.DB
	opts *sql.TxOptions
}

func NewTxRunner(db *sql.DB, opts *sql.TxOptions) TxRunner { return &txRunner{db: db, opts: opts} }

func (r *txRunner) WithTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	return WithTx(ctx, r.db, r.opts, fn)
}

// WithTx begins a transaction, runs fn and commits on success. It rolls back
// on error or panic; panics are rethrown.
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}

const (
	DefaultLimit = 100
	MaxLimit     = 500
)

// ListOptions pages a list query. Zero Limit means DefaultLimit.
type ListOptions struct {
	Limit  uint
	Offset uint
}

func (o ListOptions) Apply(ds *goqu.SelectDataset) *goqu.SelectDataset {
	limit := o.Limit
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	ds = ds.Limit(limit)
	if o.Offset > 0 {
		ds = ds.Offset(o.Offset)
	}
	return ds
}

// PG is the query builder for the postgres dialect with $n placeholders.
func PG() goqu.DialectWrapper { return goqu.Dialect("postgres") }
