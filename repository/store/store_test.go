package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"library/util/apperr"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestMapErr(t *testing.T) {
	require.NoError(t, MapErr("book", nil))
	require.Equal(t, apperr.ErrNotFound, apperr.Code(MapErr("book", sql.ErrNoRows)))

	dup := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "books_isbn_key"}
	require.Equal(t, apperr.ErrDuplicateKey, apperr.Code(MapErr("book", dup)))

	fk := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "loans_user_id_fkey"}
	require.Equal(t, apperr.ErrNotFound, apperr.Code(MapErr("loan", fk)))

	chk := &pgconn.PgError{Code: pgerrcode.CheckViolation, ConstraintName: "books_stock_check"}
	require.Equal(t, apperr.ErrValidation, apperr.Code(MapErr("book", chk)))

	other := MapErr("book", errors.New("conn reset"))
	require.Equal(t, apperr.ErrCode(""), apperr.Code(other))
	require.Contains(t, other.Error(), "db error: conn reset")
}

func TestMapDeleteErr(t *testing.T) {
	fk := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "loans_book_id_fkey"}
	err := MapDeleteErr("book", fk)
	require.Equal(t, apperr.ErrConflict, apperr.Code(err))
	require.Contains(t, apperr.Message(err), "loans_book_id_fkey")

	require.NoError(t, MapDeleteErr("book", nil))
	require.Equal(t, apperr.ErrNotFound, apperr.Code(MapDeleteErr("book", sql.ErrNoRows)))
}

func TestListOptions_Apply(t *testing.T) {
	q, _, err := ListOptions{}.Apply(goqu.From("books")).ToSQL()
	require.NoError(t, err)
	require.Contains(t, q, "LIMIT 100")
	require.NotContains(t, q, "OFFSET")

	q, _, err = ListOptions{Limit: 10_000, Offset: 20}.Apply(goqu.From("books")).ToSQL()
	require.NoError(t, err)
	require.Contains(t, q, "LIMIT 500")
	require.Contains(t, q, "OFFSET 20")
}

func TestWithTx_CommitAndRollback(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE books").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, "UPDATE books SET stock = 1")
		return err
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectRollback()
	boom := errors.New("boom")
	err = NewTxRunner(db, nil).WithTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMustAffect(t *testing.T) {
	require.NoError(t, MustAffect("loan", sqlmock.NewResult(0, 1)))
	require.Equal(t, apperr.ErrNotFound, apperr.Code(MustAffect("loan", sqlmock.NewResult(0, 0))))
}
