package loanrepo

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"library/model"
	"library/repository/store"
	"library/util/apperr"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (Repo, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return New(db), mock, db
}

var day = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func loanRow(status string) *sqlmock.Rows {
	return sqlmock.NewRows(columns).
		AddRow(3, 1, 2, day, day.AddDate(0, 0, 14), nil, status, nil, day, day)
}

func TestAdd_ReturnsID(t *testing.T) {
	r, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO "loans" .* RETURNING "id", "created_at", "updated_at"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(11, day, day))

	l := &model.Loan{
		UserID: 1, BookID: 2,
		LoanDate: model.NewDate(2024, time.January, 1),
		DueDate:  model.NewDate(2024, time.January, 15),
		Status:   model.LoanActive,
	}
	require.NoError(t, r.Add(context.Background(), l))
	require.Equal(t, int64(11), l.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdd_MissingUserIsNotFound(t *testing.T) {
	r, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO "loans"`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "loans_user_id_fkey"})

	err := r.Add(context.Background(), &model.Loan{UserID: 404, BookID: 2, Status: model.LoanActive})
	require.Equal(t, apperr.ErrNotFound, apperr.Code(err))
}

func TestGet_ScansNullableColumns(t *testing.T) {
	r, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT .* FROM loans\s+WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(loanRow("ACTIVE"))

	l, err := r.Get(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, model.LoanActive, l.Status)
	require.Equal(t, "2024-01-15", l.DueDate.String())
	require.Nil(t, l.ReturnDate)
	require.False(t, l.FineAmount.Valid)
}

func TestUpdateStatus_TouchesOnlyStatus(t *testing.T) {
	r, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)UPDATE loans\s+SET status = \$2,\s+updated_at = NOW\(\)\s+WHERE id = \$1\s+RETURNING`).
		WithArgs(int64(3), "RETURNED").
		WillReturnRows(loanRow("RETURNED"))

	l, err := r.UpdateStatus(context.Background(), 3, model.LoanReturned)
	require.NoError(t, err)
	require.Equal(t, model.LoanReturned, l.Status)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	r, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`UPDATE loans`).WillReturnRows(sqlmock.NewRows(columns))

	_, err := r.UpdateStatus(context.Background(), 3, model.LoanReturned)
	require.Equal(t, apperr.ErrNotFound, apperr.Code(err))
}

func TestList_Paged(t *testing.T) {
	r, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM "loans" ORDER BY "id" ASC LIMIT .* OFFSET`).
		WillReturnRows(loanRow("ACTIVE"))

	out, err := r.List(context.Background(), store.ListOptions{Limit: 10, Offset: 10})
	require.NoError(t, err)
	require.Len(t, out, 1)
}

func TestDelete_DBError(t *testing.T) {
	r, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM loans`).WillReturnError(errors.New("db down"))

	err := r.Delete(context.Background(), 3)
	require.ErrorContains(t, err, "db error: db down")
}
