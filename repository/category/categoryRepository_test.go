package categoryrepo

import (
	"context"
	"testing"
	"time"

	"library/model"
	"library/util/apperr"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestCreate_DuplicateName(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO categories`).
		WithArgs("Sci-Fi", nil).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "categories_name_key"})

	err = New(db).Create(context.Background(), &model.Category{Name: "Sci-Fi"})
	require.Equal(t, apperr.ErrDuplicateKey, apperr.Code(err))
}

func TestUpdate_Name(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`UPDATE "categories" SET "name"=\$1,"updated_at"=NOW\(\) WHERE \("id" = \$2\)`).
		WithArgs("Fantasy", int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "created_at", "updated_at"}).
			AddRow(4, "Fantasy", nil, now, now))

	name := "Fantasy"
	c, err := New(db).Update(context.Background(), 4, model.CategoryUpdate{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Fantasy", c.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}
